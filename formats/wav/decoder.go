package wav

import (
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"

	"github.com/hugofloresgarcia/audio-utils/audio"
	"github.com/hugofloresgarcia/audio-utils/utils"
)

type Decoder struct{}

// Decode reads a complete WAV stream into a channel-major buffer and
// reports its sample rate.
func (Decoder) Decode(r io.Reader) (*audio.Buffer, int, error) {
	rs, err := asReadSeeker(r)
	if err != nil {
		return nil, 0, fmt.Errorf("reading wav data: %w", err)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, 0, ErrNotWavFile
	}

	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("decoding wav: %w", err)
	}
	if pcm.Format == nil || pcm.Format.NumChannels < 1 {
		return nil, 0, ErrUnsupportedWavLayout
	}

	bitDepth := int(dec.BitDepth)
	samples := make([]float32, len(pcm.Data))
	for i, v := range pcm.Data {
		samples[i] = utils.IntToFloat32(v, bitDepth)
	}

	buf, err := audio.FromInterleaved(samples, pcm.Format.NumChannels)
	if err != nil {
		return nil, 0, fmt.Errorf("decoding wav: %w", err)
	}

	return buf, pcm.Format.SampleRate, nil
}

// asReadSeeker hands back r when it already seeks, otherwise slurps it
// into memory. go-audio requires seeking to walk RIFF chunks.
func asReadSeeker(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return &readSeeker{data: data}, nil
}

// readSeeker implements io.ReadSeeker over in-memory data.
type readSeeker struct {
	data   []byte
	offset int64
}

func (rs *readSeeker) Read(p []byte) (int, error) {
	if rs.offset >= int64(len(rs.data)) {
		return 0, io.EOF
	}
	n := copy(p, rs.data[rs.offset:])
	rs.offset += int64(n)
	return n, nil
}

func (rs *readSeeker) Seek(offset int64, whence int) (int64, error) {
	var newOffset int64
	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = rs.offset + offset
	case io.SeekEnd:
		newOffset = int64(len(rs.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if newOffset < 0 {
		return 0, fmt.Errorf("negative position")
	}

	rs.offset = newOffset
	return newOffset, nil
}
