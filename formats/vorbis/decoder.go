package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/hugofloresgarcia/audio-utils/audio"
)

// oggReader is the slice of oggvorbis.Reader we rely on, kept as an
// interface so tests can substitute a fake stream.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type Decoder struct{}

// Decode reads a complete Ogg Vorbis stream into a channel-major
// buffer.
func (Decoder) Decode(r io.Reader) (*audio.Buffer, int, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, 0, fmt.Errorf("decoding vorbis: %w", err)
	}

	return collect(dec)
}

// collect drains an oggReader into a buffer. The reader hands out
// interleaved float32 frames directly; no PCM scaling is needed.
func collect(dec oggReader) (*audio.Buffer, int, error) {
	channels := dec.Channels()

	var samples []float32
	frameBuf := make([]float32, 4096*channels)

	for {
		n, err := dec.Read(frameBuf)
		samples = append(samples, frameBuf[:n]...)

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("decoding vorbis: %w", err)
		}
	}

	buf, err := audio.FromInterleaved(samples, channels)
	if err != nil {
		return nil, 0, fmt.Errorf("decoding vorbis: %w", err)
	}

	return buf, dec.SampleRate(), nil
}
