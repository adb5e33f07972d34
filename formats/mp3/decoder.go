// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/hugofloresgarcia/audio-utils/audio"
	"github.com/hugofloresgarcia/audio-utils/utils"
)

// mp3Reader is the slice of gomp3.Decoder we rely on, kept as an
// interface so tests can substitute a fake stream.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type Decoder struct{}

// Decode reads a complete MP3 stream into a channel-major buffer.
// go-mp3 always emits 16-bit little-endian stereo, so the result has
// two channels.
func (Decoder) Decode(r io.Reader) (*audio.Buffer, int, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, 0, fmt.Errorf("decoding mp3: %w", err)
	}

	return collect(dec, 2)
}

// collect drains an mp3Reader into a buffer with the given channel
// count.
func collect(dec mp3Reader, channels int) (*audio.Buffer, int, error) {
	var samples []float32
	raw := make([]byte, 8192)

	for {
		n, err := dec.Read(raw)
		for i := 0; i+1 < n; i += 2 {
			v := int16(uint16(raw[i]) | uint16(raw[i+1])<<8)
			samples = append(samples, utils.Int16ToFloat32(v))
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("decoding mp3: %w", err)
		}
	}

	buf, err := audio.FromInterleaved(samples, channels)
	if err != nil {
		return nil, 0, fmt.Errorf("decoding mp3: %w", err)
	}

	return buf, dec.SampleRate(), nil
}
