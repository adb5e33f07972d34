// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/hugofloresgarcia/audio-utils/audio"
	"github.com/hugofloresgarcia/audio-utils/utils"
)

// Encode writes a buffer as 16-bit PCM WAV at sampleRate. The buffer's
// channel-major samples are interleaved to sample-major order here, at
// the codec boundary. w must seek because the RIFF header sizes are
// patched after the data chunk is written.
func Encode(w io.WriteSeeker, b *audio.Buffer, sampleRate int) error {
	if sampleRate <= 0 {
		return audio.ErrInvalidSampleRate
	}

	interleaved := b.Interleaved()
	data := make([]int, len(interleaved))
	for i, s := range interleaved {
		data[i] = int(utils.Float32ToInt16(s))
	}

	enc := gowav.NewEncoder(w, sampleRate, 16, b.Channels(), 1)
	pcm := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: b.Channels(),
			SampleRate:  sampleRate,
		},
		Data:           data,
		SourceBitDepth: 16,
	}

	if err := enc.Write(pcm); err != nil {
		return fmt.Errorf("encoding wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav: %w", err)
	}

	return nil
}
