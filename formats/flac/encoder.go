// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"fmt"
	"io"

	goflac "github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
	"github.com/mewkiz/flac/meta"

	"github.com/hugofloresgarcia/audio-utils/audio"
	"github.com/hugofloresgarcia/audio-utils/utils"
)

// encodeBlockSize is the fixed block size used for written streams.
const encodeBlockSize = 4096

// Encode writes a buffer as a 16-bit FLAC stream at sampleRate. Samples
// are stored with verbatim subframes; the output is larger than what a
// predicting encoder produces, but decodes identically.
func Encode(w io.Writer, b *audio.Buffer, sampleRate int) error {
	if sampleRate <= 0 {
		return audio.ErrInvalidSampleRate
	}
	if b.Channels() > 8 {
		return ErrTooManyChannels
	}

	info := &meta.StreamInfo{
		BlockSizeMin:  encodeBlockSize,
		BlockSizeMax:  encodeBlockSize,
		SampleRate:    uint32(sampleRate),
		NChannels:     uint8(b.Channels()),
		BitsPerSample: 16,
		NSamples:      uint64(b.Samples()),
	}

	enc, err := goflac.NewEncoder(w, info)
	if err != nil {
		return fmt.Errorf("encoding flac: %w", err)
	}

	n := b.Samples()
	for start, num := 0, 0; start < n; start, num = start+encodeBlockSize, num+1 {
		blockLen := min(encodeBlockSize, n-start)

		subframes := make([]*frame.Subframe, b.Channels())
		for c := range subframes {
			samples := make([]int32, blockLen)
			for i, s := range b.Channel(c)[start : start+blockLen] {
				samples[i] = int32(utils.Float32ToInt(s, 16))
			}

			subframes[c] = &frame.Subframe{
				SubHeader: frame.SubHeader{
					Pred: frame.PredVerbatim,
				},
				Samples:  samples,
				NSamples: blockLen,
			}
		}

		f := &frame.Frame{
			Header: frame.Header{
				HasFixedBlockSize: true,
				BlockSize:         uint16(blockLen),
				SampleRate:        uint32(sampleRate),
				Channels:          frame.Channels(b.Channels() - 1),
				BitsPerSample:     16,
				Num:               uint64(num),
			},
			Subframes: subframes,
		}

		if err := enc.WriteFrame(f); err != nil {
			return fmt.Errorf("encoding flac frame: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing flac: %w", err)
	}

	return nil
}
