// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"errors"
	"fmt"
	"io"

	goflac "github.com/mewkiz/flac"

	"github.com/hugofloresgarcia/audio-utils/audio"
	"github.com/hugofloresgarcia/audio-utils/utils"
)

type Decoder struct{}

// Decode reads a complete FLAC stream into a channel-major buffer and
// reports its sample rate.
func (Decoder) Decode(r io.Reader) (*audio.Buffer, int, error) {
	stream, err := goflac.New(r)
	if err != nil {
		return nil, 0, fmt.Errorf("decoding flac: %w", err)
	}

	info := stream.Info
	channels := int(info.NChannels)
	if channels < 1 {
		return nil, 0, ErrUnsupportedFlacLayout
	}
	bitDepth := int(info.BitsPerSample)

	data := make([][]float32, channels)
	if info.NSamples > 0 {
		for c := range data {
			data[c] = make([]float32, 0, info.NSamples)
		}
	}

	for {
		f, err := stream.ParseNext()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("decoding flac frame: %w", err)
		}
		if len(f.Subframes) != channels {
			return nil, 0, ErrUnsupportedFlacLayout
		}

		for c, sub := range f.Subframes {
			for _, s := range sub.Samples {
				data[c] = append(data[c], utils.IntToFloat32(int(s), bitDepth))
			}
		}
	}

	buf, err := audio.FromChannels(data)
	if err != nil {
		return nil, 0, fmt.Errorf("decoding flac: %w", err)
	}

	return buf, int(info.SampleRate), nil
}
