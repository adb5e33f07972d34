// SPDX-License-Identifier: EPL-2.0

package audioutils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hugofloresgarcia/audio-utils/audio"
	"github.com/hugofloresgarcia/audio-utils/formats/aiff"
	"github.com/hugofloresgarcia/audio-utils/formats/flac"
	"github.com/hugofloresgarcia/audio-utils/formats/mp3"
	"github.com/hugofloresgarcia/audio-utils/formats/vorbis"
	"github.com/hugofloresgarcia/audio-utils/formats/wav"
)

// DefaultRegistry returns a registry with every decoder this module
// ships, keyed by file extension (without the dot).
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("flac", flac.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	return reg
}

// ReadFile decodes an audio file, choosing the decoder by file
// extension, and returns the buffer along with its native sample rate.
func ReadFile(path string) (*audio.Buffer, int, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	dec, ok := DefaultRegistry().Get(ext)
	if !ok {
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	buf, rate, err := dec.Decode(f)
	if err != nil {
		return nil, 0, fmt.Errorf("decoding %s: %w", path, err)
	}

	return buf, rate, nil
}

// LoadMono decodes an audio file, downmixes it to a single channel and
// resamples it to targetRate, returning a (1, N) buffer. This is the
// usual entry point when feeding files into segmentation or windowing.
func LoadMono(path string, targetRate int) (*audio.Buffer, error) {
	buf, rate, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	mono := audio.Downmix(buf)

	out, err := audio.Resample(mono, rate, targetRate)
	if err != nil {
		return nil, fmt.Errorf("resampling %s: %w", path, err)
	}

	return out, nil
}
