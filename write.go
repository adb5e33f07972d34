// SPDX-License-Identifier: EPL-2.0

package audioutils

import (
	"fmt"
	"os"
	"strings"

	"github.com/hugofloresgarcia/audio-utils/audio"
	"github.com/hugofloresgarcia/audio-utils/formats/flac"
	"github.com/hugofloresgarcia/audio-utils/formats/wav"
)

// Formats accepted by WriteFile. Vorbis and MP3 stay decode-only: no
// pure-Go encoder exists for either.
const (
	FormatWAV  = "wav"
	FormatFLAC = "flac"
)

// WriteFile encodes a buffer to disk at sampleRate. The format must be
// one of the Format constants; the matching extension is appended when
// the path lacks it. An existing file is never clobbered unless
// overwrite is set.
func WriteFile(b *audio.Buffer, path string, sampleRate int, format string, overwrite bool) error {
	switch format {
	case FormatWAV, FormatFLAC:
	default:
		return fmt.Errorf("%w: %q (want %q or %q)", ErrUnsupportedFormat, format, FormatWAV, FormatFLAC)
	}

	if !strings.HasSuffix(strings.ToLower(path), "."+format) {
		path += "." + format
	}

	if _, err := os.Stat(path); err == nil && !overwrite {
		return fmt.Errorf("%w: %s", ErrFileExists, path)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	switch format {
	case FormatWAV:
		err = wav.Encode(f, b, sampleRate)
	case FormatFLAC:
		err = flac.Encode(f, b, sampleRate)
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}
