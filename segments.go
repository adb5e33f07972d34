// SPDX-License-Identifier: EPL-2.0

package audioutils

import (
	"fmt"

	"github.com/hugofloresgarcia/audio-utils/audio"
	"github.com/hugofloresgarcia/audio-utils/segment"
)

// SplitOnSilence cuts a buffer into its non-silent pieces.
//
// Detection runs on a mono mix of the buffer; the returned segments are
// sliced from the original, so multichannel audio keeps all its
// channels. topDB sets how far below the loudest frame still counts as
// signal, and pauses shorter than minSilence seconds are bridged rather
// than split on.
//
// Each returned buffer is a fresh copy in interval order.
func SplitOnSilence(b *audio.Buffer, sampleRate int, topDB, minSilence float64) ([]*audio.Buffer, error) {
	mono := b
	if !b.IsMono() {
		mono = audio.Downmix(b)
	}

	intervals, err := segment.SplitOnSilence(mono, sampleRate, topDB, minSilence)
	if err != nil {
		return nil, fmt.Errorf("splitting on silence: %w", err)
	}

	out := make([]*audio.Buffer, 0, len(intervals))
	for _, iv := range intervals {
		seg, err := b.Slice(int(iv.Start), int(iv.End))
		if err != nil {
			return nil, fmt.Errorf("slicing segment: %w", err)
		}
		out = append(out, seg)
	}

	return out, nil
}
