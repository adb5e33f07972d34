// SPDX-License-Identifier: EPL-2.0

package segment

import (
	"github.com/hugofloresgarcia/audio-utils/audio"
)

// SplitOnSilence locates the non-silent stretches of a mono buffer and
// bridges pauses shorter than minSilence seconds, returning sample-index
// intervals. topDB sets the detector's peak-relative gate.
//
// The buffer must be mono; downmix multichannel material first. A buffer
// in which nothing clears the gate yields ErrNoIntervals.
func SplitOnSilence(b *audio.Buffer, sampleRate int, topDB, minSilence float64) ([]Interval, error) {
	if sampleRate <= 0 {
		return nil, audio.ErrInvalidSampleRate
	}

	samples, err := b.Mono()
	if err != nil {
		return nil, err
	}

	intervals := NonSilent(samples, topDB)

	return Coalesce(intervals, MaxGap(minSilence, sampleRate))
}
