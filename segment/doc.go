// SPDX-License-Identifier: EPL-2.0

// Package segment finds and merges non-silent regions of a signal.
//
// Detection and merging are separate, composable steps:
//   - NonSilent gates frames of a mono signal by peak-relative RMS energy
//   - Coalesce merges adjacent intervals whose gap satisfies a Condition
//   - SplitOnSilence wires the two together with the MaxGap policy
//
// # Intervals
//
// Intervals carry float64 endpoints in whatever unit the caller chooses;
// the detector emits sample indices. Lists are sorted by start and never
// overlap, which Coalesce relies on.
//
// # Coalescing
//
// Coalesce makes a single pass, deciding each merge from the gap between
// the carried interval's end and the next interval's start:
//
//	merged, err := segment.Coalesce(intervals, func(e, s float64) bool {
//	    return s-e < 4800 // bridge pauses under 0.1s at 48kHz
//	})
//
// The decision is local and left-to-right; emitted intervals are never
// reconsidered. With an always-false condition the input comes back
// unchanged, and with an always-true condition everything collapses to
// one interval spanning first start to last end.
//
// # Splitting on silence
//
//	intervals, err := segment.SplitOnSilence(buf, 48000, 45, 0.3)
//
// finds regions at most 45dB below the loudest frame and bridges pauses
// shorter than 0.3 seconds. The buffer must be mono.
package segment
