// SPDX-License-Identifier: EPL-2.0

package segment

import "math"

// Interval is a contiguous region of a signal, [Start, End] in whatever
// unit the caller works in (sample indices here, seconds elsewhere).
// Start <= End, and interval lists are sorted by Start without overlap.
type Interval struct {
	Start float64
	End   float64
}

// Condition decides whether two adjacent intervals should merge, given
// the end of the earlier one and the start of the later one.
type Condition func(prevEnd, nextStart float64) bool

// MaxGap returns the default merge policy: bridge a gap when its
// duration, converted to sample units via sampleRate, is strictly below
// maxDuration seconds. Use it against intervals measured in samples,
// e.g. the output of NonSilent.
func MaxGap(maxDuration float64, sampleRate int) Condition {
	threshold := maxDuration * float64(sampleRate)
	return func(prevEnd, nextStart float64) bool {
		return math.Abs(nextStart-prevEnd) < threshold
	}
}

// Coalesce merges a sorted interval list into the minimal list in which
// no two adjacent outputs satisfy cond on their connecting gap.
//
// The sweep is a single left-to-right pass carrying a current interval:
// when cond approves the gap, the current interval extends to absorb the
// next one (the gap in between counts as signal from then on); otherwise
// the current interval is emitted and the next one takes its place. The
// carried interval is flushed after the loop, so a single-interval input
// comes back unchanged and the last interval is emitted exactly once.
//
// Merging is strictly local: once an interval has been emitted it is
// never revisited, so a condition whose verdict depends on intervals
// further right can under-merge relative to a global/transitive policy.
func Coalesce(intervals []Interval, cond Condition) ([]Interval, error) {
	if len(intervals) == 0 {
		return nil, ErrNoIntervals
	}

	out := make([]Interval, 0, len(intervals))
	current := intervals[0]

	for _, next := range intervals[1:] {
		if cond(current.End, next.Start) {
			current.End = next.End
		} else {
			out = append(out, current)
			current = next
		}
	}

	return append(out, current), nil
}
