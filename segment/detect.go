// SPDX-License-Identifier: EPL-2.0

package segment

import "math"

// Frame geometry for the RMS energy gate. 2048/512 is the usual analysis
// default for speech/music at common rates.
const (
	detectFrameLen = 2048
	detectHopLen   = 512
)

// NonSilent scans a mono sample slice and returns the regions that rise
// above a peak-relative energy gate, as sample-index intervals sorted by
// start and non-overlapping.
//
// The signal is cut into frames of detectFrameLen samples every
// detectHopLen samples (the tail frame may be short). A frame counts as
// non-silent when its RMS exceeds the loudest frame's RMS attenuated by
// topDB decibels; runs of non-silent frames become one interval, with
// frame indices scaled back to samples and the final end clamped to
// len(samples). A higher topDB keeps quieter material.
//
// An all-zero input has no loudest frame to reference and yields no
// intervals.
func NonSilent(samples []float32, topDB float64) []Interval {
	if len(samples) == 0 {
		return nil
	}

	rms := frameRMS(samples, detectFrameLen, detectHopLen)

	peak := 0.0
	for _, v := range rms {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		return nil
	}

	gate := peak * math.Pow(10, -topDB/20)

	var intervals []Interval
	inRun := false
	runStart := 0

	for i, v := range rms {
		loud := v > gate
		switch {
		case loud && !inRun:
			inRun = true
			runStart = i
		case !loud && inRun:
			inRun = false
			intervals = append(intervals, frameInterval(runStart, i, len(samples)))
		}
	}
	if inRun {
		intervals = append(intervals, frameInterval(runStart, len(rms), len(samples)))
	}

	return intervals
}

// frameInterval converts a [startFrame, endFrame) run to sample units,
// clamping the open end to the true signal length.
func frameInterval(startFrame, endFrame, n int) Interval {
	end := endFrame * detectHopLen
	if end > n {
		end = n
	}
	return Interval{
		Start: float64(startFrame * detectHopLen),
		End:   float64(end),
	}
}

// frameRMS computes per-frame root-mean-square energy. Frames start
// every hopLen samples; the last frames may cover fewer than frameLen
// samples but are still measured over the samples they hold.
func frameRMS(samples []float32, frameLen, hopLen int) []float64 {
	n := len(samples)
	numFrames := (n + hopLen - 1) / hopLen

	rms := make([]float64, numFrames)
	for f := 0; f < numFrames; f++ {
		start := f * hopLen
		end := min(start+frameLen, n)

		sum := 0.0
		for _, s := range samples[start:end] {
			sum += float64(s) * float64(s)
		}
		rms[f] = math.Sqrt(sum / float64(end-start))
	}

	return rms
}
