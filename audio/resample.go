// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"github.com/hugofloresgarcia/audio-utils/utils"
)

// Resample converts a buffer from oldRate to newRate using Catmull-Rom
// cubic interpolation per channel. The output holds
// floor(N * newRate / oldRate) samples per channel and is always a fresh
// buffer; channel count is preserved, so mono in means (1, N') out.
//
// When downsampling, a simple one-pole low-pass runs over each channel
// first to tame aliasing. It is not a brick-wall filter; use a proper
// FIR design if you need transparent quality.
func Resample(b *Buffer, oldRate, newRate int) (*Buffer, error) {
	if oldRate <= 0 || newRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if oldRate == newRate {
		return b.Clone(), nil
	}

	n := b.Samples()
	outN := int(float64(n) * float64(newRate) / float64(oldRate))
	out, err := New(b.Channels(), outN)
	if err != nil {
		return nil, err
	}
	if n == 0 || outN == 0 {
		return out, nil
	}

	ratio := float64(oldRate) / float64(newRate)
	downsampling := ratio > 1.0

	for c := 0; c < b.Channels(); c++ {
		src := b.Channel(c)

		if downsampling {
			src = lowPass(src, 0.5)
		}

		dst := out.Channel(c)
		for i := 0; i < outN; i++ {
			pos := float64(i) * ratio
			idx := int(pos)
			frac := float32(pos - float64(idx))

			y0 := src[clampIndex(idx-1, n)]
			y1 := src[clampIndex(idx, n)]
			y2 := src[clampIndex(idx+1, n)]
			y3 := src[clampIndex(idx+2, n)]

			dst[i] = utils.CubicInterpolate(y0, y1, y2, y3, frac)
		}
	}

	return out, nil
}

// lowPass applies y[n] = alpha*x[n] + (1-alpha)*y[n-1], seeded with the
// first sample to avoid a warm-up transient.
func lowPass(src []float32, alpha float32) []float32 {
	out := make([]float32, len(src))
	state := src[0]
	for i, x := range src {
		state = alpha*x + (1-alpha)*state
		out[i] = state
	}
	return out
}

// clampIndex pins i to [0, n), duplicating edge samples for the
// interpolation taps that fall outside the signal.
func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
