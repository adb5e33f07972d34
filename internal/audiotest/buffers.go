// SPDX-License-Identifier: EPL-2.0

package audiotest

import "math"

// Channel-major sample generators for tests. They return raw [][]float32
// rather than audio.Buffer values so any package can wrap them without
// import cycles.

// Generate builds channel-major data from a per-sample waveform
// function.
func Generate(channels, samples int, waveform func(sample, channel int) float32) [][]float32 {
	data := make([][]float32, channels)
	for c := range data {
		data[c] = make([]float32, samples)
		for i := 0; i < samples; i++ {
			data[c][i] = waveform(i, c)
		}
	}
	return data
}

// Sine generates a sine tone at the given frequency on every channel.
func Sine(channels, samples, sampleRate int, frequency float64) [][]float32 {
	return Generate(channels, samples, func(sample, channel int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// Constant generates the same value everywhere.
func Constant(channels, samples int, value float32) [][]float32 {
	return Generate(channels, samples, func(sample, channel int) float32 {
		return value
	})
}

// Silence generates all zeros.
func Silence(channels, samples int) [][]float32 {
	return Constant(channels, samples, 0)
}

// Burst generates silence with tone bursts at the given sample ranges,
// useful for exercising silence detection. Ranges are [start, end) pairs.
func Burst(samples, sampleRate int, frequency float64, ranges ...[2]int) []float32 {
	out := make([]float32, samples)
	for _, r := range ranges {
		for i := r[0]; i < r[1] && i < samples; i++ {
			t := float64(i) / float64(sampleRate)
			out[i] = float32(math.Sin(2 * math.Pi * frequency * t))
		}
	}
	return out
}
