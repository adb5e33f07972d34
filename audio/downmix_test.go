// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"
	"testing"

	"github.com/hugofloresgarcia/audio-utils/internal/audiotest"
)

func TestDownmix_IdenticalChannels(t *testing.T) {
	t.Parallel()

	// Averaging identical channels must reproduce the channel exactly.
	b, _ := FromChannels(audiotest.Constant(4, 100, 0.25))

	got := Downmix(b)
	if got.Channels() != 1 || got.Samples() != 100 {
		t.Fatalf("Downmix() shape = (%d, %d), want (1, 100)", got.Channels(), got.Samples())
	}

	for i, s := range got.Channel(0) {
		if s != 0.25 {
			t.Fatalf("Downmix()[%d] = %v, want 0.25", i, s)
		}
	}
}

func TestDownmix_StereoAverage(t *testing.T) {
	t.Parallel()

	b, _ := FromChannels(audiotest.Generate(2, 10, func(sample, channel int) float32 {
		if channel == 0 {
			return 0.4
		}
		return 0.6
	}))

	got := Downmix(b)
	for i, s := range got.Channel(0) {
		if math.Abs(float64(s-0.5)) > 0.001 {
			t.Errorf("Downmix()[%d] = %v, want 0.5", i, s)
		}
	}
}

func TestDownmix_ManyChannels(t *testing.T) {
	t.Parallel()

	// channels hold 0.0, 0.1, 0.2, 0.3 -> mean 0.15
	b, _ := FromChannels(audiotest.Generate(4, 10, func(sample, channel int) float32 {
		return float32(channel) / 10
	}))

	got := Downmix(b)
	for i, s := range got.Channel(0) {
		if math.Abs(float64(s-0.15)) > 0.001 {
			t.Errorf("Downmix()[%d] = %v, want 0.15", i, s)
		}
	}
}

func TestDownmix_MonoCopies(t *testing.T) {
	t.Parallel()

	b := FromMono([]float32{0.1, 0.2})
	got := Downmix(b)

	if got.Channel(0)[0] != 0.1 {
		t.Errorf("Downmix(mono)[0] = %v, want 0.1", got.Channel(0)[0])
	}

	// result is a copy, not the input
	got.Channel(0)[0] = 99
	if b.Channel(0)[0] != 0.1 {
		t.Errorf("mutating downmix changed input: got %v, want 0.1", b.Channel(0)[0])
	}
}

func TestDownmix_NaNPropagates(t *testing.T) {
	t.Parallel()

	nan := float32(math.NaN())
	b, _ := FromChannels([][]float32{{nan, 0.5}, {0.5, 0.5}})

	got := Downmix(b)
	if !math.IsNaN(float64(got.Channel(0)[0])) {
		t.Errorf("Downmix() with NaN input = %v, want NaN", got.Channel(0)[0])
	}
	if got.Channel(0)[1] != 0.5 {
		t.Errorf("Downmix()[1] = %v, want 0.5", got.Channel(0)[1])
	}
}

func BenchmarkDownmix_Stereo(b *testing.B) {
	buf, _ := FromChannels(audiotest.Sine(2, 48000, 48000, 440))

	b.ReportAllocs()

	for bi := 0; bi < b.N; bi++ {
		_ = Downmix(buf)
	}
}
