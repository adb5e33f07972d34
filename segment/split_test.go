// SPDX-License-Identifier: EPL-2.0

package segment

import (
	"errors"
	"testing"

	"github.com/hugofloresgarcia/audio-utils/audio"
	"github.com/hugofloresgarcia/audio-utils/internal/audiotest"
)

func TestSplitOnSilence_BridgesShortPauses(t *testing.T) {
	t.Parallel()

	const rate = 48000
	// two bursts with a ~0.2s pause between them
	samples := audiotest.Burst(rate, rate, 440, [2]int{10240, 20480}, [2]int{30720, 40960})
	buf := audio.FromMono(samples)

	// bridge pauses under half a second: the bursts fuse
	merged, err := SplitOnSilence(buf, rate, 45, 0.5)
	if err != nil {
		t.Fatalf("SplitOnSilence() error = %v", err)
	}
	if len(merged) != 1 {
		t.Fatalf("SplitOnSilence(minSilence=0.5) = %v, want one interval", merged)
	}
	if merged[0].Start > 10240 || merged[0].End < 40960 {
		t.Errorf("merged interval %v does not span both bursts", merged[0])
	}

	// a 10ms tolerance keeps them apart
	split, err := SplitOnSilence(buf, rate, 45, 0.01)
	if err != nil {
		t.Fatalf("SplitOnSilence() error = %v", err)
	}
	if len(split) != 2 {
		t.Errorf("SplitOnSilence(minSilence=0.01) = %v, want two intervals", split)
	}
}

func TestSplitOnSilence_RequiresMono(t *testing.T) {
	t.Parallel()

	buf, _ := audio.FromChannels(audiotest.Sine(2, 48000, 48000, 440))

	if _, err := SplitOnSilence(buf, 48000, 45, 0.3); !errors.Is(err, audio.ErrNotMono) {
		t.Errorf("SplitOnSilence(stereo) error = %v, want audio.ErrNotMono", err)
	}
}

func TestSplitOnSilence_AllSilent(t *testing.T) {
	t.Parallel()

	buf := audio.FromMono(make([]float32, 48000))

	if _, err := SplitOnSilence(buf, 48000, 45, 0.3); !errors.Is(err, ErrNoIntervals) {
		t.Errorf("SplitOnSilence(silence) error = %v, want ErrNoIntervals", err)
	}
}

func TestSplitOnSilence_InvalidRate(t *testing.T) {
	t.Parallel()

	buf := audio.FromMono(make([]float32, 100))

	if _, err := SplitOnSilence(buf, 0, 45, 0.3); !errors.Is(err, audio.ErrInvalidSampleRate) {
		t.Errorf("SplitOnSilence(rate=0) error = %v, want audio.ErrInvalidSampleRate", err)
	}
}
