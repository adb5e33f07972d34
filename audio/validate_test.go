// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"testing"

	"github.com/hugofloresgarcia/audio-utils/internal/audiotest"
)

func hasDiag(diags []Diagnostic, code DiagnosticCode) bool {
	for _, d := range diags {
		if d.Code == code {
			return true
		}
	}
	return false
}

func TestValidate_Clean(t *testing.T) {
	t.Parallel()

	b, _ := FromChannels(audiotest.Sine(2, 1000, 8000, 440))

	if diags := Validate(b); len(diags) != 0 {
		t.Errorf("Validate() = %v, want no diagnostics", diags)
	}
}

func TestValidate_LikelyTransposed(t *testing.T) {
	t.Parallel()

	// 100 "channels" of 2 samples: almost certainly a transposed array.
	b, _ := FromChannels(audiotest.Constant(100, 2, 0.5))

	diags := Validate(b)
	if !hasDiag(diags, DiagLikelyTransposed) {
		t.Errorf("Validate() = %v, want DiagLikelyTransposed", diags)
	}
	if hasDiag(diags, DiagSilentBuffer) {
		t.Errorf("Validate() = %v, unexpected DiagSilentBuffer", diags)
	}
}

func TestValidate_SilentBuffer(t *testing.T) {
	t.Parallel()

	b, _ := FromChannels(audiotest.Silence(1, 1000))

	if diags := Validate(b); !hasDiag(diags, DiagSilentBuffer) {
		t.Errorf("Validate() = %v, want DiagSilentBuffer", diags)
	}
}

func TestValidate_AdvisoryOnly(t *testing.T) {
	t.Parallel()

	// A diagnosed buffer still works everywhere: diagnostics never gate.
	b, _ := FromChannels(audiotest.Silence(4, 2))

	diags := Validate(b)
	if len(diags) != 2 {
		t.Fatalf("Validate() returned %d diagnostics, want 2", len(diags))
	}

	if got := Downmix(b); got.Samples() != 2 {
		t.Errorf("Downmix() on diagnosed buffer failed: samples = %d, want 2", got.Samples())
	}
}
