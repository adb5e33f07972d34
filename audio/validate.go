// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// DiagnosticCode identifies a class of advisory finding about a buffer.
type DiagnosticCode int

const (
	// DiagLikelyTransposed means the buffer has more channels than
	// samples. The canonical layout is (channels, samples); handing in a
	// transposed array is a common caller mistake.
	DiagLikelyTransposed DiagnosticCode = iota
	// DiagSilentBuffer means every sample is exactly zero.
	DiagSilentBuffer
)

// Diagnostic is a non-fatal advisory about a buffer. Diagnostics never
// alter control flow; callers decide whether to log, surface or ignore
// them.
type Diagnostic struct {
	Code    DiagnosticCode
	Message string
}

func (d Diagnostic) String() string { return d.Message }

// Validate inspects a buffer for suspicious but legal shapes and
// contents. The buffer type already guarantees rank-2 channel-major
// layout, so there is nothing fatal to find here; the result is a list
// of advisories, empty for an unremarkable buffer.
func Validate(b *Buffer) []Diagnostic {
	var diags []Diagnostic

	if b.Samples() < b.Channels() {
		diags = append(diags, Diagnostic{
			Code: DiagLikelyTransposed,
			Message: fmt.Sprintf(
				"buffer is (%d, %d); layout should be (channels, samples) and sample counts usually dwarf channel counts",
				b.Channels(), b.Samples()),
		})
	}

	if isZero(b) {
		diags = append(diags, Diagnostic{
			Code:    DiagSilentBuffer,
			Message: "buffer is all zeros",
		})
	}

	return diags
}

func isZero(b *Buffer) bool {
	for c := 0; c < b.Channels(); c++ {
		for _, s := range b.Channel(c) {
			if s != 0 {
				return false
			}
		}
	}
	return true
}
