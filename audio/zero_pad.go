// SPDX-License-Identifier: EPL-2.0

package audio

// ZeroPad extends the sample axis with trailing zeros up to the next
// multiple of requiredLen. Padding is appended at the end only, never
// centered. When the length is already an exact non-zero multiple the
// input buffer is returned unchanged, so padding twice with the same
// requiredLen is a no-op on the second call. An empty buffer pads up to
// requiredLen.
func ZeroPad(b *Buffer, requiredLen int) (*Buffer, error) {
	if requiredLen <= 0 {
		return nil, ErrInvalidPadLength
	}

	n := b.Samples()
	if n > 0 && n%requiredLen == 0 {
		return b, nil
	}

	target := (n/requiredLen + 1) * requiredLen
	out, err := New(b.Channels(), target)
	if err != nil {
		return nil, err
	}
	for c := 0; c < b.Channels(); c++ {
		copy(out.Channel(c), b.Channel(c))
	}

	return out, nil
}
