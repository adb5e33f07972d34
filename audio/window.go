// SPDX-License-Identifier: EPL-2.0

package audio

// WindowSpec describes a fixed-length overlapping tiling: every window
// is WindowLen samples long and consecutive windows start HopLen samples
// apart. Both must be positive. WindowLen >= HopLen gives overlapping
// windows, the typical case, but gaps (HopLen > WindowLen) are allowed.
type WindowSpec struct {
	WindowLen int
	HopLen    int
}

// Tile splits a buffer into equal-length overlapping windows.
//
// The buffer is first notionally padded to the next multiple of
// WindowLen (the padded extent); windows start at every multiple of
// HopLen strictly below that extent. Each window copies the real samples
// it covers and is zero-padded at the end to exactly WindowLen, so every
// window has shape (channels, WindowLen). No trailing sample is ever
// dropped, and a window whose start lies at or past the real end comes
// out as pure padding, which is valid.
//
// Windows are always fresh copies, never views: they overlap, and
// callers must be able to mutate one without corrupting its neighbors.
func Tile(b *Buffer, spec WindowSpec) ([]*Buffer, error) {
	if spec.WindowLen <= 0 || spec.HopLen <= 0 {
		return nil, ErrInvalidWindowSpec
	}

	n := b.Samples()
	if n == 0 {
		return nil, ErrEmptyBuffer
	}

	nChunks := (n + spec.WindowLen - 1) / spec.WindowLen
	extent := nChunks * spec.WindowLen

	windows := make([]*Buffer, 0, (extent+spec.HopLen-1)/spec.HopLen)
	for start := 0; start < extent; start += spec.HopLen {
		win, err := New(b.Channels(), spec.WindowLen)
		if err != nil {
			return nil, err
		}

		end := min(start+spec.WindowLen, n)
		if start < end {
			for c := 0; c < b.Channels(); c++ {
				copy(win.Channel(c), b.Channel(c)[start:end])
			}
		}

		windows = append(windows, win)
	}

	return windows, nil
}
