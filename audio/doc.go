// SPDX-License-Identifier: EPL-2.0

// Package audio provides the core buffer type and the array-level
// processing primitives built on it.
//
// This package contains the building blocks the rest of the module is
// assembled from:
//   - Buffer, the canonical channel-major sample container
//   - Validate for advisory shape/content diagnostics
//   - Downmix for channel reduction
//   - Tile and ZeroPad for fixed-length overlapping windowing
//   - Extract for time-interval slicing
//   - Resample for sample rate conversion
//   - Decoder interface and Registry for format plumbing
//
// # Buffer Convention
//
// Audio lives in a rank-2, channel-major layout: shape (channels,
// samples), float32 amplitudes in [-1.0, 1.0]. There is no implicit
// shape coercion anywhere in this package; single-channel data crosses
// the boundary explicitly:
//
//	buf := audio.FromMono(samples)   // (N,)  -> (1, N)
//	mono, err := buf.Mono()          // (1, N) -> (N,), ErrNotMono otherwise
//
// Interleaved (sample-major) data, the layout codecs speak, converts at
// the edges only:
//
//	buf, err := audio.FromInterleaved(pcm, channels)
//	pcm := buf.Interleaved()
//
// # Diagnostics
//
// Validate never fails; it returns advisory findings for shapes that are
// legal but usually wrong:
//
//	for _, d := range audio.Validate(buf) {
//	    log.Println(d)
//	}
//
// A buffer with more channels than samples is probably transposed, and
// an all-zero buffer is probably a bug upstream. Neither stops any
// operation here from running.
//
// # Windowing
//
// Tile cuts a buffer into equal-length, possibly overlapping windows,
// zero-padding the tail so every window has the same shape:
//
//	windows, err := audio.Tile(buf, audio.WindowSpec{WindowLen: 48000, HopLen: 4800})
//	// every windows[i] has shape (buf.Channels(), 48000)
//
// Every window is an independent copy. The tiling always covers the full
// input; the final windows carry trailing zeros instead of real samples.
//
// # Ownership
//
// Callers own the buffers they pass in. Operations here either return a
// fresh buffer (Downmix, Tile, Extract, Resample, Slice) or document the
// aliasing (Channel, Mono). Nothing mutates an input in place, so
// independent buffers can be processed concurrently without locking.
//
// # Errors
//
// Invalid arguments fail fast with sentinel errors (ErrInvalidWindowSpec,
// ErrNotMono, ...) before any work happens. Algorithmic edge cases, such
// as a window that is entirely padding, are valid results, not errors.
package audio
