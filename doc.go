// SPDX-License-Identifier: EPL-2.0

// Package audioutils provides array-level audio utilities: silence-based
// segmentation, fixed-length overlapping windowing, downmixing,
// resampling, and file I/O for common formats.
//
// Audio lives in the audio.Buffer type: channel-major float32 samples in
// [-1.0, 1.0], shape (channels, samples). Everything operates on whole
// in-memory buffers; there is no streaming path.
//
// # Supported Formats
//
// Reading, chosen by file extension:
//   - WAV via formats/wav
//   - FLAC via formats/flac
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF via formats/aiff
//
// Writing: WAV and FLAC. MP3 and Vorbis have no pure-Go encoders.
//
// # Quick Start
//
// Load a file as mono at a fixed rate and cut it at silences:
//
//	buf, err := audioutils.LoadMono("interview.wav", 48000)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Keep anything within 45dB of the loudest frame; bridge pauses
//	// shorter than 0.3s.
//	pieces, err := audioutils.SplitOnSilence(buf, 48000, 45, 0.3)
//
//	for i, piece := range pieces {
//	    name := fmt.Sprintf("piece_%02d", i)
//	    if err := audioutils.WriteFile(piece, name, 48000, audioutils.FormatWAV, false); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// # Windowing
//
// Tile a buffer into equal-length, overlapping, zero-padded windows for
// block-based analysis:
//
//	windows, err := audio.Tile(buf, audio.WindowSpec{WindowLen: 48000, HopLen: 4800})
//	// every window has shape (buf.Channels(), 48000)
//
// # Lower-Level Pieces
//
// The subpackages expose the individual steps the conveniences above are
// built from:
//   - audio: Buffer, Validate, Downmix, ZeroPad, Tile, Extract, Resample
//   - segment: NonSilent detection, Coalesce interval merging
//   - formats/*: per-format decode/encode
//
// For example, segmentation with a custom merge policy:
//
//	mono, _ := buf.Mono()
//	intervals := segment.NonSilent(mono, 45)
//	merged, err := segment.Coalesce(intervals, func(end, start float64) bool {
//	    return start-end < 4800
//	})
//
// # Safety
//
// Core operations are pure: they never mutate their inputs and return
// fresh buffers, so independent buffers can be processed from multiple
// goroutines without locking.
package audioutils
