// SPDX-License-Identifier: EPL-2.0

// Package flac decodes and encodes FLAC audio.
//
// Decoding reads any bit depth into a channel-major float32 buffer:
//
//	f, _ := os.Open("take1.flac")
//	buf, rate, err := flac.Decoder{}.Decode(f)
//
// Encoding writes 16-bit streams with verbatim subframes:
//
//	f, _ := os.Create("out.flac")
//	err := flac.Encode(f, buf, 48000)
//
// Verbatim subframes skip prediction entirely, trading file size for a
// simple, dependable writer. The result is still a spec-conformant
// stream any FLAC decoder accepts.
package flac
