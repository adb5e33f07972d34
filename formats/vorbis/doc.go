// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio into channel-major float32
// buffers.
//
//	f, _ := os.Open("music.ogg")
//	buf, rate, err := vorbis.Decoder{}.Decode(f)
//
// Vorbis decodes natively to floats, so samples pass through without
// PCM scaling. Encoding is not supported; there is no pure-Go Vorbis
// encoder.
package vorbis
