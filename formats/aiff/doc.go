// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF audio into channel-major float32 buffers.
//
//	f, _ := os.Open("session.aiff")
//	buf, rate, err := aiff.Decoder{}.Decode(f)
//
// Any PCM bit depth go-audio understands is accepted. Encoding is not
// supported.
package aiff
