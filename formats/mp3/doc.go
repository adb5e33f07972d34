// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 audio into channel-major float32 buffers.
//
//	f, _ := os.Open("podcast.mp3")
//	buf, rate, err := mp3.Decoder{}.Decode(f)
//
// The underlying go-mp3 decoder always produces stereo 16-bit PCM, so
// decoded buffers have two channels; downmix afterwards if you need
// mono. Encoding is not supported.
package mp3
