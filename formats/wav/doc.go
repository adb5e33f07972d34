// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes WAV (RIFF) audio.
//
// Decoding reads any PCM bit depth go-audio understands into a
// channel-major float32 buffer:
//
//	f, _ := os.Open("speech.wav")
//	buf, rate, err := wav.Decoder{}.Decode(f)
//
// Encoding writes 16-bit PCM:
//
//	f, _ := os.Create("out.wav")
//	err := wav.Encode(f, buf, 48000)
//
// Interleaving between the buffer's (channels, samples) layout and the
// sample-major order WAV stores happens inside this package only.
package wav
