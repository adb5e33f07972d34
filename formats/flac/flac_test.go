// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/hugofloresgarcia/audio-utils/audio"
	"github.com/hugofloresgarcia/audio-utils/internal/audiotest"
)

func TestFlac_RoundTrip(t *testing.T) {
	t.Parallel()

	in, _ := audio.FromChannels(audiotest.Sine(2, 10000, 48000, 440))

	var buf bytes.Buffer
	if err := Encode(&buf, in, 48000); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	out, rate, err := (Decoder{}).Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if rate != 48000 {
		t.Errorf("Decode() rate = %d, want 48000", rate)
	}
	if out.Channels() != 2 || out.Samples() != 10000 {
		t.Fatalf("Decode() shape = (%d, %d), want (2, 10000)", out.Channels(), out.Samples())
	}

	const tol = 2.0 / 32768
	for c := 0; c < in.Channels(); c++ {
		for i := 0; i < in.Samples(); i++ {
			got, want := out.Channel(c)[i], in.Channel(c)[i]
			if math.Abs(float64(got-want)) > tol {
				t.Fatalf("sample (%d, %d) = %v, want %v", c, i, got, want)
			}
		}
	}
}

func TestFlac_RoundTripShort(t *testing.T) {
	t.Parallel()

	// shorter than one block: exercises the final partial frame
	in, _ := audio.FromChannels(audiotest.Constant(1, 100, 0.5))

	var buf bytes.Buffer
	if err := Encode(&buf, in, 16000); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	out, rate, err := (Decoder{}).Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if rate != 16000 || out.Samples() != 100 {
		t.Errorf("Decode() = %d samples at %d Hz, want 100 at 16000", out.Samples(), rate)
	}
}

func TestFlac_DecodeGarbage(t *testing.T) {
	t.Parallel()

	if _, _, err := (Decoder{}).Decode(bytes.NewReader([]byte("not a flac stream"))); err == nil {
		t.Error("Decode(garbage) expected an error")
	}
}

func TestFlac_EncodeTooManyChannels(t *testing.T) {
	t.Parallel()

	b, _ := audio.New(9, 10)

	var buf bytes.Buffer
	if err := Encode(&buf, b, 48000); !errors.Is(err, ErrTooManyChannels) {
		t.Errorf("Encode(9 channels) error = %v, want ErrTooManyChannels", err)
	}
}
