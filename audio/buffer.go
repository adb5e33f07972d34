// SPDX-License-Identifier: EPL-2.0

package audio

// Buffer is the canonical in-memory audio representation: channel-major
// float32 samples in [-1, 1], shape (channels, samples). Every channel
// holds the same number of samples. The zero value is not usable; build
// buffers with New, FromChannels, FromMono or FromInterleaved.
type Buffer struct {
	data [][]float32
}

// New allocates a zeroed buffer with the given shape.
func New(channels, samples int) (*Buffer, error) {
	if channels < 1 {
		return nil, ErrNoChannels
	}
	if samples < 0 {
		return nil, ErrNegativeLength
	}

	data := make([][]float32, channels)
	for c := range data {
		data[c] = make([]float32, samples)
	}

	return &Buffer{data: data}, nil
}

// FromChannels wraps channel-major sample data as a Buffer. The buffer
// takes ownership of data; callers must not mutate it afterwards.
func FromChannels(data [][]float32) (*Buffer, error) {
	if len(data) == 0 {
		return nil, ErrNoChannels
	}

	n := len(data[0])
	for _, ch := range data[1:] {
		if len(ch) != n {
			return nil, ErrRaggedChannels
		}
	}

	return &Buffer{data: data}, nil
}

// FromMono wraps a single-channel sample slice as a (1, N) buffer.
// It is the inverse of Mono and takes ownership of samples.
func FromMono(samples []float32) *Buffer {
	return &Buffer{data: [][]float32{samples}}
}

// FromInterleaved converts sample-major interleaved data, as produced by
// most codecs, into a channel-major buffer. len(data) must be a multiple
// of channels; the trailing partial frame, if any, is dropped.
func FromInterleaved(data []float32, channels int) (*Buffer, error) {
	if channels < 1 {
		return nil, ErrNoChannels
	}

	frames := len(data) / channels
	buf, err := New(channels, frames)
	if err != nil {
		return nil, err
	}

	for f := 0; f < frames; f++ {
		base := f * channels
		for c := 0; c < channels; c++ {
			buf.data[c][f] = data[base+c]
		}
	}

	return buf, nil
}

// Channels reports the channel count.
func (b *Buffer) Channels() int { return len(b.data) }

// Samples reports the per-channel sample count.
func (b *Buffer) Samples() int {
	if len(b.data) == 0 {
		return 0
	}
	return len(b.data[0])
}

// Channel returns the samples of channel c. The returned slice aliases
// the buffer's storage.
func (b *Buffer) Channel(c int) []float32 { return b.data[c] }

// IsMono reports whether the buffer has exactly one channel.
func (b *Buffer) IsMono() bool { return len(b.data) == 1 }

// Mono unwraps a (1, N) buffer to its bare sample slice for collaborators
// that expect single-channel data. The slice aliases the buffer's storage.
// Multichannel buffers fail with ErrNotMono; downmix first.
func (b *Buffer) Mono() ([]float32, error) {
	if !b.IsMono() {
		return nil, ErrNotMono
	}
	return b.data[0], nil
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	data := make([][]float32, len(b.data))
	for c, ch := range b.data {
		data[c] = make([]float32, len(ch))
		copy(data[c], ch)
	}
	return &Buffer{data: data}
}

// Slice copies the sample range [start, end) of every channel into a new
// buffer. The range must lie within [0, Samples()] with start <= end.
func (b *Buffer) Slice(start, end int) (*Buffer, error) {
	if start < 0 || end > b.Samples() || start > end {
		return nil, ErrInvalidInterval
	}

	data := make([][]float32, len(b.data))
	for c, ch := range b.data {
		data[c] = make([]float32, end-start)
		copy(data[c], ch[start:end])
	}

	return &Buffer{data: data}, nil
}

// Interleaved flattens the buffer to sample-major (frame-interleaved)
// order, the layout expected by codecs at the write boundary. The result
// is a fresh slice of Channels()*Samples() values.
func (b *Buffer) Interleaved() []float32 {
	channels := len(b.data)
	frames := b.Samples()
	out := make([]float32, channels*frames)

	for f := 0; f < frames; f++ {
		base := f * channels
		for c := 0; c < channels; c++ {
			out[base+c] = b.data[c][f]
		}
	}

	return out
}
