package audio

// Downmix reduces a buffer to mono by taking the arithmetic mean across
// channels at every sample position. The result is a fresh (1, N)
// buffer; the input is left untouched. A mono input is simply copied.
// NaN samples propagate into the mix, as means do.
func Downmix(b *Buffer) *Buffer {
	if b.IsMono() {
		return b.Clone()
	}

	channels := b.Channels()
	frames := b.Samples()
	out := make([]float32, frames)
	inv := float32(1.0) / float32(channels)

	switch channels {
	case 2: // stereo fast path
		left, right := b.Channel(0), b.Channel(1)
		for i := 0; i < frames; i++ {
			out[i] = (left[i] + right[i]) * 0.5
		}
	default:
		for i := 0; i < frames; i++ {
			sum := float32(0)
			for c := 0; c < channels; c++ {
				sum += b.Channel(c)[i]
			}
			out[i] = sum * inv
		}
	}

	return FromMono(out)
}
