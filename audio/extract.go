package audio

// Extract copies the stretch of audio between startSec and endSec
// (seconds) into a new buffer. Times convert to sample indices by
// multiplying with sampleRate and truncating toward zero; the resulting
// range is clamped to the buffer, so an interval that overshoots the end
// yields the available tail rather than an error. startSec > endSec
// fails with ErrInvalidInterval.
func Extract(b *Buffer, startSec, endSec float64, sampleRate int) (*Buffer, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if startSec > endSec {
		return nil, ErrInvalidInterval
	}

	start := int(startSec * float64(sampleRate))
	end := int(endSec * float64(sampleRate))

	n := b.Samples()
	start = max(0, min(start, n))
	end = max(start, min(end, n))

	return b.Slice(start, end)
}
