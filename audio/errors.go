// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrNoChannels        = errors.New("buffer needs at least one channel")
	ErrNegativeLength    = errors.New("sample count must not be negative")
	ErrRaggedChannels    = errors.New("channels must all have the same length")
	ErrNotMono           = errors.New("buffer is not mono")
	ErrEmptyBuffer       = errors.New("buffer holds no samples")
	ErrInvalidWindowSpec = errors.New("window and hop length must be positive")
	ErrInvalidPadLength  = errors.New("pad length must be positive")
	ErrInvalidInterval   = errors.New("interval start must not exceed end")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
)
