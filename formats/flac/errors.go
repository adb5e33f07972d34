package flac

import "errors"

var (
	ErrUnsupportedFlacLayout = errors.New("unsupported FLAC layout")
	ErrTooManyChannels       = errors.New("FLAC supports at most eight channels")
)
