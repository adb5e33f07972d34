package segment

import "errors"

var (
	ErrNoIntervals = errors.New("interval list is empty")
)
