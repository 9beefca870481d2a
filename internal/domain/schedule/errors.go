package schedule

import "errors"

// Sentinel kinds for schedule configuration errors.
var (
	ErrBadClock = errors.New("invalid clock time")
	ErrBadSpan  = errors.New("invalid duration")
)
