package regsheet

import "errors"

// Sentinel kinds for registration-sheet errors.
var (
	ErrParse          = errors.New("registration sheet parse failed")
	ErrMissingColumns = errors.New("registration sheet misses required columns")
)
