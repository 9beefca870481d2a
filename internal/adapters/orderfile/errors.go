package orderfile

import "errors"

// Sentinel kinds for order-file errors.
var (
	ErrRead    = errors.New("order file read failed")
	ErrWrite   = errors.New("order file write failed")
	ErrVersion = errors.New("order file version unsupported")
)
