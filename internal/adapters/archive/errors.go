package archive

import "errors"

// Sentinel kinds for archive errors.
var (
	ErrScan  = errors.New("music archive scan failed")
	ErrProbe = errors.New("duration probe failed")
)
