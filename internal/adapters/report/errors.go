package report

import "errors"

// Sentinel kinds for report-writer errors.
var (
	ErrWrite  = errors.New("report write failed")
	ErrRender = errors.New("report render failed")
)
