package fsexport

import "errors"

// Sentinel kinds for export-reader errors.
var (
	ErrParse = errors.New("competition export parse failed")
	ErrNoXML = errors.New("no xml files in export archive")
)
