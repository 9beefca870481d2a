package service

import "errors"

var (
	// ErrNoSources is returned when a run is requested with neither a
	// registration sheet nor an export.
	ErrNoSources = errors.New("no source files given")

	// ErrSource wraps failures while reading a source file.
	ErrSource = errors.New("source read failed")

	// ErrRun wraps failures while recording a finished run.
	ErrRun = errors.New("run failed")
)
