package repository

import "errors"

var (
	// ErrNoRuns is returned when the store holds no runs yet.
	ErrNoRuns = errors.New("no runs recorded")

	// ErrRunNotFound is returned when no run matches the requested ID.
	ErrRunNotFound = errors.New("run not found")

	// ErrDuplicateRun is returned when a run ID is saved twice.
	ErrDuplicateRun = errors.New("duplicate run id")
)
