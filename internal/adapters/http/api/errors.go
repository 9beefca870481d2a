package api

import (
	"errors"

	"isrevy/internal/adapters/repository"
)

// ErrServe is returned when the HTTP listener fails.
var ErrServe = errors.New("http serve failed")

func isNoRuns(err error) bool {
	return errors.Is(err, repository.ErrNoRuns)
}

func isRunNotFound(err error) bool {
	return errors.Is(err, repository.ErrRunNotFound)
}
