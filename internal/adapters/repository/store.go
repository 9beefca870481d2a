// Package repository keeps the results of completed runs in memory so
// that the HTTP surface can serve them without re-reading the source
// files.
package repository

import (
	"context"
	"time"

	"isrevy/internal/domain/model"
	"isrevy/internal/domain/reconcile"
	"isrevy/internal/domain/schedule"
)

// Run is one completed pass over the source files.
type Run struct {
	ID            string
	CreatedAt     time.Time
	Title         string
	Participants  []*model.Participant
	Discrepancies []reconcile.Discrepancy
	Schedule      []schedule.Entry
	Officials     int
}

// Store holds completed runs.
type Store interface {
	// Save records a run. The run keeps its ID if set, otherwise one
	// is assigned and returned.
	Save(ctx context.Context, run Run) (string, error)

	// Latest returns the most recently saved run.
	Latest(ctx context.Context) (Run, error)

	// Get returns the run with the given ID.
	Get(ctx context.Context, id string) (Run, error)

	// Count returns the number of runs currently held.
	Count(ctx context.Context) int
}
