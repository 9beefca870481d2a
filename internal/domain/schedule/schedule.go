// Package schedule expands an ordered start list into a wall-clock timeline.
//
// The build is a pure, deterministic function of its inputs: identical
// participants and config always yield an identical timeline, which is what
// makes re-running after a manual reorder safe.
package schedule

import (
	"fmt"
	"time"

	"isrevy/internal/domain/model"
)

// EntryKind discriminates timeline rows.
type EntryKind int

const (
	// KindGroup is a warm-up group marker.
	KindGroup EntryKind = iota
	// KindSkater is a numbered participant slot.
	KindSkater
	// KindPause is an inserted pause marker.
	KindPause
)

// String returns the canonical kind label.
func (k EntryKind) String() string {
	switch k {
	case KindSkater:
		return "skater"
	case KindPause:
		return "pause"
	default:
		return "group"
	}
}

// Entry is one row of the final timeline.
type Entry struct {
	Kind        EntryKind
	Label       string // group and pause markers only
	Seq         int    // global 1-based sequence, skater slots only
	Participant *model.Participant
	Start       time.Time
	End         time.Time
	// Approximate marks times that drift from plan during the event. Only
	// the first group's time is exact by construction.
	Approximate bool
}

// StartClock renders the entry's start for display, prefixed "ca." when the
// time is approximate.
func (e Entry) StartClock() string {
	s := e.Start.Format("15:04:05")
	if e.Approximate {
		return "ca. " + s
	}
	return s
}

// Config bundles every timeline tunable. Zero values fall back to the
// documented clamps; a pause is active only when both PauseAfter and
// PauseLength are positive.
type Config struct {
	GroupSize   int           // skaters per warm-up group, clamped to >= 1
	Interval    time.Duration // per-skater slot length, clamped to >= 1s
	Warmup      time.Duration // warm-up length per group
	PauseAfter  int           // global sequence number the pause follows
	PauseLength time.Duration
	PauseLabel  string
	Start       time.Time
}

// clamped applies the operator-facing robustness rules: non-positive group
// size and interval are treated as 1, never as an error.
func (c Config) clamped() Config {
	if c.GroupSize < 1 {
		c.GroupSize = 1
	}
	if c.Interval < time.Second {
		c.Interval = time.Second
	}
	if c.Warmup < 0 {
		c.Warmup = 0
	}
	if c.PauseLabel == "" {
		c.PauseLabel = "Pause"
	}
	return c
}

// Build expands participants (already ordered and filtered by the caller)
// into the timeline. Start times are copied onto the participant records
// only after the sweep completes, so the sequence being iterated is never
// mutated mid-build.
func Build(participants []*model.Participant, cfg Config) []Entry {
	cfg = cfg.clamped()
	pauseActive := cfg.PauseAfter > 0 && cfg.PauseLength > 0

	groups := (len(participants) + cfg.GroupSize - 1) / cfg.GroupSize
	entries := make([]Entry, 0, groups+len(participants)+1)

	t := cfg.Start
	seq := 0
	for g := 0; g < groups; g++ {
		entries = append(entries, Entry{
			Kind:        KindGroup,
			Label:       fmt.Sprintf("Oppvarmingsgruppe %d", g+1),
			Start:       t,
			End:         t.Add(cfg.Warmup),
			Approximate: g > 0,
		})
		t = t.Add(cfg.Warmup)

		lo := g * cfg.GroupSize
		hi := lo + cfg.GroupSize
		if hi > len(participants) {
			hi = len(participants)
		}
		for _, p := range participants[lo:hi] {
			seq++
			entries = append(entries, Entry{
				Kind:        KindSkater,
				Seq:         seq,
				Participant: p,
				Start:       t,
				End:         t.Add(cfg.Interval),
			})
			t = t.Add(cfg.Interval)

			if pauseActive && seq == cfg.PauseAfter {
				entries = append(entries, Entry{
					Kind:  KindPause,
					Label: cfg.PauseLabel,
					Start: t,
					End:   t.Add(cfg.PauseLength),
				})
				t = t.Add(cfg.PauseLength)
			}
		}
	}

	// Attach start times after the sweep so the build itself never reads a
	// field it is writing.
	for _, e := range entries {
		if e.Kind == KindSkater {
			e.Participant.StartAt = e.Start
		}
	}

	return entries
}
