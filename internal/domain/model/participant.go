// Package model contains domain records passed between pipeline phases.
package model

import (
	"strings"
	"time"

	"isrevy/internal/domain/match"
	"isrevy/internal/domain/normalize"
)

// Status classifies a registration row's free-text status field.
type Status int

const (
	// StatusNotRegistered is the default for unrecognized status text.
	StatusNotRegistered Status = iota
	// StatusRegistered means the skater is expected on the ice.
	StatusRegistered
	// StatusCancelled overrides every other signal.
	StatusCancelled
)

// String returns the canonical status label.
func (s Status) String() string {
	switch s {
	case StatusRegistered:
		return "registered"
	case StatusCancelled:
		return "cancelled"
	default:
		return "not_registered"
	}
}

// ParseStatus maps the registration sheet's free-text status dialects onto a
// typed status. Checks are case-insensitive substring tests; cancellation is
// checked first and wins.
func ParseStatus(text string) Status {
	t := strings.ToLower(text)
	switch {
	case strings.Contains(t, "avmeld"):
		return StatusCancelled
	case strings.Contains(t, "ikke sjekket inn"):
		return StatusRegistered
	case strings.Contains(t, "påmeld"),
		strings.Contains(t, "registr"),
		strings.Contains(t, "bekreftet"):
		return StatusRegistered
	default:
		return StatusNotRegistered
	}
}

// RegistrationRow is one row from the registration sheet.
type RegistrationRow struct {
	Given      string
	Family     string
	Gender     string
	Club       string
	StatusText string
}

// ExportRow is one registered event from the competition-management export.
// A participant appearing in several events yields several rows.
type ExportRow struct {
	Given           string
	Family          string
	PrintName       string
	Gender          string
	Organisation    string
	ParticipantCode string // source-assigned, may be empty, never a join key
	Event           string
	EntryOrder      string
	Music1          string
	Music2          string
	Club1           string
	Club2           string
	ElementsFree    []string
	ElementsShort   []string
}

// Identity returns the reconciliation join key for the row.
func (r ExportRow) Identity() match.Identity {
	return match.IdentityOf(r.Given, r.Family)
}

// MusicAsset is one file from the music archive. Assets are immutable facts;
// allocation records who claims them, it never mutates them. An unknown
// duration is a valid state distinct from "no asset".
type MusicAsset struct {
	Filename      string
	Duration      time.Duration
	DurationKnown bool
}

// Participant is the merged, authoritative record produced by
// reconciliation. Name spellings are kept per source because the sheet and
// the export routinely disagree on diacritics and ordering.
//
// The record is mutated in place by later phases under the single-writer
// discipline: music allocation attaches Asset, the timeline build attaches
// StartAt after its sweep completes.
type Participant struct {
	GivenRegistered  string
	FamilyRegistered string
	GivenExported    string
	FamilyExported   string
	PrintName        string
	Gender           string
	Club             string // organisation per the registration sheet
	Organisation     string // organisation per the export
	StatusText       string
	Status           Status

	ParticipantCode string
	Event           string
	EntryOrder      string
	Music1          string
	Music2          string
	Club1           string
	Club2           string
	ElementsFree    []string
	ElementsShort   []string

	FromRegistration bool
	MatchedInExport  bool

	Asset   *MusicAsset
	StartAt time.Time
}

// Given returns the preferred given-name spelling, registration first.
func (p *Participant) Given() string {
	if p.FromRegistration {
		return p.GivenRegistered
	}
	return p.GivenExported
}

// Family returns the preferred family-name spelling, registration first.
func (p *Participant) Family() string {
	if p.FromRegistration {
		return p.FamilyRegistered
	}
	return p.FamilyExported
}

// Identity returns the participant's normalized join key.
func (p *Participant) Identity() match.Identity {
	return match.IdentityOf(p.Given(), p.Family())
}

// Name returns the participant's token sets for fuzzy filename matching.
func (p *Participant) Name() match.Name {
	return match.NameOf(p.Given(), p.Family())
}

// DisplayName is the name used on start lists: the export's print name when
// present, otherwise "Given Family".
func (p *Participant) DisplayName() string {
	if p.PrintName != "" {
		return p.PrintName
	}
	return strings.TrimSpace(p.Given() + " " + p.Family())
}

// Skating reports whether the participant belongs on the start list:
// registered and not cancelled.
func (p *Participant) Skating() bool {
	return p.Status == StatusRegistered
}

// Key is the stable key used by the saved-order document: the participant
// code when non-empty, otherwise a composite of the normalized name pair and
// event code.
func (p *Participant) Key() string {
	if p.ParticipantCode != "" {
		return p.ParticipantCode
	}
	id := p.Identity()
	return id.Given + "|" + id.Family + "|" + normalize.Normalize(p.Event)
}
