// Package report renders the canonical participant table and the timeline
// for humans: an HTML start list, a CSV participant table and an M3U
// playlist. Writers consume core output read-only and never feed anything
// back into the pipeline.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"isrevy/internal/domain/model"
)

// csvHeaders mirrors the column set of the competition system's own
// spreadsheet export, extended with the reconciliation columns.
var csvHeaders = []string{
	"PrintName", "GivenName", "FamilyName", "Gender", "Organisation",
	"ParticipantCode", "Event", "EntryOrder",
	"Music1", "Music2", "Club1", "Club2",
	"ElementsFree", "ElementsShort",
	"Status", "InExport", "MusicFile", "MusicDuration",
}

// WriteParticipantsCSV writes the participant table as CSV.
func WriteParticipantsCSV(w io.Writer, participants []*model.Participant) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeaders); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	for _, p := range participants {
		rec := []string{
			p.DisplayName(), p.Given(), p.Family(), p.Gender, organisation(p),
			p.ParticipantCode, p.Event, p.EntryOrder,
			p.Music1, p.Music2, p.Club1, p.Club2,
			strings.Join(p.ElementsFree, ", "), strings.Join(p.ElementsShort, ", "),
			p.StatusText, yesNo(p.MatchedInExport),
			assetName(p), assetDuration(p),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("%w: %w", ErrWrite, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

func organisation(p *model.Participant) string {
	if p.Organisation != "" {
		return p.Organisation
	}
	return p.Club
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func assetName(p *model.Participant) string {
	if p.Asset == nil {
		return ""
	}
	return p.Asset.Filename
}

// assetDuration renders the assigned file's length. An assigned file with
// an unmeasurable length reads "unknown", never "0:00".
func assetDuration(p *model.Participant) string {
	switch {
	case p.Asset == nil:
		return ""
	case !p.Asset.DurationKnown:
		return "unknown"
	default:
		total := int(p.Asset.Duration.Seconds())
		return fmt.Sprintf("%d:%02d", total/60, total%60)
	}
}
