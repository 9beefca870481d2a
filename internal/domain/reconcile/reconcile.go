// Package reconcile merges the registration sheet and the competition export
// into one canonical participant table.
//
// The two sources share no identifier; the join key is the normalized name
// pair (match.Identity). Reconciliation never fails on data content: blank
// names are carried through as empty strings and every cross-source mismatch
// becomes a reportable fact instead of an error.
package reconcile

import (
	"isrevy/internal/domain/match"
	"isrevy/internal/domain/model"
)

// Reconcile builds the canonical participant table.
//
// Output order: registration rows first in file order, then export-only
// records appended in export order. The table is injective on identity:
// duplicate registration identities keep the first row, duplicate export
// identities keep the last (the export is assumed internally consistent, so
// last-write-wins is a defensive default).
func Reconcile(regRows []model.RegistrationRow, exportRows []model.ExportRow) []*model.Participant {
	exportIndex := make(map[match.Identity]model.ExportRow, len(exportRows))
	exportOrder := make([]match.Identity, 0, len(exportRows))
	for _, row := range exportRows {
		id := row.Identity()
		if _, dup := exportIndex[id]; !dup {
			exportOrder = append(exportOrder, id)
		}
		exportIndex[id] = row
	}

	participants := make([]*model.Participant, 0, len(regRows)+len(exportRows))
	seen := make(map[match.Identity]struct{}, len(regRows))

	for _, reg := range regRows {
		id := match.IdentityOf(reg.Given, reg.Family)
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		p := &model.Participant{
			GivenRegistered:  reg.Given,
			FamilyRegistered: reg.Family,
			Gender:           reg.Gender,
			Club:             reg.Club,
			StatusText:       reg.StatusText,
			Status:           model.ParseStatus(reg.StatusText),
			FromRegistration: true,
		}
		if exp, ok := exportIndex[id]; ok {
			copyExportFields(p, exp)
			p.MatchedInExport = true
		}
		participants = append(participants, p)
	}

	for _, id := range exportOrder {
		if _, ok := seen[id]; ok {
			continue
		}
		exp := exportIndex[id]
		p := &model.Participant{
			Status:          model.StatusNotRegistered,
			MatchedInExport: true,
		}
		copyExportFields(p, exp)
		participants = append(participants, p)
	}

	return participants
}

func copyExportFields(p *model.Participant, exp model.ExportRow) {
	p.GivenExported = exp.Given
	p.FamilyExported = exp.Family
	p.PrintName = exp.PrintName
	p.Organisation = exp.Organisation
	p.ParticipantCode = exp.ParticipantCode
	p.Event = exp.Event
	p.EntryOrder = exp.EntryOrder
	p.Music1 = exp.Music1
	p.Music2 = exp.Music2
	p.Club1 = exp.Club1
	p.Club2 = exp.Club2
	p.ElementsFree = exp.ElementsFree
	p.ElementsShort = exp.ElementsShort
	if p.Gender == "" {
		p.Gender = exp.Gender
	}
}
