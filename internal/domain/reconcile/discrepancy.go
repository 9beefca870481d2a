package reconcile

import "isrevy/internal/domain/model"

// Kind names a cross-source discrepancy.
type Kind string

// Discrepancy kinds. These are always-computed output facts, not errors.
const (
	// KindNotInExport marks a registered skater absent from the export.
	KindNotInExport Kind = "registered_not_in_export"
	// KindNotRegistered marks an export entry with no registration row.
	KindNotRegistered Kind = "export_not_registered"
	// KindMissingMusic marks a skating participant with no assigned asset.
	KindMissingMusic Kind = "missing_music"
)

// Discrepancy pairs a participant with the condition observed on it.
type Discrepancy struct {
	Kind        Kind
	Participant *model.Participant
}

// Discrepancies enumerates every soft condition on the canonical table, in
// table order. KindMissingMusic only appears once music allocation has run;
// before that every skating participant trivially lacks an asset, which is
// why callers compute discrepancies after the allocation phase.
func Discrepancies(participants []*model.Participant) []Discrepancy {
	var out []Discrepancy
	for _, p := range participants {
		switch {
		case p.Skating() && !p.MatchedInExport:
			out = append(out, Discrepancy{Kind: KindNotInExport, Participant: p})
		case !p.FromRegistration:
			out = append(out, Discrepancy{Kind: KindNotRegistered, Participant: p})
		}
		if p.Skating() && p.Asset == nil {
			out = append(out, Discrepancy{Kind: KindMissingMusic, Participant: p})
		}
	}
	return out
}
