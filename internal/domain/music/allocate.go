// Package music assigns archive files to participants.
//
// The assignment is deliberately greedy and order-dependent rather than an
// optimal bipartite matching: earlier participants in canonical order get
// first claim on ambiguous filenames, and strong matches are exhausted
// globally before any family-only fallback runs. Changing this would change
// which skater gets which file whenever siblings share a family name, so the
// two-pass, pool-shrinking behavior is load-bearing for report stability.
package music

import (
	"isrevy/internal/domain/match"
	"isrevy/internal/domain/model"
)

// Allocate assigns at most one asset to each participant and each asset to
// at most one participant, mutating the participants' Asset field in place.
//
// Pass 1 tries a strong match (family tokens plus first given token) for
// every participant that has given-name tokens. Pass 2 tries the family-only
// fallback for whoever is still empty-handed. Both passes walk participants
// in canonical order and claim from a shared shrinking pool. Participants
// without family-name tokens never match; that is policy, not a defect.
func Allocate(participants []*model.Participant, assets []*model.MusicAsset) {
	claimed := make(map[int]bool, len(assets))

	names := make([]match.Name, len(participants))
	for i, p := range participants {
		names[i] = p.Name()
	}

	for i, p := range participants {
		if p.Asset != nil || len(names[i].Given) == 0 {
			continue
		}
		for j, a := range assets {
			if claimed[j] {
				continue
			}
			if match.Strong(names[i], a.Filename) {
				p.Asset = a
				claimed[j] = true
				break
			}
		}
	}

	for i, p := range participants {
		if p.Asset != nil {
			continue
		}
		for j, a := range assets {
			if claimed[j] {
				continue
			}
			if match.FamilyOnly(names[i], a.Filename) {
				p.Asset = a
				claimed[j] = true
				break
			}
		}
	}
}
