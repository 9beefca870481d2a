// Package order applies a user-edited start order to the current
// participant set.
//
// The saved document carries stable participant keys, not indices, so it
// survives the participant set changing between runs: skaters registering
// late are appended, withdrawn skaters disappear without a trace.
package order

import "isrevy/internal/domain/model"

// FormatVersion is the saved-order document version this code writes and
// understands.
const FormatVersion = 1

// Keys extracts the stable key sequence for the given start list.
func Keys(participants []*model.Participant) []string {
	keys := make([]string, len(participants))
	for i, p := range participants {
		keys[i] = p.Key()
	}
	return keys
}

// Apply reorders current so that participants whose keys appear in saved
// come first, in saved order. Current participants unknown to saved keep
// their pre-existing relative order at the end; saved keys with no current
// participant are dropped silently. Duplicate keys take the first matching
// participant.
func Apply(saved []string, current []*model.Participant) []*model.Participant {
	byKey := make(map[string]int, len(current))
	for i, p := range current {
		key := p.Key()
		if _, dup := byKey[key]; !dup {
			byKey[key] = i
		}
	}

	out := make([]*model.Participant, 0, len(current))
	placed := make(map[int]struct{}, len(current))
	for _, key := range saved {
		i, ok := byKey[key]
		if !ok {
			continue
		}
		if _, done := placed[i]; done {
			continue
		}
		placed[i] = struct{}{}
		out = append(out, current[i])
	}
	for i, p := range current {
		if _, done := placed[i]; !done {
			out = append(out, p)
		}
	}
	return out
}
