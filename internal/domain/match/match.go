// Package match decides whether two name representations refer to the same
// person.
//
// Two distinct questions live here and they must not be conflated:
//
//   - Identity equality, used for reconciliation joins. This is exact
//     comparison of normalized name pairs; reconciliation must never merge
//     two distinct people on a fuzzy signal.
//   - Fuzzy containment, used to pair a person with a free-text filename.
//     Filenames come as "Family_Given.mp3" or "Given Family - Song.mp3" with
//     inconsistent separators, so this is substring containment over
//     normalized tokens, tiered into a strong and a family-only variant.
package match

import (
	"strings"

	"isrevy/internal/domain/normalize"
)

// Identity is the join key for reconciliation: the normalized name pair.
// It is a comparable value type; never key maps by an ad hoc concatenated
// string.
type Identity struct {
	Given  string
	Family string
}

// IdentityOf builds the Identity for a raw (given, family) name pair.
func IdentityOf(given, family string) Identity {
	return Identity{
		Given:  normalize.Normalize(given),
		Family: normalize.Normalize(family),
	}
}

// Name holds a person's name tokens, precomputed once so that repeated
// matching against a pool of candidates does not re-normalize.
type Name struct {
	Given  []string
	Family []string
}

// NameOf tokenizes a raw (given, family) name pair.
func NameOf(given, family string) Name {
	return Name{
		Given:  normalize.Tokenize(given),
		Family: normalize.Tokenize(family),
	}
}

// containsAll reports whether every token appears as a substring of text.
func containsAll(text string, tokens []string) bool {
	for _, tok := range tokens {
		if !strings.Contains(text, tok) {
			return false
		}
	}
	return true
}

// Strong reports a strong match of n against candidate: every family token
// appears in the normalized candidate, and, when the person has given-name
// tokens, the first given token appears too. A person with no family tokens
// never matches anything.
func Strong(n Name, candidate string) bool {
	if len(n.Family) == 0 {
		return false
	}
	text := normalize.Normalize(candidate)
	if !containsAll(text, n.Family) {
		return false
	}
	if len(n.Given) > 0 && !strings.Contains(text, n.Given[0]) {
		return false
	}
	return true
}

// FamilyOnly reports the weaker fallback match: every family token appears
// in the normalized candidate, or, for multi-token family names where no
// candidate carries all of them, at least the first family token appears.
// A lone given name is never enough; common first names collide.
func FamilyOnly(n Name, candidate string) bool {
	if len(n.Family) == 0 {
		return false
	}
	text := normalize.Normalize(candidate)
	if containsAll(text, n.Family) {
		return true
	}
	if len(n.Family) > 1 {
		return strings.Contains(text, n.Family[0])
	}
	return false
}
