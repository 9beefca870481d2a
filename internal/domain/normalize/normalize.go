// Package normalize folds free-text names into a canonical comparable form.
//
// Every comparison in the matching and reconciliation layers goes through
// Normalize first; the folding table is deliberately small and fixed so that
// two runs over the same inputs always agree.
package normalize

import "strings"

// foldTable maps the Latin diacritics that occur in the source material to
// their ASCII equivalents. Anything not listed here and outside [a-z0-9]
// becomes a separator.
var foldTable = map[rune]string{
	'å': "a",
	'æ': "ae",
	'ø': "o",
	'ö': "o",
	'ä': "a",
	'é': "e",
}

// Normalize returns the canonical comparable form of text: trimmed,
// lower-cased, diacritics folded, and every run of characters outside
// [a-z0-9] collapsed to a single space. It is total and idempotent.
func Normalize(text string) string {
	lower := strings.ToLower(strings.TrimSpace(text))

	var b strings.Builder
	b.Grow(len(lower))
	space := false
	for _, r := range lower {
		if folded, ok := foldTable[r]; ok {
			b.WriteString(folded)
			space = false
			continue
		}
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			space = false
			continue
		}
		// Separator run: emit at most one space.
		if !space {
			b.WriteByte(' ')
			space = true
		}
	}
	return strings.TrimSpace(b.String())
}

// Tokenize splits the normalized form of text on whitespace. Empty or
// all-separator input yields no tokens.
func Tokenize(text string) []string {
	return strings.Fields(Normalize(text))
}
