// Package normalize provides the text normalization used for gazetteer
// matching and entity canonicalization. The same folding must be applied
// on both sides of a comparison; a key computed here is stable across
// runs and platforms.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks removes combining marks after NFD decomposition, then
// recomposes. "Curaçao" folds to "Curacao".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold returns the match-normalized form of s: NFKC-normalized,
// lower-cased, with runs of whitespace collapsed to single spaces.
// Diacritics are preserved; use Key for the dedup key.
func Fold(s string) string {
	s = norm.NFKC.String(s)
	s = strings.ToLower(s)
	return collapseSpace(s)
}

// Key returns the canonical dedup key of s: Fold plus diacritics
// stripped. Two surface forms with the same Key resolve to the same
// canonical entity (per entity type).
func Key(s string) string {
	folded, _, err := transform.String(stripMarks, Fold(s))
	if err != nil {
		// Remove can't fail on valid UTF-8; fall back to the folded form.
		return Fold(s)
	}
	return folded
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
