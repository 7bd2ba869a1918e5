// Package extract derives candidate named entities from object text.
//
// Matching runs against a fixed gazetteer and a small pattern set; there
// is no external model. Unsupported or binary content yields an empty
// candidate list, never an error.
package extract

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"iou-platform.io/iou/internal/pkg/normalize"
)

// moneyThreshold: amounts at or below this are noise (page numbers,
// article references) and are not emitted.
const moneyThreshold = 100.0

var (
	reDateNumeric = regexp.MustCompile(`\b\d{1,2}-\d{1,2}-\d{4}\b`)
	reDateWritten = regexp.MustCompile(`\b\d{1,2} (?:januari|februari|maart|april|mei|juni|juli|augustus|september|oktober|november|december|january|february|march|may|june|july|august|october) \d{4}\b`)
	reMoney       = regexp.MustCompile(`(?:€|eur)\s*([0-9][0-9.,]*)`)
	reArticle     = regexp.MustCompile(`\b(?:artikel|article) \d+[a-z]?(?: lid \d+)?\b`)
)

// Extractor finds entity candidates in free text.
type Extractor struct {
	gazetteer []gazEntry
}

// New creates an Extractor with the built-in gazetteer.
func New() *Extractor {
	return &Extractor{gazetteer: buildGazetteer()}
}

// Extract returns the candidate entities found in content.
// The result is ordered by position and free of overlaps: overlapping
// matches are resolved longest-match-wins, then by type priority.
func (e *Extractor) Extract(content, mimeType string) []Candidate {
	if content == "" || !supportedMime(mimeType) {
		return nil
	}

	folded := normalize.Fold(content)

	var matches []Candidate
	matches = append(matches, e.matchGazetteer(folded)...)
	matches = append(matches, matchPattern(folded, reDateNumeric, TypeDate, confDate)...)
	matches = append(matches, matchPattern(folded, reDateWritten, TypeDate, confDate)...)
	matches = append(matches, matchPattern(folded, reArticle, TypeLaw, confLaw)...)
	matches = append(matches, matchMoney(folded)...)

	return resolveOverlaps(matches)
}

// supportedMime reports whether content of the given type carries
// extractable text.
func supportedMime(mimeType string) bool {
	switch {
	case mimeType == "", strings.HasPrefix(mimeType, "text/"):
		return true
	case mimeType == "application/json", mimeType == "message/rfc822":
		return true
	default:
		return false
	}
}

func (e *Extractor) matchGazetteer(folded string) []Candidate {
	var out []Candidate
	for _, entry := range e.gazetteer {
		for _, form := range entry.forms {
			for _, span := range findAll(folded, form) {
				out = append(out, Candidate{
					Surface:    entry.canonical,
					Type:       entry.entityType,
					Start:      span[0],
					End:        span[1],
					Confidence: entry.confidence,
				})
			}
		}
	}
	return out
}

// findAll returns all word-bounded occurrences of form in text.
func findAll(text, form string) [][2]int {
	var spans [][2]int
	for off := 0; ; {
		i := strings.Index(text[off:], form)
		if i < 0 {
			break
		}
		start := off + i
		end := start + len(form)
		if wordBounded(text, start, end) {
			spans = append(spans, [2]int{start, end})
		}
		off = start + 1
	}
	return spans
}

func wordBounded(text string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:start])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	if end < len(text) {
		r, _ := utf8.DecodeRuneInString(text[end:])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func matchPattern(folded string, re *regexp.Regexp, entityType string, conf float64) []Candidate {
	var out []Candidate
	for _, span := range re.FindAllStringIndex(folded, -1) {
		out = append(out, Candidate{
			Surface:    folded[span[0]:span[1]],
			Type:       entityType,
			Start:      span[0],
			End:        span[1],
			Confidence: conf,
		})
	}
	return out
}

func matchMoney(folded string) []Candidate {
	var out []Candidate
	for _, idx := range reMoney.FindAllStringSubmatchIndex(folded, -1) {
		amountText := folded[idx[2]:idx[3]]
		if parseAmount(amountText) <= moneyThreshold {
			continue
		}
		out = append(out, Candidate{
			Surface:    folded[idx[0]:idx[1]],
			Type:       TypeMoney,
			Start:      idx[0],
			End:        idx[1],
			Confidence: confMoney,
		})
	}
	return out
}

// parseAmount reads a Dutch-formatted amount: "." as thousands
// separator, "," as decimal separator. Returns 0 on garbage.
func parseAmount(s string) float64 {
	s = strings.TrimRight(s, ".,")
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// resolveOverlaps keeps at most one candidate per overlapping region:
// longest match wins, then type priority, then leftmost.
func resolveOverlaps(matches []Candidate) []Candidate {
	sort.SliceStable(matches, func(i, j int) bool {
		li, lj := matches[i].End-matches[i].Start, matches[j].End-matches[j].Start
		if li != lj {
			return li > lj
		}
		pi, pj := typePriority(matches[i].Type), typePriority(matches[j].Type)
		if pi != pj {
			return pi < pj
		}
		return matches[i].Start < matches[j].Start
	})

	var kept []Candidate
	for _, m := range matches {
		overlaps := false
		for _, k := range kept {
			if m.Start < k.End && k.Start < m.End {
				overlaps = true
				break
			}
		}
		if !overlaps {
			kept = append(kept, m)
		}
	}

	sort.Slice(kept, func(i, j int) bool { return kept[i].Start < kept[j].Start })
	return kept
}
