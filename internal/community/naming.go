package community

import (
	"fmt"
	"sort"

	"iou-platform.io/iou/internal/extract"
)

// Label prefixes by dominant member entity type.
const (
	labelOrganization = "Organisatienetwerk"
	labelLaw          = "Wettelijk kader"
	labelLocation     = "Geografisch cluster"
	labelPolicy       = "Beleidsdomein"
	labelDefault      = "Thematisch cluster"
)

// Describe derives a display name, keyword list and summary for one
// cluster. The name follows the dominant member entity type; keywords
// are the member policy-entity names; everything is derived from
// members only, so re-description of an unchanged cluster is stable.
func Describe(g Graph, members []int) (name string, keywords []string, summary string) {
	counts := map[string]int{}
	var policyNames []string
	for _, m := range members {
		n := g.Nodes[m]
		counts[n.Type]++
		if n.Type == extract.TypePolicy {
			policyNames = append(policyNames, n.Name)
		}
	}

	dominant := dominantType(counts)
	var label string
	switch dominant {
	case extract.TypeOrganization:
		label = labelOrganization
	case extract.TypeLaw:
		label = labelLaw
	case extract.TypeLocation:
		label = labelLocation
	case extract.TypePolicy:
		label = labelPolicy
	default:
		label = labelDefault
	}

	// Anchor the name on the lexicographically first member of the
	// dominant type so repeated runs name clusters identically.
	anchor := ""
	for _, m := range members {
		n := g.Nodes[m]
		if n.Type != dominant {
			continue
		}
		if anchor == "" || n.Name < anchor {
			anchor = n.Name
		}
	}
	if anchor != "" {
		name = fmt.Sprintf("%s: %s", label, anchor)
	} else {
		name = label
	}

	sort.Strings(policyNames)
	keywords = policyNames
	summary = fmt.Sprintf("%d gerelateerde entiteiten, voornamelijk %s", len(members), dominant)
	return name, keywords, summary
}

// dominantType picks the most frequent entity type; ties go to the
// lexicographically smaller type name for determinism.
func dominantType(counts map[string]int) string {
	best, bestCount := "", -1
	types := make([]string, 0, len(counts))
	for t := range counts {
		types = append(types, t)
	}
	sort.Strings(types)
	for _, t := range types {
		if counts[t] > bestCount {
			best, bestCount = t, counts[t]
		}
	}
	return best
}
