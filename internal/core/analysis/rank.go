package analysis

import (
	"sort"
	"strings"

	"nutrilens-api/internal/pkg/textnorm"
)

// candidateScoreThreshold is the minimum annotator confidence for an entry
// to be considered a candidate at all.
const candidateScoreThreshold = 0.6

// genericLabels are labels too generic or irrelevant to name an item.
// Broader than the food-gate set: includes food-adjacent category nouns
// that are useless as an item name.
var genericLabels = map[string]struct{}{
	"food":                  {},
	"produce":               {},
	"ingredient":            {},
	"fried food":            {},
	"vegetable":             {},
	"cuisine":               {},
	"dish":                  {},
	"meal":                  {},
	"recipe":                {},
	"tableware":             {},
	"dinnerware":            {},
	"fast food":             {},
	"natural foods":         {},
	"staple food":           {},
	"garnish":               {},
	"lunch":                 {},
	"breakfast":             {},
	"dinner":                {},
	"cup":                   {},
	"coffee cup":            {},
	"mug":                   {},
	"serveware":             {},
	"drinkware":             {},
	"cookware and bakeware": {},
	"dishware":              {},
	"kitchen utensil":       {},
	"food group":            {},
	"finger food":           {},
	"snack":                 {},
	"snack food":            {},
}

// PickCandidates merges annotator output into a unified list sorted by
// descending score. Objects are assumed specific enough to skip the
// generic-term filter; labels are dropped when generic. Both empty inputs
// yield an empty list, which the orchestrator treats as "no candidates".
func PickCandidates(labels []Label, objects []Object) []Candidate {
	candidates := make([]Candidate, 0, len(labels)+len(objects))

	for _, o := range objects {
		if o.Score < candidateScoreThreshold {
			continue
		}
		candidates = append(candidates, Candidate{
			Name:  strings.TrimSpace(o.Name),
			Score: o.Score,
		})
	}

	for _, l := range labels {
		if l.Score < candidateScoreThreshold {
			continue
		}
		desc := textnorm.Normalize(l.Description)
		if desc == "" {
			continue
		}
		if _, generic := genericLabels[desc]; generic {
			continue
		}
		candidates = append(candidates, Candidate{
			Name:  strings.TrimSpace(l.Description),
			Score: l.Score,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	return candidates
}
