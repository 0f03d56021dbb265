package analysis

import (
	"nutrilens-api/internal/pkg/textnorm"
)

// gateScoreThreshold is the minimum annotator confidence for either gate.
const gateScoreThreshold = 0.75

// foodGateLabels are generic "this is food" category terms. Any one of them
// at high confidence is enough to open the gate.
var foodGateLabels = map[string]struct{}{
	"food":       {},
	"dish":       {},
	"meal":       {},
	"cuisine":    {},
	"ingredient": {},
	"recipe":     {},
	"produce":    {},
}

// nonFoodObjects blocks high-confidence detections that are unambiguously
// not food. The object gate cannot carry an allowlist of every food, so it
// only rejects the obvious offenders.
var nonFoodObjects = map[string]struct{}{
	"person":      {},
	"human":       {},
	"vehicle":     {},
	"car":         {},
	"phone":       {},
	"electronics": {},
}

// IsFoodGatePositive decides whether the image plausibly contains food.
// Pure decision, no side effects: label gate OR object gate.
func IsFoodGatePositive(labels []Label, objects []Object) bool {
	for _, l := range labels {
		desc := textnorm.Normalize(l.Description)
		if _, ok := foodGateLabels[desc]; ok && l.Score >= gateScoreThreshold {
			return true
		}
	}

	for _, o := range objects {
		if o.Score < gateScoreThreshold {
			continue
		}
		name := textnorm.Normalize(o.Name)
		if _, blocked := nonFoodObjects[name]; blocked {
			continue
		}
		return true
	}

	return false
}
