package analysis

import (
	"nutrilens-api/internal/pkg/textnorm"
)

// Dedupe collapses items that reduce to the same food key ("arroz branco"
// and "arroz integral" both key to "arroz"), keeping the highest-confidence
// instance. Exact ties keep the first one seen. Output preserves insertion
// order of first-seen keys.
func Dedupe(items []Item) []Item {
	type slot struct {
		index int
		item  Item
	}

	byKey := make(map[string]slot, len(items))
	order := make([]string, 0, len(items))

	for _, item := range items {
		key := textnorm.FoodKey(item.Name)
		existing, ok := byKey[key]
		if !ok {
			byKey[key] = slot{index: len(order), item: item}
			order = append(order, key)
			continue
		}
		if item.Confidence > existing.item.Confidence {
			byKey[key] = slot{index: existing.index, item: item}
		}
	}

	out := make([]Item, len(order))
	for _, key := range order {
		s := byKey[key]
		out[s.index] = s.item
	}
	return out
}
