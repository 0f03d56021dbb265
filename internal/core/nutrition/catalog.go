// Package nutrition holds the static catalog that maps food names to
// calories per 100 g. The catalog is loaded once at startup and is read-only
// afterwards, so concurrent pipeline runs read it without locking.
package nutrition

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"nutrilens-api/internal/pkg/common"
	"nutrilens-api/internal/pkg/textnorm"

	"go.uber.org/zap"
)

// Kcal is an energy value that tolerates both numeric and string-typed JSON.
// Unparsable strings coerce to 0 rather than failing the catalog load.
type Kcal float64

// UnmarshalJSON implements json.Unmarshaler.
func (k *Kcal) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*k = Kcal(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			*k = 0
			return nil
		}
		*k = Kcal(f)
		return nil
	}

	*k = 0
	return nil
}

// Record is one catalog entry as stored in the bundled JSON.
type Record struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Category    string `json:"category"`
	EnergyKcal  Kcal   `json:"energy_kcal"`
}

// Info is the nutrition data returned for a matched food name.
type Info struct {
	Description         string
	CaloriesPer100g     int
	DefaultPortionGrams int
}

type indexedRecord struct {
	base       Record
	normalized string
}

// Catalog is the in-memory nutrition reference table.
type Catalog struct {
	records []indexedRecord
}

// catalogWrapper is the {"alimentos": [...]} envelope variant of the file.
type catalogWrapper struct {
	Alimentos []Record `json:"alimentos"`
}

// Load reads the catalog file at path. A missing or unreadable file is a
// startup-fatal error; a structurally unexpected payload degrades to an
// empty catalog with a warning so the pipeline still runs (returning "no
// match" for everything).
func Load(path string) (*Catalog, error) {
	common.LogInfo("Loading nutrition catalog", zap.String("path", path))

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read nutrition catalog: %w", err)
	}

	records := parseRecords(raw)

	catalog := FromRecords(records)

	common.LogInfo("Nutrition catalog loaded",
		zap.Int("records", len(catalog.records)),
	)

	return catalog, nil
}

// parseRecords accepts both a bare array and the {"alimentos": [...]}
// envelope. Anything else yields an empty slice.
func parseRecords(raw []byte) []Record {
	var records []Record
	if err := common.ParseJSONBytes(raw, &records); err == nil {
		return records
	}

	var wrapper catalogWrapper
	if err := common.ParseJSONBytes(raw, &wrapper); err == nil && wrapper.Alimentos != nil {
		return wrapper.Alimentos
	}

	common.LogWarn("Nutrition catalog payload has unexpected structure, starting with empty catalog")
	return nil
}

// FromRecords builds a catalog directly from records, preserving their
// order. Matching ties are broken by that order.
func FromRecords(records []Record) *Catalog {
	indexed := make([]indexedRecord, 0, len(records))
	for _, r := range records {
		indexed = append(indexed, indexedRecord{
			base:       r,
			normalized: textnorm.Normalize(r.Description),
		})
	}
	return &Catalog{records: indexed}
}

// Len reports the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.records)
}

// Match fuzzy-matches a display-language food name against the catalog.
// Three-tier heuristic, in strict priority order: exact normalized match
// (3) beats substring containment either way (2) beats the count of query
// tokens found in the record description. Records scoring 0 are discarded;
// ties keep the first record in catalog order. Returns false when nothing
// scores above 0.
func (c *Catalog) Match(name string) (Info, bool) {
	query := textnorm.Normalize(name)
	if query == "" {
		return Info{}, false
	}

	best := -1
	bestScore := 0

	for i, record := range c.records {
		score := 0
		switch {
		case record.normalized == query:
			score = 3
		case strings.Contains(record.normalized, query) || strings.Contains(query, record.normalized):
			score = 2
		default:
			for _, word := range strings.Fields(query) {
				if strings.Contains(record.normalized, word) {
					score++
				}
			}
		}

		if score > bestScore {
			best = i
			bestScore = score
		}
	}

	if best < 0 {
		common.LogWarn("No nutrition record found",
			zap.String("name", name),
			zap.String("query", query),
		)
		return Info{}, false
	}

	matched := c.records[best]
	kcal := float64(matched.base.EnergyKcal)

	common.LogDebug("Nutrition match",
		zap.String("name", name),
		zap.String("matched", matched.base.Description),
		zap.Float64("kcal_per_100g", kcal),
	)

	return Info{
		Description:         matched.base.Description,
		CaloriesPer100g:     int(math.Round(kcal)),
		DefaultPortionGrams: 100,
	}, true
}
