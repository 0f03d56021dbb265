// Package textnorm canonicalizes strings for comparison. Every component
// that compares food names goes through Normalize so equality semantics stay
// consistent across the pipeline.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases, strips diacritics, replaces non-word characters with
// spaces and collapses whitespace. Total function: never fails, empty input
// yields empty output.
func Normalize(text string) string {
	s := strings.ToLower(text)

	if out, _, err := transform.String(stripMarks, s); err == nil {
		s = out
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || unicode.IsSpace(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// FoodKey extracts a coarse grouping key from a food name, e.g.
// "arroz branco" -> "arroz". Falls back to the whole normalized string when
// there is no token boundary.
func FoodKey(name string) string {
	normalized := Normalize(name)
	first, _, _ := strings.Cut(normalized, " ")
	if first == "" {
		return normalized
	}
	return first
}
