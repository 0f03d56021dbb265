package analysis

import (
	"strings"

	"nutrilens-api/internal/pkg/textnorm"
)

// phraseMaxTokens is the token count at which a translated name is assumed
// to be a description rather than a dish name.
const phraseMaxTokens = 5

// phraseConnectives are space-padded pt-BR connectives that show up in
// descriptive phrases ("comidinhas para comer com as mãos") but not in food
// names. " em " tends to appear in long descriptions.
var phraseConnectives = []string{
	" para ",
	" com as ",
	" com a ",
	" comer ",
	" feito ",
	" feitos ",
	" tipo ",
	" em ",
}

// IsPhraseyName reports whether a translated candidate name reads as a
// descriptive phrase instead of a food noun. Translation of a generic label
// can yield a full sentence in the display language; such results cannot be
// looked up in the catalog and are discarded before matching.
func IsPhraseyName(translatedName string) bool {
	pt := textnorm.Normalize(translatedName)

	for _, connective := range phraseConnectives {
		if strings.Contains(pt, connective) {
			return true
		}
	}

	return len(strings.Fields(pt)) >= phraseMaxTokens
}
