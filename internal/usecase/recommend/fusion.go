package recommend

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// keywordOverlap scores lexical agreement between a query text and a
// product's name+description: |shared tokens| / |query tokens|, in [0, 1].
// Punctuation becomes whitespace, comparison is lowercase, and tokens under
// two runes are ignored. An empty query token set scores 0.
func keywordOverlap(query, name, description string) float64 {
	queryTokens := tokenize(query)
	if len(queryTokens) == 0 {
		return 0
	}

	productTokens := tokenize(name + " " + description)

	shared := 0
	for tok := range queryTokens {
		if _, ok := productTokens[tok]; ok {
			shared++
		}
	}
	return float64(shared) / float64(len(queryTokens))
}

func tokenize(text string) map[string]struct{} {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, text)

	tokens := make(map[string]struct{})
	for _, tok := range strings.Fields(cleaned) {
		if utf8.RuneCountInString(tok) < 2 {
			continue
		}
		tokens[tok] = struct{}{}
	}
	return tokens
}
