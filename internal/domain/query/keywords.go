package query

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// KeywordSet is the deduplicated expanded vocabulary a query maps to.
// Computed once per query, never mutated afterwards.
type KeywordSet map[string]struct{}

// Has reports whether the set contains the keyword.
func (s KeywordSet) Has(w string) bool {
	_, ok := s[w]
	return ok
}

// Len returns the number of keywords.
func (s KeywordSet) Len() int { return len(s) }

// IntersectsAny reports whether any of words is in the set.
func (s KeywordSet) IntersectsAny(words []string) bool {
	for _, w := range words {
		if s.Has(w) {
			return true
		}
	}
	return false
}

// Intersection returns the members of words present in the set, in the order
// given.
func (s KeywordSet) Intersection(words []string) []string {
	var out []string
	for _, w := range words {
		if s.Has(w) {
			out = append(out, w)
		}
	}
	return out
}

// Sorted returns the keywords in lexical order (for logs and tests).
func (s KeywordSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for w := range s {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// ExtractKeywords maps a normalized query and a resolved gender to the
// expanded keyword set. Tokens are whitespace-split; stop-words and
// single-rune tokens are dropped; every pattern that matches a token as a
// substring contributes its whole expansion list (union, not first match).
// An empty set is a valid result and drives vector-only scoring downstream.
func ExtractKeywords(normalized string, gender Gender) KeywordSet {
	set := make(KeywordSet)

	for _, tok := range strings.Fields(strings.ToLower(normalized)) {
		if _, stop := stopWords[tok]; stop {
			continue
		}
		if utf8.RuneCountInString(tok) < 2 {
			continue
		}

		for pattern, expansion := range keywordPatterns {
			if strings.Contains(tok, pattern) {
				set.add(expansion)
			}
		}
		for pattern, byGender := range genderPatterns {
			if !strings.Contains(tok, pattern) {
				continue
			}
			switch gender {
			case GenderMale:
				set.add(byGender.male)
			case GenderFemale:
				set.add(byGender.female)
			default:
				set.add(byGender.male)
				set.add(byGender.female)
			}
		}
	}

	return set
}

func (s KeywordSet) add(words []string) {
	for _, w := range words {
		s[w] = struct{}{}
	}
}
