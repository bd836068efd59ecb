package query

import "strings"

// genderRule is one step of the gender precedence chain. Rules are evaluated
// in fixed order; the first rule whose predicate matches wins.
type genderRule struct {
	name    string
	applies func(q string) bool
	result  Gender
}

// genderRules encodes the resolution precedence:
// gift context beats partner inference beats direct gender words.
var genderRules = []genderRule{
	{
		name: "gift for male target",
		applies: func(q string) bool {
			return containsAny(q, giftWords) && containsAny(q, giftTargetsMale)
		},
		result: GenderMale,
	},
	{
		name: "gift for female target",
		applies: func(q string) bool {
			return containsAny(q, giftWords) && containsAny(q, giftTargetsFemale)
		},
		result: GenderFemale,
	},
	{
		// "남자친구랑 데이트" implies a female speaker shopping for herself.
		name: "male partner named, no gift",
		applies: func(q string) bool {
			return containsAny(q, partnerMaleWords)
		},
		result: GenderFemale,
	},
	{
		name: "female partner named, no gift",
		applies: func(q string) bool {
			return containsAny(q, partnerFemaleWords)
		},
		result: GenderMale,
	},
	{
		name: "direct male word",
		applies: func(q string) bool {
			return containsAny(q, directMaleWords)
		},
		result: GenderMale,
	},
	{
		name: "direct female word",
		applies: func(q string) bool {
			return containsAny(q, directFemaleWords)
		},
		result: GenderFemale,
	},
}

// seasonRule mirrors genderRule for the season chain.
type seasonRule struct {
	words  []string
	result Season
}

var seasonRules = []seasonRule{
	{winterWords, SeasonWinter},
	{summerWords, SeasonSummer},
	{springFallWords, SeasonSpringFall},
	{allSeasonWords, SeasonAll},
}

// Normalize cleans a raw query and derives its facets. Pure: no I/O, no
// state. The zero query yields a zero Normalized.
func Normalize(raw string) Normalized {
	q := stripFillers(strings.TrimSpace(raw))
	lower := strings.ToLower(q)

	return Normalized{
		Query: q,
		Filters: Filters{
			Gender: resolveGender(lower),
			Season: resolveSeason(lower),
		},
		EmbeddingQuery: ExpandForEmbedding(q),
	}
}

// stripFillers removes trailing request phrases ("...추천해줘"). If stripping
// empties the query the original is kept: a bare "추천해줘" is still a query.
func stripFillers(q string) string {
	stripped := q
	for changed := true; changed; {
		changed = false
		for _, suffix := range fillerSuffixes {
			if strings.HasSuffix(stripped, suffix) {
				stripped = strings.TrimSpace(strings.TrimSuffix(stripped, suffix))
				changed = true
			}
		}
	}
	if stripped == "" {
		return q
	}
	return stripped
}

func resolveGender(q string) Gender {
	for _, rule := range genderRules {
		if rule.applies(q) {
			return rule.result
		}
	}
	return GenderNone
}

func resolveSeason(q string) Season {
	for _, rule := range seasonRules {
		if containsAny(q, rule.words) {
			return rule.result
		}
	}
	return SeasonNone
}

// ExpandForEmbedding replaces the whole query with a richer phrase when it
// contains a known key. Only the embedding provider sees the expansion.
func ExpandForEmbedding(q string) string {
	lower := strings.ToLower(strings.TrimSpace(q))
	for _, e := range embeddingExpansions {
		if strings.Contains(lower, e.key) {
			return e.expanded
		}
	}
	return q
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
