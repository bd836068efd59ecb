// Package query turns raw user text into the structured inputs the ranking
// engine consumes: a normalized query, gender/season facets, an expanded
// embedding query, and a keyword set.
//
// The Korean word tables in tables.go are a fixed product asset ported from
// the catalog team's curation. They are data, not logic: the resolution and
// expansion algorithms here must not depend on any specific entry.
package query

// Gender is the inferred target gender facet. Empty means no gender filter.
type Gender string

// Gender facet values.
const (
	GenderNone   Gender = ""
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Opposite returns the opposite gender, or GenderNone for GenderNone.
func (g Gender) Opposite() Gender {
	switch g {
	case GenderMale:
		return GenderFemale
	case GenderFemale:
		return GenderMale
	default:
		return GenderNone
	}
}

// Season is the inferred season facet. Empty means no season filter.
type Season string

// Season facet values.
const (
	SeasonNone       Season = ""
	SeasonWinter     Season = "winter"
	SeasonSummer     Season = "summer"
	SeasonSpringFall Season = "spring_fall"
	SeasonAll        Season = "all"
)

// Filters holds the facets derived once per query and consumed read-only by
// every downstream stage.
type Filters struct {
	Gender Gender
	Season Season
}

// Normalized is the output of Normalize: the cleaned query text, its derived
// facets, and the (possibly expanded) text to send to the embedding provider.
type Normalized struct {
	Query          string
	Filters        Filters
	EmbeddingQuery string
}
