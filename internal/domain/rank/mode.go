package rank

import "github.com/lookbook-io/lookbook/internal/domain/query"

// Mode selects which retention threshold applies to a search and whether
// symbolic keyword bonuses run at all.
type Mode string

const (
	// ModeCategory is a single plain category word ("패딩"). The query is
	// broad, so the bar stays low.
	ModeCategory Mode = "category"
	// ModeComposite is any other keyword-bearing query ("겨울 데이트 원피스").
	ModeComposite Mode = "composite"
	// ModeVectorOnly is a query that extracted no keywords. Ranking falls
	// back to pure vector similarity with a strict threshold and no bonuses.
	ModeVectorOnly Mode = "vector_only"
)

// pureCategories are the category words that, alone, classify a query as a
// plain category search.
var pureCategories = map[string]struct{}{
	"레깅스": {},
	"패딩":  {},
	"자켓":  {},
	"원피스": {},
	"스커트": {},
	"반바지": {},
}

// Classify maps an extracted keyword set to a scoring mode.
func Classify(keywords query.KeywordSet) Mode {
	if keywords.Len() == 0 {
		return ModeVectorOnly
	}
	if keywords.Len() == 1 {
		for _, kw := range keywords.Sorted() {
			if _, ok := pureCategories[kw]; ok {
				return ModeCategory
			}
		}
	}
	return ModeComposite
}
