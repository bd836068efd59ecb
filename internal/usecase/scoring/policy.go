package scoring

import (
	"strings"

	domcat "github.com/lookbook-io/lookbook/internal/domain/catalog"
	"github.com/lookbook-io/lookbook/internal/domain/query"
	"github.com/lookbook-io/lookbook/internal/domain/rank"
)

// passesHardFilters reports whether an item survives the pre-score gender and
// season exclusions. Hard filters drop items outright; everything softer is a
// score adjustment.
func passesHardFilters(item *domcat.Item, filters query.Filters) bool {
	name := strings.ToLower(item.Name())
	desc := strings.ToLower(item.Description())

	switch filters.Gender {
	case query.GenderMale:
		for _, w := range femaleCodedWords {
			if strings.Contains(name, w) || strings.Contains(desc, w) {
				return false
			}
		}
		for _, w := range femaleGarments {
			if strings.Contains(name, w) {
				return false
			}
		}
	case query.GenderFemale:
		for _, w := range maleCodedWords {
			if strings.Contains(name, w) || strings.Contains(desc, w) {
				return false
			}
		}
	}

	switch filters.Season {
	case query.SeasonWinter:
		for _, w := range summerOnlyWords {
			if strings.Contains(name, w) {
				return false
			}
		}
		if strings.Contains(item.Season(), "여름") {
			return false
		}
	case query.SeasonSummer:
		for _, w := range winterOnlyWords {
			if strings.Contains(name, w) {
				return false
			}
		}
		if strings.Contains(item.Season(), "겨울") {
			return false
		}
	}

	return true
}

// computeBonus runs the symbolic adjustments against one item. The color and
// keyword bonuses share the cap; the context penalties apply after it.
func computeBonus(item *domcat.Item, keywords query.KeywordSet, w rank.Weights) float64 {
	text := item.SearchText()
	name := strings.ToLower(item.Name())
	desc := strings.ToLower(item.Description())

	var bonus float64

	for _, color := range keywords.Intersection(colorWords) {
		if strings.Contains(text, color) {
			bonus += w.ColorBonus
			break
		}
	}

	for _, kw := range keywords.Sorted() {
		if strings.Contains(name, kw) {
			bonus += w.NameKeywordBonus
		} else if strings.Contains(desc, kw) {
			bonus += w.DescKeywordBonus
		}
	}
	if bonus > w.KeywordBonusCap {
		bonus = w.KeywordBonusCap
	}

	if keywords.IntersectsAny(homeWords) {
		for _, bad := range outdoorWords {
			if strings.Contains(text, bad) {
				bonus += w.HomePenalty
				break
			}
		}
	}

	if keywords.IntersectsAny(sleepWords) {
		for _, bad := range sleepBanWords {
			if !strings.Contains(text, bad) {
				continue
			}
			// "잠옷 원피스" is genuine sleepwear, not a dress.
			if bad == "원피스" && (strings.Contains(text, "잠옷") || strings.Contains(text, "파자마")) {
				continue
			}
			bonus += w.SleepBanPenalty
			break
		}

		genuine := false
		for _, word := range genuineSleepwearWords {
			if strings.Contains(text, word) {
				genuine = true
				break
			}
		}
		if !genuine {
			bonus += w.SleepSoftPenalty
		}
	}

	return bonus
}
