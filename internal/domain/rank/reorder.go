package rank

import "github.com/lookbook-io/lookbook/internal/domain/catalog"

// Reorder re-emits items in the order given by ids. Ids with no matching item
// are skipped, so a ranking computed against a slightly stale candidate set
// still assembles cleanly.
func Reorder(items []catalog.Item, ids []string) []catalog.Item {
	byID := make(map[string]catalog.Item, len(items))
	for _, it := range items {
		byID[it.ID()] = it
	}

	out := make([]catalog.Item, 0, len(ids))
	for _, id := range ids {
		if it, ok := byID[id]; ok {
			out = append(out, it)
		}
	}
	return out
}
