package recommend

import (
	"context"
	"fmt"

	"github.com/lookbook-io/lookbook/internal/domain"
	domcat "github.com/lookbook-io/lookbook/internal/domain/catalog"
	"github.com/lookbook-io/lookbook/internal/metrics"
)

// Browse flow limits.
const (
	browseLimit       = 5
	seasonBrowseLimit = 10

	// DefaultPriceDiff is the ± band for ByPriceRange, in KRW.
	DefaultPriceDiff = 30000
)

// coordinationMap pairs a category with the category that completes the
// outfit.
var coordinationMap = map[string]string{
	"아우터": "팬츠",
	"팬츠":  "아우터",
	"상의":  "팬츠",
}

// ByColor returns items of the same category in a different color.
func (s *Service) ByColor(ctx context.Context, productID string) ([]domcat.Item, error) {
	metrics.RecommendRequestsTotal.WithLabelValues("by_color").Inc()

	base, err := s.catalog.Get(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("get reference product: %w", err)
	}

	return s.browse(ctx, browseLimit, func(item *domcat.Item) bool {
		return item.ID() != base.ID() &&
			item.Category() == base.Category() &&
			item.Color() != base.Color()
	})
}

// ByPriceRange returns items priced within ±priceDiff of the reference.
// A non-positive priceDiff falls back to DefaultPriceDiff.
func (s *Service) ByPriceRange(ctx context.Context, productID string, priceDiff int) ([]domcat.Item, error) {
	metrics.RecommendRequestsTotal.WithLabelValues("by_price_range").Inc()

	if priceDiff <= 0 {
		priceDiff = DefaultPriceDiff
	}

	base, err := s.catalog.Get(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("get reference product: %w", err)
	}
	if base.Price() <= 0 {
		return nil, fmt.Errorf("product %s has no price: %w", productID, domain.ErrNotFound)
	}

	low, high := base.Price()-priceDiff, base.Price()+priceDiff
	return s.browse(ctx, browseLimit, func(item *domcat.Item) bool {
		return item.ID() != base.ID() && item.Price() >= low && item.Price() <= high
	})
}

// BySeason returns items tagged with the season, optionally narrowed by
// category.
func (s *Service) BySeason(ctx context.Context, season, category string) ([]domcat.Item, error) {
	metrics.RecommendRequestsTotal.WithLabelValues("by_season").Inc()

	if season == "" {
		return nil, fmt.Errorf("season is required: %w", domain.ErrInvalidRequest)
	}

	return s.browse(ctx, seasonBrowseLimit, func(item *domcat.Item) bool {
		if item.Season() != season {
			return false
		}
		return category == "" || item.Category() == category
	})
}

// Coordination returns items from the category that completes an outfit with
// the reference product.
func (s *Service) Coordination(ctx context.Context, productID string) ([]domcat.Item, error) {
	metrics.RecommendRequestsTotal.WithLabelValues("coordination").Inc()

	base, err := s.catalog.Get(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("get reference product: %w", err)
	}

	target, ok := coordinationMap[base.Category()]
	if !ok {
		return nil, fmt.Errorf("category %q has no coordination pairing: %w",
			base.Category(), domain.ErrInvalidRequest)
	}

	return s.browse(ctx, browseLimit, func(item *domcat.Item) bool {
		return item.Category() == target
	})
}

// browse filters the catalog with a predicate, up to limit items.
func (s *Service) browse(ctx context.Context, limit int, keep func(*domcat.Item) bool) ([]domcat.Item, error) {
	items, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}

	out := make([]domcat.Item, 0, limit)
	for i := range items {
		if !keep(&items[i]) {
			continue
		}
		out = append(out, items[i])
		if len(out) == limit {
			break
		}
	}
	return out, nil
}
