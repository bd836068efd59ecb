// Package scoring runs the hybrid text-search pipeline: normalize, embed,
// hard-filter, score, threshold, rank.
package scoring

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/lookbook-io/lookbook/internal/domain"
	domcat "github.com/lookbook-io/lookbook/internal/domain/catalog"
	"github.com/lookbook-io/lookbook/internal/domain/query"
	"github.com/lookbook-io/lookbook/internal/domain/rank"
	"github.com/lookbook-io/lookbook/internal/domain/similarity"
	"github.com/lookbook-io/lookbook/internal/logger"
	"github.com/lookbook-io/lookbook/internal/metrics"
)

// DefaultTopK limits search results when the caller does not say otherwise.
const DefaultTopK = 10

// Result is a completed search: the ranked items plus enough metadata to
// explain the ranking.
type Result struct {
	Items    []domcat.Item
	Mode     rank.Mode
	Keywords []string
	Filters  query.Filters
}

// Service executes text searches over the catalog.
type Service struct {
	catalog CatalogReader
	embed   Embedder
	weights rank.Weights
}

// New creates a scoring service.
func New(catalog CatalogReader, embed Embedder, weights rank.Weights) *Service {
	return &Service{catalog: catalog, embed: embed, weights: weights}
}

// SearchByText runs the full pipeline for a raw user query.
// Zero retained candidates is an empty Result, not an error.
func (s *Service) SearchByText(ctx context.Context, rawQuery string, topK int) (Result, error) {
	if strings.TrimSpace(rawQuery) == "" {
		return Result{}, fmt.Errorf("empty query: %w", domain.ErrInvalidRequest)
	}
	if topK <= 0 {
		topK = DefaultTopK
	}

	norm := query.Normalize(rawQuery)
	keywords := query.ExtractKeywords(norm.Query, norm.Filters.Gender)
	mode := rank.Classify(keywords)

	metrics.SearchRequestsTotal.WithLabelValues(string(mode)).Inc()

	log := logger.FromContext(ctx)
	log.Debug("Query normalized",
		zap.String("query", norm.Query),
		zap.String("embedding_query", norm.EmbeddingQuery),
		zap.String("mode", string(mode)),
		zap.Strings("keywords", keywords.Sorted()),
		zap.String("gender", string(norm.Filters.Gender)),
		zap.String("season", string(norm.Filters.Season)),
	)

	emb, err := s.embed.Embed(ctx, norm.EmbeddingQuery)
	if err != nil {
		return Result{}, fmt.Errorf("vectorize query: %w", err)
	}

	items, err := s.catalog.List(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("list catalog: %w", err)
	}

	ranked, err := s.rankItems(items, emb.Embedding, keywords, mode, norm.Filters)
	if err != nil {
		return Result{}, err
	}

	metrics.SearchResultsRetained.WithLabelValues(string(mode)).Observe(float64(len(ranked)))

	if len(ranked) > topK {
		ranked = ranked[:topK]
	}

	ids := make([]string, len(ranked))
	for i, c := range ranked {
		ids[i] = c.ID
	}

	return Result{
		Items:    rank.Reorder(items, ids),
		Mode:     mode,
		Keywords: keywords.Sorted(),
		Filters:  norm.Filters,
	}, nil
}

// rankItems scores the candidate pool and returns retained candidates in
// descending final-score order.
func (s *Service) rankItems(
	items []domcat.Item, queryVec []float32,
	keywords query.KeywordSet, mode rank.Mode, filters query.Filters,
) ([]rank.Candidate, error) {
	threshold := s.weights.Threshold(mode)
	retained := make([]rank.Candidate, 0, len(items))

	for i := range items {
		item := &items[i]

		if !passesHardFilters(item, filters) {
			continue
		}
		// Items missing either vector are skipped, not zero-filled.
		if item.TextVector() == nil || item.ImageVector() == nil {
			continue
		}
		if len(item.TextVector()) != len(queryVec) || len(item.ImageVector()) != len(queryVec) {
			return nil, fmt.Errorf("product %s: %w", item.ID(), domain.ErrVectorDimMismatch)
		}

		base := s.weights.TextWeight*similarity.Cosine(queryVec, item.TextVector()) +
			s.weights.ImageWeight*similarity.Cosine(queryVec, item.ImageVector())

		var bonus float64
		if mode != rank.ModeVectorOnly {
			bonus = computeBonus(item, keywords, s.weights)
		}

		final := base + bonus
		if final < threshold {
			continue
		}
		retained = append(retained, rank.Candidate{ID: item.ID(), Base: base, Bonus: bonus, Final: final})
	}

	sort.SliceStable(retained, func(i, j int) bool {
		return retained[i].Final > retained[j].Final
	})
	return retained, nil
}
