// Package recommend implements the hybrid recommendation flows: by reference
// product, by free text, by uploaded image, and the catalog browse flows.
package recommend

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

// textCandidatePool caps how many vector matches feed the text fusion stage.
const textCandidatePool = 20

// fusedCandidate carries a blended score plus its vector term for
// tie-breaking.
type fusedCandidate struct {
	id     string
	score  float64
	vector float64
}

// sortFused orders candidates by blended score descending, breaking ties on
// the vector term.
func sortFused(cs []fusedCandidate) {
	sort.SliceStable(cs, func(i, j int) bool {
		if cs[i].score != cs[j].score {
			return cs[i].score > cs[j].score
		}
		return cs[i].vector > cs[j].vector
	})
}

// Service executes recommendation flows over the catalog.
type Service struct {
	catalog    CatalogReader
	embedText  Embedder
	embedImage ImageEmbedder
	weights    rank.Weights
}

// New creates a recommendation service.
func New(catalog CatalogReader, embedText Embedder, embedImage ImageEmbedder, weights rank.Weights) *Service {
	return &Service{
		catalog:    catalog,
		embedText:  embedText,
		embedImage: embedImage,
		weights:    weights,
	}
}

// ByProduct recommends items similar to an existing product: image cosine
// blended with keyword overlap against the reference name. A gender coded
// into the reference name restricts candidates to the same gender.
func (s *Service) ByProduct(ctx context.Context, productID string) ([]domcat.Item, error) {
	metrics.RecommendRequestsTotal.WithLabelValues("by_product").Inc()

	base, err := s.catalog.Get(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("get reference product: %w", err)
	}
	if base.ImageVector() == nil {
		return nil, fmt.Errorf("product %s: %w", productID, domain.ErrVectorNotFound)
	}

	items, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}

	guard := genderGuard(base.Name())
	fusion := rank.ReferenceFusion()

	var candidates []fusedCandidate

	for i := range items {
		item := &items[i]
		if item.ID() == base.ID() {
			continue
		}
		if !guard(item.Name()) {
			continue
		}
		if item.ImageVector() == nil {
			continue
		}
		if len(item.ImageVector()) != len(base.ImageVector()) {
			return nil, fmt.Errorf("product %s: %w", item.ID(), domain.ErrVectorDimMismatch)
		}

		imgScore := similarity.Cosine(base.ImageVector(), item.ImageVector())
		kwScore := keywordOverlap(base.Name(), item.Name(), item.Description())
		candidates = append(candidates, fusedCandidate{
			id:     item.ID(),
			score:  fusion.Blend(imgScore, kwScore),
			vector: imgScore,
		})
	}

	sortFused(candidates)
	if len(candidates) > fusion.TopK {
		candidates = candidates[:fusion.TopK]
	}

	ids := make([]string, len(candidates))
	for i, c := range candidates {
		ids[i] = c.id
	}
	return rank.Reorder(items, ids), nil
}

// ByText recommends items for a free-text query. The query is expanded with
// synonym phrases before vectorizing; keyword overlap still scores against
// the raw query so literal matches keep their weight.
func (s *Service) ByText(ctx context.Context, rawQuery string) ([]domcat.Item, error) {
	metrics.RecommendRequestsTotal.WithLabelValues("by_text").Inc()

	if strings.TrimSpace(rawQuery) == "" {
		return nil, fmt.Errorf("empty query: %w", domain.ErrInvalidRequest)
	}

	emb, err := s.embedText.Embed(ctx, query.ExpandForEmbedding(rawQuery))
	if err != nil {
		return nil, fmt.Errorf("vectorize query: %w", err)
	}

	items, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}

	pool := make([]similarity.Candidate, 0, len(items))
	byID := make(map[string]*domcat.Item, len(items))
	for i := range items {
		item := &items[i]
		if item.TextVector() == nil {
			continue
		}
		pool = append(pool, similarity.Candidate{ID: item.ID(), Vector: item.TextVector()})
		byID[item.ID()] = item
	}
	if len(pool) == 0 {
		return nil, domain.ErrEmptyCandidatePool
	}

	matches, err := similarity.RankAll(emb.Embedding, pool, textCandidatePool)
	if err != nil {
		return nil, fmt.Errorf("rank candidates: %w", err)
	}

	fusion := rank.TextFusion()

	fused := make([]fusedCandidate, 0, len(matches))
	for _, m := range matches {
		item := byID[m.ID]
		kwScore := keywordOverlap(rawQuery, item.Name(), item.Description())
		fused = append(fused, fusedCandidate{
			id:     m.ID,
			score:  fusion.Blend(m.Score, kwScore),
			vector: m.Score,
		})
	}

	sortFused(fused)
	if len(fused) > fusion.TopK {
		fused = fused[:fusion.TopK]
	}

	ids := make([]string, len(fused))
	for i, c := range fused {
		ids[i] = c.id
	}

	logger.FromContext(ctx).Debug("Text recommendation ranked",
		zap.String("query", rawQuery),
		zap.Int("pool", len(pool)),
		zap.Int("returned", len(ids)),
	)

	return rank.Reorder(items, ids), nil
}

// ByImage recommends items visually similar to an uploaded image. Matches
// below the image search threshold are dropped.
func (s *Service) ByImage(ctx context.Context, image []byte) ([]domcat.Item, error) {
	metrics.RecommendRequestsTotal.WithLabelValues("by_image").Inc()

	if len(image) == 0 {
		return nil, fmt.Errorf("empty image: %w", domain.ErrInvalidRequest)
	}

	emb, err := s.embedImage.EmbedImage(ctx, image)
	if err != nil {
		return nil, fmt.Errorf("vectorize image: %w", err)
	}

	items, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}

	pool := make([]similarity.Candidate, 0, len(items))
	for i := range items {
		if items[i].ImageVector() == nil {
			continue
		}
		pool = append(pool, similarity.Candidate{ID: items[i].ID(), Vector: items[i].ImageVector()})
	}
	if len(pool) == 0 {
		return nil, domain.ErrEmptyCandidatePool
	}

	matches, err := similarity.RankAll(emb.Embedding, pool, rank.ReferenceFusion().TopK)
	if err != nil {
		return nil, fmt.Errorf("rank candidates: %w", err)
	}

	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		if m.Score < s.weights.ImageSearchThreshold {
			continue
		}
		if len(ids) == rank.ReferenceFusion().TopK {
			break
		}
		ids = append(ids, m.ID)
	}
	return rank.Reorder(items, ids), nil
}

// genderGuard returns a predicate restricting candidates to the gender coded
// in the reference name. A neutral reference accepts everything.
func genderGuard(referenceName string) func(candidateName string) bool {
	switch {
	case strings.Contains(referenceName, "여성") || strings.Contains(referenceName, "여자"):
		return func(name string) bool {
			return strings.Contains(name, "여성") || strings.Contains(name, "여자")
		}
	case strings.Contains(referenceName, "남성") || strings.Contains(referenceName, "남자"):
		return func(name string) bool {
			return strings.Contains(name, "남성") || strings.Contains(name, "남자")
		}
	default:
		return func(string) bool { return true }
	}
}
