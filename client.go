// Package lookbook is an embedded client for the lookbook ranking engine.
// It wires the search, recommendation and catalog services directly over a
// Redis store, without going through the HTTP API.
package lookbook

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lookbook-io/lookbook/internal/db"
	dbRedis "github.com/lookbook-io/lookbook/internal/db/redis"
	"github.com/lookbook-io/lookbook/internal/domain"
	"github.com/lookbook-io/lookbook/internal/domain/rank"
	catalogrepo "github.com/lookbook-io/lookbook/internal/repository/catalog"
	recommenduc "github.com/lookbook-io/lookbook/internal/usecase/recommend"
	scoringuc "github.com/lookbook-io/lookbook/internal/usecase/scoring"
)

const defaultReadinessTimeout = 10 * time.Second

// Client is the lookbook SDK entry point.
type Client struct {
	store     db.Store
	embedder  domain.Embedder
	products  *catalogrepo.Repo
	searchSvc *scoringuc.Service
	recSvc    *recommenduc.Service
}

// New creates a lookbook Client and connects to the database.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{readinessTimeout: defaultReadinessTimeout}
	for _, o := range opts {
		o(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("lookbook: database address required (use WithRedis)")
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Username: cfg.username,
		Password: cfg.password,
		DB:       cfg.db,
	})
	if err != nil {
		return nil, fmt.Errorf("lookbook: create redis store: %w", err)
	}

	ctx := context.Background()
	if err := store.WaitForReady(ctx, cfg.readinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("lookbook: database not ready: %w", err)
	}

	return wireClient(store, cfg), nil
}

func wireClient(store db.Store, cfg *clientConfig) *Client {
	// Noop embedders keep browse flows usable without a provider.
	var textEmb domain.Embedder = noopEmbedder{}
	if cfg.embedder != nil {
		textEmb = &embedderAdapter{inner: cfg.embedder}
	}
	var imageEmb domain.ImageEmbedder = noopImageEmbedder{}
	if cfg.imageEmbedder != nil {
		imageEmb = &imageEmbedderAdapter{inner: cfg.imageEmbedder}
	}

	products := catalogrepo.New(store)
	weights := rank.DefaultWeights()

	return &Client{
		store:     store,
		embedder:  textEmb,
		products:  products,
		searchSvc: scoringuc.New(products, textEmb, weights),
		recSvc:    recommenduc.New(products, textEmb, imageEmb, weights),
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Search runs a text search. topK <= 0 uses the service default.
func (c *Client) Search(ctx context.Context, query string, topK int) (SearchResult, error) {
	res, err := c.searchSvc.SearchByText(ctx, query, topK)
	if err != nil {
		return SearchResult{}, fmt.Errorf("search: %w", err)
	}
	return SearchResult{
		Mode:     string(res.Mode),
		Keywords: res.Keywords,
		Products: productsFromItems(res.Items),
	}, nil
}

// RecommendByProduct recommends items similar to an existing product.
func (c *Client) RecommendByProduct(ctx context.Context, productID string) ([]Product, error) {
	items, err := c.recSvc.ByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("recommend by product: %w", err)
	}
	return productsFromItems(items), nil
}

// RecommendByText recommends items for a free-text query.
func (c *Client) RecommendByText(ctx context.Context, query string) ([]Product, error) {
	items, err := c.recSvc.ByText(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("recommend by text: %w", err)
	}
	return productsFromItems(items), nil
}

// RecommendByImage recommends items visually similar to the image.
func (c *Client) RecommendByImage(ctx context.Context, image []byte) ([]Product, error) {
	items, err := c.recSvc.ByImage(ctx, image)
	if err != nil {
		return nil, fmt.Errorf("recommend by image: %w", err)
	}
	return productsFromItems(items), nil
}

// RecommendByColor lists same-category items in other colors.
func (c *Client) RecommendByColor(ctx context.Context, productID string) ([]Product, error) {
	items, err := c.recSvc.ByColor(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("recommend by color: %w", err)
	}
	return productsFromItems(items), nil
}

// RecommendByPriceRange lists items priced near the reference product.
// priceDiff <= 0 uses the service default.
func (c *Client) RecommendByPriceRange(ctx context.Context, productID string, priceDiff int) ([]Product, error) {
	items, err := c.recSvc.ByPriceRange(ctx, productID, priceDiff)
	if err != nil {
		return nil, fmt.Errorf("recommend by price range: %w", err)
	}
	return productsFromItems(items), nil
}

// RecommendBySeason lists items for a season, optionally within a category.
func (c *Client) RecommendBySeason(ctx context.Context, season, category string) ([]Product, error) {
	items, err := c.recSvc.BySeason(ctx, season, category)
	if err != nil {
		return nil, fmt.Errorf("recommend by season: %w", err)
	}
	return productsFromItems(items), nil
}

// RecommendCoordination lists items from the category that pairs with the
// reference product's category.
func (c *Client) RecommendCoordination(ctx context.Context, productID string) ([]Product, error) {
	items, err := c.recSvc.Coordination(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("recommend coordination: %w", err)
	}
	return productsFromItems(items), nil
}

// SaveProduct embeds the product's search text and writes it to the store.
// Returns true if the product was created, false if it was updated.
func (c *Client) SaveProduct(ctx context.Context, p Product) (bool, error) {
	item := p.toItem()

	emb, err := c.embedder.Embed(ctx, item.SearchText())
	if err != nil {
		return false, fmt.Errorf("save product: %w", err)
	}
	item = item.WithVectors(emb.Embedding, nil)

	created, err := c.products.Upsert(ctx, item)
	if err != nil {
		return false, fmt.Errorf("save product: %w", err)
	}
	return created, nil
}

// GetProduct fetches a product by id.
func (c *Client) GetProduct(ctx context.Context, id string) (Product, error) {
	item, err := c.products.Get(ctx, id)
	if err != nil {
		return Product{}, fmt.Errorf("get product: %w", err)
	}
	return productFromItem(&item), nil
}

// ListProducts fetches the whole catalog.
func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	items, err := c.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return productsFromItems(items), nil
}

// DeleteProduct removes a product.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	if err := c.products.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// embedderAdapter wraps the public Embedder to satisfy internal domain.Embedder.
type embedderAdapter struct {
	inner Embedder
}

func (a *embedderAdapter) Embed(ctx context.Context, text string) (domain.EmbeddingResult, error) {
	r, err := a.inner.Embed(ctx, text)
	if err != nil {
		return domain.EmbeddingResult{}, fmt.Errorf("embed: %w", err)
	}
	return domain.EmbeddingResult{
		Embedding:    r.Embedding,
		PromptTokens: r.PromptTokens,
		TotalTokens:  r.TotalTokens,
	}, nil
}

// imageEmbedderAdapter wraps the public ImageEmbedder for internal use.
type imageEmbedderAdapter struct {
	inner ImageEmbedder
}

func (a *imageEmbedderAdapter) EmbedImage(ctx context.Context, image []byte) (domain.EmbeddingResult, error) {
	r, err := a.inner.EmbedImage(ctx, image)
	if err != nil {
		return domain.EmbeddingResult{}, fmt.Errorf("embed image: %w", err)
	}
	return domain.EmbeddingResult{
		Embedding:    r.Embedding,
		PromptTokens: r.PromptTokens,
		TotalTokens:  r.TotalTokens,
	}, nil
}

// noopEmbedder returns an error on Embed (used when no embedder configured).
type noopEmbedder struct{}

func (noopEmbedder) Embed(_ context.Context, _ string) (domain.EmbeddingResult, error) {
	return domain.EmbeddingResult{}, fmt.Errorf(
		"lookbook: embedder not configured (use WithEmbedder): %w", domain.ErrModelUnavailable,
	)
}

// noopImageEmbedder returns an error on EmbedImage.
type noopImageEmbedder struct{}

func (noopImageEmbedder) EmbedImage(_ context.Context, _ []byte) (domain.EmbeddingResult, error) {
	return domain.EmbeddingResult{}, fmt.Errorf(
		"lookbook: image embedder not configured (use WithImageEmbedder): %w", domain.ErrModelUnavailable,
	)
}
