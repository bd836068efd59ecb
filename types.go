package lookbook

import (
	"context"

	domcat "github.com/lookbook-io/lookbook/internal/domain/catalog"
)

// EmbeddingResult carries an embedding vector and token usage.
type EmbeddingResult struct {
	Embedding    []float32
	PromptTokens int
	TotalTokens  int
}

// Embedder produces text embeddings. Implementations must return
// L2-normalized vectors of a fixed dimension.
type Embedder interface {
	Embed(ctx context.Context, text string) (EmbeddingResult, error)
}

// ImageEmbedder produces image embeddings in the same space as the text
// embedder.
type ImageEmbedder interface {
	EmbedImage(ctx context.Context, image []byte) (EmbeddingResult, error)
}

// Product is a catalog entry.
type Product struct {
	ID          string
	Name        string
	Description string
	Category    string
	Color       string
	Season      string
	Brand       string
	ImageURL    string
	Price       int
}

// SearchResult is a completed text search.
type SearchResult struct {
	Mode     string
	Keywords []string
	Products []Product
}

func productFromItem(item *domcat.Item) Product {
	return Product{
		ID:          item.ID(),
		Name:        item.Name(),
		Description: item.Description(),
		Category:    item.Category(),
		Color:       item.Color(),
		Season:      item.Season(),
		Brand:       item.Brand(),
		ImageURL:    item.ImageURL(),
		Price:       item.Price(),
	}
}

func productsFromItems(items []domcat.Item) []Product {
	out := make([]Product, len(items))
	for i := range items {
		out[i] = productFromItem(&items[i])
	}
	return out
}

func (p Product) toItem() domcat.Item {
	return domcat.New(
		p.ID, p.Name, p.Description, p.Category,
		p.Color, p.Season, p.Brand, p.ImageURL, p.Price,
	)
}
