package scoring

import (
	"context"

	"github.com/lookbook-io/lookbook/internal/domain"
	domcat "github.com/lookbook-io/lookbook/internal/domain/catalog"
)

// CatalogReader loads the candidate pool.
type CatalogReader interface {
	List(ctx context.Context) ([]domcat.Item, error)
}

// Embedder vectorizes text into embeddings.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}
