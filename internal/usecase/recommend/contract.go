package recommend

import (
	"context"

	"github.com/lookbook-io/lookbook/internal/domain"
	domcat "github.com/lookbook-io/lookbook/internal/domain/catalog"
)

// CatalogReader loads the reference product and the candidate pool.
type CatalogReader interface {
	Get(ctx context.Context, id string) (domcat.Item, error)
	List(ctx context.Context) ([]domcat.Item, error)
}

// Embedder vectorizes text into embeddings.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}

// ImageEmbedder vectorizes raw image bytes into embeddings.
type ImageEmbedder interface {
	EmbedImage(ctx context.Context, image []byte) (domain.EmbeddingResult, error)
}
