package scoring

import (
	"context"

	"github.com/lookbook-io/lookbook/internal/domain"
	domcat "github.com/lookbook-io/lookbook/internal/domain/catalog"
)

type mockCatalog struct {
	items []domcat.Item
	err   error
}

func (m *mockCatalog) List(_ context.Context) ([]domcat.Item, error) {
	return m.items, m.err
}

type mockEmbedder struct {
	result domain.EmbeddingResult
	err    error
	lastIn string
}

func (m *mockEmbedder) Embed(_ context.Context, text string) (domain.EmbeddingResult, error) {
	m.lastIn = text
	return m.result, m.err
}

// alignedItem builds an item whose vectors point along the query axis, so its
// base score is textWeight*cos + imageWeight*cos = 1.0 against query [1, 0].
func alignedItem(id, name, description, color string) domcat.Item {
	item := domcat.New(id, name, description, "상의", color, "사계절", "", "", 10000)
	return item.WithVectors([]float32{1, 0}, []float32{1, 0})
}

// orthogonalItem scores 0 against query [1, 0].
func orthogonalItem(id, name string) domcat.Item {
	item := domcat.New(id, name, "", "상의", "", "사계절", "", "", 10000)
	return item.WithVectors([]float32{0, 1}, []float32{0, 1})
}
