package recommend

import (
	"context"

	"github.com/lookbook-io/lookbook/internal/domain"
	domcat "github.com/lookbook-io/lookbook/internal/domain/catalog"
	"github.com/lookbook-io/lookbook/internal/domain/rank"
)

type mockCatalog struct {
	items []domcat.Item
}

func (m *mockCatalog) Get(_ context.Context, id string) (domcat.Item, error) {
	for _, it := range m.items {
		if it.ID() == id {
			return it, nil
		}
	}
	return domcat.Item{}, domain.ErrProductNotFound
}

func (m *mockCatalog) List(_ context.Context) ([]domcat.Item, error) {
	return m.items, nil
}

type mockEmbedder struct {
	result domain.EmbeddingResult
	err    error
	lastIn string
}

func (m *mockEmbedder) Embed(_ context.Context, in string) (domain.EmbeddingResult, error) {
	m.lastIn = in
	return m.result, m.err
}

type mockImageEmbedder struct {
	result domain.EmbeddingResult
	err    error
}

func (m *mockImageEmbedder) EmbedImage(_ context.Context, _ []byte) (domain.EmbeddingResult, error) {
	return m.result, m.err
}

type itemSpec struct {
	id       string
	name     string
	desc     string
	category string
	color    string
	season   string
	price    int
	textVec  []float32
	imageVec []float32
}

func buildItem(spec itemSpec) domcat.Item {
	item := domcat.New(spec.id, spec.name, spec.desc, spec.category, spec.color, spec.season, "", "", spec.price)
	return item.WithVectors(spec.textVec, spec.imageVec)
}

func newTestService(items []domcat.Item) (*Service, *mockEmbedder, *mockImageEmbedder) {
	text := &mockEmbedder{result: domain.EmbeddingResult{Embedding: []float32{1, 0}}}
	image := &mockImageEmbedder{result: domain.EmbeddingResult{Embedding: []float32{1, 0}}}
	svc := New(&mockCatalog{items: items}, text, image, rank.DefaultWeights())
	return svc, text, image
}
