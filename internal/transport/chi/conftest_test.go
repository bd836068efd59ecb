package chi

import (
	"context"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/lookbook-io/lookbook/internal/domain"
	domcat "github.com/lookbook-io/lookbook/internal/domain/catalog"
	healthuc "github.com/lookbook-io/lookbook/internal/usecase/health"
	scoringuc "github.com/lookbook-io/lookbook/internal/usecase/scoring"
)

type mockSearch struct {
	result scoringuc.Result
	err    error

	lastQuery string
	lastTopK  int
}

func (m *mockSearch) SearchByText(_ context.Context, rawQuery string, topK int) (scoringuc.Result, error) {
	m.lastQuery = rawQuery
	m.lastTopK = topK
	return m.result, m.err
}

type mockRecommend struct {
	items []domcat.Item
	err   error

	lastID        string
	lastQuery     string
	lastImage     []byte
	lastPriceDiff int
	lastSeason    string
	lastCategory  string
}

func (m *mockRecommend) ByProduct(_ context.Context, id string) ([]domcat.Item, error) {
	m.lastID = id
	return m.items, m.err
}

func (m *mockRecommend) ByText(_ context.Context, rawQuery string) ([]domcat.Item, error) {
	m.lastQuery = rawQuery
	return m.items, m.err
}

func (m *mockRecommend) ByImage(_ context.Context, image []byte) ([]domcat.Item, error) {
	m.lastImage = image
	return m.items, m.err
}

func (m *mockRecommend) ByColor(_ context.Context, id string) ([]domcat.Item, error) {
	m.lastID = id
	return m.items, m.err
}

func (m *mockRecommend) ByPriceRange(_ context.Context, id string, priceDiff int) ([]domcat.Item, error) {
	m.lastID = id
	m.lastPriceDiff = priceDiff
	return m.items, m.err
}

func (m *mockRecommend) BySeason(_ context.Context, season, category string) ([]domcat.Item, error) {
	m.lastSeason = season
	m.lastCategory = category
	return m.items, m.err
}

func (m *mockRecommend) Coordination(_ context.Context, id string) ([]domcat.Item, error) {
	m.lastID = id
	return m.items, m.err
}

type mockProducts struct {
	items   map[string]domcat.Item
	created bool
	err     error

	lastUpserted domcat.Item
}

func newMockProducts() *mockProducts {
	return &mockProducts{items: make(map[string]domcat.Item), created: true}
}

func (m *mockProducts) Upsert(_ context.Context, item domcat.Item) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	m.lastUpserted = item
	m.items[item.ID()] = item
	return m.created, nil
}

func (m *mockProducts) Get(_ context.Context, id string) (domcat.Item, error) {
	if m.err != nil {
		return domcat.Item{}, m.err
	}
	item, ok := m.items[id]
	if !ok {
		return domcat.Item{}, domain.ErrProductNotFound
	}
	return item, nil
}

func (m *mockProducts) List(_ context.Context) ([]domcat.Item, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]domcat.Item, 0, len(m.items))
	for _, item := range m.items {
		out = append(out, item)
	}
	return out, nil
}

func (m *mockProducts) Delete(_ context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.items[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(m.items, id)
	return nil
}

type mockEmbedder struct {
	vector []float32
	err    error

	lastInput string
}

func (m *mockEmbedder) Embed(_ context.Context, text string) (domain.EmbeddingResult, error) {
	m.lastInput = text
	if m.err != nil {
		return domain.EmbeddingResult{}, m.err
	}
	return domain.EmbeddingResult{Embedding: m.vector, TotalTokens: 3}, nil
}

type mockHealth struct {
	report healthuc.Report
}

func (m *mockHealth) Check(_ context.Context) healthuc.Report {
	return m.report
}

type testEnv struct {
	search    *mockSearch
	recommend *mockRecommend
	products  *mockProducts
	embed     *mockEmbedder
	health    *mockHealth
	router    chi.Router
}

func newTestEnv() *testEnv {
	env := &testEnv{
		search:    &mockSearch{},
		recommend: &mockRecommend{},
		products:  newMockProducts(),
		embed:     &mockEmbedder{vector: []float32{0.1, 0.2, 0.3}},
		health: &mockHealth{report: healthuc.Report{
			Status: healthuc.Healthy,
			Checks: map[string]healthuc.CheckResult{"database": healthuc.CheckOK},
		}},
	}

	srv := NewServer(env.search, env.recommend, env.products, env.embed, env.health, zap.NewNop())
	env.router = chi.NewRouter()
	srv.Register(env.router)
	return env
}

func testItem(id, name, category string) domcat.Item {
	return domcat.New(id, name, "", category, "블랙", "겨울", "룩북", "http://img/"+id+".jpg", 39000)
}
