// Package chi implements the HTTP API on top of the go-chi router.
package chi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/lookbook-io/lookbook/internal/domain"
	domcat "github.com/lookbook-io/lookbook/internal/domain/catalog"
	healthuc "github.com/lookbook-io/lookbook/internal/usecase/health"
	scoringuc "github.com/lookbook-io/lookbook/internal/usecase/scoring"
)

// maxImageBytes caps the request body for image-based recommendations.
const maxImageBytes = 10 << 20

// Searcher runs text searches.
type Searcher interface {
	SearchByText(ctx context.Context, rawQuery string, topK int) (scoringuc.Result, error)
}

// Recommender runs all recommendation flows.
type Recommender interface {
	ByProduct(ctx context.Context, productID string) ([]domcat.Item, error)
	ByText(ctx context.Context, rawQuery string) ([]domcat.Item, error)
	ByImage(ctx context.Context, image []byte) ([]domcat.Item, error)
	ByColor(ctx context.Context, productID string) ([]domcat.Item, error)
	ByPriceRange(ctx context.Context, productID string, priceDiff int) ([]domcat.Item, error)
	BySeason(ctx context.Context, season, category string) ([]domcat.Item, error)
	Coordination(ctx context.Context, productID string) ([]domcat.Item, error)
}

// ProductStore persists catalog products.
type ProductStore interface {
	Upsert(ctx context.Context, item domcat.Item) (bool, error)
	Get(ctx context.Context, id string) (domcat.Item, error)
	List(ctx context.Context) ([]domcat.Item, error)
	Delete(ctx context.Context, id string) error
}

// HealthChecker reports aggregated component health.
type HealthChecker interface {
	Check(ctx context.Context) healthuc.Report
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server wires use case services into HTTP handlers.
type Server struct {
	search        Searcher
	recommend     Recommender
	products      ProductStore
	embed         domain.Embedder
	health        HealthChecker
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	search Searcher,
	recommend Recommender,
	products ProductStore,
	embed domain.Embedder,
	health HealthChecker,
	logger *zap.Logger,
) *Server {
	s := &Server{
		search:    search,
		recommend: recommend,
		products:  products,
		embed:     embed,
		health:    health,
		logger:    logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidRequest, http.StatusBadRequest, codeInvalidRequest),
		sentinelHandler(domain.ErrVectorDimMismatch, http.StatusBadRequest, codeVectorDimMismatch),
		sentinelHandler(domain.ErrProductNotFound, http.StatusNotFound, codeProductNotFound),
		sentinelHandler(domain.ErrVectorNotFound, http.StatusNotFound, codeVectorNotFound),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, codeNotFound),
		sentinelHandler(domain.ErrModelUnavailable, http.StatusServiceUnavailable, codeModelUnavailable),
		sentinelHandler(domain.ErrEmbeddingProviderError, http.StatusBadGateway, codeEmbeddingProviderError),
	}
	return s
}

// Register mounts all API routes on the router.
func (s *Server) Register(r chi.Router) {
	r.Get("/health", s.healthCheck)
	r.Get("/metrics", s.metrics)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/search", s.searchByText)

		r.Route("/products", func(r chi.Router) {
			r.Get("/", s.listProducts)
			r.Post("/", s.upsertProduct)
			r.Get("/{id}", s.getProduct)
			r.Delete("/{id}", s.deleteProduct)
		})

		r.Route("/recommend", func(r chi.Router) {
			r.Get("/by-product/{id}", s.recommendByProduct)
			r.Get("/by-text", s.recommendByText)
			r.Post("/by-image", s.recommendByImage)
			r.Get("/by-color/{id}", s.recommendByColor)
			r.Get("/by-price-range/{id}", s.recommendByPriceRange)
			r.Get("/by-season", s.recommendBySeason)
			r.Get("/coordination/{id}", s.recommendCoordination)
		})
	})
}

// searchByText handles GET /api/v1/search.
func (s *Server) searchByText(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("query")
	if q == "" {
		writeError(w, http.StatusBadRequest, codeInvalidRequest, "query parameter is required")
		return
	}

	topK := 0
	if raw := r.URL.Query().Get("top_k"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, codeInvalidRequest, "top_k must be a positive integer")
			return
		}
		topK = n
	}

	res, err := s.search.SearchByText(r.Context(), q, topK)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Query:    q,
		Mode:     string(res.Mode),
		Keywords: res.Keywords,
		Items:    productsToPayload(res.Items),
		Total:    len(res.Items),
	})
}

// recommendByProduct handles GET /api/v1/recommend/by-product/{id}.
func (s *Server) recommendByProduct(w http.ResponseWriter, r *http.Request) {
	items, err := s.recommend.ByProduct(r.Context(), chi.URLParam(r, "id"))
	s.writeRecommendation(w, items, err)
}

// recommendByText handles GET /api/v1/recommend/by-text.
func (s *Server) recommendByText(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("query")
	if q == "" {
		writeError(w, http.StatusBadRequest, codeInvalidRequest, "query parameter is required")
		return
	}
	items, err := s.recommend.ByText(r.Context(), q)
	s.writeRecommendation(w, items, err)
}

// recommendByImage handles POST /api/v1/recommend/by-image.
// The request body is the raw image bytes.
func (s *Server) recommendByImage(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, maxImageBytes)
	image, err := io.ReadAll(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequest, "failed to read image body")
		return
	}
	if len(image) == 0 {
		writeError(w, http.StatusBadRequest, codeInvalidRequest, "image body is required")
		return
	}

	items, err := s.recommend.ByImage(r.Context(), image)
	s.writeRecommendation(w, items, err)
}

// recommendByColor handles GET /api/v1/recommend/by-color/{id}.
func (s *Server) recommendByColor(w http.ResponseWriter, r *http.Request) {
	items, err := s.recommend.ByColor(r.Context(), chi.URLParam(r, "id"))
	s.writeRecommendation(w, items, err)
}

// recommendByPriceRange handles GET /api/v1/recommend/by-price-range/{id}.
func (s *Server) recommendByPriceRange(w http.ResponseWriter, r *http.Request) {
	priceDiff := 0
	if raw := r.URL.Query().Get("price_diff"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, codeInvalidRequest, "price_diff must be a positive integer")
			return
		}
		priceDiff = n
	}

	items, err := s.recommend.ByPriceRange(r.Context(), chi.URLParam(r, "id"), priceDiff)
	s.writeRecommendation(w, items, err)
}

// recommendBySeason handles GET /api/v1/recommend/by-season.
func (s *Server) recommendBySeason(w http.ResponseWriter, r *http.Request) {
	season := r.URL.Query().Get("season")
	category := r.URL.Query().Get("category")
	items, err := s.recommend.BySeason(r.Context(), season, category)
	s.writeRecommendation(w, items, err)
}

// recommendCoordination handles GET /api/v1/recommend/coordination/{id}.
func (s *Server) recommendCoordination(w http.ResponseWriter, r *http.Request) {
	items, err := s.recommend.Coordination(r.Context(), chi.URLParam(r, "id"))
	s.writeRecommendation(w, items, err)
}

// upsertProduct handles POST /api/v1/products. The text vector is computed
// from the product's search text at write time; the image vector is filled
// in by the seeder pipeline.
func (s *Server) upsertProduct(w http.ResponseWriter, r *http.Request) {
	var req productPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequest, "invalid request body: "+err.Error())
		return
	}
	if req.ID == "" || req.Name == "" || req.Category == "" {
		writeError(w, http.StatusBadRequest, codeInvalidRequest, "id, name and category are required")
		return
	}

	item := domcat.New(
		req.ID, req.Name, req.Description, req.Category,
		req.Color, req.Season, req.Brand, req.ImageURL, req.Price,
	)

	emb, err := s.embed.Embed(r.Context(), item.SearchText())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	item = item.WithVectors(emb.Embedding, nil)

	created, err := s.products.Upsert(r.Context(), item)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, productToPayload(&item))
}

// getProduct handles GET /api/v1/products/{id}.
func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	item, err := s.products.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, productToPayload(&item))
}

// listProducts handles GET /api/v1/products.
func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	items, err := s.products.List(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, productListResponse{
		Items: productsToPayload(items),
		Total: len(items),
	})
}

// deleteProduct handles DELETE /api/v1/products/{id}.
func (s *Server) deleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := s.products.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// healthCheck handles GET /health.
func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}
	writeJSON(w, httpStatus, report)
}

// metrics handles GET /metrics.
func (s *Server) metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// writeRecommendation writes a recommendation result. An empty candidate pool
// is an empty list, not an error.
func (s *Server) writeRecommendation(w http.ResponseWriter, items []domcat.Item, err error) {
	if err != nil && !errors.Is(err, domain.ErrEmptyCandidatePool) {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, recommendResponse{
		Items: productsToPayload(items),
		Total: len(items),
	})
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
