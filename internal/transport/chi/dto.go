package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lookbook-io/lookbook/internal/domain"
	domcat "github.com/lookbook-io/lookbook/internal/domain/catalog"
)

// Error codes returned to clients.
const (
	codeInvalidRequest         = "invalid_request"
	codeVectorDimMismatch      = "vector_dim_mismatch"
	codeProductNotFound        = "product_not_found"
	codeVectorNotFound         = "vector_not_found"
	codeNotFound               = "not_found"
	codeModelUnavailable       = "model_unavailable"
	codeEmbeddingProviderError = "embedding_provider_error"
	codeInternalError          = "internal_error"
)

// errorResponse is the JSON body for all error statuses.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// productPayload is the wire form of a catalog product. Vectors never cross
// the HTTP boundary; presence flags stand in for them.
type productPayload struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	Category       string `json:"category"`
	Color          string `json:"color,omitempty"`
	Season         string `json:"season,omitempty"`
	Brand          string `json:"brand,omitempty"`
	ImageURL       string `json:"image_url,omitempty"`
	Price          int    `json:"price"`
	HasTextVector  bool   `json:"has_text_vector"`
	HasImageVector bool   `json:"has_image_vector"`
}

type productListResponse struct {
	Items []productPayload `json:"items"`
	Total int              `json:"total"`
}

type searchResponse struct {
	Query    string           `json:"query"`
	Mode     string           `json:"mode"`
	Keywords []string         `json:"keywords,omitempty"`
	Items    []productPayload `json:"items"`
	Total    int              `json:"total"`
}

type recommendResponse struct {
	Items []productPayload `json:"items"`
	Total int              `json:"total"`
}

func productToPayload(item *domcat.Item) productPayload {
	return productPayload{
		ID:             item.ID(),
		Name:           item.Name(),
		Description:    item.Description(),
		Category:       item.Category(),
		Color:          item.Color(),
		Season:         item.Season(),
		Brand:          item.Brand(),
		ImageURL:       item.ImageURL(),
		Price:          item.Price(),
		HasTextVector:  len(item.TextVector()) > 0,
		HasImageVector: len(item.ImageVector()) > 0,
	}
}

func productsToPayload(items []domcat.Item) []productPayload {
	out := make([]productPayload, len(items))
	for i := range items {
		out[i] = productToPayload(&items[i])
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

// safeDomainMessage returns a sentinel error message for the client without
// exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrInvalidRequest,
		domain.ErrVectorDimMismatch,
		domain.ErrProductNotFound,
		domain.ErrVectorNotFound,
		domain.ErrNotFound,
		domain.ErrModelUnavailable,
		domain.ErrEmbeddingProviderError,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}
