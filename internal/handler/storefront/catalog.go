package storefront

import (
	"net/http"

	"github.com/nkozyrev/gameshop/internal/catalog"
	"github.com/nkozyrev/gameshop/internal/domain"
	"github.com/nkozyrev/gameshop/internal/handler"
	"github.com/nkozyrev/gameshop/internal/telemetry"
)

// CatalogHandler serves the read-only item catalog.
type CatalogHandler struct {
	catalog catalog.Provider
	metrics *telemetry.BusinessMetrics
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(provider catalog.Provider, metrics *telemetry.BusinessMetrics) *CatalogHandler {
	return &CatalogHandler{catalog: provider, metrics: metrics}
}

type catalogResponse struct {
	Items []domain.Item `json:"items"`
}

// List handles GET /api/catalog.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	h.metrics.RecordCatalogView()
	handler.JSON(w, http.StatusOK, catalogResponse{Items: h.catalog.List()})
}
