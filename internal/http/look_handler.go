package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/modenord/lookcart/internal/catalog"
	"github.com/modenord/lookcart/internal/domain"
	"github.com/modenord/lookcart/internal/events"
	"github.com/modenord/lookcart/internal/pricing"
	"github.com/modenord/lookcart/internal/session"
	"github.com/modenord/lookcart/internal/sizing"
	"github.com/modenord/lookcart/internal/styling"
)

// LookHandler exposes "Complete the Look" resolution, customization and
// checkout-into-cart.
type LookHandler struct {
	registry *session.Registry
	catalog  catalog.Catalog
	events   events.Publisher
	logger   *zap.Logger
}

func NewLookHandler(registry *session.Registry, cat catalog.Catalog, publisher events.Publisher, logger *zap.Logger) *LookHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LookHandler{
		registry: registry,
		catalog:  cat,
		events:   publisher,
		logger:   logger,
	}
}

type CustomizeRequestDTO struct {
	Category  string `json:"category"`
	ProductID string `json:"product_id"`
}

type AddLookRequestDTO struct {
	SizeSelections map[string]string `json:"size_selections"`
}

// LookDetailDTO is the look as the current session sees it: slots resolved
// through the customization overlay, priced as a bundle, with one
// recommended in-stock size per product.
type LookDetailDTO struct {
	Look             domain.StyleLook  `json:"look"`
	Products         []domain.Product  `json:"products"`
	Pricing          pricing.Result    `json:"pricing"`
	RecommendedSizes map[string]string `json:"recommended_sizes"`
}

// LooksForProduct lists the looks featuring a product.
func (h *LookHandler) LooksForProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")
	if _, ok := h.catalog.ProductByID(productID); !ok {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}

	looks := h.catalog.CompleteLooksForProduct(productID)
	if looks == nil {
		looks = []domain.StyleLook{}
	}
	respondJSON(w, http.StatusOK, looks)
}

// GetLook returns the session-resolved detail of one look.
func (h *LookHandler) GetLook(w http.ResponseWriter, r *http.Request) {
	look, ok := h.catalog.LookByID(chi.URLParam(r, "look_id"))
	if !ok {
		respondError(w, http.StatusNotFound, "not_found", "look not found")
		return
	}

	styl := h.styling(r)
	products := styl.ResolveProducts(look)

	respondJSON(w, http.StatusOK, LookDetailDTO{
		Look:             look,
		Products:         products,
		Pricing:          pricing.PriceBundle(look, products),
		RecommendedSizes: sizing.Recommend(products),
	})
}

// Customize opens the look for customization and records one category
// override. Overrides persist across looks within the session until reset
// or checkout.
func (h *LookHandler) Customize(w http.ResponseWriter, r *http.Request) {
	look, ok := h.catalog.LookByID(chi.URLParam(r, "look_id"))
	if !ok {
		respondError(w, http.StatusNotFound, "not_found", "look not found")
		return
	}

	var req CustomizeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if _, ok := h.catalog.ProductByID(req.ProductID); !ok {
		respondError(w, http.StatusNotFound, "not_found", "substitute product not found")
		return
	}

	styl := h.styling(r)
	styl.SetCurrentLook(look)
	if err := styl.CustomizeProduct(domain.Category(req.Category), req.ProductID); err != nil {
		if errors.Is(err, styling.ErrInvalidCategory) {
			respondError(w, http.StatusBadRequest, "invalid_category", "category is not one of the known slot categories")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, styl.Overrides())
}

// ResetCustomization clears every override for the session.
func (h *LookHandler) ResetCustomization(w http.ResponseWriter, r *http.Request) {
	h.styling(r).Reset()
	w.WriteHeader(http.StatusNoContent)
}

// AddLookToCart runs the checkout-into-cart transaction for the look.
// Partial success is success; the per-slot breakdown is in the response.
func (h *LookHandler) AddLookToCart(w http.ResponseWriter, r *http.Request) {
	look, ok := h.catalog.LookByID(chi.URLParam(r, "look_id"))
	if !ok {
		respondError(w, http.StatusNotFound, "not_found", "look not found")
		return
	}

	var req AddLookRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	result := h.styling(r).AddCompleteLookToCart(look, req.SizeSelections)
	if result.Success {
		h.events.LookAdded(r.Context(), getSessionID(r.Context()), look.ID, result.Count)
	}

	respondJSON(w, http.StatusOK, result)
}

func (h *LookHandler) styling(r *http.Request) *styling.Session {
	return h.registry.Session(getSessionID(r.Context())).Styling
}
