package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/modenord/lookcart/internal/cart"
	"github.com/modenord/lookcart/internal/catalog"
	"github.com/modenord/lookcart/internal/domain"
	"github.com/modenord/lookcart/internal/events"
	"github.com/modenord/lookcart/internal/session"
)

// CartHandler exposes the cart store operations over HTTP. Sellability
// checks (size actually in stock) happen here, at the caller boundary;
// the store itself does not validate them.
type CartHandler struct {
	registry *session.Registry
	catalog  catalog.Catalog
	events   events.Publisher
	logger   *zap.Logger
}

func NewCartHandler(registry *session.Registry, cat catalog.Catalog, publisher events.Publisher, logger *zap.Logger) *CartHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CartHandler{
		registry: registry,
		catalog:  cat,
		events:   publisher,
		logger:   logger,
	}
}

type AddItemRequestDTO struct {
	ProductID string `json:"product_id"`
	Size      string `json:"size"`
}

type UpdateQuantityRequestDTO struct {
	Quantity int `json:"quantity"`
}

type CartViewDTO struct {
	Items     []domain.CartItem `json:"items"`
	Total     int64             `json:"total"`
	ItemCount int               `json:"item_count"`
	Hydrated  bool              `json:"hydrated"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	store := h.store(r)
	respondJSON(w, http.StatusOK, cartView(store))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must not be empty")
		return
	}
	if req.Size == "" {
		respondError(w, http.StatusBadRequest, "invalid_size", "size must not be empty")
		return
	}

	product, ok := h.catalog.ProductByID(req.ProductID)
	if !ok {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}
	if !product.SizeInStock(req.Size) {
		respondError(w, http.StatusConflict, "size_unavailable", "requested size is not in stock")
		return
	}

	store := h.store(r)
	store.AddItem(product, req.Size)
	h.events.ItemAdded(r.Context(), getSessionID(r.Context()), product.ID, req.Size)

	respondJSON(w, http.StatusCreated, cartView(store))
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "item_id")
	if itemID == "" {
		respondError(w, http.StatusBadRequest, "invalid_item_id", "item id must not be empty")
		return
	}

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	// Zero and below removes the line; above the cap the store clamps.
	store := h.store(r)
	store.UpdateQuantity(itemID, req.Quantity)

	respondJSON(w, http.StatusOK, cartView(store))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "item_id")
	if itemID == "" {
		respondError(w, http.StatusBadRequest, "invalid_item_id", "item id must not be empty")
		return
	}

	store := h.store(r)
	store.RemoveItem(itemID)

	respondJSON(w, http.StatusOK, cartView(store))
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	store := h.store(r)
	store.Clear()

	respondJSON(w, http.StatusOK, cartView(store))
}

func (h *CartHandler) store(r *http.Request) *cart.Store {
	return h.registry.Session(getSessionID(r.Context())).Cart
}

func cartView(store *cart.Store) CartViewDTO {
	return CartViewDTO{
		Items:     store.Items(),
		Total:     store.Total(),
		ItemCount: store.ItemCount(),
		Hydrated:  store.Hydrated(),
	}
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		zap.L().Warn("failed to encode response", zap.Error(err))
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}
