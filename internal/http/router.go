package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/modenord/lookcart/internal/catalog"
	"github.com/modenord/lookcart/internal/events"
	"github.com/modenord/lookcart/internal/session"
)

// NewRouter wires the full HTTP surface. Everything outside this router
// mutates cart and customization state only through these endpoints.
func NewRouter(registry *session.Registry, cat catalog.Catalog, publisher events.Publisher, logger *zap.Logger, timeout time.Duration) http.Handler {
	cartHandler := NewCartHandler(registry, cat, publisher, logger)
	lookHandler := NewLookHandler(registry, cat, publisher, logger)

	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestIDMiddleware)
	r.Use(middleware.Timeout(timeout))
	r.Use(middleware.Compress(5))
	r.Use(SessionMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/cart", func(r chi.Router) {
		r.Get("/", cartHandler.GetCart)
		r.Delete("/", cartHandler.ClearCart)
		r.Post("/items", cartHandler.AddItem)
		r.Put("/items/{item_id}", cartHandler.UpdateQuantity)
		r.Delete("/items/{item_id}", cartHandler.RemoveItem)
	})

	r.Get("/products/{product_id}/looks", lookHandler.LooksForProduct)

	r.Route("/looks/{look_id}", func(r chi.Router) {
		r.Get("/", lookHandler.GetLook)
		r.Post("/customize", lookHandler.Customize)
		r.Post("/reset", lookHandler.ResetCustomization)
		r.Post("/add-to-cart", lookHandler.AddLookToCart)
	})

	return r
}
