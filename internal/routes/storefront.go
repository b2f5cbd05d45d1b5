package routes

import (
	"net/http"

	"github.com/nkozyrev/gameshop/internal/middleware"
	"github.com/nkozyrev/gameshop/internal/router"
)

// RegisterStorefrontRoutes registers all storefront API routes. Checkout and
// promo application get a stricter rate limit than browsing.
func RegisterStorefrontRoutes(r *router.Router, deps StorefrontDeps) {
	// Catalog
	r.Get("/api/catalog", deps.CatalogHandler.List)

	// Cart
	r.Get("/api/cart", deps.CartHandler.View)
	r.Post("/api/cart/items", deps.CartHandler.Add)
	r.Put("/api/cart/items/{id}", deps.CartHandler.Update)
	r.Delete("/api/cart/items/{id}", deps.CartHandler.Remove)

	// Promo codes and checkout, behind the strict limiter
	strict := r.Group(middleware.RateLimit(middleware.StrictRateLimiterConfig()))
	strict.Post("/api/cart/promo", deps.CartHandler.ApplyPromo)
	strict.Post("/api/checkout", deps.CheckoutHandler.Complete)

	r.Delete("/api/cart/promo", deps.CartHandler.ClearPromo)
	r.Get("/api/purchases", deps.CheckoutHandler.History)

	// Support chat
	r.Get("/api/support/topics", deps.ChatHandler.Topics)
	r.Get("/ws/support", deps.ChatHandler.Serve)

	// Operational endpoints
	r.Get("/health", healthCheck)
	if deps.MetricsHandler != nil {
		r.Handle(http.MethodGet, "/metrics", deps.MetricsHandler)
	}
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
