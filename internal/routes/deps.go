// Package routes maps URL patterns to handlers.
package routes

import (
	"net/http"

	"github.com/nkozyrev/gameshop/internal/handler/storefront"
	"github.com/nkozyrev/gameshop/internal/handler/support"
)

// StorefrontDeps contains dependencies for the storefront API routes.
type StorefrontDeps struct {
	// Catalog
	CatalogHandler *storefront.CatalogHandler

	// Cart and promo codes
	CartHandler *storefront.CartHandler

	// Checkout and purchase history
	CheckoutHandler *storefront.CheckoutHandler

	// Support chat
	ChatHandler *support.ChatHandler

	// MetricsHandler serves the Prometheus scrape endpoint.
	MetricsHandler http.Handler
}
