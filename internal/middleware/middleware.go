// Package middleware provides HTTP middleware shared across the storefront
// API: request IDs, rate limiting, Prometheus metrics, body limits, and
// security headers.
package middleware

import (
	"encoding/json"
	"net/http"
)

// contextKey is a private type for request context keys.
type contextKey string

// respondJSONError writes a small structured error body. The API is
// JSON-only, so middleware never falls back to plain text.
func respondJSONError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
