package middleware

import (
	"context"
	"net/http"
	"time"
)

// Common size limits. The storefront API only ever receives tiny JSON
// bodies, so the default is deliberately small.
const (
	KB = 1024
	MB = 1024 * KB

	// DefaultMaxBodySize caps API request bodies.
	DefaultMaxBodySize = 64 * KB
)

// MaxBodySize rejects oversized request bodies with a 413 and wraps the rest
// in an http.MaxBytesReader so slow oversized streams are cut off too.
func MaxBodySize(maxBytes int64) func(http.Handler) http.Handler {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBodySize
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxBytes {
				respondJSONError(w, http.StatusRequestEntityTooLarge, "invalid", "Request body too large")
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// DefaultTimeout is the default request deadline.
const DefaultTimeout = 15 * time.Second

// Timeout attaches a deadline to the request context. Handlers finish their
// in-memory work quickly, so this mainly guards against stuck clients.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
