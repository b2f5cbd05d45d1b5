// Package cookie provides session cookie helpers for the storefront.
// All session cookies go through this package so scoping and flags stay
// consistent across handlers.
package cookie

import (
	"net/http"
	"time"
)

// SessionCookieName identifies the anonymous storefront session.
const SessionCookieName = "gameshop_session"

// Config holds cookie configuration.
type Config struct {
	// Secure determines whether cookies require HTTPS.
	// Should be true in production, false in development.
	Secure bool
}

// NewConfig creates a new cookie configuration.
func NewConfig(secure bool) *Config {
	return &Config{Secure: secure}
}

// SetSession sets the session cookie. HttpOnly keeps the token away from
// page scripts; SameSite=Lax allows top-level navigations while blocking
// cross-site POSTs.
func (c *Config) SetSession(w http.ResponseWriter, value string, maxAge time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSession removes the session cookie.
func (c *Config) ClearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Get retrieves a cookie value from the request.
// Returns empty string if the cookie is not present.
func Get(r *http.Request, name string) string {
	ck, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return ck.Value
}
