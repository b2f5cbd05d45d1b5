package storefront

import (
	"net/http"
	"time"

	"github.com/nkozyrev/gameshop/internal/cookie"
	"github.com/nkozyrev/gameshop/internal/session"
)

// SessionManager resolves the storefront session for a request, creating a
// fresh one (and setting its cookie) when the client has none or an expired
// one. Every stateful endpoint goes through Ensure so "no session yet" never
// surfaces to the browser as an error.
type SessionManager struct {
	store   *session.Store
	cookies *cookie.Config
	ttl     time.Duration
}

// NewSessionManager creates a session manager. ttl should match the store's
// session TTL so cookies and server state expire together.
func NewSessionManager(store *session.Store, cookies *cookie.Config, ttl time.Duration) *SessionManager {
	return &SessionManager{store: store, cookies: cookies, ttl: ttl}
}

// Ensure returns the request's session token, minting a session and cookie
// when needed.
func (m *SessionManager) Ensure(w http.ResponseWriter, r *http.Request) string {
	token := cookie.Get(r, cookie.SessionCookieName)
	sess, created := m.store.GetOrCreate(token)
	if created {
		m.cookies.SetSession(w, sess.ID, m.ttl)
	}
	return sess.ID
}
