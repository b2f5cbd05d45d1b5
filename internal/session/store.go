package session

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Store holds all live sessions in a bounded, expiring in-memory cache.
// Sessions are the only stateful thing in the service; when one expires or
// is evicted, its cart and purchase history are gone, which is exactly the
// "state lives only in the browser session" contract.
type Store struct {
	mu       sync.Mutex
	sessions *expirable.LRU[string, *Session]
	logger   *slog.Logger
}

// NewStore creates a session store. capacity bounds memory use (least
// recently used sessions are evicted first); ttl bounds session lifetime.
func NewStore(capacity int, ttl time.Duration, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}

	st := &Store{logger: logger}
	st.sessions = expirable.NewLRU(capacity, st.onEvict, ttl)
	return st
}

// GetOrCreate returns the session for token, creating a fresh one when the
// token is empty, unknown, or expired. The second return value reports
// whether a new session was created, in which case the caller must send the
// new session ID back to the client.
func (st *Store) GetOrCreate(token string) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if token != "" {
		if sess, ok := st.sessions.Get(token); ok {
			return sess, false
		}
	}

	sess := &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
	}
	st.sessions.Add(sess.ID, sess)
	st.logger.Debug("session created", "session_id", sess.ID)

	return sess, true
}

// Get returns the session for token if it is still live.
func (st *Store) Get(token string) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if token == "" {
		return nil, false
	}
	return st.sessions.Get(token)
}

// Remove drops a session immediately.
func (st *Store) Remove(token string) {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.sessions.Remove(token)
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()

	return st.sessions.Len()
}

func (st *Store) onEvict(token string, sess *Session) {
	st.logger.Debug("session evicted",
		"session_id", token,
		"cart_lines", sess.Cart.Len(),
		"purchases", len(sess.History),
	)
}
