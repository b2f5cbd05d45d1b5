package session

import (
	"sync"
	"time"

	"github.com/nkozyrev/gameshop/internal/domain"
)

// Session is the unit of state for one anonymous browser session: a cart, a
// purchase history, and the purchase sequence counter. Everything a session
// owns disappears together when the store expires it.
//
// The embedded mutex serializes all operations on the session, so the cart
// engine below it always sees the strictly sequential call order the business
// rules assume. Callers (the service layer) hold the lock for the duration of
// each operation.
type Session struct {
	sync.Mutex

	ID        string
	CreatedAt time.Time

	Cart    domain.Cart
	History []domain.Purchase

	// PurchaseSeq is the last issued purchase sequence number.
	PurchaseSeq int64
}

// NextPurchaseSeq increments and returns the purchase sequence.
// Caller must hold the session lock.
func (s *Session) NextPurchaseSeq() int64 {
	s.PurchaseSeq++
	return s.PurchaseSeq
}

// Prepend records a completed purchase at the head of the history
// (newest first). Caller must hold the session lock.
func (s *Session) Prepend(p domain.Purchase) {
	s.History = append([]domain.Purchase{p}, s.History...)
}

// Purchases returns a copy of the history, newest first.
// Caller must hold the session lock.
func (s *Session) Purchases() []domain.Purchase {
	history := make([]domain.Purchase, len(s.History))
	copy(history, s.History)
	return history
}
