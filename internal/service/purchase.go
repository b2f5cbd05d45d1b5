package service

import (
	"log/slog"

	"github.com/nkozyrev/gameshop/internal/domain"
	"github.com/nkozyrev/gameshop/internal/session"
)

// PurchaseService reads a session's completed purchase history.
type PurchaseService interface {
	// History returns the session's purchases, newest first.
	History(token string) ([]domain.Purchase, error)
}

type purchaseService struct {
	store  *session.Store
	logger *slog.Logger
}

// NewPurchaseService creates a new PurchaseService instance.
func NewPurchaseService(store *session.Store, logger *slog.Logger) PurchaseService {
	if logger == nil {
		logger = slog.Default()
	}
	return &purchaseService{store: store, logger: logger}
}

func (s *purchaseService) History(token string) ([]domain.Purchase, error) {
	sess, ok := s.store.Get(token)
	if !ok {
		return nil, ErrSessionNotFound
	}

	sess.Lock()
	defer sess.Unlock()
	return sess.Purchases(), nil
}
