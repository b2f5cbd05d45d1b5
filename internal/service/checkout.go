package service

import (
	"log/slog"
	"time"

	"github.com/nkozyrev/gameshop/internal/domain"
	"github.com/nkozyrev/gameshop/internal/session"
	"github.com/nkozyrev/gameshop/internal/telemetry"
)

// CheckoutService converts a non-empty cart into an immutable purchase.
type CheckoutService interface {
	// CompletePurchase snapshots the cart, records the purchase at the
	// head of the session's history, and clears the cart. An empty cart
	// fails with ErrEmptyCart and leaves everything untouched.
	CompletePurchase(token string) (*domain.Purchase, error)
}

type checkoutService struct {
	store   *session.Store
	promos  domain.PromoRegistry
	logger  *slog.Logger
	metrics *telemetry.BusinessMetrics
}

// NewCheckoutService creates a new CheckoutService instance.
func NewCheckoutService(
	store *session.Store,
	promos domain.PromoRegistry,
	logger *slog.Logger,
	metrics *telemetry.BusinessMetrics,
) CheckoutService {
	if logger == nil {
		logger = slog.Default()
	}
	return &checkoutService{
		store:   store,
		promos:  promos,
		logger:  logger,
		metrics: metrics,
	}
}

// CompletePurchase runs the whole snapshot-record-clear-append sequence under
// the session lock, so the operation is atomic from the caller's view.
func (s *checkoutService) CompletePurchase(token string) (*domain.Purchase, error) {
	sess, ok := s.store.Get(token)
	if !ok {
		return nil, ErrSessionNotFound
	}

	sess.Lock()
	defer sess.Unlock()

	if sess.Cart.Len() == 0 {
		s.metrics.RecordEmptyCartCheckout()
		return nil, ErrEmptyCart
	}

	purchase := domain.NewPurchase(sess.NextPurchaseSeq(), &sess.Cart, s.promos, time.Now())
	sess.Cart.Clear()
	sess.Prepend(purchase)

	s.metrics.RecordCheckout(purchase.Total, countUnits(purchase.Lines))
	s.logger.Info("purchase completed",
		"session_id", sess.ID,
		"purchase_id", purchase.ID,
		"total", purchase.Total,
		"promo_code", purchase.PromoCode,
	)

	return &purchase, nil
}

func countUnits(lines []domain.CartLine) int {
	var n int
	for _, line := range lines {
		n += line.Quantity
	}
	return n
}
