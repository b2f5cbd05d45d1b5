package service

import (
	"log/slog"

	"github.com/nkozyrev/gameshop/internal/catalog"
	"github.com/nkozyrev/gameshop/internal/domain"
	"github.com/nkozyrev/gameshop/internal/session"
	"github.com/nkozyrev/gameshop/internal/telemetry"
)

// CartService provides business logic for shopping cart operations.
// All methods resolve the caller's session by its cookie token; the cart
// itself never leaves the session, only summaries do.
type CartService interface {
	// Summary returns the cart with calculated totals.
	Summary(token string) (*CartSummary, error)

	// AddItem adds one unit of a catalog item to the cart, incrementing
	// the quantity if the item is already present.
	AddItem(token string, itemID int64) (*CartSummary, error)

	// UpdateQuantity sets a line's quantity exactly.
	// Zero or negative removes the line.
	UpdateQuantity(token string, itemID int64, quantity int) (*CartSummary, error)

	// RemoveItem removes a line. Absent lines are a no-op.
	RemoveItem(token string, itemID int64) (*CartSummary, error)

	// ApplyPromo validates a raw promo code. A miss leaves any previously
	// applied code in place.
	ApplyPromo(token string, code string) (*PromoResult, error)

	// ClearPromo unsets the applied promo code.
	ClearPromo(token string) (*CartSummary, error)
}

// CartSummary aggregates cart contents with calculated totals.
type CartSummary struct {
	Lines        []domain.CartLine `json:"lines"`
	ItemCount    int               `json:"item_count"`
	Subtotal     float64           `json:"subtotal"`
	Total        float64           `json:"total"`
	PromoCode    string            `json:"promo_code,omitempty"`
	PromoPercent int               `json:"promo_percent,omitempty"`
}

// PromoResult reports the outcome of a promo code attempt. A rejected code
// is an expected condition, not an error: Applied is false and the summary
// still reflects whatever code was in force before the attempt.
type PromoResult struct {
	Applied         bool         `json:"applied"`
	Code            string       `json:"code,omitempty"`
	DiscountPercent int          `json:"discount_percent,omitempty"`
	Summary         *CartSummary `json:"summary"`
}

type cartService struct {
	store   *session.Store
	catalog catalog.Provider
	promos  domain.PromoRegistry
	logger  *slog.Logger
	metrics *telemetry.BusinessMetrics
}

// NewCartService creates a new CartService instance.
func NewCartService(
	store *session.Store,
	provider catalog.Provider,
	promos domain.PromoRegistry,
	logger *slog.Logger,
	metrics *telemetry.BusinessMetrics,
) CartService {
	if logger == nil {
		logger = slog.Default()
	}
	return &cartService{
		store:   store,
		catalog: provider,
		promos:  promos,
		logger:  logger,
		metrics: metrics,
	}
}

func (s *cartService) Summary(token string) (*CartSummary, error) {
	sess, ok := s.store.Get(token)
	if !ok {
		return nil, ErrSessionNotFound
	}

	sess.Lock()
	defer sess.Unlock()
	return s.summaryLocked(sess), nil
}

func (s *cartService) AddItem(token string, itemID int64) (*CartSummary, error) {
	sess, ok := s.store.Get(token)
	if !ok {
		return nil, ErrSessionNotFound
	}

	item, err := s.catalog.Get(itemID)
	if err != nil {
		return nil, ErrItemNotFound
	}

	sess.Lock()
	defer sess.Unlock()

	sess.Cart.AddItem(item)
	s.metrics.RecordItemAdded(string(item.Rarity))
	s.logger.Debug("cart item added",
		"session_id", sess.ID,
		"item_id", item.ID,
		"cart_lines", sess.Cart.Len(),
	)

	return s.summaryLocked(sess), nil
}

func (s *cartService) UpdateQuantity(token string, itemID int64, quantity int) (*CartSummary, error) {
	sess, ok := s.store.Get(token)
	if !ok {
		return nil, ErrSessionNotFound
	}

	sess.Lock()
	defer sess.Unlock()

	sess.Cart.UpdateQuantity(itemID, quantity)
	s.metrics.RecordCartUpdated()
	s.logger.Debug("cart quantity updated",
		"session_id", sess.ID,
		"item_id", itemID,
		"quantity", quantity,
	)

	return s.summaryLocked(sess), nil
}

func (s *cartService) RemoveItem(token string, itemID int64) (*CartSummary, error) {
	sess, ok := s.store.Get(token)
	if !ok {
		return nil, ErrSessionNotFound
	}

	sess.Lock()
	defer sess.Unlock()

	sess.Cart.RemoveItem(itemID)
	s.metrics.RecordItemRemoved()

	return s.summaryLocked(sess), nil
}

func (s *cartService) ApplyPromo(token string, code string) (*PromoResult, error) {
	sess, ok := s.store.Get(token)
	if !ok {
		return nil, ErrSessionNotFound
	}

	sess.Lock()
	defer sess.Unlock()

	percent, applied := sess.Cart.ApplyPromo(s.promos, code)
	normalized := domain.NormalizePromoCode(code)
	s.metrics.RecordPromo(normalized, applied)

	if !applied {
		s.logger.Debug("promo code rejected", "session_id", sess.ID)
		return &PromoResult{
			Applied: false,
			Summary: s.summaryLocked(sess),
		}, nil
	}

	s.logger.Info("promo code applied",
		"session_id", sess.ID,
		"code", normalized,
		"discount_percent", percent,
	)

	return &PromoResult{
		Applied:         true,
		Code:            normalized,
		DiscountPercent: percent,
		Summary:         s.summaryLocked(sess),
	}, nil
}

func (s *cartService) ClearPromo(token string) (*CartSummary, error) {
	sess, ok := s.store.Get(token)
	if !ok {
		return nil, ErrSessionNotFound
	}

	sess.Lock()
	defer sess.Unlock()

	sess.Cart.ClearPromo()
	return s.summaryLocked(sess), nil
}

// summaryLocked builds a CartSummary. Caller must hold the session lock.
func (s *cartService) summaryLocked(sess *session.Session) *CartSummary {
	summary := &CartSummary{
		Lines:     sess.Cart.Lines(),
		ItemCount: sess.Cart.ItemCount(),
		Subtotal:  sess.Cart.Subtotal(),
		Total:     sess.Cart.Total(s.promos),
		PromoCode: sess.Cart.Promo(),
	}
	if summary.PromoCode != "" {
		if percent, ok := s.promos.Lookup(summary.PromoCode); ok {
			summary.PromoPercent = percent
		}
	}
	return summary
}
