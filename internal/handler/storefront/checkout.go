package storefront

import (
	"log/slog"
	"net/http"

	"github.com/nkozyrev/gameshop/internal/domain"
	"github.com/nkozyrev/gameshop/internal/handler"
	"github.com/nkozyrev/gameshop/internal/service"
)

// CheckoutHandler converts the session cart into a purchase and serves the
// purchase history.
type CheckoutHandler struct {
	checkout  service.CheckoutService
	purchases service.PurchaseService
	sessions  *SessionManager
	logger    *slog.Logger
}

// NewCheckoutHandler creates a new checkout handler.
func NewCheckoutHandler(
	checkout service.CheckoutService,
	purchases service.PurchaseService,
	sessions *SessionManager,
	logger *slog.Logger,
) *CheckoutHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CheckoutHandler{
		checkout:  checkout,
		purchases: purchases,
		sessions:  sessions,
		logger:    logger,
	}
}

type historyResponse struct {
	Purchases []domain.Purchase `json:"purchases"`
}

// Complete handles POST /api/checkout.
func (h *CheckoutHandler) Complete(w http.ResponseWriter, r *http.Request) {
	token := h.sessions.Ensure(w, r)

	purchase, err := h.checkout.CompletePurchase(token)
	if err != nil {
		handler.Error(w, h.logger, err)
		return
	}
	handler.JSON(w, http.StatusCreated, purchase)
}

// History handles GET /api/purchases.
func (h *CheckoutHandler) History(w http.ResponseWriter, r *http.Request) {
	token := h.sessions.Ensure(w, r)

	history, err := h.purchases.History(token)
	if err != nil {
		handler.Error(w, h.logger, err)
		return
	}
	if history == nil {
		history = []domain.Purchase{}
	}
	handler.JSON(w, http.StatusOK, historyResponse{Purchases: history})
}
