package storefront

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/nkozyrev/gameshop/internal/domain"
	"github.com/nkozyrev/gameshop/internal/handler"
	"github.com/nkozyrev/gameshop/internal/service"
)

// CartHandler handles all cart-related storefront routes.
type CartHandler struct {
	carts    service.CartService
	sessions *SessionManager
	logger   *slog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(carts service.CartService, sessions *SessionManager, logger *slog.Logger) *CartHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CartHandler{
		carts:    carts,
		sessions: sessions,
		logger:   logger,
	}
}

type addItemRequest struct {
	ItemID int64 `json:"item_id" validate:"required,min=1"`
}

type updateQuantityRequest struct {
	// Quantity is absolute; zero or below removes the line, so no lower
	// bound is enforced here.
	Quantity int `json:"quantity"`
}

type applyPromoRequest struct {
	Code string `json:"code" validate:"required,max=64"`
}

// View handles GET /api/cart.
func (h *CartHandler) View(w http.ResponseWriter, r *http.Request) {
	token := h.sessions.Ensure(w, r)

	summary, err := h.carts.Summary(token)
	if err != nil {
		handler.Error(w, h.logger, err)
		return
	}
	handler.JSON(w, http.StatusOK, summary)
}

// Add handles POST /api/cart/items.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := handler.Decode(r, &req); err != nil {
		handler.Error(w, h.logger, err)
		return
	}

	token := h.sessions.Ensure(w, r)

	summary, err := h.carts.AddItem(token, req.ItemID)
	if err != nil {
		handler.Error(w, h.logger, err)
		return
	}
	handler.JSON(w, http.StatusOK, summary)
}

// Update handles PUT /api/cart/items/{id}.
func (h *CartHandler) Update(w http.ResponseWriter, r *http.Request) {
	itemID, err := itemIDFromPath(r)
	if err != nil {
		handler.Error(w, h.logger, err)
		return
	}

	var req updateQuantityRequest
	if err := handler.Decode(r, &req); err != nil {
		handler.Error(w, h.logger, err)
		return
	}

	token := h.sessions.Ensure(w, r)

	summary, err := h.carts.UpdateQuantity(token, itemID, req.Quantity)
	if err != nil {
		handler.Error(w, h.logger, err)
		return
	}
	handler.JSON(w, http.StatusOK, summary)
}

// Remove handles DELETE /api/cart/items/{id}.
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	itemID, err := itemIDFromPath(r)
	if err != nil {
		handler.Error(w, h.logger, err)
		return
	}

	token := h.sessions.Ensure(w, r)

	summary, err := h.carts.RemoveItem(token, itemID)
	if err != nil {
		handler.Error(w, h.logger, err)
		return
	}
	handler.JSON(w, http.StatusOK, summary)
}

// ApplyPromo handles POST /api/cart/promo.
func (h *CartHandler) ApplyPromo(w http.ResponseWriter, r *http.Request) {
	var req applyPromoRequest
	if err := handler.Decode(r, &req); err != nil {
		handler.Error(w, h.logger, err)
		return
	}

	token := h.sessions.Ensure(w, r)

	result, err := h.carts.ApplyPromo(token, req.Code)
	if err != nil {
		handler.Error(w, h.logger, err)
		return
	}
	// A rejected code is a normal 200 with applied=false; the client shows
	// its own notification and any prior discount stays in force.
	handler.JSON(w, http.StatusOK, result)
}

// ClearPromo handles DELETE /api/cart/promo.
func (h *CartHandler) ClearPromo(w http.ResponseWriter, r *http.Request) {
	token := h.sessions.Ensure(w, r)

	summary, err := h.carts.ClearPromo(token)
	if err != nil {
		handler.Error(w, h.logger, err)
		return
	}
	handler.JSON(w, http.StatusOK, summary)
}

func itemIDFromPath(r *http.Request) (int64, error) {
	itemID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || itemID < 1 {
		return 0, domain.Invalid("cart.path", "Invalid item ID")
	}
	return itemID, nil
}
