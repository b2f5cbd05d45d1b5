package domain

import "time"

// PurchaseDateFormat is the display date stamped onto purchases.
const PurchaseDateFormat = "02.01.2006"

// Purchase is an immutable record of a completed checkout. Its lines are a
// deep snapshot taken at purchase time, independent of the live cart, so
// later cart mutation cannot rewrite history.
//
// The ID is a per-session monotonic sequence rather than a wall-clock stamp;
// rapid sequential checkouts therefore cannot collide.
type Purchase struct {
	ID        int64      `json:"id"`
	Lines     []CartLine `json:"items"`
	Total     float64    `json:"total"`
	CreatedAt time.Time  `json:"created_at"`
	Date      string     `json:"date"`
	PromoCode string     `json:"promo_code,omitempty"`
}

// NewPurchase freezes the cart's current state into a Purchase. The caller
// supplies the sequence number and clock; the cart is left untouched.
func NewPurchase(seq int64, cart *Cart, registry PromoRegistry, now time.Time) Purchase {
	return Purchase{
		ID:        seq,
		Lines:     cart.Lines(),
		Total:     cart.Total(registry),
		CreatedAt: now,
		Date:      now.Format(PurchaseDateFormat),
		PromoCode: cart.Promo(),
	}
}
