package domain

// CartLine pairs an item snapshot with a quantity. A cart holds at most one
// line per item ID; quantity is always >= 1 while the line exists.
type CartLine struct {
	Item     Item `json:"item"`
	Quantity int  `json:"quantity"`
}

// LineSubtotal returns price x quantity for this line.
func (l CartLine) LineSubtotal() float64 {
	return l.Item.Price * float64(l.Quantity)
}

// Cart is the mutable per-session shopping cart: an insertion-ordered list of
// lines plus the currently applied promo code. It holds business state only;
// transient UI state such as raw promo input belongs to the caller.
//
// Cart is not safe for concurrent use. The session layer serializes access,
// so every operation here runs to completion before the next user action.
type Cart struct {
	lines []CartLine
	promo string // applied promo code, already normalized; "" when none
}

// AddItem adds one unit of item to the cart. If a line with the same item ID
// already exists its quantity is incremented, otherwise a new line is
// appended. Always succeeds.
func (c *Cart) AddItem(item Item) {
	for i := range c.lines {
		if c.lines[i].Item.ID == item.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, CartLine{Item: item, Quantity: 1})
}

// RemoveItem deletes the line matching id. Removing an absent id is a no-op,
// not an error.
func (c *Cart) RemoveItem(id int64) {
	for i := range c.lines {
		if c.lines[i].Item.ID == id {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the line's quantity to quantity exactly (not a delta).
// A quantity of zero or below removes the line, matching RemoveItem.
func (c *Cart) UpdateQuantity(id int64, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(id)
		return
	}
	for i := range c.lines {
		if c.lines[i].Item.ID == id {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

// Subtotal sums price x quantity over all lines in insertion order.
func (c *Cart) Subtotal() float64 {
	var sum float64
	for _, line := range c.lines {
		sum += line.LineSubtotal()
	}
	return sum
}

// Total returns the subtotal with the applied promo discount factored in.
// The discount divides last (subtotal x (100-d) / 100) so whole-number
// prices produce exact totals. An applied code missing from the registry
// should not happen given apply-time validation; it degrades to no discount.
func (c *Cart) Total(registry PromoRegistry) float64 {
	subtotal := c.Subtotal()
	if c.promo == "" {
		return subtotal
	}
	percent, ok := registry.Lookup(c.promo)
	if !ok {
		return subtotal
	}
	return subtotal * float64(100-percent) / 100
}

// ApplyPromo validates raw promo input against the registry. On a hit the
// normalized code becomes the applied code and the discount percentage is
// returned. On a miss nothing changes: a failed attempt must not clear a
// previously applied valid code.
func (c *Cart) ApplyPromo(registry PromoRegistry, raw string) (percent int, applied bool) {
	code := NormalizePromoCode(raw)
	percent, ok := registry.Lookup(code)
	if !ok {
		return 0, false
	}
	c.promo = code
	return percent, true
}

// ClearPromo unsets the applied promo code.
func (c *Cart) ClearPromo() {
	c.promo = ""
}

// Promo returns the currently applied promo code, or "" when none.
func (c *Cart) Promo() string {
	return c.promo
}

// Len returns the number of lines in the cart.
func (c *Cart) Len() int {
	return len(c.lines)
}

// ItemCount returns the total number of units across all lines.
func (c *Cart) ItemCount() int {
	var n int
	for _, line := range c.lines {
		n += line.Quantity
	}
	return n
}

// Lines returns a copy of the cart lines in insertion order. Mutating the
// returned slice does not affect the cart.
func (c *Cart) Lines() []CartLine {
	lines := make([]CartLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// Clear removes all lines and the applied promo code.
func (c *Cart) Clear() {
	c.lines = nil
	c.promo = ""
}
