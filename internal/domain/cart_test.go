package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRegistry = PromoRegistry{
	"GAME2024": 20,
	"WELCOME":  15,
	"FRIDAY":   25,
}

func testItem(id int64, price float64) Item {
	return Item{
		ID:     id,
		Title:  "Test Item",
		Price:  price,
		Rarity: RarityCommon,
	}
}

func TestCart_AddItemAccumulates(t *testing.T) {
	cart := &Cart{}
	item := testItem(1, 499)

	cart.AddItem(item)
	cart.AddItem(item)

	require.Equal(t, 1, cart.Len(), "adding the same item twice must not duplicate the line")
	assert.Equal(t, 2, cart.Lines()[0].Quantity)
	assert.Equal(t, 2, cart.ItemCount())
}

func TestCart_AddItemPreservesInsertionOrder(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(testItem(3, 199))
	cart.AddItem(testItem(1, 499))
	cart.AddItem(testItem(2, 299))
	cart.AddItem(testItem(1, 499))

	lines := cart.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, int64(3), lines[0].Item.ID)
	assert.Equal(t, int64(1), lines[1].Item.ID)
	assert.Equal(t, int64(2), lines[2].Item.ID)
	assert.Equal(t, 2, lines[1].Quantity)
}

func TestCart_RemoveItemIdempotent(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(testItem(1, 100))
	cart.AddItem(testItem(2, 200))

	before := cart.Lines()
	cart.RemoveItem(999)

	assert.Equal(t, before, cart.Lines(), "removing an absent id must leave lines unchanged")

	cart.RemoveItem(1)
	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, int64(2), lines[0].Item.ID)
}

func TestCart_UpdateQuantityBoundary(t *testing.T) {
	for _, quantity := range []int{0, -5} {
		cart := &Cart{}
		cart.AddItem(testItem(1, 100))
		cart.AddItem(testItem(1, 100))

		cart.UpdateQuantity(1, quantity)
		assert.Equal(t, 0, cart.Len(), "quantity %d must remove the line", quantity)
	}
}

func TestCart_UpdateQuantitySetsExactValue(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(testItem(1, 100))

	cart.UpdateQuantity(1, 7)
	assert.Equal(t, 7, cart.Lines()[0].Quantity, "update is absolute, not a delta")

	// Updating an absent line is a no-op.
	cart.UpdateQuantity(42, 3)
	assert.Equal(t, 1, cart.Len())
}

func TestCart_TotalWithoutPromo(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(testItem(1, 499))
	cart.AddItem(testItem(2, 299))
	cart.AddItem(testItem(2, 299))

	assert.Equal(t, 1097.0, cart.Subtotal())
	assert.Equal(t, cart.Subtotal(), cart.Total(testRegistry), "no applied code means total equals subtotal exactly")
}

func TestCart_TotalAppliesPercentageNotFlatAmount(t *testing.T) {
	cart := &Cart{}
	item := testItem(3, 199)
	cart.AddItem(item)
	cart.AddItem(item)
	cart.AddItem(item)

	assert.Equal(t, 597.0, cart.Subtotal())

	percent, applied := cart.ApplyPromo(testRegistry, "GAME2024")
	require.True(t, applied)
	assert.Equal(t, 20, percent)

	// 597 * (1 - 20/100), not 597 - 20.
	assert.Equal(t, 477.6, cart.Total(testRegistry))
}

func TestCart_ApplyPromoNormalizesInput(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(testItem(1, 100))

	percent, applied := cart.ApplyPromo(testRegistry, "  welcome ")
	require.True(t, applied)
	assert.Equal(t, 15, percent)
	assert.Equal(t, "WELCOME", cart.Promo())
}

func TestCart_RejectedPromoPreservesPriorState(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(testItem(1, 100))

	_, applied := cart.ApplyPromo(testRegistry, "WELCOME")
	require.True(t, applied)

	percent, applied := cart.ApplyPromo(testRegistry, "ZZZZ")
	assert.False(t, applied)
	assert.Zero(t, percent)
	assert.Equal(t, "WELCOME", cart.Promo(), "a failed apply must not clear the prior code")
	assert.Equal(t, 85.0, cart.Total(testRegistry), "the 15 percent discount must still hold")
}

func TestCart_RejectedPromoOnEmptyPromoState(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(testItem(1, 100))

	_, applied := cart.ApplyPromo(testRegistry, "NOPE")
	assert.False(t, applied)
	assert.Empty(t, cart.Promo())
	assert.Equal(t, 100.0, cart.Total(testRegistry))
}

func TestCart_TotalUnknownAppliedCodeFallsBackToSubtotal(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(testItem(1, 100))

	_, applied := cart.ApplyPromo(testRegistry, "FRIDAY")
	require.True(t, applied)

	// Simulate a registry reload dropping the code after apply-time
	// validation; the total degrades to no discount rather than failing.
	assert.Equal(t, 100.0, cart.Total(PromoRegistry{}))
}

func TestCart_ClearPromo(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(testItem(1, 100))
	cart.ApplyPromo(testRegistry, "FRIDAY")

	cart.ClearPromo()
	assert.Empty(t, cart.Promo())
	assert.Equal(t, 100.0, cart.Total(testRegistry))
}

func TestCart_CosmeticItemDiscountIgnoredInTotals(t *testing.T) {
	cart := &Cart{}
	item := testItem(1, 200)
	item.Discount = 50 // catalog badge only
	cart.AddItem(item)

	assert.Equal(t, 200.0, cart.Total(testRegistry))
}

func TestCart_LinesReturnsCopy(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(testItem(1, 100))

	lines := cart.Lines()
	lines[0].Quantity = 99

	assert.Equal(t, 1, cart.Lines()[0].Quantity)
}

func TestCart_Clear(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(testItem(1, 100))
	cart.ApplyPromo(testRegistry, "WELCOME")

	cart.Clear()
	assert.Equal(t, 0, cart.Len())
	assert.Empty(t, cart.Promo())
	assert.Zero(t, cart.Subtotal())
}

func TestNewPurchaseSnapshotIndependence(t *testing.T) {
	cart := &Cart{}
	itemA := testItem(1, 100)
	cart.AddItem(itemA)
	cart.AddItem(itemA)

	percent, applied := cart.ApplyPromo(testRegistry, "FRIDAY")
	require.True(t, applied)
	require.Equal(t, 25, percent)

	now := time.Date(2024, 11, 29, 12, 0, 0, 0, time.UTC)
	purchase := NewPurchase(1, cart, testRegistry, now)

	assert.Equal(t, 150.0, purchase.Total)
	assert.Equal(t, "FRIDAY", purchase.PromoCode)
	assert.Equal(t, "29.11.2024", purchase.Date)

	// Mutating the cart afterwards must not affect the recorded purchase.
	cart.UpdateQuantity(1, 50)
	cart.AddItem(testItem(2, 999))

	require.Len(t, purchase.Lines, 1)
	assert.Equal(t, 2, purchase.Lines[0].Quantity)
	assert.Equal(t, 100.0, purchase.Lines[0].Item.Price)
	assert.Equal(t, 150.0, purchase.Total)
}
