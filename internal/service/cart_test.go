package service

import (
	"testing"
	"time"

	"github.com/nkozyrev/gameshop/internal/catalog"
	"github.com/nkozyrev/gameshop/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*session.Store, string) {
	t.Helper()
	store := session.NewStore(16, time.Hour, nil)
	sess, _ := store.GetOrCreate("")
	return store, sess.ID
}

func newTestCartService(t *testing.T, store *session.Store) CartService {
	t.Helper()
	provider, err := catalog.NewStaticProvider(catalog.DefaultItems())
	require.NoError(t, err)
	return NewCartService(store, provider, catalog.DefaultPromoCodes(), nil, nil)
}

func TestCartServiceAddItem(t *testing.T) {
	store, token := newTestStore(t)
	svc := newTestCartService(t, store)

	summary, err := svc.AddItem(token, 3)
	require.NoError(t, err)
	require.Len(t, summary.Lines, 1)
	assert.Equal(t, 1, summary.Lines[0].Quantity)
	assert.Equal(t, 199.0, summary.Subtotal)

	// A second add accumulates onto the existing line.
	summary, err = svc.AddItem(token, 3)
	require.NoError(t, err)
	require.Len(t, summary.Lines, 1)
	assert.Equal(t, 2, summary.Lines[0].Quantity)
	assert.Equal(t, 398.0, summary.Subtotal)
	assert.Equal(t, 2, summary.ItemCount)
}

func TestCartServiceAddUnknownItem(t *testing.T) {
	store, token := newTestStore(t)
	svc := newTestCartService(t, store)

	_, err := svc.AddItem(token, 999)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestCartServiceUnknownSession(t *testing.T) {
	store, _ := newTestStore(t)
	svc := newTestCartService(t, store)

	_, err := svc.Summary("missing-token")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = svc.AddItem("missing-token", 1)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestCartServiceUpdateQuantity(t *testing.T) {
	store, token := newTestStore(t)
	svc := newTestCartService(t, store)

	_, err := svc.AddItem(token, 1)
	require.NoError(t, err)

	summary, err := svc.UpdateQuantity(token, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, summary.Lines[0].Quantity)

	// Zero and negative quantities remove the line.
	summary, err = svc.UpdateQuantity(token, 1, 0)
	require.NoError(t, err)
	assert.Empty(t, summary.Lines)
}

func TestCartServiceRemoveItemIdempotent(t *testing.T) {
	store, token := newTestStore(t)
	svc := newTestCartService(t, store)

	_, err := svc.AddItem(token, 2)
	require.NoError(t, err)

	summary, err := svc.RemoveItem(token, 999)
	require.NoError(t, err, "removing an absent line is not an error")
	assert.Len(t, summary.Lines, 1)

	summary, err = svc.RemoveItem(token, 2)
	require.NoError(t, err)
	assert.Empty(t, summary.Lines)
}

func TestCartServiceApplyPromo(t *testing.T) {
	store, token := newTestStore(t)
	svc := newTestCartService(t, store)

	_, err := svc.AddItem(token, 1) // 499
	require.NoError(t, err)

	result, err := svc.ApplyPromo(token, "game2024")
	require.NoError(t, err)
	assert.True(t, result.Applied)
	assert.Equal(t, "GAME2024", result.Code)
	assert.Equal(t, 20, result.DiscountPercent)
	assert.Equal(t, 399.2, result.Summary.Total)
	assert.Equal(t, 20, result.Summary.PromoPercent)
}

func TestCartServiceRejectedPromoKeepsPriorCode(t *testing.T) {
	store, token := newTestStore(t)
	svc := newTestCartService(t, store)

	_, err := svc.AddItem(token, 5) // 99
	require.NoError(t, err)

	result, err := svc.ApplyPromo(token, "WELCOME")
	require.NoError(t, err)
	require.True(t, result.Applied)

	result, err = svc.ApplyPromo(token, "ZZZZ")
	require.NoError(t, err, "a rejected code is a soft failure, not an error")
	assert.False(t, result.Applied)
	assert.Equal(t, "WELCOME", result.Summary.PromoCode)
	assert.Equal(t, 15, result.Summary.PromoPercent)
	assert.InDelta(t, 84.15, result.Summary.Total, 1e-9)
}

func TestCartServiceClearPromo(t *testing.T) {
	store, token := newTestStore(t)
	svc := newTestCartService(t, store)

	_, err := svc.AddItem(token, 1)
	require.NoError(t, err)
	_, err = svc.ApplyPromo(token, "FRIDAY")
	require.NoError(t, err)

	summary, err := svc.ClearPromo(token)
	require.NoError(t, err)
	assert.Empty(t, summary.PromoCode)
	assert.Equal(t, summary.Subtotal, summary.Total)
}
