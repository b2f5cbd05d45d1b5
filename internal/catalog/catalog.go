package catalog

import "github.com/nkozyrev/gameshop/internal/domain"

// Provider defines read-only access to the storefront's purchasable items.
// Implementations must return items in a stable display order.
type Provider interface {
	// List returns all catalog items in display order.
	List() []domain.Item

	// Get returns the item with the given ID.
	Get(id int64) (domain.Item, error)
}
