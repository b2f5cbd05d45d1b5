package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/nkozyrev/gameshop/internal/domain"
)

// StaticProvider serves a fixed, in-memory item list.
// Used when no catalog file is configured.
type StaticProvider struct {
	items []domain.Item
	byID  map[int64]domain.Item
}

// NewStaticProvider creates a provider over the given items, preserving
// their order for display. Item IDs must be unique and items must validate.
func NewStaticProvider(items []domain.Item) (*StaticProvider, error) {
	byID := make(map[int64]domain.Item, len(items))
	for _, item := range items {
		if item.ID <= 0 || item.Title == "" || item.Price < 0 || !item.Rarity.Valid() {
			return nil, fmt.Errorf("item %d %q: %w", item.ID, item.Title, ErrInvalidItem)
		}
		if _, exists := byID[item.ID]; exists {
			return nil, fmt.Errorf("item %d: %w", item.ID, ErrDuplicateItemID)
		}
		byID[item.ID] = item
	}

	return &StaticProvider{items: items, byID: byID}, nil
}

// LoadFile creates a provider from a JSON catalog file: an array of items
// in display order.
func LoadFile(path string) (*StaticProvider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var items []domain.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", path, err)
	}

	return NewStaticProvider(items)
}

// List returns all items in display order. The returned slice is a copy.
func (p *StaticProvider) List() []domain.Item {
	items := make([]domain.Item, len(p.items))
	copy(items, p.items)
	return items
}

// Get returns the item with the given ID.
func (p *StaticProvider) Get(id int64) (domain.Item, error) {
	item, ok := p.byID[id]
	if !ok {
		return domain.Item{}, ErrItemNotFound(id)
	}
	return item, nil
}

// DefaultItems returns the built-in storefront catalog.
func DefaultItems() []domain.Item {
	return []domain.Item{
		{
			ID:          1,
			Title:       "Legend Diamond",
			Description: "Exclusive perks for one month",
			Price:       499,
			Icon:        "Crown",
			Rarity:      domain.RarityLegendary,
		},
		{
			ID:          2,
			Title:       "Legend Platinum",
			Description: "1000 crystals + 5000 gold",
			Price:       299,
			Icon:        "Gem",
			Rarity:      domain.RarityEpic,
		},
		{
			ID:          3,
			Title:       "Legend Gold",
			Description: "Random rare items",
			Price:       199,
			Icon:        "Package",
			Rarity:      domain.RarityRare,
		},
		{
			ID:          4,
			Title:       "Legend Silver",
			Description: "Double XP for 7 days",
			Price:       149,
			Icon:        "Zap",
			Rarity:      domain.RarityRare,
		},
		{
			ID:          5,
			Title:       "Starter Bundle",
			Description: "Perfect for new players",
			Price:       99,
			Icon:        "Gift",
			Rarity:      domain.RarityCommon,
		},
		{
			ID:          6,
			Title:       "Legendary Skin",
			Description: "Unique character appearance",
			Price:       599,
			Icon:        "Sparkles",
			Rarity:      domain.RarityLegendary,
		},
	}
}

// DefaultPromoCodes returns the built-in promo registry.
func DefaultPromoCodes() domain.PromoRegistry {
	return domain.PromoRegistry{
		"GAME2024": 20,
		"WELCOME":  15,
		"FRIDAY":   25,
	}
}

// LoadPromoFile reads a promo registry from a JSON file: an object mapping
// code to discount percent. Codes are normalized to uppercase and percents
// must fall within [0, 100].
func LoadPromoFile(path string) (domain.PromoRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read promo file: %w", err)
	}

	var raw map[string]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse promo file %s: %w", path, err)
	}

	registry := make(domain.PromoRegistry, len(raw))
	for code, percent := range raw {
		if percent < 0 || percent > 100 {
			return nil, fmt.Errorf("code %s (%d%%): %w", code, percent, ErrInvalidPromoPercent)
		}
		registry[domain.NormalizePromoCode(code)] = percent
	}

	return registry, nil
}
