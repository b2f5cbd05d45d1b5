package domain

// Rarity classifies catalog items for display tiers.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Valid reports whether r is one of the known rarity tiers.
func (r Rarity) Valid() bool {
	switch r {
	case RarityCommon, RarityRare, RarityEpic, RarityLegendary:
		return true
	}
	return false
}

// Item is a purchasable catalog entry. Items are immutable once loaded;
// cart lines hold value copies so a catalog reload cannot rewrite history.
type Item struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`

	// Discount is the percentage badge shown on the catalog card.
	// It is cosmetic only and never participates in cart totals;
	// the promo code path is the only discount that prices follow.
	Discount int `json:"discount,omitempty"`

	Icon     string `json:"icon,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
	Rarity   Rarity `json:"rarity"`
}
