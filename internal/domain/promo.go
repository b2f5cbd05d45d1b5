package domain

import "strings"

// PromoRegistry is a read-only mapping from uppercase promo code to a
// percentage discount in [0, 100]. The registry itself is a pure lookup
// table; callers normalize input with NormalizePromoCode before calling
// Lookup so the table stays free of string handling.
type PromoRegistry map[string]int

// Lookup returns the discount percentage for an already-normalized code.
func (r PromoRegistry) Lookup(code string) (int, bool) {
	percent, ok := r[code]
	return percent, ok
}

// NormalizePromoCode canonicalizes raw promo input: codes match
// case-insensitively and ignore surrounding whitespace.
func NormalizePromoCode(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}
