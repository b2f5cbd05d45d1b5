package service

import "github.com/nkozyrev/gameshop/internal/domain"

// Session errors - use domain.ENOTFOUND
var (
	ErrSessionNotFound = domain.Errorf(domain.ENOTFOUND, "", "Session not found")
)

// Catalog errors - use domain.ENOTFOUND
var (
	ErrItemNotFound = domain.Errorf(domain.ENOTFOUND, "", "Item not found")
)

// Checkout errors
var (
	ErrEmptyCart = domain.Errorf(domain.EINVALID, "", "Cart is empty")
)
