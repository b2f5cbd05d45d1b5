package catalog

import "fmt"

// CatalogError mirrors domain error codes to avoid circular imports.
// The handler layer maps the code to an HTTP status.
type CatalogError struct {
	Code    string
	Message string
}

func (e *CatalogError) Error() string {
	return e.Message
}

// ErrorCode returns the error code for HTTP status mapping.
func (e *CatalogError) ErrorCode() string {
	return e.Code
}

// ErrItemNotFound creates a not-found error for an item ID.
func ErrItemNotFound(id int64) error {
	return &CatalogError{
		Code:    "not_found",
		Message: fmt.Sprintf("Item %d not found", id),
	}
}

var (
	// ErrDuplicateItemID is returned when a catalog source repeats an ID.
	ErrDuplicateItemID = &CatalogError{Code: "invalid", Message: "Duplicate item ID in catalog"}

	// ErrInvalidItem is returned when a catalog source fails validation.
	ErrInvalidItem = &CatalogError{Code: "invalid", Message: "Catalog item failed validation"}

	// ErrInvalidPromoPercent is returned when a promo table holds a
	// percentage outside [0, 100].
	ErrInvalidPromoPercent = &CatalogError{Code: "invalid", Message: "Promo discount percent out of range"}
)
