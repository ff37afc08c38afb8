package models

import (
	"fmt"
	"strings"
)

// SortCriteria enumerates the keys a product listing can be ordered by.
type SortCriteria string

const (
	SortByName     SortCriteria = "name"
	SortByPrice    SortCriteria = "price"
	SortByQuantity SortCriteria = "quantity"
)

// SortOrder is the direction of a product listing.
type SortOrder string

const (
	SortAscending  SortOrder = "asc"
	SortDescending SortOrder = "desc"
)

// ProductQuery holds the search, filter and sort parameters of a product listing.
// Empty Type or Supplier disables the corresponding filter.
type ProductQuery struct {
	Search   string
	Type     string
	Supplier string
	SortBy   SortCriteria
	Order    SortOrder
}

// DefaultProductQuery lists everything ordered by name, ascending.
func DefaultProductQuery() ProductQuery {
	return ProductQuery{SortBy: SortByName, Order: SortAscending}
}

// ParseSortCriteria maps user input to a SortCriteria. Empty input yields SortByName.
func ParseSortCriteria(value string) (SortCriteria, error) {
	switch SortCriteria(strings.ToLower(strings.TrimSpace(value))) {
	case "", SortByName:
		return SortByName, nil
	case SortByPrice:
		return SortByPrice, nil
	case SortByQuantity:
		return SortByQuantity, nil
	default:
		return "", fmt.Errorf("unsupported sort criteria %q", value)
	}
}

// ParseSortOrder maps user input to a SortOrder. Empty input yields SortAscending.
func ParseSortOrder(value string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "asc", "ascending":
		return SortAscending, nil
	case "desc", "descending":
		return SortDescending, nil
	default:
		return "", fmt.Errorf("unsupported sort order %q", value)
	}
}
