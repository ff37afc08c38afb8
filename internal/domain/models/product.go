package models

import (
	"errors"
	"fmt"
)

// ErrInvalidProduct indicates a product record failed shape validation.
var ErrInvalidProduct = errors.New("invalid product")

// Location pins a stock to a city and coordinates.
type Location struct {
	City      string  `json:"city"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Stock is the quantity of a product held at one physical location.
type Stock struct {
	ID           ID       `json:"id"`
	Name         string   `json:"name"`
	Quantity     int      `json:"quantity"`
	Localisation Location `json:"localisation"`
}

// EditHistory is one entry of a product's audit trail.
type EditHistory struct {
	WarehousemanID ID     `json:"warehousemanId"`
	At             string `json:"at"`
}

// Product is a catalog item as stored by the catalog store.
type Product struct {
	ID       ID            `json:"id,omitzero"`
	Name     string        `json:"name"`
	Type     string        `json:"type"`
	Barcode  string        `json:"barcode"`
	Price    float64       `json:"price"`
	Solde    *float64      `json:"solde,omitempty"`
	Supplier string        `json:"supplier"`
	Image    string        `json:"image"`
	Stocks   []Stock       `json:"stocks"`
	EditedBy []EditHistory `json:"editedBy"`
}

// EffectivePrice is the discounted price when one is set, the list price otherwise.
func (p Product) EffectivePrice() float64 {
	if p.Solde != nil {
		return *p.Solde
	}
	return p.Price
}

// TotalQuantity sums the quantities of every stock location.
func (p Product) TotalQuantity() int {
	total := 0
	for _, s := range p.Stocks {
		total += s.Quantity
	}
	return total
}

// IsOutOfStock reports whether the product has no stock entry with a positive quantity.
func (p Product) IsOutOfStock() bool {
	for _, s := range p.Stocks {
		if s.Quantity != 0 {
			return false
		}
	}
	return true
}

// StockByID returns the index of the stock with the given id, or -1.
func (p Product) StockByID(id ID) int {
	for i, s := range p.Stocks {
		if s.ID.Equal(id) {
			return i
		}
	}
	return -1
}

// Validate checks the invariants every product record must hold: price, solde
// and stock quantities are never negative.
func (p Product) Validate() error {
	if p.Price < 0 {
		return fmt.Errorf("%w: price %.2f is negative", ErrInvalidProduct, p.Price)
	}
	if p.Solde != nil && *p.Solde < 0 {
		return fmt.Errorf("%w: solde %.2f is negative", ErrInvalidProduct, *p.Solde)
	}
	for _, s := range p.Stocks {
		if s.Quantity < 0 {
			return fmt.Errorf("%w: stock %s has negative quantity %d", ErrInvalidProduct, s.ID, s.Quantity)
		}
	}
	return nil
}

// ProductPatch carries the fields sent with a partial update. Stocks, when set,
// replaces the whole stocks array on the store side.
type ProductPatch struct {
	Name     *string  `json:"name,omitempty"`
	Type     *string  `json:"type,omitempty"`
	Price    *float64 `json:"price,omitempty"`
	Solde    *float64 `json:"solde,omitempty"`
	Supplier *string  `json:"supplier,omitempty"`
	Image    *string  `json:"image,omitempty"`
	Stocks   []Stock  `json:"stocks,omitempty"`
}
