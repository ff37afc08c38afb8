package models

// StockLevel buckets a quantity for display next to a scanned product.
type StockLevel string

const (
	StockCritical StockLevel = "critical"
	StockLow      StockLevel = "low"
	StockHealthy  StockLevel = "healthy"
)

// LevelFor classifies a quantity: under 10 is critical, up to 20 is low.
func LevelFor(quantity int) StockLevel {
	switch {
	case quantity < 10:
		return StockCritical
	case quantity <= 20:
		return StockLow
	default:
		return StockHealthy
	}
}

// Warehouse is a physical site a new stock entry can be attached to.
type Warehouse struct {
	ID        ID      `json:"id"`
	Name      string  `json:"name"`
	City      string  `json:"city"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Stock builds a stock entry located at the warehouse.
func (w Warehouse) Stock(quantity int) Stock {
	return Stock{
		ID:       w.ID,
		Name:     w.Name,
		Quantity: quantity,
		Localisation: Location{
			City:      w.City,
			Latitude:  w.Latitude,
			Longitude: w.Longitude,
		},
	}
}

// DefaultWarehouses lists the sites products can be received into.
var DefaultWarehouses = []Warehouse{
	{ID: ParseID("1999"), Name: "Gueliz B2", City: "Marrakesh", Latitude: 31.629472, Longitude: -7.981084},
	{ID: ParseID("2991"), Name: "Lazari H2", City: "Oujda", Latitude: 34.689404, Longitude: -1.912823},
}

// FindWarehouse looks a warehouse up by id.
func FindWarehouse(warehouses []Warehouse, id ID) (Warehouse, bool) {
	for _, w := range warehouses {
		if w.ID.Equal(id) {
			return w, true
		}
	}
	return Warehouse{}, false
}
