package models

import "time"

// Statistics summarizes a full product snapshot.
type Statistics struct {
	TotalProducts       int       `bson:"total_products" json:"totalProducts"`
	OutOfStock          int       `bson:"out_of_stock" json:"outOfStock"`
	TotalStockValue     float64   `bson:"total_stock_value" json:"totalStockValue"`
	MostAddedProducts   []Product `bson:"-" json:"mostAddedProducts"`
	MostRemovedProducts []Product `bson:"-" json:"mostRemovedProducts"`
}

// EmptyStatistics is the zeroed record served when a snapshot cannot be computed.
func EmptyStatistics() Statistics {
	return Statistics{
		MostAddedProducts:   []Product{},
		MostRemovedProducts: []Product{},
	}
}

// StatisticsSnapshot is a point-in-time copy of the statistics kept for history.
type StatisticsSnapshot struct {
	ID         string     `bson:"_id" json:"id"`
	TakenAt    time.Time  `bson:"taken_at" json:"takenAt"`
	Statistics Statistics `bson:"statistics" json:"statistics"`
}
