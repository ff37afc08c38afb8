package messaging

import (
	"context"
	"time"
)

// Publisher defines an interface for publishing events to a message broker.
type Publisher interface {
	PublishEvent(ctx context.Context, key string, event any) error
	Close() error
}

// StockQuantityChanged is emitted after a stock quantity was written to the catalog store.
type StockQuantityChanged struct {
	ProductID        string    `json:"productId"`
	ProductName      string    `json:"productName"`
	Barcode          string    `json:"barcode"`
	StockID          string    `json:"stockId"`
	PreviousQuantity int       `json:"previousQuantity"`
	Quantity         int       `json:"quantity"`
	OccurredAt       time.Time `json:"occurredAt"`
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishEvent(context.Context, string, any) error { return nil }

func (NopPublisher) Close() error { return nil }
