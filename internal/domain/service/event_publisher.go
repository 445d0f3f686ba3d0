package service

import (
	"context"
	"time"
)

// OrderConfirmedEvent is emitted after the order service confirms a
// checkout. Totals are the server's authoritative values.
type OrderConfirmedEvent struct {
	RequestID   string    `json:"request_id,omitempty"` // For distributed tracing
	OrderID     string    `json:"order_id"`
	GrandTotal  int64     `json:"grand_total"`
	TaxAmount   int64     `json:"tax_amount"`
	ItemCount   int       `json:"item_count"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// EventPublisher defines the interface for publishing order events to a
// message broker or downstream consumer.
type EventPublisher interface {
	// PublishOrderConfirmed publishes a confirmed-checkout event for
	// async downstream processing. Failures are logged, never surfaced
	// to the operator: the order is already confirmed.
	PublishOrderConfirmed(ctx context.Context, event *OrderConfirmedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
