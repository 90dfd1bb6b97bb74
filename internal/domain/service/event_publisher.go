package service

import (
	"context"
)

// OrderConfirmationEvent is published after an order transaction commits so the
// worker can deliver the confirmation mail off the request path. Transport
// failures here never fail the order itself.
type OrderConfirmationEvent struct {
	RequestID       string `json:"request_id,omitempty"` // For distributed tracing
	OrderID         string `json:"order_id"`
	CustomerID      string `json:"customer_id"`
	CustomerEmail   string `json:"customer_email"`
	DeliveryAddress string `json:"delivery_address"`
	TotalPrice      string `json:"total_price"` // Decimal string, 2 places.
	PaymentDue      string `json:"payment_due"` // RFC3339.
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderConfirmation publishes an order confirmation event for async processing
	PublishOrderConfirmation(ctx context.Context, event *OrderConfirmationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
