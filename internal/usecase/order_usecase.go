package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderItemInput is one requested line of a new order.
type OrderItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// PlaceOrderInput defines the data required to place an order. CustomerID and
// CustomerEmail come from the authenticated session, never from the payload.
type PlaceOrderInput struct {
	CustomerID      uuid.UUID
	CustomerEmail   string
	RequestID       string
	DeliveryAddress string
	Items           []OrderItemInput
}

// OrderUsecase defines the order workflow. Placement runs the order, its
// items, the computed total and the payment reminder through one transaction;
// the confirmation event is published only after that commits.
type OrderUsecase interface {
	// PlaceOrder creates an order with its line items, computes the total from
	// current product prices, schedules the payment reminder and publishes the
	// confirmation event. A failed publish never fails the order.
	PlaceOrder(ctx context.Context, input *PlaceOrderInput) (*entity.Order, error)

	// GetOrder retrieves an order scoped to the owning customer. Someone
	// else's order behaves exactly like a missing one.
	GetOrder(ctx context.Context, customerID, orderID uuid.UUID) (*entity.Order, error)
}
