// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the interface for order-related database operations.
// Orders and their items are append-only: there are no update or delete
// operations beyond the total-price write that finishes order creation.
type OrderRepository interface {
	// CreateOrder persists a new order row without items.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// CreateOrderItem persists a single order line item.
	CreateOrderItem(ctx context.Context, item *entity.OrderItem) error

	// UpdateTotalPrice writes the final computed total onto an order.
	UpdateTotalPrice(ctx context.Context, orderID uuid.UUID, total decimal.Decimal) error

	// FindByID retrieves an order with its items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// TopOrderedProducts counts order line items per product name for orders
	// whose order_date falls within [from, to) and returns the top rows sorted
	// by count descending, product name ascending, truncated to limit.
	TopOrderedProducts(ctx context.Context, from, to time.Time, limit int) ([]*entity.ProductOrderCount, error)
}
