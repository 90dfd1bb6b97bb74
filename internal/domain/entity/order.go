// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentTermDays is how long after placement an order's payment is due.
const PaymentTermDays = 5

// Order is a customer purchase. OrderDate and PaymentDue are set at creation
// and immutable; PaymentDue is always OrderDate + PaymentTermDays.
type Order struct {
	ID              uuid.UUID       `json:"id"`
	CustomerID      uuid.UUID       `json:"customer_id"`
	DeliveryAddress string          `json:"delivery_address"`
	OrderDate       time.Time       `json:"order_date"`
	PaymentDue      time.Time       `json:"payment_due"`
	TotalPrice      decimal.Decimal `json:"total_price"` // Σ quantity × product price at order time.
	Items           []*OrderItem    `json:"items"`
	CreatedAt       time.Time       `json:"created_at"`
}

// OrderItem is one line of an order. It is created alongside its order in a
// single transaction and never mutated afterwards. The product price is read
// at order time and folded into the order total; it is not snapshotted here.
type OrderItem struct {
	ID        uuid.UUID `json:"id"`
	OrderID   uuid.UUID `json:"order_id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"` // Always >= 1.
}

// ProductOrderCount is one row of the top-ordered-products statistic:
// the number of order line items referencing the product within a date range.
type ProductOrderCount struct {
	ProductName  string `json:"product_name"`
	TotalOrdered int64  `json:"total_ordered"`
}
