package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table. order_date and payment_due are set at
// creation and never updated.
type OrderModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	DeliveryAddress string          `gorm:"type:varchar(255);not null"`
	OrderDate       time.Time       `gorm:"not null;index"`
	PaymentDue      time.Time       `gorm:"not null"`
	TotalPrice      decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0.00"`
	CreatedAt       time.Time

	Items []*OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. Rows are owned exclusively by
// their order and never mutated after creation.
type OrderItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity  int       `gorm:"not null;check:quantity >= 1"`
	CreatedAt time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
