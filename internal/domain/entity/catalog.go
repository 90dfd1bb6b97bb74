// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category groups products. Names are unique; deleting a category removes its products.
type Category struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Product is a sellable item owned by exactly one merchant and belonging to
// exactly one category. MerchantID is set at creation and never changes.
type Product struct {
	ID           uuid.UUID       `json:"id"`
	MerchantID   uuid.UUID       `json:"merchant_id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"` // Fixed-point with 2 decimal places.
	CategoryID   uuid.UUID       `json:"category_id"`
	ImageKey     string          `json:"image_key"`
	ThumbnailKey *string         `json:"thumbnail_key"` // Nil until thumbnail generation completes.
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
