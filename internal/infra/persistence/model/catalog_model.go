package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryModel mirrors the 'categories' table. Names carry a unique constraint.
type CategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(255);unique;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Products []*ProductModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ProductModel mirrors the 'products' table. Deleting a category cascades to
// its products; deleting a merchant cascades to their products.
type ProductModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MerchantID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name         string          `gorm:"type:varchar(255);not null"`
	Description  string          `gorm:"type:text"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CategoryID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ImageKey     string          `gorm:"type:varchar(512);not null"`
	ThumbnailKey *string         `gorm:"type:varchar(512)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Merchant *MerchantProfileModel `gorm:"foreignKey:MerchantID;references:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
