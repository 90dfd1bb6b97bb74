package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductImageInput carries an uploaded product image.
type ProductImageInput struct {
	Filename    string
	ContentType string
	Data        []byte
}

// CreateProductInput defines the data required to list a new product.
// MerchantID is the authenticated caller, never client-supplied.
type CreateProductInput struct {
	MerchantID  uuid.UUID
	Name        string
	Description string
	Price       decimal.Decimal
	CategoryID  uuid.UUID
	Image       *ProductImageInput
}

// UpdateProductInput defines the data required to modify a product. A nil
// Image keeps the existing one.
type UpdateProductInput struct {
	MerchantID  uuid.UUID
	ProductID   uuid.UUID
	Name        string
	Description string
	Price       decimal.Decimal
	CategoryID  uuid.UUID
	Image       *ProductImageInput
}

// ListProductsInput mirrors the catalog's browse filters.
type ListProductsInput struct {
	Name       string
	CategoryID *uuid.UUID
	Price      *string
	OrderBy    string
}

// ProductUsecase defines the business operations on products. Mutations are
// scoped to the owning merchant at the query level: another merchant's
// product behaves exactly like a missing one.
type ProductUsecase interface {
	// CreateProduct stores the uploaded image, derives its thumbnail and
	// persists the product under the calling merchant.
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)

	// GetProduct retrieves a single product for public browsing.
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// ListProducts retrieves products matching the filter.
	ListProducts(ctx context.Context, input *ListProductsInput) ([]*entity.Product, error)

	// UpdateProduct modifies a product owned by the calling merchant.
	UpdateProduct(ctx context.Context, input *UpdateProductInput) (*entity.Product, error)

	// DeleteProduct removes a product owned by the calling merchant.
	DeleteProduct(ctx context.Context, merchantID, productID uuid.UUID) error
}
