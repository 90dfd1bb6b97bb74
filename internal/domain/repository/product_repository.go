// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product is not found, including when
// an ownership-scoped lookup hits a product owned by another merchant.
var ErrProductNotFound = errors.New("product not found")

// ProductFilter narrows and orders product listings. Zero values mean "no filter".
type ProductFilter struct {
	Name       string
	CategoryID *uuid.UUID
	Price      *string // Exact price match, decimal string form.
	OrderBy    string  // One of "name", "category", "price". Empty keeps insertion order.
}

// ProductRepository defines the interface for product-related database operations.
type ProductRepository interface {
	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product by its unique ID regardless of owner.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindOwnedByID retrieves a product by ID scoped to the owning merchant.
	// A product owned by someone else yields ErrProductNotFound, never a
	// permission error, so the scoping happens at the query level.
	FindOwnedByID(ctx context.Context, merchantID, id uuid.UUID) (*entity.Product, error)

	// List retrieves products matching the filter.
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)

	// Update modifies an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
