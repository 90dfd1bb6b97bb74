// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for category persistence.
var (
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrCategoryNameTaken is returned when the unique name constraint is violated.
	ErrCategoryNameTaken = errors.New("category name already taken")
)

// CategoryRepository defines the interface for category-related database operations.
type CategoryRepository interface {
	// Create persists a new category.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// List retrieves all categories ordered by name.
	List(ctx context.Context) ([]*entity.Category, error)

	// Update modifies an existing category.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category. Dependent products are removed by the
	// database's ON DELETE CASCADE constraint.
	Delete(ctx context.Context, id uuid.UUID) error
}
