package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCategoryInput defines the data required to create a category.
type CreateCategoryInput struct {
	Name string
}

// UpdateCategoryInput defines the data required to rename a category.
type UpdateCategoryInput struct {
	ID   uuid.UUID
	Name string
}

// CategoryUsecase defines the business operations on the category taxonomy.
// Categories are admin-managed; the delivery layer enforces the role.
type CategoryUsecase interface {
	// CreateCategory adds a new category with a unique name.
	CreateCategory(ctx context.Context, input *CreateCategoryInput) (*entity.Category, error)

	// GetCategory retrieves a single category.
	GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// ListCategories retrieves all categories ordered by name.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// UpdateCategory renames a category.
	UpdateCategory(ctx context.Context, input *UpdateCategoryInput) (*entity.Category, error)

	// DeleteCategory removes a category and, through the schema's cascade,
	// every product in it.
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}
