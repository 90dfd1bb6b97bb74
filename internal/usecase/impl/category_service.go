package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for CategoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		categoryRepo: params.CategoryRepo,
		logger:       params.Logger,
	}
}

func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateCategory adds a new category with a unique name.
func (srv *categoryService) CreateCategory(ctx context.Context, input *usecase.CreateCategoryInput) (*entity.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("category name is required")
	}

	category := &entity.Category{Name: name}

	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, repository.ErrCategoryNameTaken) {
			return nil, domainerrors.ErrCategoryAlreadyExists
		}

		srv.log(ctx).Error("Failed to create category", slog.String("name", name), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Category created", slog.Any("categoryID", category.ID), slog.String("name", name))

	return category, nil
}

// GetCategory retrieves a single category.
func (srv *categoryService) GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	return category, nil
}

// ListCategories retrieves all categories ordered by name.
func (srv *categoryService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// UpdateCategory renames a category.
func (srv *categoryService) UpdateCategory(ctx context.Context, input *usecase.UpdateCategoryInput) (*entity.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("category name is required")
	}

	category := &entity.Category{ID: input.ID, Name: name}

	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		switch {
		case errors.Is(err, repository.ErrCategoryNotFound):
			return nil, domainerrors.ErrCategoryNotFound
		case errors.Is(err, repository.ErrCategoryNameTaken):
			return nil, domainerrors.ErrCategoryAlreadyExists
		}

		srv.log(ctx).Error("Failed to update category", slog.Any("categoryID", input.ID), slog.Any("error", err))

		return nil, err
	}

	return srv.GetCategory(ctx, input.ID)
}

// DeleteCategory removes a category; the schema cascades to its products.
func (srv *categoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if err := srv.categoryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrCategoryNotFound
		}

		srv.log(ctx).Error("Failed to delete category", slog.Any("categoryID", id), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Category deleted", slog.Any("categoryID", id))

	return nil
}
