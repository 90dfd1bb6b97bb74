package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// categoryServiceFixtures holds all test dependencies for category service tests.
type categoryServiceFixtures struct {
	service      usecase.CategoryUsecase
	categoryRepo *mockRepo.MockCategoryRepository
}

func createTestCategoryService(t *testing.T) categoryServiceFixtures {
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewCategoryService(CategoryServiceParams{
		CategoryRepo: categoryRepo,
		Logger:       logger,
	})

	return categoryServiceFixtures{
		service:      service,
		categoryRepo: categoryRepo,
	}
}

func TestCategoryService_CreateCategory_Success(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()

	fx.categoryRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Category")).
		Run(func(ctx context.Context, category *entity.Category) {
			category.ID = uuid.New()
		}).
		Return(nil)

	category, err := fx.service.CreateCategory(ctx, &usecase.CreateCategoryInput{Name: "Books"})

	require.NoError(t, err)
	assert.Equal(t, "Books", category.Name)
	assert.NotEqual(t, uuid.Nil, category.ID)
}

func TestCategoryService_CreateCategory_TrimsName(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()

	fx.categoryRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(category *entity.Category) bool {
			return category.Name == "Books"
		})).
		Return(nil)

	category, err := fx.service.CreateCategory(ctx, &usecase.CreateCategoryInput{Name: "  Books  "})

	require.NoError(t, err)
	assert.Equal(t, "Books", category.Name)
}

func TestCategoryService_CreateCategory_EmptyName(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()

	category, err := fx.service.CreateCategory(ctx, &usecase.CreateCategoryInput{Name: "   "})

	require.Error(t, err)
	assert.Nil(t, category)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCategoryService_CreateCategory_DuplicateName(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()

	fx.categoryRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Category")).
		Return(repository.ErrCategoryNameTaken)

	category, err := fx.service.CreateCategory(ctx, &usecase.CreateCategoryInput{Name: "Books"})

	require.Error(t, err)
	assert.Nil(t, category)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryAlreadyExists)
}

func TestCategoryService_GetCategory_Success(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	categoryID := uuid.New()
	expected := &entity.Category{ID: categoryID, Name: "Books"}

	fx.categoryRepo.EXPECT().FindByID(ctx, categoryID).Return(expected, nil)

	category, err := fx.service.GetCategory(ctx, categoryID)

	require.NoError(t, err)
	assert.Equal(t, expected, category)
}

func TestCategoryService_GetCategory_NotFound(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	categoryID := uuid.New()

	fx.categoryRepo.EXPECT().FindByID(ctx, categoryID).Return(nil, repository.ErrCategoryNotFound)

	category, err := fx.service.GetCategory(ctx, categoryID)

	require.Error(t, err)
	assert.Nil(t, category)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestCategoryService_ListCategories_Success(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	expected := []*entity.Category{
		{ID: uuid.New(), Name: "Books"},
		{ID: uuid.New(), Name: "Games"},
	}

	fx.categoryRepo.EXPECT().List(ctx).Return(expected, nil)

	categories, err := fx.service.ListCategories(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, categories)
}

func TestCategoryService_UpdateCategory_Success(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	categoryID := uuid.New()
	updated := &entity.Category{ID: categoryID, Name: "Novels"}

	fx.categoryRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(category *entity.Category) bool {
			return category.ID == categoryID && category.Name == "Novels"
		})).
		Return(nil)
	fx.categoryRepo.EXPECT().FindByID(ctx, categoryID).Return(updated, nil)

	category, err := fx.service.UpdateCategory(ctx, &usecase.UpdateCategoryInput{
		ID:   categoryID,
		Name: "Novels",
	})

	require.NoError(t, err)
	assert.Equal(t, updated, category)
}

func TestCategoryService_UpdateCategory_NotFound(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	categoryID := uuid.New()

	fx.categoryRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Category")).
		Return(repository.ErrCategoryNotFound)

	category, err := fx.service.UpdateCategory(ctx, &usecase.UpdateCategoryInput{
		ID:   categoryID,
		Name: "Novels",
	})

	require.Error(t, err)
	assert.Nil(t, category)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestCategoryService_UpdateCategory_NameTaken(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()

	fx.categoryRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Category")).
		Return(repository.ErrCategoryNameTaken)

	category, err := fx.service.UpdateCategory(ctx, &usecase.UpdateCategoryInput{
		ID:   uuid.New(),
		Name: "Books",
	})

	require.Error(t, err)
	assert.Nil(t, category)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryAlreadyExists)
}

func TestCategoryService_DeleteCategory_Success(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	categoryID := uuid.New()

	fx.categoryRepo.EXPECT().Delete(ctx, categoryID).Return(nil)

	err := fx.service.DeleteCategory(ctx, categoryID)

	require.NoError(t, err)
}

func TestCategoryService_DeleteCategory_NotFound(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	categoryID := uuid.New()

	fx.categoryRepo.EXPECT().Delete(ctx, categoryID).Return(repository.ErrCategoryNotFound)

	err := fx.service.DeleteCategory(ctx, categoryID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}
