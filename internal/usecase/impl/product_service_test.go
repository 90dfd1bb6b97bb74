package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// productServiceFixtures holds all test dependencies for product service tests.
type productServiceFixtures struct {
	service      usecase.ProductUsecase
	productRepo  *mockRepo.MockProductRepository
	categoryRepo *mockRepo.MockCategoryRepository
	mediaStore   *mockSvc.MockMediaStore
	thumbnails   *mockSvc.MockThumbnailService
}

func createTestProductService(t *testing.T) productServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	mediaStore := mockSvc.NewMockMediaStore(t)
	thumbnails := mockSvc.NewMockThumbnailService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewProductService(ProductServiceParams{
		ProductRepo:  productRepo,
		CategoryRepo: categoryRepo,
		MediaStore:   mediaStore,
		Thumbnails:   thumbnails,
		Logger:       logger,
	})

	return productServiceFixtures{
		service:      service,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		mediaStore:   mediaStore,
		thumbnails:   thumbnails,
	}
}

func testProductImage() *usecase.ProductImageInput {
	return &usecase.ProductImageInput{
		Filename:    "photo.jpg",
		ContentType: "image/jpeg",
		Data:        []byte("fake-image-bytes"),
	}
}

func TestProductService_CreateProduct_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	merchantID := uuid.New()
	categoryID := uuid.New()
	input := &usecase.CreateProductInput{
		MerchantID:  merchantID,
		Name:        "Test Product",
		Description: "A product for testing",
		Price:       decimal.NewFromFloat(19.99),
		CategoryID:  categoryID,
		Image:       testProductImage(),
	}

	fx.categoryRepo.EXPECT().
		FindByID(ctx, categoryID).
		Return(&entity.Category{ID: categoryID, Name: "Books"}, nil)
	fx.mediaStore.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), input.Image.Data, "image/jpeg").
		Return(nil)
	fx.thumbnails.EXPECT().
		Generate(ctx, mock.AnythingOfType("string")).
		Return("products/thumb_key.png", nil)
	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(ctx context.Context, product *entity.Product) {
			product.ID = uuid.New()
		}).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "Test Product", product.Name)
	assert.Equal(t, merchantID, product.MerchantID)
	assert.True(t, strings.HasPrefix(product.ImageKey, "products/"+merchantID.String()+"/"))
	assert.True(t, strings.HasSuffix(product.ImageKey, ".jpg"))
	require.NotNil(t, product.ThumbnailKey)
	assert.Equal(t, "products/thumb_key.png", *product.ThumbnailKey)
}

func TestProductService_CreateProduct_ThumbnailFailureKeepsProduct(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	categoryID := uuid.New()
	input := &usecase.CreateProductInput{
		MerchantID: uuid.New(),
		Name:       "Test Product",
		Price:      decimal.NewFromFloat(19.99),
		CategoryID: categoryID,
		Image:      testProductImage(),
	}

	fx.categoryRepo.EXPECT().
		FindByID(ctx, categoryID).
		Return(&entity.Category{ID: categoryID}, nil)
	fx.mediaStore.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), input.Image.Data, "image/jpeg").
		Return(nil)
	fx.thumbnails.EXPECT().
		Generate(ctx, mock.AnythingOfType("string")).
		Return("", errors.New("decode failure"))
	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, input)

	require.NoError(t, err)
	assert.NotEmpty(t, product.ImageKey)
	assert.Nil(t, product.ThumbnailKey)
}

func TestProductService_CreateProduct_MissingImage(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	input := &usecase.CreateProductInput{
		MerchantID: uuid.New(),
		Name:       "Test Product",
		Price:      decimal.NewFromFloat(19.99),
		CategoryID: uuid.New(),
	}

	product, err := fx.service.CreateProduct(ctx, input)

	require.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProductService_CreateProduct_NonPositivePrice(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	input := &usecase.CreateProductInput{
		MerchantID: uuid.New(),
		Name:       "Test Product",
		Price:      decimal.Zero,
		CategoryID: uuid.New(),
		Image:      testProductImage(),
	}

	product, err := fx.service.CreateProduct(ctx, input)

	require.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProductService_CreateProduct_UnknownCategory(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	categoryID := uuid.New()
	input := &usecase.CreateProductInput{
		MerchantID: uuid.New(),
		Name:       "Test Product",
		Price:      decimal.NewFromFloat(19.99),
		CategoryID: categoryID,
		Image:      testProductImage(),
	}

	fx.categoryRepo.EXPECT().
		FindByID(ctx, categoryID).
		Return(nil, repository.ErrCategoryNotFound)

	product, err := fx.service.CreateProduct(ctx, input)

	require.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestProductService_CreateProduct_MediaStoreFailure(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	categoryID := uuid.New()
	input := &usecase.CreateProductInput{
		MerchantID: uuid.New(),
		Name:       "Test Product",
		Price:      decimal.NewFromFloat(19.99),
		CategoryID: categoryID,
		Image:      testProductImage(),
	}

	fx.categoryRepo.EXPECT().
		FindByID(ctx, categoryID).
		Return(&entity.Category{ID: categoryID}, nil)
	fx.mediaStore.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), input.Image.Data, "image/jpeg").
		Return(errors.New("bucket unavailable"))

	product, err := fx.service.CreateProduct(ctx, input)

	require.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrInternalError)
}

func TestProductService_GetProduct_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()
	expected := &entity.Product{ID: productID, Name: "Test Product"}

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(expected, nil)

	product, err := fx.service.GetProduct(ctx, productID)

	require.NoError(t, err)
	assert.Equal(t, expected, product)
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	product, err := fx.service.GetProduct(ctx, productID)

	require.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_ListProducts_PassesFilter(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	categoryID := uuid.New()
	price := "19.99"
	expected := []*entity.Product{{ID: uuid.New(), Name: "Test Product"}}

	fx.productRepo.EXPECT().
		List(ctx, repository.ProductFilter{
			Name:       "test",
			CategoryID: &categoryID,
			Price:      &price,
			OrderBy:    "price",
		}).
		Return(expected, nil)

	products, err := fx.service.ListProducts(ctx, &usecase.ListProductsInput{
		Name:       "test",
		CategoryID: &categoryID,
		Price:      &price,
		OrderBy:    "price",
	})

	require.NoError(t, err)
	assert.Equal(t, expected, products)
}

func TestProductService_UpdateProduct_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	merchantID := uuid.New()
	productID := uuid.New()
	categoryID := uuid.New()
	existing := &entity.Product{
		ID:         productID,
		MerchantID: merchantID,
		Name:       "Old Name",
		Price:      decimal.NewFromFloat(9.99),
		CategoryID: categoryID,
		ImageKey:   "products/old_key.jpg",
	}

	fx.productRepo.EXPECT().FindOwnedByID(ctx, merchantID, productID).Return(existing, nil)
	fx.productRepo.EXPECT().Update(ctx, existing).Return(nil)

	product, err := fx.service.UpdateProduct(ctx, &usecase.UpdateProductInput{
		MerchantID:  merchantID,
		ProductID:   productID,
		Name:        "New Name",
		Description: "Updated",
		Price:       decimal.NewFromFloat(29.99),
		CategoryID:  categoryID,
	})

	require.NoError(t, err)
	assert.Equal(t, "New Name", product.Name)
	assert.True(t, product.Price.Equal(decimal.NewFromFloat(29.99)))
	// Image untouched when no replacement is uploaded.
	assert.Equal(t, "products/old_key.jpg", product.ImageKey)
}

func TestProductService_UpdateProduct_CategoryChangeVerified(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	merchantID := uuid.New()
	productID := uuid.New()
	oldCategoryID := uuid.New()
	newCategoryID := uuid.New()
	existing := &entity.Product{
		ID:         productID,
		MerchantID: merchantID,
		Name:       "Test Product",
		Price:      decimal.NewFromFloat(9.99),
		CategoryID: oldCategoryID,
	}

	fx.productRepo.EXPECT().FindOwnedByID(ctx, merchantID, productID).Return(existing, nil)
	fx.categoryRepo.EXPECT().FindByID(ctx, newCategoryID).Return(nil, repository.ErrCategoryNotFound)

	product, err := fx.service.UpdateProduct(ctx, &usecase.UpdateProductInput{
		MerchantID: merchantID,
		ProductID:  productID,
		Name:       "Test Product",
		Price:      decimal.NewFromFloat(9.99),
		CategoryID: newCategoryID,
	})

	require.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestProductService_UpdateProduct_NotOwned(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	merchantID := uuid.New()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindOwnedByID(ctx, merchantID, productID).
		Return(nil, repository.ErrProductNotFound)

	product, err := fx.service.UpdateProduct(ctx, &usecase.UpdateProductInput{
		MerchantID: merchantID,
		ProductID:  productID,
		Name:       "Test Product",
		Price:      decimal.NewFromFloat(9.99),
		CategoryID: uuid.New(),
	})

	require.Error(t, err)
	assert.Nil(t, product)
	// Another merchant's product looks missing, not forbidden.
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_DeleteProduct_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	merchantID := uuid.New()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindOwnedByID(ctx, merchantID, productID).
		Return(&entity.Product{ID: productID, MerchantID: merchantID}, nil)
	fx.productRepo.EXPECT().Delete(ctx, productID).Return(nil)

	err := fx.service.DeleteProduct(ctx, merchantID, productID)

	require.NoError(t, err)
}

func TestProductService_DeleteProduct_NotOwned(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	merchantID := uuid.New()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindOwnedByID(ctx, merchantID, productID).
		Return(nil, repository.ErrProductNotFound)

	err := fx.service.DeleteProduct(ctx, merchantID, productID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}
