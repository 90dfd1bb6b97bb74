package impl

import (
	"context"
	"log/slog"
	"path"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	mediaStore   service.MediaStore
	thumbnails   service.ThumbnailService
	logger       *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	MediaStore   service.MediaStore
	Thumbnails   service.ThumbnailService
	Logger       *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo:  params.ProductRepo,
		categoryRepo: params.CategoryRepo,
		mediaStore:   params.MediaStore,
		thumbnails:   params.Thumbnails,
		logger:       params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct stores the uploaded image, derives its thumbnail and persists
// the product under the calling merchant.
func (srv *productService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	if err := validateProductFields(input.Name, input.Price); err != nil {
		return nil, err
	}
	if input.Image == nil || len(input.Image.Data) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("product image is required")
	}

	if _, err := srv.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to verify category")
	}

	imageKey, thumbnailKey, err := srv.storeImage(ctx, input.MerchantID, input.Image)
	if err != nil {
		return nil, err
	}

	product := &entity.Product{
		MerchantID:   input.MerchantID,
		Name:         strings.TrimSpace(input.Name),
		Description:  input.Description,
		Price:        input.Price,
		CategoryID:   input.CategoryID,
		ImageKey:     imageKey,
		ThumbnailKey: thumbnailKey,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		srv.log(ctx).Error("Failed to create product", slog.Any("merchantID", input.MerchantID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Product created",
		slog.Any("productID", product.ID),
		slog.Any("merchantID", input.MerchantID),
	)

	return product, nil
}

// GetProduct retrieves a single product for public browsing.
func (srv *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// ListProducts retrieves products matching the filter.
func (srv *productService) ListProducts(ctx context.Context, input *usecase.ListProductsInput) ([]*entity.Product, error) {
	filter := repository.ProductFilter{
		Name:       input.Name,
		CategoryID: input.CategoryID,
		Price:      input.Price,
		OrderBy:    input.OrderBy,
	}

	products, err := srv.productRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// UpdateProduct modifies a product owned by the calling merchant. The
// ownership check is the scoped lookup itself.
func (srv *productService) UpdateProduct(ctx context.Context, input *usecase.UpdateProductInput) (*entity.Product, error) {
	if err := validateProductFields(input.Name, input.Price); err != nil {
		return nil, err
	}

	product, err := srv.productRepo.FindOwnedByID(ctx, input.MerchantID, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find owned product")
	}

	if input.CategoryID != product.CategoryID {
		if _, err := srv.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return nil, domainerrors.ErrCategoryNotFound
			}

			return nil, errors.Wrap(err, "failed to verify category")
		}
	}

	product.Name = strings.TrimSpace(input.Name)
	product.Description = input.Description
	product.Price = input.Price
	product.CategoryID = input.CategoryID

	if input.Image != nil && len(input.Image.Data) > 0 {
		imageKey, thumbnailKey, err := srv.storeImage(ctx, input.MerchantID, input.Image)
		if err != nil {
			return nil, err
		}
		product.ImageKey = imageKey
		product.ThumbnailKey = thumbnailKey
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to update product", slog.Any("productID", product.ID), slog.Any("error", err))

		return nil, err
	}

	return product, nil
}

// DeleteProduct removes a product owned by the calling merchant.
func (srv *productService) DeleteProduct(ctx context.Context, merchantID, productID uuid.UUID) error {
	if _, err := srv.productRepo.FindOwnedByID(ctx, merchantID, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to find owned product")
	}

	if err := srv.productRepo.Delete(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		srv.log(ctx).Error("Failed to delete product", slog.Any("productID", productID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Product deleted", slog.Any("productID", productID), slog.Any("merchantID", merchantID))

	return nil
}

// storeImage writes the uploaded image and derives its thumbnail. Thumbnail
// failures degrade to a product without a preview rather than failing the
// whole operation.
func (srv *productService) storeImage(ctx context.Context, merchantID uuid.UUID, image *usecase.ProductImageInput) (string, *string, error) {
	imageKey := buildImageKey(merchantID, image.Filename)

	if err := srv.mediaStore.Save(ctx, imageKey, image.Data, image.ContentType); err != nil {
		srv.log(ctx).Error("Failed to store product image", slog.String("imageKey", imageKey), slog.Any("error", err))

		return "", nil, domainerrors.ErrInternalError.WrapMessage("failed to store product image")
	}

	thumbnailKey, err := srv.thumbnails.Generate(ctx, imageKey)
	if err != nil {
		srv.log(ctx).Warn("Thumbnail generation failed, keeping product without preview",
			slog.String("imageKey", imageKey),
			slog.Any("error", err),
		)

		return imageKey, nil, nil
	}
	if thumbnailKey == "" {
		return imageKey, nil, nil
	}

	return imageKey, &thumbnailKey, nil
}

func buildImageKey(merchantID uuid.UUID, filename string) string {
	ext := strings.ToLower(path.Ext(filename))

	return "products/" + merchantID.String() + "/" + uuid.New().String() + ext
}

func validateProductFields(name string, price decimal.Decimal) error {
	if strings.TrimSpace(name) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("product name is required")
	}
	if !price.IsPositive() {
		return domainerrors.ErrValidationFailed.WrapMessage("product price must be greater than zero")
	}

	return nil
}
