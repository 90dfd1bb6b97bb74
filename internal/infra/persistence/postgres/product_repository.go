// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCategoryNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	// Update the entity with generated values
	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// FindByID retrieves a product by its unique ID regardless of owner.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// FindOwnedByID retrieves a product scoped to the owning merchant. Ownership
// is part of the WHERE clause, so someone else's product is indistinguishable
// from a missing one.
func (repo *productRepository) FindOwnedByID(ctx context.Context, merchantID, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND merchant_id = ?", id, merchantID).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find owned product by ID")
	}

	return toProductDomain(&productM), nil
}

// List retrieves products matching the filter.
func (repo *productRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	query := repo.db.WithContext(ctx).Model(&model.ProductModel{})

	if filter.Name != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Price != nil {
		query = query.Where("price = ?", *filter.Price)
	}

	switch filter.OrderBy {
	case "name":
		query = query.Order("name ASC")
	case "category":
		query = query.Order("category_id ASC, name ASC")
	case "price":
		query = query.Order("price ASC, name ASC")
	default:
		query = query.Order("created_at ASC")
	}

	if err := query.Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// Update modifies an existing product.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	updates := map[string]interface{}{
		"name":          product.Name,
		"description":   product.Description,
		"price":         product.Price,
		"category_id":   product.CategoryID,
		"image_key":     product.ImageKey,
		"thumbnail_key": product.ThumbnailKey,
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(updates)

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrCategoryNotFound
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes a product by ID.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// fromProductDomain converts a domain entity to a persistence model.
func fromProductDomain(product *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:           product.ID,
		MerchantID:   product.MerchantID,
		Name:         product.Name,
		Description:  product.Description,
		Price:        product.Price,
		CategoryID:   product.CategoryID,
		ImageKey:     product.ImageKey,
		ThumbnailKey: product.ThumbnailKey,
	}
}

// toProductDomain converts a persistence model to a domain entity.
func toProductDomain(productM *model.ProductModel) *entity.Product {
	return &entity.Product{
		ID:           productM.ID,
		MerchantID:   productM.MerchantID,
		Name:         productM.Name,
		Description:  productM.Description,
		Price:        productM.Price,
		CategoryID:   productM.CategoryID,
		ImageKey:     productM.ImageKey,
		ThumbnailKey: productM.ThumbnailKey,
		CreatedAt:    productM.CreatedAt,
		UpdatedAt:    productM.UpdatedAt,
	}
}
