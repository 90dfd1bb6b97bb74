// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// CreateOrder persists a new order row without items. The total starts at
// zero and is written once all items are in place.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := &model.OrderModel{
		ID:              order.ID,
		CustomerID:      order.CustomerID,
		DeliveryAddress: order.DeliveryAddress,
		OrderDate:       order.OrderDate,
		PaymentDue:      order.PaymentDue,
		TotalPrice:      order.TotalPrice,
	}

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	// Update the entity with generated values
	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt

	return nil
}

// CreateOrderItem persists a single order line item.
func (repo *orderRepository) CreateOrderItem(ctx context.Context, item *entity.OrderItem) error {
	itemM := &model.OrderItemModel{
		ID:        item.ID,
		OrderID:   item.OrderID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
	}

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("order item quantity must be at least 1")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order item")
	}

	item.ID = itemM.ID

	return nil
}

// UpdateTotalPrice writes the final computed total onto an order.
func (repo *orderRepository) UpdateTotalPrice(ctx context.Context, orderID uuid.UUID, total decimal.Decimal) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", orderID).
		Update("total_price", total)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order total price")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// FindByID retrieves an order together with its items.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// topOrderedRow is the scan target for the statistics aggregate.
type topOrderedRow struct {
	ProductName  string
	TotalOrdered int64
}

// TopOrderedProducts counts order line items per product name for orders whose
// order_date falls within [from, to). Ties on the count break alphabetically
// so the result is deterministic.
func (repo *orderRepository) TopOrderedProducts(ctx context.Context, from, to time.Time, limit int) ([]*entity.ProductOrderCount, error) {
	var rows []topOrderedRow

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderItemModel{}).
		Select("products.name AS product_name, COUNT(order_items.id) AS total_ordered").
		Joins("JOIN products ON products.id = order_items.product_id").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.order_date >= ? AND orders.order_date < ?", from, to).
		Group("products.name").
		Order("total_ordered DESC, product_name ASC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query top ordered products")
	}

	counts := make([]*entity.ProductOrderCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, &entity.ProductOrderCount{
			ProductName:  row.ProductName,
			TotalOrdered: row.TotalOrdered,
		})
	}

	return counts, nil
}

// toOrderDomain converts a persistence model to a domain entity.
func toOrderDomain(orderM *model.OrderModel) *entity.Order {
	order := &entity.Order{
		ID:              orderM.ID,
		CustomerID:      orderM.CustomerID,
		DeliveryAddress: orderM.DeliveryAddress,
		OrderDate:       orderM.OrderDate,
		PaymentDue:      orderM.PaymentDue,
		TotalPrice:      orderM.TotalPrice,
		CreatedAt:       orderM.CreatedAt,
	}

	order.Items = make([]*entity.OrderItem, 0, len(orderM.Items))
	for _, itemM := range orderM.Items {
		order.Items = append(order.Items, &entity.OrderItem{
			ID:        itemM.ID,
			OrderID:   itemM.OrderID,
			ProductID: itemM.ProductID,
			Quantity:  itemM.Quantity,
		})
	}

	return order
}
