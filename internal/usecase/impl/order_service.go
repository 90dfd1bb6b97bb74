package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"storefront/config"
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

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager        repository.TransactionManager
	orderRepo        repository.OrderRepository
	publisher        service.EventPublisher
	paymentTermDays  int
	reminderLeadDays int
	logger           *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:        params.TxManager,
		orderRepo:        params.OrderRepo,
		publisher:        params.Publisher,
		paymentTermDays:  params.Config.PaymentTerm(),
		reminderLeadDays: params.Config.ReminderLead(),
		logger:           params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder creates the order, its line items, the computed total and the
// payment reminder in one transaction. The reminder row is written after the
// order row inside the same transaction, so it can never point at an order
// that failed to persist. The confirmation event goes out only after commit.
func (srv *orderService) PlaceOrder(ctx context.Context, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	if err := validatePlaceOrderInput(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	order := &entity.Order{
		CustomerID:      input.CustomerID,
		DeliveryAddress: strings.TrimSpace(input.DeliveryAddress),
		OrderDate:       now,
		PaymentDue:      now.AddDate(0, 0, srv.paymentTermDays),
		TotalPrice:      decimal.Zero,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()
		productRepo := repoFactory.NewProductRepository()
		reminderRepo := repoFactory.NewReminderRepository()

		if err := orderRepo.CreateOrder(ctx, order); err != nil {
			return err
		}

		total := decimal.Zero
		for _, itemInput := range input.Items {
			product, err := productRepo.FindByID(ctx, itemInput.ProductID)
			if err != nil {
				if errors.Is(err, repository.ErrProductNotFound) {
					// A dangling product reference is bad input, not a
					// missing resource on the order side.
					return domainerrors.ErrValidationFailed.WrapMessage("ordered product does not exist")
				}

				return errors.Wrap(err, "failed to load ordered product")
			}

			item := &entity.OrderItem{
				OrderID:   order.ID,
				ProductID: product.ID,
				Quantity:  itemInput.Quantity,
			}
			if err := orderRepo.CreateOrderItem(ctx, item); err != nil {
				return err
			}

			order.Items = append(order.Items, item)
			total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(itemInput.Quantity))))
		}

		if err := orderRepo.UpdateTotalPrice(ctx, order.ID, total); err != nil {
			return err
		}
		order.TotalPrice = total

		reminder := &entity.PaymentReminder{
			OrderID:     order.ID,
			ScheduledAt: order.PaymentDue.AddDate(0, 0, -srv.reminderLeadDays),
		}

		return reminderRepo.Create(ctx, reminder)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to place order",
			slog.Any("customerID", input.CustomerID),
			slog.Any("error", err),
		)
		order.Items = nil

		return nil, err
	}

	srv.log(ctx).Info("Order placed",
		slog.Any("orderID", order.ID),
		slog.Any("customerID", input.CustomerID),
		slog.String("totalPrice", order.TotalPrice.StringFixed(2)),
	)

	srv.publishConfirmation(ctx, input, order)

	return order, nil
}

// publishConfirmation hands the committed order to the event pipeline.
// Publishing is best effort: a failure is logged and the order stands.
func (srv *orderService) publishConfirmation(ctx context.Context, input *usecase.PlaceOrderInput, order *entity.Order) {
	event := &service.OrderConfirmationEvent{
		RequestID:       input.RequestID,
		OrderID:         order.ID.String(),
		CustomerID:      order.CustomerID.String(),
		CustomerEmail:   input.CustomerEmail,
		DeliveryAddress: order.DeliveryAddress,
		TotalPrice:      order.TotalPrice.StringFixed(2),
		PaymentDue:      order.PaymentDue.Format(time.RFC3339),
	}

	if err := srv.publisher.PublishOrderConfirmation(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish order confirmation",
			slog.Any("orderID", order.ID),
			slog.Any("error", err),
		)
	}
}

// GetOrder retrieves an order scoped to the owning customer. An order that
// belongs to someone else is reported as missing, not forbidden.
func (srv *orderService) GetOrder(ctx context.Context, customerID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if order.CustomerID != customerID {
		return nil, domainerrors.ErrOrderNotFound
	}

	return order, nil
}

func validatePlaceOrderInput(input *usecase.PlaceOrderInput) error {
	if strings.TrimSpace(input.DeliveryAddress) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("delivery address is required")
	}
	if len(input.Items) == 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("order must contain at least one item")
	}
	for _, item := range input.Items {
		if item.Quantity < 1 {
			return domainerrors.ErrValidationFailed.WrapMessage("order item quantity must be at least 1")
		}
	}

	return nil
}
