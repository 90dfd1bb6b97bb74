package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
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

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	txManager *mockRepo.MockTransactionManager
	orderRepo *mockRepo.MockOrderRepository
	publisher *mockSvc.MockEventPublisher
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewOrderService(OrderServiceParams{
		TxManager: txManager,
		OrderRepo: orderRepo,
		Publisher: publisher,
		Config:    &config.Config{},
		Logger:    logger,
	})

	return orderServiceFixtures{
		service:   service,
		txManager: txManager,
		orderRepo: orderRepo,
		publisher: publisher,
	}
}

func TestOrderService_PlaceOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	customerID := uuid.New()
	productA := &entity.Product{ID: uuid.New(), Price: decimal.NewFromFloat(10.50)}
	productB := &entity.Product{ID: uuid.New(), Price: decimal.NewFromFloat(3.25)}
	orderID := uuid.New()

	input := &usecase.PlaceOrderInput{
		CustomerID:      customerID,
		CustomerEmail:   "customer@example.com",
		RequestID:       "req-123",
		DeliveryAddress: "123 Test St",
		Items: []usecase.OrderItemInput{
			{ProductID: productA.ID, Quantity: 2},
			{ProductID: productB.ID, Quantity: 1},
		},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txOrderRepo := mockRepo.NewMockOrderRepository(t)
			txProductRepo := mockRepo.NewMockProductRepository(t)
			txReminderRepo := mockRepo.NewMockReminderRepository(t)

			factory.EXPECT().NewOrderRepository().Return(txOrderRepo)
			factory.EXPECT().NewProductRepository().Return(txProductRepo)
			factory.EXPECT().NewReminderRepository().Return(txReminderRepo)

			txOrderRepo.EXPECT().
				CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
				Run(func(ctx context.Context, order *entity.Order) {
					order.ID = orderID
				}).
				Return(nil)

			txProductRepo.EXPECT().FindByID(ctx, productA.ID).Return(productA, nil)
			txProductRepo.EXPECT().FindByID(ctx, productB.ID).Return(productB, nil)
			txOrderRepo.EXPECT().
				CreateOrderItem(ctx, mock.AnythingOfType("*entity.OrderItem")).
				Return(nil).
				Times(2)

			// 2 × 10.50 + 1 × 3.25
			txOrderRepo.EXPECT().
				UpdateTotalPrice(ctx, orderID, mock.MatchedBy(func(total decimal.Decimal) bool {
					return total.Equal(decimal.NewFromFloat(24.25))
				})).
				Return(nil)

			txReminderRepo.EXPECT().
				Create(ctx, mock.MatchedBy(func(reminder *entity.PaymentReminder) bool {
					return reminder.OrderID == orderID
				})).
				Return(nil)

			return fn(factory)
		})

	fx.publisher.EXPECT().
		PublishOrderConfirmation(ctx, mock.MatchedBy(func(event *service.OrderConfirmationEvent) bool {
			return event.OrderID == orderID.String() &&
				event.CustomerEmail == "customer@example.com" &&
				event.TotalPrice == "24.25"
		})).
		Return(nil)

	order, err := fx.service.PlaceOrder(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, orderID, order.ID)
	assert.Equal(t, customerID, order.CustomerID)
	assert.True(t, order.TotalPrice.Equal(decimal.NewFromFloat(24.25)))
	assert.Len(t, order.Items, 2)
	assert.Equal(t, order.OrderDate.AddDate(0, 0, entity.PaymentTermDays), order.PaymentDue)
}

func TestOrderService_PlaceOrder_EmptyAddress(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	order, err := fx.service.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		CustomerID:      uuid.New(),
		DeliveryAddress: "   ",
		Items:           []usecase.OrderItemInput{{ProductID: uuid.New(), Quantity: 1}},
	})

	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_PlaceOrder_NoItems(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	order, err := fx.service.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		CustomerID:      uuid.New(),
		DeliveryAddress: "123 Test St",
	})

	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_PlaceOrder_ZeroQuantity(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	order, err := fx.service.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		CustomerID:      uuid.New(),
		DeliveryAddress: "123 Test St",
		Items:           []usecase.OrderItemInput{{ProductID: uuid.New(), Quantity: 0}},
	})

	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_PlaceOrder_UnknownProductRollsBack(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	productID := uuid.New()

	input := &usecase.PlaceOrderInput{
		CustomerID:      uuid.New(),
		CustomerEmail:   "customer@example.com",
		DeliveryAddress: "123 Test St",
		Items:           []usecase.OrderItemInput{{ProductID: productID, Quantity: 1}},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txOrderRepo := mockRepo.NewMockOrderRepository(t)
			txProductRepo := mockRepo.NewMockProductRepository(t)
			txReminderRepo := mockRepo.NewMockReminderRepository(t)

			factory.EXPECT().NewOrderRepository().Return(txOrderRepo)
			factory.EXPECT().NewProductRepository().Return(txProductRepo)
			factory.EXPECT().NewReminderRepository().Return(txReminderRepo)

			txOrderRepo.EXPECT().
				CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
				Return(nil)
			txProductRepo.EXPECT().
				FindByID(ctx, productID).
				Return(nil, repository.ErrProductNotFound)

			return fn(factory)
		})

	order, err := fx.service.PlaceOrder(ctx, input)

	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_PlaceOrder_PublishFailureDoesNotFailOrder(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	productID := uuid.New()
	orderID := uuid.New()

	input := &usecase.PlaceOrderInput{
		CustomerID:      uuid.New(),
		CustomerEmail:   "customer@example.com",
		DeliveryAddress: "123 Test St",
		Items:           []usecase.OrderItemInput{{ProductID: productID, Quantity: 1}},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txOrderRepo := mockRepo.NewMockOrderRepository(t)
			txProductRepo := mockRepo.NewMockProductRepository(t)
			txReminderRepo := mockRepo.NewMockReminderRepository(t)

			factory.EXPECT().NewOrderRepository().Return(txOrderRepo)
			factory.EXPECT().NewProductRepository().Return(txProductRepo)
			factory.EXPECT().NewReminderRepository().Return(txReminderRepo)

			txOrderRepo.EXPECT().
				CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
				Run(func(ctx context.Context, order *entity.Order) {
					order.ID = orderID
				}).
				Return(nil)
			txProductRepo.EXPECT().
				FindByID(ctx, productID).
				Return(&entity.Product{ID: productID, Price: decimal.NewFromFloat(5.00)}, nil)
			txOrderRepo.EXPECT().
				CreateOrderItem(ctx, mock.AnythingOfType("*entity.OrderItem")).
				Return(nil)
			txOrderRepo.EXPECT().
				UpdateTotalPrice(ctx, orderID, mock.AnythingOfType("decimal.Decimal")).
				Return(nil)
			txReminderRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.PaymentReminder")).
				Return(nil)

			return fn(factory)
		})

	fx.publisher.EXPECT().
		PublishOrderConfirmation(ctx, mock.AnythingOfType("*service.OrderConfirmationEvent")).
		Return(errors.New("broker unavailable"))

	order, err := fx.service.PlaceOrder(ctx, input)

	// Publishing is best effort; the committed order stands.
	require.NoError(t, err)
	assert.Equal(t, orderID, order.ID)
}

func TestOrderService_PlaceOrder_ReminderScheduledBeforeDue(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	productID := uuid.New()
	orderID := uuid.New()

	var scheduledAt, paymentDue time.Time

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txOrderRepo := mockRepo.NewMockOrderRepository(t)
			txProductRepo := mockRepo.NewMockProductRepository(t)
			txReminderRepo := mockRepo.NewMockReminderRepository(t)

			factory.EXPECT().NewOrderRepository().Return(txOrderRepo)
			factory.EXPECT().NewProductRepository().Return(txProductRepo)
			factory.EXPECT().NewReminderRepository().Return(txReminderRepo)

			txOrderRepo.EXPECT().
				CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
				Run(func(ctx context.Context, order *entity.Order) {
					order.ID = orderID
					paymentDue = order.PaymentDue
				}).
				Return(nil)
			txProductRepo.EXPECT().
				FindByID(ctx, productID).
				Return(&entity.Product{ID: productID, Price: decimal.NewFromFloat(5.00)}, nil)
			txOrderRepo.EXPECT().
				CreateOrderItem(ctx, mock.AnythingOfType("*entity.OrderItem")).
				Return(nil)
			txOrderRepo.EXPECT().
				UpdateTotalPrice(ctx, orderID, mock.AnythingOfType("decimal.Decimal")).
				Return(nil)
			txReminderRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.PaymentReminder")).
				Run(func(ctx context.Context, reminder *entity.PaymentReminder) {
					scheduledAt = reminder.ScheduledAt
				}).
				Return(nil)

			return fn(factory)
		})

	fx.publisher.EXPECT().
		PublishOrderConfirmation(ctx, mock.AnythingOfType("*service.OrderConfirmationEvent")).
		Return(nil)

	_, err := fx.service.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		CustomerID:      uuid.New(),
		CustomerEmail:   "customer@example.com",
		DeliveryAddress: "123 Test St",
		Items:           []usecase.OrderItemInput{{ProductID: productID, Quantity: 1}},
	})

	require.NoError(t, err)
	assert.Equal(t, paymentDue.AddDate(0, 0, -entity.ReminderLeadDays), scheduledAt)
}

func TestOrderService_GetOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	customerID := uuid.New()
	orderID := uuid.New()
	expected := &entity.Order{ID: orderID, CustomerID: customerID}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(expected, nil)

	order, err := fx.service.GetOrder(ctx, customerID, orderID)

	require.NoError(t, err)
	assert.Equal(t, expected, order)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	customerID := uuid.New()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	order, err := fx.service.GetOrder(ctx, customerID, orderID)

	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_GetOrder_OtherCustomersOrder(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	owner := uuid.New()
	caller := uuid.New()

	fx.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, CustomerID: owner}, nil)

	order, err := fx.service.GetOrder(ctx, caller, orderID)

	require.Error(t, err)
	assert.Nil(t, order)
	// Someone else's order looks missing, not forbidden.
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}
