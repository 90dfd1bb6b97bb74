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

// notificationServiceFixtures holds all test dependencies for notification service tests.
type notificationServiceFixtures struct {
	service      usecase.NotificationUsecase
	reminderRepo *mockRepo.MockReminderRepository
	orderRepo    *mockRepo.MockOrderRepository
	userRepo     *mockRepo.MockUserRepository
	mailer       *mockSvc.MockMailer
	qrcodeSvc    *mockSvc.MockQRCodeService
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	reminderRepo := mockRepo.NewMockReminderRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	mailer := mockSvc.NewMockMailer(t)
	qrcodeSvc := mockSvc.NewMockQRCodeService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewNotificationService(NotificationServiceParams{
		ReminderRepo: reminderRepo,
		OrderRepo:    orderRepo,
		UserRepo:     userRepo,
		Mailer:       mailer,
		QRCodeSvc:    qrcodeSvc,
		Config:       &config.Config{},
		Logger:       logger,
	})

	return notificationServiceFixtures{
		service:      svc,
		reminderRepo: reminderRepo,
		orderRepo:    orderRepo,
		userRepo:     userRepo,
		mailer:       mailer,
		qrcodeSvc:    qrcodeSvc,
	}
}

func testConfirmationEvent(orderID uuid.UUID) *service.OrderConfirmationEvent {
	return &service.OrderConfirmationEvent{
		OrderID:         orderID.String(),
		CustomerID:      uuid.New().String(),
		CustomerEmail:   "customer@example.com",
		DeliveryAddress: "123 Test St",
		TotalPrice:      "24.25",
		PaymentDue:      "2025-06-15T10:00:00Z",
	}
}

func TestNotificationService_SendOrderConfirmation_Success(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	orderID := uuid.New()
	event := testConfirmationEvent(orderID)
	qrPNG := []byte("fake-png-bytes")

	fx.qrcodeSvc.EXPECT().GeneratePaymentQR(orderID, "24.25").Return(qrPNG, nil)
	fx.mailer.EXPECT().
		Send(ctx, mock.MatchedBy(func(mail *service.Mail) bool {
			return len(mail.To) == 1 &&
				mail.To[0] == "customer@example.com" &&
				len(mail.Attachments) == 1 &&
				mail.Attachments[0].Filename == "payment-qr.png"
		})).
		Return(nil)

	err := fx.service.SendOrderConfirmation(ctx, event)

	require.NoError(t, err)
}

func TestNotificationService_SendOrderConfirmation_QRFailureSendsWithoutAttachment(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	orderID := uuid.New()
	event := testConfirmationEvent(orderID)

	fx.qrcodeSvc.EXPECT().
		GeneratePaymentQR(orderID, "24.25").
		Return(nil, errors.New("qr encoder failure"))
	fx.mailer.EXPECT().
		Send(ctx, mock.MatchedBy(func(mail *service.Mail) bool {
			return len(mail.Attachments) == 0
		})).
		Return(nil)

	err := fx.service.SendOrderConfirmation(ctx, event)

	require.NoError(t, err)
}

func TestNotificationService_SendOrderConfirmation_InvalidOrderID(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	event := testConfirmationEvent(uuid.New())
	event.OrderID = "not-a-uuid"

	err := fx.service.SendOrderConfirmation(ctx, event)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestNotificationService_SendOrderConfirmation_MissingRecipient(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	event := testConfirmationEvent(uuid.New())
	event.CustomerEmail = ""

	err := fx.service.SendOrderConfirmation(ctx, event)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestNotificationService_SendOrderConfirmation_MailFailure(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	orderID := uuid.New()
	event := testConfirmationEvent(orderID)

	fx.qrcodeSvc.EXPECT().GeneratePaymentQR(orderID, "24.25").Return([]byte("png"), nil)
	fx.mailer.EXPECT().
		Send(ctx, mock.AnythingOfType("*service.Mail")).
		Return(errors.New("smtp unavailable"))

	err := fx.service.SendOrderConfirmation(ctx, event)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMailSendFailed)
}

func TestNotificationService_ProcessDueReminders_Success(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	orderID := uuid.New()
	customerID := uuid.New()
	reminder := &entity.PaymentReminder{
		ID:          uuid.New(),
		OrderID:     orderID,
		ScheduledAt: time.Now().UTC().Add(-time.Hour),
		Status:      entity.ReminderStatusPending,
	}

	fx.reminderRepo.EXPECT().
		FindDue(ctx, mock.AnythingOfType("time.Time"), defaultReminderBatchSize).
		Return([]*entity.PaymentReminder{reminder}, nil)
	fx.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{
			ID:         orderID,
			CustomerID: customerID,
			TotalPrice: decimal.NewFromFloat(24.25),
			PaymentDue: time.Now().UTC().Add(24 * time.Hour),
		}, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, customerID).
		Return(&entity.User{ID: customerID, Email: "customer@example.com"}, nil)
	fx.mailer.EXPECT().
		Send(ctx, mock.MatchedBy(func(mail *service.Mail) bool {
			return len(mail.To) == 1 && mail.To[0] == "customer@example.com"
		})).
		Return(nil)
	fx.reminderRepo.EXPECT().
		MarkSent(ctx, reminder.ID, mock.AnythingOfType("time.Time")).
		Return(nil)

	processed, err := fx.service.ProcessDueReminders(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, processed)
}

func TestNotificationService_ProcessDueReminders_NoDueReminders(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()

	fx.reminderRepo.EXPECT().
		FindDue(ctx, mock.AnythingOfType("time.Time"), defaultReminderBatchSize).
		Return([]*entity.PaymentReminder{}, nil)

	processed, err := fx.service.ProcessDueReminders(ctx)

	require.NoError(t, err)
	assert.Zero(t, processed)
}

func TestNotificationService_ProcessDueReminders_MailFailureMarksFailed(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	orderID := uuid.New()
	customerID := uuid.New()
	reminder := &entity.PaymentReminder{
		ID:      uuid.New(),
		OrderID: orderID,
		Status:  entity.ReminderStatusPending,
	}

	fx.reminderRepo.EXPECT().
		FindDue(ctx, mock.AnythingOfType("time.Time"), defaultReminderBatchSize).
		Return([]*entity.PaymentReminder{reminder}, nil)
	fx.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, CustomerID: customerID}, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, customerID).
		Return(&entity.User{ID: customerID, Email: "customer@example.com"}, nil)
	fx.mailer.EXPECT().
		Send(ctx, mock.AnythingOfType("*service.Mail")).
		Return(errors.New("smtp unavailable"))
	fx.reminderRepo.EXPECT().
		MarkFailed(ctx, reminder.ID, mock.AnythingOfType("string")).
		Return(nil)

	processed, err := fx.service.ProcessDueReminders(ctx)

	// The reminder counts as handled even though it ended up failed.
	require.NoError(t, err)
	assert.Equal(t, 1, processed)
}

func TestNotificationService_ProcessDueReminders_OrderLookupFailureMarksFailed(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	reminder := &entity.PaymentReminder{
		ID:      uuid.New(),
		OrderID: uuid.New(),
		Status:  entity.ReminderStatusPending,
	}

	fx.reminderRepo.EXPECT().
		FindDue(ctx, mock.AnythingOfType("time.Time"), defaultReminderBatchSize).
		Return([]*entity.PaymentReminder{reminder}, nil)
	fx.orderRepo.EXPECT().
		FindByID(ctx, reminder.OrderID).
		Return(nil, repository.ErrOrderNotFound)
	fx.reminderRepo.EXPECT().
		MarkFailed(ctx, reminder.ID, mock.AnythingOfType("string")).
		Return(nil)

	processed, err := fx.service.ProcessDueReminders(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, processed)
}

func TestNotificationService_ProcessDueReminders_IndependentFailures(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	customerID := uuid.New()
	broken := &entity.PaymentReminder{ID: uuid.New(), OrderID: uuid.New()}
	healthy := &entity.PaymentReminder{ID: uuid.New(), OrderID: uuid.New()}

	fx.reminderRepo.EXPECT().
		FindDue(ctx, mock.AnythingOfType("time.Time"), defaultReminderBatchSize).
		Return([]*entity.PaymentReminder{broken, healthy}, nil)

	fx.orderRepo.EXPECT().
		FindByID(ctx, broken.OrderID).
		Return(nil, repository.ErrOrderNotFound)
	fx.reminderRepo.EXPECT().
		MarkFailed(ctx, broken.ID, mock.AnythingOfType("string")).
		Return(nil)

	fx.orderRepo.EXPECT().
		FindByID(ctx, healthy.OrderID).
		Return(&entity.Order{ID: healthy.OrderID, CustomerID: customerID}, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, customerID).
		Return(&entity.User{ID: customerID, Email: "customer@example.com"}, nil)
	fx.mailer.EXPECT().
		Send(ctx, mock.AnythingOfType("*service.Mail")).
		Return(nil)
	fx.reminderRepo.EXPECT().
		MarkSent(ctx, healthy.ID, mock.AnythingOfType("time.Time")).
		Return(nil)

	processed, err := fx.service.ProcessDueReminders(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, processed)
}

func TestNotificationService_ProcessDueReminders_FindDueFailure(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()

	fx.reminderRepo.EXPECT().
		FindDue(ctx, mock.AnythingOfType("time.Time"), defaultReminderBatchSize).
		Return(nil, errors.New("db unavailable"))

	processed, err := fx.service.ProcessDueReminders(ctx)

	require.Error(t, err)
	assert.Zero(t, processed)
}
