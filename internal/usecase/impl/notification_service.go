package impl

import (
	"context"
	"fmt"
	"log/slog"
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
	"go.uber.org/fx"
)

const defaultReminderBatchSize = 50

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	reminderRepo repository.ReminderRepository
	orderRepo    repository.OrderRepository
	userRepo     repository.UserRepository
	mailer       service.Mailer
	qrcodeSvc    service.QRCodeService
	batchSize    int
	logger       *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	ReminderRepo repository.ReminderRepository
	OrderRepo    repository.OrderRepository
	UserRepo     repository.UserRepository
	Mailer       service.Mailer
	QRCodeSvc    service.QRCodeService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	batchSize := defaultReminderBatchSize
	if params.Config.Reminder != nil && params.Config.Reminder.BatchSize > 0 {
		batchSize = params.Config.Reminder.BatchSize
	}

	return &notificationService{
		reminderRepo: params.ReminderRepo,
		orderRepo:    params.OrderRepo,
		userRepo:     params.UserRepo,
		mailer:       params.Mailer,
		qrcodeSvc:    params.QRCodeSvc,
		batchSize:    batchSize,
		logger:       params.Logger,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SendOrderConfirmation renders and sends the confirmation mail for a
// committed order, attaching a payment QR code for the total.
func (srv *notificationService) SendOrderConfirmation(ctx context.Context, event *service.OrderConfirmationEvent) error {
	orderID, err := uuid.Parse(event.OrderID)
	if err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid order id in confirmation event")
	}
	if event.CustomerEmail == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("confirmation event has no recipient")
	}

	mail := &service.Mail{
		Subject: fmt.Sprintf("訂單確認通知 #%s", shortOrderRef(orderID)),
		Body: fmt.Sprintf(
			"您的訂單已成立。\n\n訂單編號:%s\n總金額:%s\n送貨地址:%s\n付款期限:%s\n\n請使用附件中的 QR Code 完成付款。",
			event.OrderID, event.TotalPrice, event.DeliveryAddress, formatDue(event.PaymentDue),
		),
		To: []string{event.CustomerEmail},
	}

	qrPNG, err := srv.qrcodeSvc.GeneratePaymentQR(orderID, event.TotalPrice)
	if err != nil {
		// A broken QR should not suppress the confirmation itself.
		srv.log(ctx).Warn("Failed to generate payment QR, sending confirmation without it",
			slog.String("orderID", event.OrderID),
			slog.Any("error", err),
		)
	} else {
		mail.Attachments = append(mail.Attachments, service.MailAttachment{
			Filename:    "payment-qr.png",
			ContentType: "image/png",
			Content:     qrPNG,
		})
	}

	if err := srv.mailer.Send(ctx, mail); err != nil {
		srv.log(ctx).Error("Failed to send order confirmation",
			slog.String("orderID", event.OrderID),
			slog.Any("error", err),
		)

		return domainerrors.ErrMailSendFailed.WrapMessage("failed to send order confirmation")
	}

	srv.log(ctx).Info("Order confirmation sent", slog.String("orderID", event.OrderID))

	return nil
}

// ProcessDueReminders sends every pending reminder whose scheduled time has
// passed. Each reminder is handled independently: a failed delivery marks
// that reminder failed and the batch moves on.
func (srv *notificationService) ProcessDueReminders(ctx context.Context) (int, error) {
	now := time.Now().UTC()

	reminders, err := srv.reminderRepo.FindDue(ctx, now, srv.batchSize)
	if err != nil {
		return 0, errors.Wrap(err, "failed to find due reminders")
	}

	processed := 0
	for _, reminder := range reminders {
		if err := ctx.Err(); err != nil {
			return processed, errors.WithStack(err)
		}

		srv.processReminder(ctx, reminder, now)
		processed++
	}

	if processed > 0 {
		srv.log(ctx).Info("Reminder batch processed", slog.Int("count", processed))
	}

	return processed, nil
}

func (srv *notificationService) processReminder(ctx context.Context, reminder *entity.PaymentReminder, now time.Time) {
	order, err := srv.orderRepo.FindByID(ctx, reminder.OrderID)
	if err != nil {
		srv.markFailed(ctx, reminder, fmt.Sprintf("order lookup failed: %v", err))

		return
	}

	customer, err := srv.userRepo.FindByID(ctx, order.CustomerID)
	if err != nil {
		srv.markFailed(ctx, reminder, fmt.Sprintf("customer lookup failed: %v", err))

		return
	}

	mail := &service.Mail{
		Subject: fmt.Sprintf("付款提醒 #%s", shortOrderRef(order.ID)),
		Body: fmt.Sprintf(
			"提醒您,您的訂單尚未完成付款。\n\n訂單編號:%s\n總金額:%s\n付款期限:%s\n\n請於期限前完成付款。",
			order.ID, order.TotalPrice.StringFixed(2), order.PaymentDue.Format("2006-01-02"),
		),
		To: []string{customer.Email},
	}

	if err := srv.mailer.Send(ctx, mail); err != nil {
		srv.markFailed(ctx, reminder, fmt.Sprintf("mail delivery failed: %v", err))

		return
	}

	if err := srv.reminderRepo.MarkSent(ctx, reminder.ID, now); err != nil {
		srv.log(ctx).Error("Failed to mark reminder as sent",
			slog.Any("reminderID", reminder.ID),
			slog.Any("error", err),
		)

		return
	}

	srv.log(ctx).Debug("Payment reminder sent",
		slog.Any("reminderID", reminder.ID),
		slog.Any("orderID", reminder.OrderID),
	)
}

func (srv *notificationService) markFailed(ctx context.Context, reminder *entity.PaymentReminder, reason string) {
	srv.log(ctx).Warn("Payment reminder failed",
		slog.Any("reminderID", reminder.ID),
		slog.String("reason", reason),
	)

	if err := srv.reminderRepo.MarkFailed(ctx, reminder.ID, reason); err != nil {
		srv.log(ctx).Error("Failed to mark reminder as failed",
			slog.Any("reminderID", reminder.ID),
			slog.Any("error", err),
		)
	}
}

func shortOrderRef(orderID uuid.UUID) string {
	s := orderID.String()

	return s[:8]
}

func formatDue(due string) string {
	t, err := time.Parse(time.RFC3339, due)
	if err != nil {
		return due
	}

	return t.Format("2006-01-02")
}
