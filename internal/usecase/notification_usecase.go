package usecase

import (
	"context"

	"storefront/internal/domain/service"
)

// NotificationUsecase delivers the mails the order workflow produces: the
// confirmation pushed through the event pipeline and the payment reminders
// polled from the database.
type NotificationUsecase interface {
	// SendOrderConfirmation renders and sends the confirmation mail for a
	// committed order, attaching the payment QR code.
	SendOrderConfirmation(ctx context.Context, event *service.OrderConfirmationEvent) error

	// ProcessDueReminders sends every pending reminder whose time has come and
	// returns how many were processed. Delivery failures mark the reminder
	// failed without aborting the batch.
	ProcessDueReminders(ctx context.Context) (int, error)
}
