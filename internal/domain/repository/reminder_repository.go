// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrReminderNotFound is returned when a payment reminder is not found.
var ErrReminderNotFound = errors.New("payment reminder not found")

// ReminderRepository defines the interface for payment-reminder persistence.
// Reminders are rows, not in-process timers: the worker polls for due rows,
// so a restart never loses a scheduled reminder.
type ReminderRepository interface {
	// Create persists a new pending reminder.
	Create(ctx context.Context, reminder *entity.PaymentReminder) error

	// FindDue retrieves pending reminders whose scheduled time has passed.
	FindDue(ctx context.Context, now time.Time, limit int) ([]*entity.PaymentReminder, error)

	// MarkSent transitions a reminder to the sent state.
	MarkSent(ctx context.Context, id uuid.UUID, sentAt time.Time) error

	// MarkFailed transitions a reminder to the failed state. Failed reminders
	// are terminal; no retry is scheduled.
	MarkFailed(ctx context.Context, id uuid.UUID, reason string) error
}
