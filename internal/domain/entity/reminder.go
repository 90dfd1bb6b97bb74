// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReminderLeadDays is how long before the payment due date the reminder fires.
const ReminderLeadDays = 1

// ReminderStatus tracks the delivery state of a payment reminder.
type ReminderStatus string

const (
	// ReminderStatusPending marks a reminder waiting for its fire time.
	ReminderStatusPending ReminderStatus = "pending"
	// ReminderStatusSent marks a reminder that was delivered.
	ReminderStatusSent ReminderStatus = "sent"
	// ReminderStatusFailed marks a reminder whose delivery failed. Failed
	// reminders are not retried.
	ReminderStatusFailed ReminderStatus = "failed"
)

// PaymentReminder is a deferred notification keyed by a persisted order.
// It is created in the same transaction as its order, so it can never
// reference an order id that was rolled back or not yet assigned.
type PaymentReminder struct {
	ID          uuid.UUID      `json:"id"`
	OrderID     uuid.UUID      `json:"order_id"`
	ScheduledAt time.Time      `json:"scheduled_at"` // payment_due - ReminderLeadDays.
	Status      ReminderStatus `json:"status"`
	LastError   string         `json:"last_error,omitempty"`
	SentAt      *time.Time     `json:"sent_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}
