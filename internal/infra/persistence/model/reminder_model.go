package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentReminderModel mirrors the 'payment_reminders' table. The composite
// index on (status, scheduled_at) serves the worker's due-reminder poll.
type PaymentReminderModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ScheduledAt time.Time `gorm:"not null;index:idx_reminders_due,priority:2"`
	Status      string    `gorm:"type:varchar(16);not null;default:'pending';index:idx_reminders_due,priority:1"`
	LastError   string    `gorm:"type:text"`
	SentAt      *time.Time
	CreatedAt   time.Time

	Order *OrderModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (PaymentReminderModel) TableName() string {
	return "payment_reminders"
}
