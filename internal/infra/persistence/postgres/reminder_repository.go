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
	"gorm.io/gorm"
)

// reminderRepository implements the repository.ReminderRepository interface.
type reminderRepository struct {
	db *gorm.DB
}

// NewReminderRepository is the constructor for reminderRepository.
func NewReminderRepository(db *gorm.DB) repository.ReminderRepository {
	return &reminderRepository{
		db: db,
	}
}

// Create persists a new pending reminder.
func (repo *reminderRepository) Create(ctx context.Context, reminder *entity.PaymentReminder) error {
	reminderM := &model.PaymentReminderModel{
		ID:          reminder.ID,
		OrderID:     reminder.OrderID,
		ScheduledAt: reminder.ScheduledAt,
		Status:      string(entity.ReminderStatusPending),
	}

	if err := repo.db.WithContext(ctx).Create(reminderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrOrderNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment reminder")
	}

	// Update the entity with generated values
	reminder.ID = reminderM.ID
	reminder.Status = entity.ReminderStatusPending
	reminder.CreatedAt = reminderM.CreatedAt

	return nil
}

// FindDue retrieves pending reminders whose scheduled time has passed,
// oldest first. The (status, scheduled_at) index serves this query.
func (repo *reminderRepository) FindDue(ctx context.Context, now time.Time, limit int) ([]*entity.PaymentReminder, error) {
	var reminderModels []*model.PaymentReminderModel

	query := repo.db.WithContext(ctx).
		Where("status = ? AND scheduled_at <= ?", string(entity.ReminderStatusPending), now).
		Order("scheduled_at ASC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&reminderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find due reminders")
	}

	reminders := make([]*entity.PaymentReminder, 0, len(reminderModels))
	for _, reminderM := range reminderModels {
		reminders = append(reminders, toReminderDomain(reminderM))
	}

	return reminders, nil
}

// MarkSent transitions a pending reminder to sent. The status guard keeps a
// concurrent worker from double-sending the same reminder.
func (repo *reminderRepository) MarkSent(ctx context.Context, id uuid.UUID, sentAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PaymentReminderModel{}).
		Where("id = ? AND status = ?", id, string(entity.ReminderStatusPending)).
		Updates(map[string]interface{}{
			"status":  string(entity.ReminderStatusSent),
			"sent_at": sentAt,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark reminder as sent")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReminderNotFound
	}

	return nil
}

// MarkFailed transitions a pending reminder to failed. Failed reminders are
// terminal.
func (repo *reminderRepository) MarkFailed(ctx context.Context, id uuid.UUID, reason string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PaymentReminderModel{}).
		Where("id = ? AND status = ?", id, string(entity.ReminderStatusPending)).
		Updates(map[string]interface{}{
			"status":     string(entity.ReminderStatusFailed),
			"last_error": reason,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark reminder as failed")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReminderNotFound
	}

	return nil
}

// toReminderDomain converts a persistence model to a domain entity.
func toReminderDomain(reminderM *model.PaymentReminderModel) *entity.PaymentReminder {
	return &entity.PaymentReminder{
		ID:          reminderM.ID,
		OrderID:     reminderM.OrderID,
		ScheduledAt: reminderM.ScheduledAt,
		Status:      entity.ReminderStatus(reminderM.Status),
		LastError:   reminderM.LastError,
		SentAt:      reminderM.SentAt,
		CreatedAt:   reminderM.CreatedAt,
	}
}
