//go:generate mockery --name ReminderRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"time"

	"go_4_word_learn/internal/middleware"
	"go_4_word_learn/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReminderRepository interface {
	Upsert(ctx context.Context, tx *gorm.DB, reminder *model.Reminder) error
	FindByChatID(ctx context.Context, db *gorm.DB, chatID int64) (*model.Reminder, error)
	FindDue(ctx context.Context, db *gorm.DB, asOf time.Time, limit int) ([]*model.Reminder, error)
	UpdateNextRemindAt(ctx context.Context, tx *gorm.DB, chatID int64, next time.Time) error
	Delete(ctx context.Context, tx *gorm.DB, chatID int64) error
}

type gormReminderRepository struct{}

func NewGormReminderRepository() ReminderRepository {
	return &gormReminderRepository{}
}

func (r *gormReminderRepository) Upsert(ctx context.Context, tx *gorm.DB, reminder *model.Reminder) error {
	reminder.NextRemindAt = reminder.NextRemindAt.UTC()
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "chat_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"remind_time", "next_remind_at"}),
	}).Create(reminder)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error upserting reminder in DB", "error", result.Error, "chat_id", reminder.ChatID)
		return wrap("gormReminderRepository.Upsert", result.Error)
	}
	return nil
}

func (r *gormReminderRepository) FindByChatID(ctx context.Context, db *gorm.DB, chatID int64) (*model.Reminder, error) {
	var reminder model.Reminder
	if err := db.WithContext(ctx).Where("chat_id = ?", chatID).Take(&reminder).Error; err != nil {
		return nil, wrap("gormReminderRepository.FindByChatID", err)
	}
	return &reminder, nil
}

// FindDue は next_remind_at が asOf 以前のリマインダーを古い順に返します。
func (r *gormReminderRepository) FindDue(ctx context.Context, db *gorm.DB, asOf time.Time, limit int) ([]*model.Reminder, error) {
	var reminders []*model.Reminder
	q := db.WithContext(ctx).
		Where("next_remind_at <= ?", asOf.UTC()).
		Order("next_remind_at ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&reminders).Error; err != nil {
		return nil, wrap("gormReminderRepository.FindDue", err)
	}
	return reminders, nil
}

func (r *gormReminderRepository) UpdateNextRemindAt(ctx context.Context, tx *gorm.DB, chatID int64, next time.Time) error {
	result := tx.WithContext(ctx).Model(&model.Reminder{}).
		Where("chat_id = ?", chatID).
		Update("next_remind_at", next.UTC())
	if result.Error != nil {
		return wrap("gormReminderRepository.UpdateNextRemindAt", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormReminderRepository) Delete(ctx context.Context, tx *gorm.DB, chatID int64) error {
	result := tx.WithContext(ctx).Where("chat_id = ?", chatID).Delete(&model.Reminder{})
	if result.Error != nil {
		return wrap("gormReminderRepository.Delete", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
