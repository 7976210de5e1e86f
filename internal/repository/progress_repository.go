//go:generate mockery --name ProgressRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"

	"go_4_word_learn/internal/middleware"
	"go_4_word_learn/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProgressRepository はセッション統計・単語ごとの結果・ストリークを扱います。
type ProgressRepository interface {
	GetStats(ctx context.Context, db *gorm.DB, chatID int64) (*model.PracticeStats, error)
	IncrementStats(ctx context.Context, tx *gorm.DB, chatID int64, wasCorrect bool) error
	ResetStats(ctx context.Context, tx *gorm.DB, chatID int64) error
	SaveSessionResult(ctx context.Context, tx *gorm.DB, result *model.SessionWordResult) error
	GetSessionResults(ctx context.Context, db *gorm.DB, chatID int64) ([]*model.SessionWordResult, error)
	ClearSessionResults(ctx context.Context, tx *gorm.DB, chatID int64) error
	GetStreak(ctx context.Context, db *gorm.DB, chatID int64) (*model.PracticeStreak, error)
	UpsertStreak(ctx context.Context, tx *gorm.DB, chatID int64, streak int, lastActiveDate string) error
}

type gormProgressRepository struct{}

func NewGormProgressRepository() ProgressRepository {
	return &gormProgressRepository{}
}

// GetStats は統計が無い場合ゼロ値を返します。
func (r *gormProgressRepository) GetStats(ctx context.Context, db *gorm.DB, chatID int64) (*model.PracticeStats, error) {
	stats := model.PracticeStats{ChatID: chatID}
	result := db.WithContext(ctx).Where("chat_id = ?", chatID).Take(&stats)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return &model.PracticeStats{ChatID: chatID}, nil
		}
		return nil, wrap("gormProgressRepository.GetStats", result.Error)
	}
	return &stats, nil
}

func (r *gormProgressRepository) IncrementStats(ctx context.Context, tx *gorm.DB, chatID int64, wasCorrect bool) error {
	inc := 0
	if wasCorrect {
		inc = 1
	}
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "chat_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"correct_count": gorm.Expr("current_practice_stats.correct_count + ?", inc),
			"total_count":   gorm.Expr("current_practice_stats.total_count + 1"),
		}),
	}).Create(&model.PracticeStats{ChatID: chatID, Correct: inc, Total: 1})
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error incrementing practice stats in DB", "error", result.Error, "chat_id", chatID)
		return wrap("gormProgressRepository.IncrementStats", result.Error)
	}
	return nil
}

func (r *gormProgressRepository) ResetStats(ctx context.Context, tx *gorm.DB, chatID int64) error {
	if err := tx.WithContext(ctx).Where("chat_id = ?", chatID).Delete(&model.PracticeStats{}).Error; err != nil {
		return wrap("gormProgressRepository.ResetStats", err)
	}
	return nil
}

// SaveSessionResult は (chat_id, word_id) 単位で上書き保存します。
func (r *gormProgressRepository) SaveSessionResult(ctx context.Context, tx *gorm.DB, res *model.SessionWordResult) error {
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "chat_id"}, {Name: "word_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"result", "old_stage", "new_stage", "source_text", "target_text", "answered_at"}),
	}).Create(res)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error saving session result in DB", "error", result.Error, "chat_id", res.ChatID, "word_id", res.WordID)
		return wrap("gormProgressRepository.SaveSessionResult", result.Error)
	}
	return nil
}

func (r *gormProgressRepository) GetSessionResults(ctx context.Context, db *gorm.DB, chatID int64) ([]*model.SessionWordResult, error) {
	var results []*model.SessionWordResult
	if err := db.WithContext(ctx).
		Where("chat_id = ?", chatID).
		Order("answered_at ASC, word_id ASC").
		Find(&results).Error; err != nil {
		return nil, wrap("gormProgressRepository.GetSessionResults", err)
	}
	return results, nil
}

func (r *gormProgressRepository) ClearSessionResults(ctx context.Context, tx *gorm.DB, chatID int64) error {
	if err := tx.WithContext(ctx).Where("chat_id = ?", chatID).Delete(&model.SessionWordResult{}).Error; err != nil {
		return wrap("gormProgressRepository.ClearSessionResults", err)
	}
	return nil
}

func (r *gormProgressRepository) GetStreak(ctx context.Context, db *gorm.DB, chatID int64) (*model.PracticeStreak, error) {
	var streak model.PracticeStreak
	if err := db.WithContext(ctx).Where("chat_id = ?", chatID).Take(&streak).Error; err != nil {
		return nil, wrap("gormProgressRepository.GetStreak", err)
	}
	return &streak, nil
}

func (r *gormProgressRepository) UpsertStreak(ctx context.Context, tx *gorm.DB, chatID int64, streak int, lastActiveDate string) error {
	day := lastActiveDate
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "chat_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"current_streak", "last_active_date"}),
	}).Create(&model.PracticeStreak{ChatID: chatID, CurrentStreak: streak, LastActiveDate: &day})
	if result.Error != nil {
		return wrap("gormProgressRepository.UpsertStreak", result.Error)
	}
	return nil
}
