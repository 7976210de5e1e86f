//go:generate mockery --name PracticeRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"time"

	"go_4_word_learn/internal/middleware"
	"go_4_word_learn/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PracticeRepository は word_practice / today_practice / current_practice を扱います。
// 時刻引数はすべて UTC で渡すこと。
type PracticeRepository interface {
	AddRecords(ctx context.Context, tx *gorm.DB, chatID int64, wordIDs []uuid.UUID, nextReviewAt time.Time) (int64, error)
	FindRecord(ctx context.Context, db *gorm.DB, chatID int64, wordID uuid.UUID) (*model.PracticeRecord, error)
	GetDuePracticeRecords(ctx context.Context, db *gorm.DB, chatID int64, asOf time.Time) ([]*model.PracticeRecord, error)
	CountDue(ctx context.Context, db *gorm.DB, chatID int64, asOf time.Time) (int64, error)
	UpdatePracticeRecord(ctx context.Context, tx *gorm.DB, chatID int64, wordID uuid.UUID, stage int, nextReviewAt time.Time) error
	SoftDeletePracticeRecord(ctx context.Context, tx *gorm.DB, chatID int64, wordID uuid.UUID) error
	GetConsecutiveFailures(ctx context.Context, db *gorm.DB, chatID int64, wordIDs []uuid.UUID) (map[uuid.UUID]int, error)
	IncrementConsecutiveFailures(ctx context.Context, tx *gorm.DB, chatID int64, wordID uuid.UUID) error
	ResetConsecutiveFailures(ctx context.Context, tx *gorm.DB, chatID int64, wordID uuid.UUID) error
	CountConfidentWords(ctx context.Context, db *gorm.DB, chatID int64) (int64, error)

	GetOrCreateDailyPool(ctx context.Context, tx *gorm.DB, chatID int64, day string, asOf time.Time, chooseSize func() int) ([]uuid.UUID, error)
	GetSessionBatch(ctx context.Context, tx *gorm.DB, chatID int64, day string, asOf time.Time, batchSize int) ([]uuid.UUID, error)
	NextSessionRecord(ctx context.Context, db *gorm.DB, chatID int64) (*model.PracticeRecord, error)
	RemoveFromSession(ctx context.Context, tx *gorm.DB, chatID int64, wordID uuid.UUID) error
	CountSession(ctx context.Context, db *gorm.DB, chatID int64) (int64, error)
	CountRemainingInPool(ctx context.Context, db *gorm.DB, chatID int64, day string, asOf time.Time) (int64, error)
	ClearSession(ctx context.Context, tx *gorm.DB, chatID int64) error
}

type gormPracticeRepository struct{}

func NewGormPracticeRepository() PracticeRepository {
	return &gormPracticeRepository{}
}

// AddRecords はステージ0で練習対象に追加します。既に存在する単語は無視します。
func (r *gormPracticeRepository) AddRecords(ctx context.Context, tx *gorm.DB, chatID int64, wordIDs []uuid.UUID, nextReviewAt time.Time) (int64, error) {
	if len(wordIDs) == 0 {
		return 0, nil
	}
	records := make([]*model.PracticeRecord, 0, len(wordIDs))
	for _, id := range wordIDs {
		records = append(records, &model.PracticeRecord{
			WordID:       id,
			ChatID:       chatID,
			Stage:        0,
			NextReviewAt: nextReviewAt.UTC(),
		})
	}
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Omit("Word").Create(&records)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error adding practice records in DB", "error", result.Error, "chat_id", chatID, "count", len(wordIDs))
		return 0, wrap("gormPracticeRepository.AddRecords", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *gormPracticeRepository) FindRecord(ctx context.Context, db *gorm.DB, chatID int64, wordID uuid.UUID) (*model.PracticeRecord, error) {
	var rec model.PracticeRecord
	q := db.WithContext(ctx)
	if isPostgres(db) {
		// 同一チャットの同時回答に備えて行ロック
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	result := q.Where("chat_id = ? AND word_id = ?", chatID, wordID).Take(&rec)
	if result.Error != nil {
		return nil, wrap("gormPracticeRepository.FindRecord", result.Error)
	}
	return &rec, nil
}

func (r *gormPracticeRepository) GetDuePracticeRecords(ctx context.Context, db *gorm.DB, chatID int64, asOf time.Time) ([]*model.PracticeRecord, error) {
	var recs []*model.PracticeRecord
	result := db.WithContext(ctx).
		Where("chat_id = ? AND deleted = ? AND next_date <= ?", chatID, false, asOf.UTC()).
		Order("next_date ASC").
		Find(&recs)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error finding due practice records in DB", "error", result.Error, "chat_id", chatID)
		return nil, wrap("gormPracticeRepository.GetDuePracticeRecords", result.Error)
	}
	return recs, nil
}

func (r *gormPracticeRepository) CountDue(ctx context.Context, db *gorm.DB, chatID int64, asOf time.Time) (int64, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.PracticeRecord{}).
		Where("chat_id = ? AND deleted = ? AND next_date <= ?", chatID, false, asOf.UTC()).
		Count(&count)
	if result.Error != nil {
		return 0, wrap("gormPracticeRepository.CountDue", result.Error)
	}
	return count, nil
}

func (r *gormPracticeRepository) UpdatePracticeRecord(ctx context.Context, tx *gorm.DB, chatID int64, wordID uuid.UUID, stage int, nextReviewAt time.Time) error {
	result := tx.WithContext(ctx).Model(&model.PracticeRecord{}).
		Where("chat_id = ? AND word_id = ?", chatID, wordID).
		Updates(map[string]interface{}{
			"stage":     stage,
			"next_date": nextReviewAt.UTC(),
		})
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error updating practice record in DB", "error", result.Error, "chat_id", chatID, "word_id", wordID)
		return wrap("gormPracticeRepository.UpdatePracticeRecord", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormPracticeRepository) SoftDeletePracticeRecord(ctx context.Context, tx *gorm.DB, chatID int64, wordID uuid.UUID) error {
	result := tx.WithContext(ctx).Model(&model.PracticeRecord{}).
		Where("chat_id = ? AND word_id = ?", chatID, wordID).
		Update("deleted", true)
	if result.Error != nil {
		return wrap("gormPracticeRepository.SoftDeletePracticeRecord", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormPracticeRepository) GetConsecutiveFailures(ctx context.Context, db *gorm.DB, chatID int64, wordIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	failures := make(map[uuid.UUID]int, len(wordIDs))
	if len(wordIDs) == 0 {
		return failures, nil
	}
	var rows []struct {
		WordID              uuid.UUID
		ConsecutiveFailures int
	}
	result := db.WithContext(ctx).Model(&model.PracticeRecord{}).
		Select("word_id, consecutive_failures").
		Where("chat_id = ? AND word_id IN ?", chatID, wordIDs).
		Scan(&rows)
	if result.Error != nil {
		return nil, wrap("gormPracticeRepository.GetConsecutiveFailures", result.Error)
	}
	for _, row := range rows {
		failures[row.WordID] = row.ConsecutiveFailures
	}
	return failures, nil
}

func (r *gormPracticeRepository) IncrementConsecutiveFailures(ctx context.Context, tx *gorm.DB, chatID int64, wordID uuid.UUID) error {
	result := tx.WithContext(ctx).Model(&model.PracticeRecord{}).
		Where("chat_id = ? AND word_id = ?", chatID, wordID).
		Update("consecutive_failures", gorm.Expr("consecutive_failures + 1"))
	if result.Error != nil {
		return wrap("gormPracticeRepository.IncrementConsecutiveFailures", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormPracticeRepository) ResetConsecutiveFailures(ctx context.Context, tx *gorm.DB, chatID int64, wordID uuid.UUID) error {
	result := tx.WithContext(ctx).Model(&model.PracticeRecord{}).
		Where("chat_id = ? AND word_id = ?", chatID, wordID).
		Update("consecutive_failures", 0)
	if result.Error != nil {
		return wrap("gormPracticeRepository.ResetConsecutiveFailures", result.Error)
	}
	return nil
}

func (r *gormPracticeRepository) CountConfidentWords(ctx context.Context, db *gorm.DB, chatID int64) (int64, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.PracticeRecord{}).
		Where("chat_id = ? AND deleted = ? AND stage >= ?", chatID, false, model.ConfidentStage).
		Count(&count)
	if result.Error != nil {
		return 0, wrap("gormPracticeRepository.CountConfidentWords", result.Error)
	}
	return count, nil
}

// GetOrCreateDailyPool は day のプールを返します。無ければ期限切れの単語から
// chooseSize() 件をランダムに選んで保存します。空のプールは保存されません。
func (r *gormPracticeRepository) GetOrCreateDailyPool(ctx context.Context, tx *gorm.DB, chatID int64, day string, asOf time.Time, chooseSize func() int) ([]uuid.UUID, error) {
	logger := middleware.GetLogger(ctx)
	db := tx.WithContext(ctx)

	var ids []uuid.UUID
	if err := db.Model(&model.DailyPoolEntry{}).
		Where("chat_id = ? AND practice_date = ?", chatID, day).
		Pluck("word_id", &ids).Error; err != nil {
		return nil, wrap("gormPracticeRepository.GetOrCreateDailyPool", err)
	}
	if len(ids) > 0 {
		return ids, nil
	}

	// 前日以前のプールは不要。そのプールから取ったセッションも破棄する
	if err := db.Where("chat_id = ? AND practice_date <> ?", chatID, day).
		Delete(&model.DailyPoolEntry{}).Error; err != nil {
		return nil, wrap("gormPracticeRepository.GetOrCreateDailyPool", err)
	}
	if err := db.Where("chat_id = ?", chatID).Delete(&model.CurrentPracticeEntry{}).Error; err != nil {
		return nil, wrap("gormPracticeRepository.GetOrCreateDailyPool", err)
	}

	size := chooseSize()
	if err := db.Model(&model.PracticeRecord{}).
		Where("chat_id = ? AND deleted = ? AND next_date <= ?", chatID, false, asOf.UTC()).
		Order("RANDOM()").
		Limit(size).
		Pluck("word_id", &ids).Error; err != nil {
		return nil, wrap("gormPracticeRepository.GetOrCreateDailyPool", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	entries := make([]*model.DailyPoolEntry, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, &model.DailyPoolEntry{ChatID: chatID, PracticeDate: day, WordID: id})
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&entries).Error; err != nil {
		logger.Error("Error creating daily pool in DB", "error", err, "chat_id", chatID, "day", day)
		return nil, wrap("gormPracticeRepository.GetOrCreateDailyPool", err)
	}
	logger.Info("Daily pool created", "chat_id", chatID, "day", day, "size", len(ids), "drawn_size", size)
	return ids, nil
}

// poolMembers はプール内で期限切れかつ未削除の単語に絞り込むクエリ
func poolMembers(db *gorm.DB, chatID int64, day string, asOf time.Time) *gorm.DB {
	return db.Model(&model.DailyPoolEntry{}).
		Joins("JOIN word_practice wp ON wp.chat_id = today_practice.chat_id AND wp.word_id = today_practice.word_id").
		Where("today_practice.chat_id = ? AND today_practice.practice_date = ?", chatID, day).
		Where("wp.deleted = ? AND wp.next_date <= ?", false, asOf.UTC())
}

// GetSessionBatch はプールからセッション外の単語を最大 batchSize 件選び、セッションに入れます。
func (r *gormPracticeRepository) GetSessionBatch(ctx context.Context, tx *gorm.DB, chatID int64, day string, asOf time.Time, batchSize int) ([]uuid.UUID, error) {
	if batchSize <= 0 {
		return nil, nil
	}
	db := tx.WithContext(ctx)

	var ids []uuid.UUID
	if err := poolMembers(db, chatID, day, asOf).
		Where("NOT EXISTS (SELECT 1 FROM current_practice cp WHERE cp.chat_id = today_practice.chat_id AND cp.word_id = today_practice.word_id)").
		Order("RANDOM()").
		Limit(batchSize).
		Pluck("today_practice.word_id", &ids).Error; err != nil {
		return nil, wrap("gormPracticeRepository.GetSessionBatch", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	entries := make([]*model.CurrentPracticeEntry, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, &model.CurrentPracticeEntry{ChatID: chatID, WordID: id})
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&entries).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error filling current session in DB", "error", err, "chat_id", chatID)
		return nil, wrap("gormPracticeRepository.GetSessionBatch", err)
	}
	return ids, nil
}

// NextSessionRecord はセッション中の単語を1件 (Word 付き) 返します。セッションが空なら nil。
func (r *gormPracticeRepository) NextSessionRecord(ctx context.Context, db *gorm.DB, chatID int64) (*model.PracticeRecord, error) {
	var recs []*model.PracticeRecord
	result := db.WithContext(ctx).
		Preload("Word").
		Joins("JOIN current_practice cp ON cp.chat_id = word_practice.chat_id AND cp.word_id = word_practice.word_id").
		Where("word_practice.chat_id = ?", chatID).
		Order("RANDOM()").
		Limit(1).
		Find(&recs)
	if result.Error != nil {
		return nil, wrap("gormPracticeRepository.NextSessionRecord", result.Error)
	}
	if len(recs) == 0 {
		return nil, nil
	}
	return recs[0], nil
}

// RemoveFromSession は削除できた行が無ければ ErrNotFound を返します。
// 回答処理の最初に呼び、同じ単語への二重回答を防ぎます。
func (r *gormPracticeRepository) RemoveFromSession(ctx context.Context, tx *gorm.DB, chatID int64, wordID uuid.UUID) error {
	result := tx.WithContext(ctx).
		Where("chat_id = ? AND word_id = ?", chatID, wordID).
		Delete(&model.CurrentPracticeEntry{})
	if result.Error != nil {
		return wrap("gormPracticeRepository.RemoveFromSession", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormPracticeRepository) CountSession(ctx context.Context, db *gorm.DB, chatID int64) (int64, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&model.CurrentPracticeEntry{}).
		Where("chat_id = ?", chatID).
		Count(&count).Error; err != nil {
		return 0, wrap("gormPracticeRepository.CountSession", err)
	}
	return count, nil
}

// CountRemainingInPool は今日のプールのうち、まだ練習が必要な単語数を返します。
func (r *gormPracticeRepository) CountRemainingInPool(ctx context.Context, db *gorm.DB, chatID int64, day string, asOf time.Time) (int64, error) {
	var count int64
	if err := poolMembers(db.WithContext(ctx), chatID, day, asOf).Count(&count).Error; err != nil {
		return 0, wrap("gormPracticeRepository.CountRemainingInPool", err)
	}
	return count, nil
}

func (r *gormPracticeRepository) ClearSession(ctx context.Context, tx *gorm.DB, chatID int64) error {
	if err := tx.WithContext(ctx).
		Where("chat_id = ?", chatID).
		Delete(&model.CurrentPracticeEntry{}).Error; err != nil {
		return wrap("gormPracticeRepository.ClearSession", err)
	}
	return nil
}
