//go:generate mockery --name WordRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"go_4_word_learn/internal/middleware"
	"go_4_word_learn/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WordRepository インターフェース
type WordRepository interface {
	Create(ctx context.Context, tx *gorm.DB, word *model.Word) error
	FindByID(ctx context.Context, db *gorm.DB, wordID uuid.UUID) (*model.Word, error)
	FindByTexts(ctx context.Context, db *gorm.DB, source, target model.Language, sourceText, targetText string) (*model.Word, error)
	FindCandidates(ctx context.Context, db *gorm.DB, chatID int64, source, target model.Language, limit int) ([]*model.Word, error)
	AddToSkiplist(ctx context.Context, tx *gorm.DB, chatID int64, wordID uuid.UUID) error
}

type gormWordRepository struct{}

func NewGormWordRepository() WordRepository {
	return &gormWordRepository{}
}

func langColumn(lang model.Language) clause.Column {
	return clause.Column{Table: "words", Name: string(lang)}
}

func (r *gormWordRepository) Create(ctx context.Context, tx *gorm.DB, word *model.Word) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(word)
	if result.Error != nil {
		logger.Error("Error creating word in DB",
			"error", result.Error,
			"word_id", word.ID.String(),
		)
		return wrap("gormWordRepository.Create", result.Error)
	}
	return nil
}

func (r *gormWordRepository) FindByID(ctx context.Context, db *gorm.DB, wordID uuid.UUID) (*model.Word, error) {
	var word model.Word
	result := db.WithContext(ctx).Where("word_id = ?", wordID).Take(&word)
	if result.Error != nil {
		return nil, wrap("gormWordRepository.FindByID", result.Error)
	}
	return &word, nil
}

// FindByTexts は source/target 列の組み合わせが一致する単語を探します。
func (r *gormWordRepository) FindByTexts(ctx context.Context, db *gorm.DB, source, target model.Language, sourceText, targetText string) (*model.Word, error) {
	var word model.Word
	result := db.WithContext(ctx).
		Where(clause.Eq{Column: langColumn(source), Value: sourceText}).
		Where(clause.Eq{Column: langColumn(target), Value: targetText}).
		Take(&word)
	if result.Error != nil {
		return nil, wrap("gormWordRepository.FindByTexts", result.Error)
	}
	return &word, nil
}

// FindCandidates はまだ練習対象でもスキップ対象でもない単語をランダムに返します。
func (r *gormWordRepository) FindCandidates(ctx context.Context, db *gorm.DB, chatID int64, source, target model.Language, limit int) ([]*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	var words []*model.Word
	result := db.WithContext(ctx).
		Where(clause.Neq{Column: langColumn(source), Value: nil}).
		Where(clause.Neq{Column: langColumn(target), Value: nil}).
		Where("NOT EXISTS (SELECT 1 FROM word_practice wp WHERE wp.word_id = words.word_id AND wp.chat_id = ?)", chatID).
		Where("NOT EXISTS (SELECT 1 FROM word_skiplist ws WHERE ws.word_id = words.word_id AND ws.chat_id = ?)", chatID).
		Order("RANDOM()").
		Limit(limit).
		Find(&words)
	if result.Error != nil {
		logger.Error("Error finding candidate words in DB", "error", result.Error, "chat_id", chatID)
		return nil, fmt.Errorf("gormWordRepository.FindCandidates: %w", translateError(result.Error))
	}
	return words, nil
}

func (r *gormWordRepository) AddToSkiplist(ctx context.Context, tx *gorm.DB, chatID int64, wordID uuid.UUID) error {
	result := tx.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.WordSkip{ChatID: chatID, WordID: wordID})
	if result.Error != nil {
		return wrap("gormWordRepository.AddToSkiplist", result.Error)
	}
	return nil
}
