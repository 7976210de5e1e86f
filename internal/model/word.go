// internal/model/word.go
package model

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Language is one of the fixed language columns of the words table.
type Language string

const (
	LanguageEN Language = "en"
	LanguageNL Language = "nl"
	LanguageRU Language = "ru"
)

// ParseLanguage accepts a language code such as "en" or "NL".
func ParseLanguage(code string) (Language, error) {
	switch Language(strings.ToLower(strings.TrimSpace(code))) {
	case LanguageEN:
		return LanguageEN, nil
	case LanguageNL:
		return LanguageNL, nil
	case LanguageRU:
		return LanguageRU, nil
	}
	return "", fmt.Errorf("unsupported language %q: %w", code, ErrInvalidInput)
}

// Word is a vocabulary entry shared by all chats.
type Word struct {
	ID uuid.UUID `gorm:"column:word_id;type:uuid;primaryKey" json:"word_id"`
	EN *string   `gorm:"column:en" json:"en,omitempty"`
	NL *string   `gorm:"column:nl" json:"nl,omitempty"`
	RU *string   `gorm:"column:ru" json:"ru,omitempty"`

	// Practices はこの単語を練習しているチャットの記録
	Practices []PracticeRecord `gorm:"foreignKey:WordID;references:ID" json:"-"`
}

func (Word) TableName() string {
	return "words"
}

// Text returns the translation stored for lang, or "" when absent.
func (w *Word) Text(lang Language) string {
	var v *string
	switch lang {
	case LanguageEN:
		v = w.EN
	case LanguageNL:
		v = w.NL
	case LanguageRU:
		v = w.RU
	}
	if v == nil {
		return ""
	}
	return *v
}

// SetText stores text in the column for lang.
func (w *Word) SetText(lang Language, text string) {
	t := text
	switch lang {
	case LanguageEN:
		w.EN = &t
	case LanguageNL:
		w.NL = &t
	case LanguageRU:
		w.RU = &t
	}
}

// TextOr returns the translation for lang or fallback when it is empty.
func (w *Word) TextOr(lang Language, fallback string) string {
	if t := w.Text(lang); t != "" {
		return t
	}
	return fallback
}

// WordSkip marks a word the chat chose not to learn.
type WordSkip struct {
	WordID uuid.UUID `gorm:"type:uuid;primaryKey"`
	ChatID int64     `gorm:"primaryKey"`
}

func (WordSkip) TableName() string {
	return "word_skiplist"
}
