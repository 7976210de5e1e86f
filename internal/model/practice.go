// internal/model/practice.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout はカレンダー日付 (プール日付・ストリーク) の保存形式
const DateLayout = "2006-01-02"

// MaxStage is the highest stage a practice record can reach.
const MaxStage = 33

// ConfidentStage 以上のステージは「自信あり」として数える
const ConfidentStage = 5

// KnowByHeartStage is the first stage labelled "Know by heart".
const KnowByHeartStage = 7

// PracticeRecord はチャットごとの単語の学習状態 (word_practice)
type PracticeRecord struct {
	WordID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"word_id"`
	ChatID              int64     `gorm:"primaryKey;index" json:"chat_id"`
	Stage               int       `gorm:"not null;default:0" json:"stage"`
	NextReviewAt        time.Time `gorm:"column:next_date;not null;index" json:"next_review_at"`
	Deleted             bool      `gorm:"not null;default:false" json:"deleted"`
	ConsecutiveFailures int       `gorm:"not null;default:0" json:"consecutive_failures"`
	Word                *Word     `gorm:"foreignKey:WordID;references:ID" json:"word,omitempty"`
}

func (PracticeRecord) TableName() string {
	return "word_practice"
}

// DailyPoolEntry is one member of a chat's pool for a calendar day.
type DailyPoolEntry struct {
	ChatID       int64     `gorm:"primaryKey"`
	PracticeDate string    `gorm:"primaryKey;size:10"`
	WordID       uuid.UUID `gorm:"type:uuid;primaryKey"`
}

func (DailyPoolEntry) TableName() string {
	return "today_practice"
}

// CurrentPracticeEntry は現在提示中のバッチのメンバー
type CurrentPracticeEntry struct {
	ChatID int64     `gorm:"primaryKey"`
	WordID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

func (CurrentPracticeEntry) TableName() string {
	return "current_practice"
}

// PracticeStats counts answers since the daily pool was last exhausted.
type PracticeStats struct {
	ChatID  int64 `gorm:"primaryKey;autoIncrement:false" json:"chat_id"`
	Correct int   `gorm:"column:correct_count;not null;default:0" json:"correct"`
	Total   int   `gorm:"column:total_count;not null;default:0" json:"total"`
}

func (PracticeStats) TableName() string {
	return "current_practice_stats"
}

// ResultKind は回答の種類
type ResultKind string

const (
	ResultCorrect   ResultKind = "correct"
	ResultIncorrect ResultKind = "incorrect"
	ResultDeleted   ResultKind = "deleted"
)

// ParseResultKind accepts the outcome names used in callbacks.
// "delete" is accepted as an alias of "deleted".
func ParseResultKind(s string) (ResultKind, error) {
	switch s {
	case string(ResultCorrect):
		return ResultCorrect, nil
	case string(ResultIncorrect):
		return ResultIncorrect, nil
	case string(ResultDeleted), "delete":
		return ResultDeleted, nil
	}
	return "", ErrInvalidInput
}

// SessionWordResult は1セッション中の単語ごとの結果 (チャット×単語で1行)
type SessionWordResult struct {
	ChatID     int64      `gorm:"primaryKey" json:"chat_id"`
	WordID     uuid.UUID  `gorm:"type:uuid;primaryKey" json:"word_id"`
	Result     ResultKind `gorm:"size:16;not null" json:"result"`
	OldStage   int        `gorm:"not null" json:"old_stage"`
	NewStage   *int       `json:"new_stage,omitempty"`
	SourceText string     `gorm:"not null;default:''" json:"source_text"`
	TargetText string     `gorm:"not null;default:''" json:"target_text"`
	AnsweredAt time.Time  `gorm:"not null" json:"answered_at"`
}

func (SessionWordResult) TableName() string {
	return "session_word_results"
}

// SessionResults groups a session's results by outcome.
type SessionResults struct {
	Correct   []*SessionWordResult
	Incorrect []*SessionWordResult
	Deleted   []*SessionWordResult
}

// GroupSessionResults は結果を種類ごとに振り分ける (順序は保持)
func GroupSessionResults(results []*SessionWordResult) SessionResults {
	var g SessionResults
	for _, r := range results {
		switch r.Result {
		case ResultCorrect:
			g.Correct = append(g.Correct, r)
		case ResultIncorrect:
			g.Incorrect = append(g.Incorrect, r)
		case ResultDeleted:
			g.Deleted = append(g.Deleted, r)
		}
	}
	return g
}

// PracticeStreak は連続練習日数
type PracticeStreak struct {
	ChatID         int64   `gorm:"primaryKey;autoIncrement:false" json:"chat_id"`
	CurrentStreak  int     `gorm:"not null;default:0" json:"current_streak"`
	LastActiveDate *string `gorm:"size:10" json:"last_active_date,omitempty"`
}

func (PracticeStreak) TableName() string {
	return "practice_streaks"
}

// Reminder is a chat's daily practice reminder.
type Reminder struct {
	ChatID       int64     `gorm:"primaryKey;autoIncrement:false" json:"chat_id"`
	RemindTime   string    `gorm:"size:5;not null" json:"remind_time"`
	NextRemindAt time.Time `gorm:"not null;index" json:"next_remind_at"`
}

func (Reminder) TableName() string {
	return "reminders"
}

// Insight is one line of the "Practice Insights" block.
type Insight struct {
	Emoji string `json:"emoji"`
	Text  string `json:"text"`
}

func (i Insight) String() string {
	return i.Emoji + " " + i.Text
}

// PresentedWord は出題中の単語 (表示用テキスト付き)
type PresentedWord struct {
	WordID uuid.UUID `json:"word_id"`
	Source string    `json:"source"`
	Target string    `json:"target"`
	Stage  int       `json:"stage"`
}

// AnswerResult is what an answer reports back to the chat layer.
type AnswerResult struct {
	WordID   uuid.UUID  `json:"word_id"`
	Result   ResultKind `json:"result"`
	OldStage int        `json:"old_stage"`
	NewStage *int       `json:"new_stage,omitempty"`
	// SessionEmpty は現在のバッチが空になったかどうか
	SessionEmpty bool `json:"session_empty"`
	// Remaining はバッチが空になった時点で残っているプールの単語数
	Remaining int64           `json:"remaining"`
	Summary   *SessionSummary `json:"summary,omitempty"`
}

// SessionSummary is produced when the whole daily pool is exhausted.
type SessionSummary struct {
	Stats    PracticeStats  `json:"stats"`
	Results  SessionResults `json:"-"`
	Insights []Insight      `json:"insights"`
	Streak   int            `json:"streak"`
}
