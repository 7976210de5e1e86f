// internal/service/practice_service.go
package service

import (
	"context"
	"errors"
	"time"

	"go_4_word_learn/internal/config"
	"go_4_word_learn/internal/middleware"
	"go_4_word_learn/internal/model"
	"go_4_word_learn/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PracticeService はチャットごとの日次プールと練習セッションを管理します。
type PracticeService interface {
	EnsureDailyPool(ctx context.Context, chatID int64) ([]uuid.UUID, error)
	StartSession(ctx context.Context, chatID int64) (int64, error)
	NextPresentedWord(ctx context.Context, chatID int64) (*model.PresentedWord, error)
	RevealWord(ctx context.Context, chatID int64, wordID uuid.UUID) (*model.PresentedWord, error)
	Answer(ctx context.Context, chatID int64, wordID uuid.UUID, outcome model.ResultKind) (*model.AnswerResult, error)
	CountRemainingDue(ctx context.Context, chatID int64) (int64, error)
	FinalizeIfSessionComplete(ctx context.Context, chatID int64) (*model.SessionSummary, error)
	ResetSession(ctx context.Context, chatID int64) error
	GetStreak(ctx context.Context, chatID int64) (int, error)
}

// Clock は現在時刻を返す。テストでは固定時刻を渡す。
type Clock func() time.Time

type practiceService struct {
	db           *gorm.DB
	practiceRepo repository.PracticeRepository
	progressRepo repository.ProgressRepository
	wordRepo     repository.WordRepository
	cfg          *config.Config
	scheduler    *Scheduler
	rnd          RandomSource
	now          Clock
}

func NewPracticeService(
	db *gorm.DB,
	practiceRepo repository.PracticeRepository,
	progressRepo repository.ProgressRepository,
	wordRepo repository.WordRepository,
	cfg *config.Config,
	rnd RandomSource,
	now Clock,
) PracticeService {
	if now == nil {
		now = time.Now
	}
	return &practiceService{
		db:           db,
		practiceRepo: practiceRepo,
		progressRepo: progressRepo,
		wordRepo:     wordRepo,
		cfg:          cfg,
		scheduler:    NewScheduler(rnd),
		rnd:          rnd,
		now:          now,
	}
}

// withTimeout はリポジトリ呼び出しが無期限にブロックしないように期限を付ける
func (s *practiceService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.cfg.Database.QueryTimeout)
}

// clock は UTC の現在時刻と設定タイムゾーンでの今日の日付を返す
func (s *practiceService) clock() (time.Time, string) {
	now := s.now().UTC()
	return now, now.In(s.cfg.Practice.Location()).Format(model.DateLayout)
}

func (s *practiceService) choosePoolSize() int {
	p := s.cfg.Practice
	return p.PoolMin + s.rnd.Intn(p.PoolMax-p.PoolMin+1)
}

func (s *practiceService) EnsureDailyPool(ctx context.Context, chatID int64) ([]uuid.UUID, error) {
	logger := middleware.GetLogger(ctx).With("chat_id", chatID)
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	now, today := s.clock()
	var pool []uuid.UUID
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		pool, err = s.practiceRepo.GetOrCreateDailyPool(ctx, tx, chatID, today, now, s.choosePoolSize)
		return err
	})
	if err != nil {
		logger.Error("Failed to ensure daily pool", "error", err)
		return nil, toAppError(err, "Failed to prepare today's words.")
	}
	return pool, nil
}

// StartSession はプールを用意し、セッションを batchSize まで補充します。
// セッション内の単語数を返します (0 なら練習する単語なし)。
func (s *practiceService) StartSession(ctx context.Context, chatID int64) (int64, error) {
	logger := middleware.GetLogger(ctx).With("chat_id", chatID)
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	now, today := s.clock()
	var size int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		pool, err := s.practiceRepo.GetOrCreateDailyPool(ctx, tx, chatID, today, now, s.choosePoolSize)
		if err != nil {
			return err
		}
		if len(pool) == 0 {
			return nil
		}
		inSession, err := s.practiceRepo.CountSession(ctx, tx, chatID)
		if err != nil {
			return err
		}
		need := int64(s.cfg.Practice.BatchSize) - inSession
		added, err := s.practiceRepo.GetSessionBatch(ctx, tx, chatID, today, now, int(need))
		if err != nil {
			return err
		}
		size = inSession + int64(len(added))
		return nil
	})
	if err != nil {
		logger.Error("Failed to start practice session", "error", err)
		return 0, toAppError(err, "Failed to start practice.")
	}
	logger.Info("Practice session started", "session_size", size, "day", today)
	return size, nil
}

// NextPresentedWord はセッション中の単語を1つ返します。セッションが空なら nil。
func (s *practiceService) NextPresentedWord(ctx context.Context, chatID int64) (*model.PresentedWord, error) {
	logger := middleware.GetLogger(ctx).With("chat_id", chatID)
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rec, err := s.practiceRepo.NextSessionRecord(ctx, s.db, chatID)
	if err != nil {
		logger.Error("Failed to get next session word", "error", err)
		return nil, toAppError(err, "Failed to get the next word.")
	}
	if rec == nil {
		return nil, nil
	}
	if rec.Word == nil {
		logger.Warn("Session record without word, skipping", "word_id", rec.WordID)
		return nil, nil
	}
	stage, _ := ClampStage(rec.Stage)
	return &model.PresentedWord{
		WordID: rec.WordID,
		Source: rec.Word.TextOr(s.cfg.Practice.SourceLanguage(), "?"),
		Target: rec.Word.TextOr(s.cfg.Practice.TargetLanguage(), "?"),
		Stage:  stage,
	}, nil
}

// RevealWord はチャットの練習中の単語を両方の面のテキスト付きで返します。
func (s *practiceService) RevealWord(ctx context.Context, chatID int64, wordID uuid.UUID) (*model.PresentedWord, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rec, err := s.practiceRepo.FindRecord(ctx, s.db, chatID, wordID)
	if err == nil && rec.Deleted {
		err = model.ErrNotFound
	}
	var word *model.Word
	if err == nil {
		word, err = s.wordRepo.FindByID(ctx, s.db, wordID)
	}
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			middleware.GetLogger(ctx).Error("Failed to reveal word", "error", err, "chat_id", chatID, "word_id", wordID)
		}
		return nil, toAppError(err, "Word not found.")
	}
	stage, _ := ClampStage(rec.Stage)
	return &model.PresentedWord{
		WordID: wordID,
		Source: word.TextOr(s.cfg.Practice.SourceLanguage(), "?"),
		Target: word.TextOr(s.cfg.Practice.TargetLanguage(), "?"),
		Stage:  stage,
	}, nil
}

// Answer は回答を1つのトランザクションで反映します。
// バッチが空になり日次プールも尽きた場合は同じトランザクションで日次の締めを行います。
func (s *practiceService) Answer(ctx context.Context, chatID int64, wordID uuid.UUID, outcome model.ResultKind) (*model.AnswerResult, error) {
	logger := middleware.GetLogger(ctx).With("chat_id", chatID, "word_id", wordID, "outcome", outcome)
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	now, today := s.clock()
	res := &model.AnswerResult{WordID: wordID, Result: outcome}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 最初にセッションから外す。外せなければ二重回答かセッション外の単語
		if err := s.practiceRepo.RemoveFromSession(ctx, tx, chatID, wordID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "This word is not in the current practice session.", "word_id", err)
			}
			return err
		}

		rec, err := s.practiceRepo.FindRecord(ctx, tx, chatID, wordID)
		if err != nil {
			return err
		}
		oldStage, invalid := ClampStage(rec.Stage)
		if invalid {
			logger.Warn("Stored stage out of range, clamping", "error", model.ErrInvalidStage, "stored_stage", rec.Stage, "clamped_stage", oldStage)
		}
		res.OldStage = oldStage

		result, err := s.newSessionResult(ctx, tx, chatID, wordID, oldStage, now)
		if err != nil {
			return err
		}

		switch outcome {
		case model.ResultCorrect, model.ResultIncorrect:
			newStage := StageAfterIncorrect()
			if outcome == model.ResultCorrect {
				newStage = StageAfterCorrect(oldStage)
			}
			next := s.scheduler.NextReviewDate(now, newStage, s.cfg.Practice.Location())
			res.NewStage = &newStage
			result.NewStage = &newStage
			result.Result = outcome

			if err := s.progressRepo.SaveSessionResult(ctx, tx, result); err != nil {
				return err
			}
			if err := s.practiceRepo.UpdatePracticeRecord(ctx, tx, chatID, wordID, newStage, next); err != nil {
				return err
			}
			if err := s.progressRepo.IncrementStats(ctx, tx, chatID, outcome == model.ResultCorrect); err != nil {
				return err
			}
			if outcome == model.ResultCorrect {
				err = s.practiceRepo.ResetConsecutiveFailures(ctx, tx, chatID, wordID)
			} else {
				err = s.practiceRepo.IncrementConsecutiveFailures(ctx, tx, chatID, wordID)
			}
			if err != nil {
				return err
			}
			logger.Debug("Practice record updated", "old_stage", oldStage, "new_stage", newStage, "next_review_at", next)
		case model.ResultDeleted:
			result.Result = model.ResultDeleted
			if err := s.progressRepo.SaveSessionResult(ctx, tx, result); err != nil {
				return err
			}
			if err := s.practiceRepo.SoftDeletePracticeRecord(ctx, tx, chatID, wordID); err != nil {
				return err
			}
		default:
			return model.NewAppError("INVALID_INPUT", "Unknown answer outcome.", "outcome", model.ErrInvalidInput)
		}

		inSession, err := s.practiceRepo.CountSession(ctx, tx, chatID)
		if err != nil {
			return err
		}
		if inSession > 0 {
			return nil
		}
		res.SessionEmpty = true
		res.Remaining, err = s.practiceRepo.CountRemainingInPool(ctx, tx, chatID, today, now)
		if err != nil {
			return err
		}
		if res.Remaining > 0 {
			return nil
		}
		res.Summary, err = s.finalize(ctx, tx, chatID, today)
		return err
	})
	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) && appErr.Code == "NOT_FOUND" {
			logger.Warn("Answer for word outside the session", "error", err)
		} else {
			logger.Error("Failed to record answer", "error", err)
		}
		return nil, toAppError(err, "Failed to record the answer.")
	}

	logger.Info("Answer recorded", "old_stage", res.OldStage, "session_empty", res.SessionEmpty, "remaining", res.Remaining, "finalized", res.Summary != nil)
	return res, nil
}

// newSessionResult は表示用テキスト付きの結果行を組み立てる。
// SourceText は出題した面 (target 言語) のテキスト。
func (s *practiceService) newSessionResult(ctx context.Context, tx *gorm.DB, chatID int64, wordID uuid.UUID, oldStage int, now time.Time) (*model.SessionWordResult, error) {
	word, err := s.wordRepo.FindByID(ctx, tx, wordID)
	if err != nil {
		return nil, err
	}
	return &model.SessionWordResult{
		ChatID:     chatID,
		WordID:     wordID,
		OldStage:   oldStage,
		SourceText: word.TextOr(s.cfg.Practice.TargetLanguage(), "?"),
		TargetText: word.TextOr(s.cfg.Practice.SourceLanguage(), "?"),
		AnsweredAt: now,
	}, nil
}

// finalize は日次プールを終えたときの締め処理。
// 統計とインサイトを作り、ストリークを更新してから統計と結果を消す。
func (s *practiceService) finalize(ctx context.Context, tx *gorm.DB, chatID int64, today string) (*model.SessionSummary, error) {
	logger := middleware.GetLogger(ctx).With("chat_id", chatID)

	stats, err := s.progressRepo.GetStats(ctx, tx, chatID)
	if err != nil {
		return nil, err
	}
	rows, err := s.progressRepo.GetSessionResults(ctx, tx, chatID)
	if err != nil {
		return nil, err
	}
	results := model.GroupSessionResults(rows)

	incorrectIDs := make([]uuid.UUID, 0, len(results.Incorrect))
	for _, r := range results.Incorrect {
		incorrectIDs = append(incorrectIDs, r.WordID)
	}
	failures, err := s.practiceRepo.GetConsecutiveFailures(ctx, tx, chatID, incorrectIDs)
	if err != nil {
		return nil, err
	}
	confident, err := s.practiceRepo.CountConfidentWords(ctx, tx, chatID)
	if err != nil {
		return nil, err
	}

	insights := GenerateInsights(InsightInput{
		Stats:                  *stats,
		Results:                results,
		ConsecutiveFailures:    failures,
		ConfidentCount:         confident,
		PreviousConfidentCount: PreviousConfidentCount(confident, results),
	})

	streak, err := s.updateStreak(ctx, tx, chatID, today)
	if err != nil {
		return nil, err
	}

	if err := s.progressRepo.ResetStats(ctx, tx, chatID); err != nil {
		return nil, err
	}
	if err := s.progressRepo.ClearSessionResults(ctx, tx, chatID); err != nil {
		return nil, err
	}

	logger.Info("Daily pool completed", "correct", stats.Correct, "total", stats.Total, "insights", len(insights), "streak", streak)
	return &model.SessionSummary{
		Stats:    *stats,
		Results:  results,
		Insights: insights,
		Streak:   streak,
	}, nil
}

func (s *practiceService) updateStreak(ctx context.Context, tx *gorm.DB, chatID int64, today string) (int, error) {
	todayDate, err := time.Parse(model.DateLayout, today)
	if err != nil {
		return 0, err
	}

	var lastActive *time.Time
	current := 0
	existing, err := s.progressRepo.GetStreak(ctx, tx, chatID)
	switch {
	case errors.Is(err, model.ErrNotFound):
	case err != nil:
		return 0, err
	default:
		current = existing.CurrentStreak
		if existing.LastActiveDate != nil {
			if d, perr := time.Parse(model.DateLayout, *existing.LastActiveDate); perr == nil {
				lastActive = &d
			} else {
				middleware.GetLogger(ctx).Warn("Invalid stored streak date, treating as no activity", "error", perr, "chat_id", chatID)
			}
		}
	}

	streak, day := ComputeStreakUpdate(lastActive, current, todayDate)
	if err := s.progressRepo.UpsertStreak(ctx, tx, chatID, streak, day.Format(model.DateLayout)); err != nil {
		return 0, err
	}
	return streak, nil
}

// CountRemainingDue は今日のプールに残っている単語数を返します。
func (s *practiceService) CountRemainingDue(ctx context.Context, chatID int64) (int64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	now, today := s.clock()
	count, err := s.practiceRepo.CountRemainingInPool(ctx, s.db, chatID, today, now)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to count remaining words", "error", err, "chat_id", chatID)
		return 0, toAppError(err, "Failed to count the words left.")
	}
	return count, nil
}

// FinalizeIfSessionComplete はセッションが空でプールも尽きていれば締め処理を行います。
// 締める対象が無ければ nil を返します。
func (s *practiceService) FinalizeIfSessionComplete(ctx context.Context, chatID int64) (*model.SessionSummary, error) {
	logger := middleware.GetLogger(ctx).With("chat_id", chatID)
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	now, today := s.clock()
	var summary *model.SessionSummary
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		inSession, err := s.practiceRepo.CountSession(ctx, tx, chatID)
		if err != nil || inSession > 0 {
			return err
		}
		remaining, err := s.practiceRepo.CountRemainingInPool(ctx, tx, chatID, today, now)
		if err != nil || remaining > 0 {
			return err
		}
		stats, err := s.progressRepo.GetStats(ctx, tx, chatID)
		if err != nil {
			return err
		}
		rows, err := s.progressRepo.GetSessionResults(ctx, tx, chatID)
		if err != nil {
			return err
		}
		// 何も回答していなければ締めない (ストリークを進めない)
		if stats.Total == 0 && len(rows) == 0 {
			return nil
		}
		summary, err = s.finalize(ctx, tx, chatID, today)
		return err
	})
	if err != nil {
		logger.Error("Failed to finalize practice day", "error", err)
		return nil, toAppError(err, "Failed to finish today's practice.")
	}
	return summary, nil
}

// ResetSession は現在のバッチと統計を消します。単語の学習状態は変えません。
func (s *practiceService) ResetSession(ctx context.Context, chatID int64) error {
	logger := middleware.GetLogger(ctx).With("chat_id", chatID)
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.practiceRepo.ClearSession(ctx, tx, chatID); err != nil {
			return err
		}
		return s.progressRepo.ResetStats(ctx, tx, chatID)
	})
	if err != nil {
		logger.Error("Failed to reset practice session", "error", err)
		return toAppError(err, "Failed to reset the session.")
	}
	logger.Info("Practice session reset")
	return nil
}

// GetStreak は現在の連続日数を返します (記録が無ければ 0)。
func (s *practiceService) GetStreak(ctx context.Context, chatID int64) (int, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	streak, err := s.progressRepo.GetStreak(ctx, s.db, chatID)
	if errors.Is(err, model.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, toAppError(err, "Failed to get the streak.")
	}
	return streak.CurrentStreak, nil
}

// toAppError はリポジトリ由来のエラーを AppError に変換する。既に AppError ならそのまま返す。
func toAppError(err error, message string) error {
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		return err
	}
	switch {
	case errors.Is(err, model.ErrNotFound):
		return model.NewAppError("NOT_FOUND", message, "", err)
	case errors.Is(err, model.ErrRepositoryUnavailable):
		return model.NewAppError("REPOSITORY_UNAVAILABLE", "Storage is temporarily unavailable, please try again.", "", err)
	case errors.Is(err, model.ErrInvalidInput):
		return model.NewAppError("INVALID_INPUT", message, "", err)
	case errors.Is(err, model.ErrConflict):
		return model.NewAppError("CONFLICT", message, "", err)
	}
	return model.NewAppError("INTERNAL_SERVER_ERROR", message, "", err)
}
