// internal/service/reminder_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go_4_word_learn/internal/config"
	"go_4_word_learn/internal/middleware"
	"go_4_word_learn/internal/model"
	"go_4_word_learn/internal/repository"

	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

const (
	remindTimeLayout = "15:04"
	// dueReminderBatch は1回のチェックで処理する最大件数
	dueReminderBatch = 500
)

type ReminderService interface {
	SetReminder(ctx context.Context, chatID int64, remindTime string) (*model.Reminder, error)
	ProcessDue(ctx context.Context) (int, error)
	Run(ctx context.Context) error
}

type reminderService struct {
	db           *gorm.DB
	reminderRepo repository.ReminderRepository
	practiceRepo repository.PracticeRepository
	notifier     Notifier
	cfg          *config.Config
	limiter      *rate.Limiter
	now          Clock
}

func NewReminderService(
	db *gorm.DB,
	reminderRepo repository.ReminderRepository,
	practiceRepo repository.PracticeRepository,
	notifier Notifier,
	cfg *config.Config,
	now Clock,
) ReminderService {
	if now == nil {
		now = time.Now
	}
	perSecond := cfg.Reminder.SendsPerSecond
	return &reminderService{
		db:           db,
		reminderRepo: reminderRepo,
		practiceRepo: practiceRepo,
		notifier:     notifier,
		cfg:          cfg,
		limiter:      rate.NewLimiter(rate.Limit(perSecond), perSecond),
		now:          now,
	}
}

// ParseRemindTime は "HH:MM" を検証して時・分を返します。
func ParseRemindTime(s string) (int, int, error) {
	t, err := time.Parse(remindTimeLayout, s)
	if err != nil {
		return 0, 0, model.NewAppError("INVALID_INPUT", "Invalid time format. Use HH:mm (e.g., 09:00)", "remind_time", model.ErrInvalidInput)
	}
	return t.Hour(), t.Minute(), nil
}

// NextRemindAt は now より後で最初の hour:minute (loc の壁時計) を返します。
func NextRemindAt(now time.Time, hour, minute int, loc *time.Location) time.Time {
	local := now.In(loc)
	y, m, d := local.Date()
	next := time.Date(y, m, d, hour, minute, 0, 0, loc)
	if !next.After(local) {
		next = time.Date(y, m, d+1, hour, minute, 0, 0, loc)
	}
	return next
}

func (s *reminderService) SetReminder(ctx context.Context, chatID int64, remindTime string) (*model.Reminder, error) {
	logger := middleware.GetLogger(ctx).With("chat_id", chatID)
	hour, minute, err := ParseRemindTime(remindTime)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Database.QueryTimeout)
	defer cancel()

	reminder := &model.Reminder{
		ChatID:       chatID,
		RemindTime:   fmt.Sprintf("%02d:%02d", hour, minute),
		NextRemindAt: NextRemindAt(s.now(), hour, minute, s.cfg.Practice.Location()),
	}
	if err := s.reminderRepo.Upsert(ctx, s.db, reminder); err != nil {
		logger.Error("Failed to save reminder", "error", err)
		return nil, toAppError(err, "Failed to save the reminder.")
	}
	logger.Info("Reminder set", "remind_time", reminder.RemindTime, "next_remind_at", reminder.NextRemindAt)
	return reminder, nil
}

// ProcessDue は期限の来たリマインダーを送信し、翌日に再設定します。
// 練習する単語が無いチャットには送らず、再設定だけ行います。送信件数を返します。
func (s *reminderService) ProcessDue(ctx context.Context) (int, error) {
	logger := middleware.GetLogger(ctx)
	loc := s.cfg.Practice.Location()
	now := s.now()

	due, err := s.reminderRepo.FindDue(ctx, s.db, now, dueReminderBatch)
	if err != nil {
		logger.Error("Failed to find due reminders", "error", err)
		return 0, toAppError(err, "Failed to load reminders.")
	}

	sent := 0
	for _, r := range due {
		count, err := s.practiceRepo.CountDue(ctx, s.db, r.ChatID, now)
		if err != nil {
			logger.Error("Failed to count due words for reminder", "error", err, "chat_id", r.ChatID)
			continue
		}
		if count > 0 {
			// 送信先の制限を超えないように待つ
			if err := s.limiter.Wait(ctx); err != nil {
				return sent, err
			}
			reply := &model.Reply{
				ChatID:  r.ChatID,
				Text:    fmt.Sprintf("Time to practice! You have %d words waiting.", count),
				Buttons: [][]model.Button{{{Text: fmt.Sprintf("Practice (%d)", count), Data: "practice"}}},
			}
			if err := s.notifier.Send(ctx, reply); err != nil {
				logger.Warn("Failed to send reminder", "error", err, "chat_id", r.ChatID)
			} else {
				sent++
			}
		}

		hour, minute, perr := ParseRemindTime(r.RemindTime)
		if perr != nil {
			logger.Warn("Stored reminder time is invalid, removing reminder", "chat_id", r.ChatID, "remind_time", r.RemindTime)
			if derr := s.reminderRepo.Delete(ctx, s.db, r.ChatID); derr != nil && !errors.Is(derr, model.ErrNotFound) {
				logger.Error("Failed to delete invalid reminder", "error", derr, "chat_id", r.ChatID)
			}
			continue
		}
		y, m, d := now.In(loc).Date()
		next := time.Date(y, m, d+1, hour, minute, 0, 0, loc)
		if err := s.reminderRepo.UpdateNextRemindAt(ctx, s.db, r.ChatID, next); err != nil {
			logger.Error("Failed to reschedule reminder", "error", err, "chat_id", r.ChatID)
		}
	}

	if len(due) > 0 {
		logger.Info("Processed due reminders", "due", len(due), "sent", sent)
	}
	return sent, nil
}

// Run は ctx がキャンセルされるまで CheckInterval ごとに ProcessDue を呼びます。
func (s *reminderService) Run(ctx context.Context) error {
	logger := middleware.GetLogger(ctx)
	ticker := time.NewTicker(s.cfg.Reminder.CheckInterval)
	defer ticker.Stop()

	logger.Info("Reminder loop started", "interval", s.cfg.Reminder.CheckInterval)
	for {
		if _, err := s.ProcessDue(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("Error processing reminders", "error", err)
		}
		select {
		case <-ctx.Done():
			logger.Info("Reminder loop stopped")
			return nil
		case <-ticker.C:
		}
	}
}
