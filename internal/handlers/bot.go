// internal/handlers/bot.go
package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go_4_word_learn/internal/middleware"
	"go_4_word_learn/internal/model"
	"go_4_word_learn/internal/service"

	"github.com/google/uuid"
)

const welcomeText = `Hello! Welcome to Word Learner Bot!

Here are the available commands:

/start - Show this welcome message
/add word1 word2 - Add a word to learn
/addWords - Add words from the database
/practice - Start a practice session
/remind HH:mm - Set daily reminder
/reset - Reset current practice session

You can also send text directly to add words:
• "cat, kat" - comma-separated
• "cat kat" - space-separated (single words only)`

const (
	addUsageText     = "Usage: /add word1 word2"
	addFormatText    = "Use ',' for words with multiple whitespaces.\nExamples:\n• cat, kat\n• the cat, de kat"
	remindUsageText  = "Usage: /remind HH:mm (e.g., /remind 09:00)"
	noWordsText      = "No words to practice!"
	noNewWordsText   = "No new words available to add!"
	wordNotFoundText = "Word not found."
	chooseText       = "Please choose Learn or Skip."
	unknownText      = "Unknown command. Send /start to see what I can do."
	resetDoneText    = "Reset is done"
)

// Bot はチャットの更新1件を処理して返信を組み立てます。
type Bot struct {
	practice  service.PracticeService
	words     service.WordService
	addWords  service.AddWordsService
	reminders service.ReminderService
	loc       *time.Location
}

func NewBot(
	practice service.PracticeService,
	words service.WordService,
	addWords service.AddWordsService,
	reminders service.ReminderService,
	loc *time.Location,
) *Bot {
	if loc == nil {
		loc = time.UTC
	}
	return &Bot{
		practice:  practice,
		words:     words,
		addWords:  addWords,
		reminders: reminders,
		loc:       loc,
	}
}

// Handle は更新を1件処理します。
// 利用者の入力ミス (INVALID_INPUT, NOT_FOUND など) は返信に変換し、
// ストレージ障害などはエラーとして返します (ゲートウェイが再送できるように)。
func (b *Bot) Handle(ctx context.Context, upd *model.Update) ([]model.Reply, error) {
	logger := middleware.GetLogger(ctx).With("chat_id", upd.ChatID, "update_id", upd.UpdateID)
	ctx = middleware.WithLogger(ctx, logger)

	var (
		replies []model.Reply
		err     error
	)
	if upd.Callback != "" {
		replies, err = b.handleCallback(ctx, upd.ChatID, upd.Callback)
	} else {
		replies, err = b.handleText(ctx, upd.ChatID, strings.TrimSpace(upd.Text))
	}
	if err != nil {
		if reply, ok := userFacingReply(upd.ChatID, err); ok {
			logger.Info("Update rejected", "error", err)
			return []model.Reply{reply}, nil
		}
		logger.Error("Failed to handle update", "error", err)
		return nil, err
	}
	return replies, nil
}

func (b *Bot) handleText(ctx context.Context, chatID int64, text string) ([]model.Reply, error) {
	if strings.HasPrefix(text, "/") {
		cmd, args, _ := strings.Cut(text, " ")
		// "/practice@WordBot" の形式も受け付ける
		cmd, _, _ = strings.Cut(cmd, "@")
		args = strings.TrimSpace(args)

		switch cmd {
		case "/start":
			return replyText(chatID, welcomeText), nil
		case "/add":
			if args == "" {
				return replyText(chatID, addUsageText), nil
			}
			return b.addWord(ctx, chatID, args)
		case "/addWords":
			return b.startAddWords(ctx, chatID)
		case "/practice":
			return b.startPractice(ctx, chatID)
		case "/remind":
			return b.remind(ctx, chatID, args)
		case "/reset":
			return b.reset(ctx, chatID)
		}
		return replyText(chatID, unknownText), nil
	}

	active, err := b.addWords.Active(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if active {
		switch {
		case strings.EqualFold(text, learnText):
			return b.decide(ctx, chatID, true)
		case strings.EqualFold(text, skipText):
			return b.decide(ctx, chatID, false)
		}
		return []model.Reply{{ChatID: chatID, Text: chooseText, Buttons: learnSkipKeyboard()}}, nil
	}
	return b.addWord(ctx, chatID, text)
}

func (b *Bot) handleCallback(ctx context.Context, chatID int64, data string) ([]model.Reply, error) {
	action, args := parseCallback(data)
	switch action {
	case callbackPractice:
		return b.startPractice(ctx, chatID)
	case callbackReveal:
		if len(args) != 1 {
			break
		}
		return b.reveal(ctx, chatID, args[0])
	case callbackFinish:
		if len(args) != 2 {
			break
		}
		return b.answer(ctx, chatID, args[0], args[1])
	case callbackLearn:
		return b.decide(ctx, chatID, true)
	case callbackSkip:
		return b.decide(ctx, chatID, false)
	}
	middleware.GetLogger(ctx).Warn("Unknown callback data", "callback", data)
	return replyText(chatID, unknownText), nil
}

func (b *Bot) addWord(ctx context.Context, chatID int64, text string) ([]model.Reply, error) {
	pair, err := service.ParseWordInput(text)
	if err != nil {
		var appErr *model.AppError
		if !errors.As(err, &appErr) {
			return replyText(chatID, addFormatText), nil
		}
		return nil, err
	}
	if _, err := b.words.AddCustomWord(ctx, chatID, pair); err != nil {
		return nil, err
	}
	remaining, err := b.practice.CountRemainingDue(ctx, chatID)
	if err != nil {
		return nil, err
	}
	return []model.Reply{{
		ChatID:  chatID,
		Text:    fmt.Sprintf("Done! Added word to learn: %s : %s", pair.Target, pair.Source),
		Buttons: practiceKeyboard("Practice words", remaining),
	}}, nil
}

func (b *Bot) startPractice(ctx context.Context, chatID int64) ([]model.Reply, error) {
	size, err := b.practice.StartSession(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if size == 0 {
		return replyText(chatID, noWordsText), nil
	}
	return b.nextWord(ctx, chatID)
}

// nextWord はセッションの次の単語を出題します。セッションが空なら締めのメッセージを返します。
func (b *Bot) nextWord(ctx context.Context, chatID int64) ([]model.Reply, error) {
	pw, err := b.practice.NextPresentedWord(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if pw != nil {
		return []model.Reply{{ChatID: chatID, Text: pw.Target, Buttons: revealKeyboard(pw.WordID)}}, nil
	}

	remaining, err := b.practice.CountRemainingDue(ctx, chatID)
	if err != nil {
		return nil, err
	}
	var summary *model.SessionSummary
	if remaining == 0 {
		if summary, err = b.practice.FinalizeIfSessionComplete(ctx, chatID); err != nil {
			return nil, err
		}
	}
	return []model.Reply{sessionCompleteReply(chatID, remaining, summary)}, nil
}

func sessionCompleteReply(chatID int64, remaining int64, summary *model.SessionSummary) model.Reply {
	switch {
	case remaining > 0:
		return model.Reply{
			ChatID:  chatID,
			Text:    service.FormatSessionComplete(remaining, nil, nil),
			Buttons: practiceKeyboard("Practice more", remaining),
		}
	case summary != nil:
		return model.Reply{ChatID: chatID, Text: service.FormatSessionStats(summary)}
	}
	return model.Reply{ChatID: chatID, Text: service.FormatSessionComplete(0, nil, nil)}
}

func (b *Bot) reveal(ctx context.Context, chatID int64, rawID string) ([]model.Reply, error) {
	wordID, err := uuid.Parse(rawID)
	if err != nil {
		return replyText(chatID, wordNotFoundText), nil
	}
	pw, err := b.practice.RevealWord(ctx, chatID, wordID)
	if err != nil {
		return nil, err
	}
	return []model.Reply{{
		ChatID:  chatID,
		Text:    fmt.Sprintf("%s : %s", pw.Source, pw.Target),
		Buttons: answerKeyboard(pw.WordID),
	}}, nil
}

func (b *Bot) answer(ctx context.Context, chatID int64, rawID, rawOutcome string) ([]model.Reply, error) {
	wordID, err := uuid.Parse(rawID)
	if err != nil {
		return replyText(chatID, wordNotFoundText), nil
	}
	outcome, err := model.ParseResultKind(rawOutcome)
	if err != nil {
		return nil, model.NewAppError("INVALID_INPUT", "Unknown answer.", "callback", err)
	}

	res, err := b.practice.Answer(ctx, chatID, wordID, outcome)
	if err != nil {
		return nil, err
	}
	replies := []model.Reply{{ChatID: chatID, Text: answerAck(res)}}

	if !res.SessionEmpty {
		next, err := b.nextWord(ctx, chatID)
		if err != nil {
			return nil, err
		}
		return append(replies, next...), nil
	}
	return append(replies, sessionCompleteReply(chatID, res.Remaining, res.Summary)), nil
}

func answerAck(res *model.AnswerResult) string {
	switch res.Result {
	case model.ResultCorrect:
		return "Marked as correct!"
	case model.ResultIncorrect:
		return "Marked as incorrect"
	}
	return "Deleted!"
}

func (b *Bot) startAddWords(ctx context.Context, chatID int64) ([]model.Reply, error) {
	candidate, err := b.addWords.Start(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return []model.Reply{{ChatID: chatID, Text: noNewWordsText, RemoveKeyboard: true}}, nil
	}
	return []model.Reply{candidateReply(chatID, candidate)}, nil
}

func (b *Bot) decide(ctx context.Context, chatID int64, learn bool) ([]model.Reply, error) {
	step, err := b.addWords.Decide(ctx, chatID, learn)
	if err != nil {
		return nil, err
	}
	if step.Finished {
		return []model.Reply{{
			ChatID:         chatID,
			Text:           fmt.Sprintf("Done! Added words to learn: %d", step.Added),
			RemoveKeyboard: true,
		}}, nil
	}
	return []model.Reply{candidateReply(chatID, step.Next)}, nil
}

func candidateReply(chatID int64, c *model.WordCandidate) model.Reply {
	return model.Reply{
		ChatID:  chatID,
		Text:    fmt.Sprintf("%s : %s", c.Source, c.Target),
		Buttons: learnSkipKeyboard(),
	}
}

func (b *Bot) remind(ctx context.Context, chatID int64, args string) ([]model.Reply, error) {
	if args == "" {
		return replyText(chatID, remindUsageText), nil
	}
	reminder, err := b.reminders.SetReminder(ctx, chatID, args)
	if err != nil {
		if errors.Is(err, model.ErrInvalidInput) {
			return replyText(chatID, remindUsageText), nil
		}
		return nil, err
	}
	return replyText(chatID, fmt.Sprintf("OK, set reminder daily on %s. Next reminder: %s",
		reminder.RemindTime, reminder.NextRemindAt.In(b.loc).Format("02 Jan 15:04"))), nil
}

func (b *Bot) reset(ctx context.Context, chatID int64) ([]model.Reply, error) {
	if err := b.practice.ResetSession(ctx, chatID); err != nil {
		return nil, err
	}
	if err := b.addWords.Cancel(ctx, chatID); err != nil {
		middleware.GetLogger(ctx).Warn("Failed to cancel add-words dialog on reset", "error", err)
	}
	return replyText(chatID, resetDoneText), nil
}

func replyText(chatID int64, text string) []model.Reply {
	return []model.Reply{{ChatID: chatID, Text: text}}
}

// userFacingReply は利用者に見せてよいエラーを返信にします。
func userFacingReply(chatID int64, err error) (model.Reply, bool) {
	var appErr *model.AppError
	if !errors.As(err, &appErr) {
		return model.Reply{}, false
	}
	switch appErr.Code {
	case "INVALID_INPUT", "VALIDATION_ERROR", "NOT_FOUND", "CONFLICT":
		return model.Reply{ChatID: chatID, Text: appErr.Message}, true
	}
	return model.Reply{}, false
}
