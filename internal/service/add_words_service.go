// internal/service/add_words_service.go
package service

import (
	"context"
	"errors"

	"go_4_word_learn/internal/middleware"
	"go_4_word_learn/internal/model"
	"go_4_word_learn/internal/repository"
)

// DialogStep は Learn/Skip を1つ処理した後の状態
type DialogStep struct {
	Next     *model.WordCandidate
	Finished bool
	Added    int64
}

// AddWordsService は「/addWords」の Learn/Skip ダイアログを進めます。
// 決定はダイアログ終了時にまとめて保存します。
type AddWordsService interface {
	Start(ctx context.Context, chatID int64) (*model.WordCandidate, error)
	Decide(ctx context.Context, chatID int64, learn bool) (*DialogStep, error)
	Active(ctx context.Context, chatID int64) (bool, error)
	Cancel(ctx context.Context, chatID int64) error
}

type addWordsService struct {
	store   repository.DialogStore
	wordSvc WordService
}

func NewAddWordsService(store repository.DialogStore, wordSvc WordService) AddWordsService {
	return &addWordsService{store: store, wordSvc: wordSvc}
}

// Start は候補を取得してダイアログを始めます。候補が無ければ nil を返します。
func (s *addWordsService) Start(ctx context.Context, chatID int64) (*model.WordCandidate, error) {
	logger := middleware.GetLogger(ctx).With("chat_id", chatID)

	candidates, err := s.wordSvc.WordsToAdd(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		_ = s.store.Delete(ctx, chatID)
		return nil, nil
	}

	dialog := &model.AddWordsDialog{
		ChatID:     chatID,
		State:      model.DialogChoosing,
		Candidates: candidates,
	}
	if err := s.store.Save(ctx, dialog); err != nil {
		logger.Error("Failed to save add-words dialog", "error", err)
		return nil, toAppError(err, "Failed to start adding words.")
	}
	logger.Info("Add-words dialog started", "candidates", len(candidates))
	first := candidates[0]
	return &first, nil
}

func (s *addWordsService) Decide(ctx context.Context, chatID int64, learn bool) (*DialogStep, error) {
	logger := middleware.GetLogger(ctx).With("chat_id", chatID)

	dialog, err := s.store.Get(ctx, chatID)
	if errors.Is(err, model.ErrNotFound) {
		return nil, model.NewAppError("NOT_FOUND", "No words are being added. Use /addWords to start.", "", err)
	}
	if err != nil {
		logger.Error("Failed to load add-words dialog", "error", err)
		return nil, toAppError(err, "Failed to load the word list.")
	}

	current, ok := dialog.Current()
	if !ok {
		_ = s.store.Delete(ctx, chatID)
		return nil, model.NewAppError("NOT_FOUND", "No words are being added. Use /addWords to start.", "", model.ErrNotFound)
	}
	if learn {
		dialog.Learn = append(dialog.Learn, current.WordID)
	} else {
		dialog.Skip = append(dialog.Skip, current.WordID)
	}
	dialog.Index++

	if !dialog.Done() {
		if err := s.store.Save(ctx, dialog); err != nil {
			logger.Error("Failed to save add-words dialog", "error", err)
			return nil, toAppError(err, "Failed to save your choice.")
		}
		next := dialog.Candidates[dialog.Index]
		return &DialogStep{Next: &next}, nil
	}

	added, err := s.wordSvc.CommitChoices(ctx, chatID, dialog.Learn, dialog.Skip)
	if err != nil {
		// ダイアログは残すので最後の選択からやり直せる
		return nil, err
	}
	if err := s.store.Delete(ctx, chatID); err != nil {
		logger.Warn("Failed to delete finished add-words dialog", "error", err)
	}
	logger.Info("Add-words dialog finished", "learn", len(dialog.Learn), "skip", len(dialog.Skip))
	return &DialogStep{Finished: true, Added: added}, nil
}

// Active は Learn/Skip の入力待ちかどうかを返します。
func (s *addWordsService) Active(ctx context.Context, chatID int64) (bool, error) {
	dialog, err := s.store.Get(ctx, chatID)
	if errors.Is(err, model.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, toAppError(err, "Failed to load the word list.")
	}
	_, ok := dialog.Current()
	return ok, nil
}

func (s *addWordsService) Cancel(ctx context.Context, chatID int64) error {
	if err := s.store.Delete(ctx, chatID); err != nil {
		return toAppError(err, "Failed to cancel adding words.")
	}
	return nil
}
