// internal/service/word_service.go
package service

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go_4_word_learn/internal/config"
	"go_4_word_learn/internal/middleware"
	"go_4_word_learn/internal/model"
	"go_4_word_learn/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WordPair は target 言語と source 言語の1組
type WordPair struct {
	Target string
	Source string
}

// ImportReport is the outcome of ImportBatch.
type ImportReport struct {
	Parsed   int
	Existing int
	Added    int
	DryRun   bool
	Pending  []WordPair
}

type WordService interface {
	AddCustomWord(ctx context.Context, chatID int64, pair WordPair) ([]*model.Word, error)
	WordsToAdd(ctx context.Context, chatID int64) ([]model.WordCandidate, error)
	CommitChoices(ctx context.Context, chatID int64, learn, skip []uuid.UUID) (int64, error)
	ImportBatch(ctx context.Context, chatID int64, pairs []WordPair, dryRun bool) (*ImportReport, error)
}

type wordService struct {
	db           *gorm.DB // トランザクション用にDB接続を持つ
	wordRepo     repository.WordRepository
	practiceRepo repository.PracticeRepository
	cfg          *config.Config
	now          Clock
}

func NewWordService(db *gorm.DB, wordRepo repository.WordRepository, practiceRepo repository.PracticeRepository, cfg *config.Config, now Clock) WordService {
	if now == nil {
		now = time.Now
	}
	return &wordService{
		db:           db,
		wordRepo:     wordRepo,
		practiceRepo: practiceRepo,
		cfg:          cfg,
		now:          now,
	}
}

// ParseWordInput は "cat, kat" (カンマ区切り) か "cat kat" (空白1つ) を分解します。
// 1つ目が target、2つ目が source。
func ParseWordInput(text string) (WordPair, error) {
	text = strings.TrimSpace(text)

	var first, second string
	if strings.Contains(text, ",") {
		first, second, _ = strings.Cut(text, ",")
	} else if strings.Count(text, " ") == 1 {
		first, second, _ = strings.Cut(text, " ")
	} else {
		return WordPair{}, fmt.Errorf("service.ParseWordInput: %w", model.ErrInvalidInput)
	}

	pair := WordPair{Target: strings.TrimSpace(first), Source: strings.TrimSpace(second)}
	if pair.Target == "" || pair.Source == "" {
		return WordPair{}, model.NewAppError("INVALID_INPUT", "Please provide both words.", "text", model.ErrInvalidInput)
	}
	return pair, nil
}

// ParseBatch は "target|source" 形式の行を読み込みます。空行と # で始まる行は無視します。
// 不正な行は警告として返し、処理は続けます。
func ParseBatch(r io.Reader) ([]WordPair, []string, error) {
	var pairs []WordPair
	var warnings []string

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		target, source, ok := strings.Cut(line, "|")
		if !ok {
			warnings = append(warnings, fmt.Sprintf("line %d has no separator: %s", lineNum, line))
			continue
		}
		target, source = strings.TrimSpace(target), strings.TrimSpace(source)
		if target == "" || source == "" {
			warnings = append(warnings, fmt.Sprintf("line %d has empty part: %s", lineNum, line))
			continue
		}
		pairs = append(pairs, WordPair{Target: target, Source: source})
	}
	if err := scanner.Err(); err != nil {
		return nil, warnings, fmt.Errorf("service.ParseBatch: %w", err)
	}
	return pairs, warnings, nil
}

// AddCustomWord は双方向の2語を作成し、どちらも練習対象に追加します。
func (s *wordService) AddCustomWord(ctx context.Context, chatID int64, pair WordPair) ([]*model.Word, error) {
	logger := middleware.GetLogger(ctx).With("chat_id", chatID)
	if strings.TrimSpace(pair.Target) == "" || strings.TrimSpace(pair.Source) == "" {
		return nil, model.NewAppError("INVALID_INPUT", "Please provide both words.", "text", model.ErrInvalidInput)
	}
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Database.QueryTimeout)
	defer cancel()

	var words []*model.Word
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		words, err = s.addPair(ctx, tx, chatID, pair)
		return err
	})
	if err != nil {
		logger.Error("Failed to add custom word", "error", err)
		return nil, toAppError(err, "Failed to add the word.")
	}
	logger.Info("Custom word added", "target", pair.Target, "source", pair.Source)
	return words, nil
}

// addPair は target→source と source→target の2語を作り練習対象に入れる
func (s *wordService) addPair(ctx context.Context, tx *gorm.DB, chatID int64, pair WordPair) ([]*model.Word, error) {
	target := s.cfg.Practice.TargetLanguage()
	source := s.cfg.Practice.SourceLanguage()

	forward := &model.Word{ID: uuid.New()}
	forward.SetText(target, pair.Target)
	forward.SetText(source, pair.Source)

	reverse := &model.Word{ID: uuid.New()}
	reverse.SetText(target, pair.Source)
	reverse.SetText(source, pair.Target)

	words := []*model.Word{forward, reverse}
	ids := make([]uuid.UUID, 0, len(words))
	for _, w := range words {
		if err := s.wordRepo.Create(ctx, tx, w); err != nil {
			return nil, err
		}
		ids = append(ids, w.ID)
	}
	if _, err := s.practiceRepo.AddRecords(ctx, tx, chatID, ids, s.now().UTC()); err != nil {
		return nil, err
	}
	return words, nil
}

// WordsToAdd は「/addWords」で提示する候補を返します。
func (s *wordService) WordsToAdd(ctx context.Context, chatID int64) ([]model.WordCandidate, error) {
	logger := middleware.GetLogger(ctx).With("chat_id", chatID)
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Database.QueryTimeout)
	defer cancel()

	source := s.cfg.Practice.SourceLanguage()
	target := s.cfg.Practice.TargetLanguage()
	words, err := s.wordRepo.FindCandidates(ctx, s.db, chatID, source, target, s.cfg.Practice.WordsToAdd)
	if err != nil {
		logger.Error("Failed to find words to add", "error", err)
		return nil, toAppError(err, "Failed to find new words.")
	}

	candidates := make([]model.WordCandidate, 0, len(words))
	for _, w := range words {
		candidates = append(candidates, model.WordCandidate{
			WordID: w.ID,
			Source: w.TextOr(source, "?"),
			Target: w.TextOr(target, "?"),
		})
	}
	return candidates, nil
}

// CommitChoices は Learn を練習対象に、Skip をスキップリストにまとめて保存します。
// 追加された単語数を返します。
func (s *wordService) CommitChoices(ctx context.Context, chatID int64, learn, skip []uuid.UUID) (int64, error) {
	logger := middleware.GetLogger(ctx).With("chat_id", chatID)
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Database.QueryTimeout)
	defer cancel()

	var added int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		added, err = s.practiceRepo.AddRecords(ctx, tx, chatID, learn, s.now().UTC())
		if err != nil {
			return err
		}
		for _, id := range skip {
			if err := s.wordRepo.AddToSkiplist(ctx, tx, chatID, id); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Error("Failed to save word choices", "error", err)
		return 0, toAppError(err, "Failed to save your choices.")
	}
	logger.Info("Word choices saved", "learn", len(learn), "skip", len(skip), "added", added)
	return added, nil
}

// ImportBatch は既存の組を除いて単語を一括追加します。dryRun なら何も書き込みません。
func (s *wordService) ImportBatch(ctx context.Context, chatID int64, pairs []WordPair, dryRun bool) (*ImportReport, error) {
	logger := middleware.GetLogger(ctx).With("chat_id", chatID, "dry_run", dryRun)
	report := &ImportReport{Parsed: len(pairs), DryRun: dryRun}

	target := s.cfg.Practice.TargetLanguage()
	source := s.cfg.Practice.SourceLanguage()
	seen := make(map[WordPair]struct{}, len(pairs))
	for _, p := range pairs {
		if _, dup := seen[p]; dup {
			report.Existing++
			continue
		}
		seen[p] = struct{}{}

		_, err := s.wordRepo.FindByTexts(ctx, s.db, target, source, p.Target, p.Source)
		switch {
		case err == nil:
			report.Existing++
		case errors.Is(err, model.ErrNotFound):
			report.Pending = append(report.Pending, p)
		default:
			logger.Error("Failed to check existing word", "error", err, "target", p.Target)
			return nil, toAppError(err, "Failed to check existing words.")
		}
	}

	if dryRun || len(report.Pending) == 0 {
		logger.Info("Batch import planned", "parsed", report.Parsed, "existing", report.Existing, "pending", len(report.Pending))
		return report, nil
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, p := range report.Pending {
			if _, err := s.addPair(ctx, tx, chatID, p); err != nil {
				return err
			}
			report.Added++
		}
		return nil
	})
	if err != nil {
		logger.Error("Batch import failed, rolled back", "error", err)
		return nil, toAppError(err, "Failed to import words.")
	}
	logger.Info("Batch import finished", "parsed", report.Parsed, "existing", report.Existing, "added", report.Added)
	return report, nil
}
