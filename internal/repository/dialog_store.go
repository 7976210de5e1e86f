//go:generate mockery --name DialogStore --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"go_4_word_learn/internal/config"
	"go_4_word_learn/internal/model"

	goredis "github.com/redis/go-redis/v9"
)

// DialogStore はチャットごとの単語追加ダイアログを保存します。
// 存在しない場合 Get は model.ErrNotFound を返します。
type DialogStore interface {
	Get(ctx context.Context, chatID int64) (*model.AddWordsDialog, error)
	Save(ctx context.Context, dialog *model.AddWordsDialog) error
	Delete(ctx context.Context, chatID int64) error
}

// NewDialogStore は設定に応じてメモリか redis の DialogStore を返します。
func NewDialogStore(cfg *config.Config, logger *slog.Logger) (DialogStore, error) {
	switch cfg.Dialog.Store {
	case "redis":
		rdb := goredis.NewClient(&goredis.Options{
			Addr:        cfg.Redis.Addr,
			Password:    cfg.Redis.Password,
			DB:          cfg.Redis.DB,
			DialTimeout: 5 * time.Second,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			logger.Error("Failed to connect to redis", "error", err, "addr", cfg.Redis.Addr)
			return nil, fmt.Errorf("repository.NewDialogStore: redis ping: %w: %w", model.ErrRepositoryUnavailable, err)
		}
		logger.Info("Dialog store initialized", "store", "redis", "addr", cfg.Redis.Addr)
		return NewRedisDialogStore(rdb, cfg.Dialog.TTL), nil
	default:
		logger.Info("Dialog store initialized", "store", "memory")
		return NewMemoryDialogStore(cfg.Dialog.TTL), nil
	}
}

// --- memory ---

type memoryEntry struct {
	dialog    model.AddWordsDialog
	expiresAt time.Time
}

type memoryDialogStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	dialogs map[int64]memoryEntry
}

// NewMemoryDialogStore は単一プロセス用のストア。ttl が 0 なら期限なし。
func NewMemoryDialogStore(ttl time.Duration) DialogStore {
	return &memoryDialogStore{ttl: ttl, dialogs: make(map[int64]memoryEntry)}
}

func (s *memoryDialogStore) Get(ctx context.Context, chatID int64) (*model.AddWordsDialog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.dialogs[chatID]
	if !ok {
		return nil, model.ErrNotFound
	}
	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		delete(s.dialogs, chatID)
		return nil, model.ErrNotFound
	}
	d := cloneDialog(e.dialog)
	return &d, nil
}

func (s *memoryDialogStore) Save(ctx context.Context, dialog *model.AddWordsDialog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := memoryEntry{dialog: cloneDialog(*dialog)}
	if s.ttl > 0 {
		e.expiresAt = time.Now().Add(s.ttl)
	}
	s.dialogs[dialog.ChatID] = e
	return nil
}

func (s *memoryDialogStore) Delete(ctx context.Context, chatID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.dialogs, chatID)
	return nil
}

// cloneDialog は呼び出し側の変更がストアに漏れないようにスライスを複製する
func cloneDialog(d model.AddWordsDialog) model.AddWordsDialog {
	d.Candidates = append([]model.WordCandidate(nil), d.Candidates...)
	d.Learn = append(d.Learn[:0:0], d.Learn...)
	d.Skip = append(d.Skip[:0:0], d.Skip...)
	return d
}

// --- redis ---

type redisDialogStore struct {
	rdb *goredis.Client
	ttl time.Duration
}

func NewRedisDialogStore(rdb *goredis.Client, ttl time.Duration) DialogStore {
	return &redisDialogStore{rdb: rdb, ttl: ttl}
}

func dialogKey(chatID int64) string {
	return "wordbot:dialog:" + strconv.FormatInt(chatID, 10)
}

func (s *redisDialogStore) Get(ctx context.Context, chatID int64) (*model.AddWordsDialog, error) {
	raw, err := s.rdb.Get(ctx, dialogKey(chatID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redisDialogStore.Get: %w: %w", model.ErrRepositoryUnavailable, err)
	}
	var d model.AddWordsDialog
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("redisDialogStore.Get: decode: %w", err)
	}
	return &d, nil
}

func (s *redisDialogStore) Save(ctx context.Context, dialog *model.AddWordsDialog) error {
	raw, err := json.Marshal(dialog)
	if err != nil {
		return fmt.Errorf("redisDialogStore.Save: encode: %w", err)
	}
	if err := s.rdb.Set(ctx, dialogKey(dialog.ChatID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("redisDialogStore.Save: %w: %w", model.ErrRepositoryUnavailable, err)
	}
	return nil
}

func (s *redisDialogStore) Delete(ctx context.Context, chatID int64) error {
	if err := s.rdb.Del(ctx, dialogKey(chatID)).Err(); err != nil {
		return fmt.Errorf("redisDialogStore.Delete: %w: %w", model.ErrRepositoryUnavailable, err)
	}
	return nil
}
