// internal/service/helpers_test.go
package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"go_4_word_learn/internal/config"
	"go_4_word_learn/internal/middleware"
	"go_4_word_learn/internal/model"
	"go_4_word_learn/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB はテストごとに独立したインメモリ sqlite を用意する
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Silent), // テスト中はログを抑制
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, repository.Migrate(db))
	return db
}

// testClock は進められる時計
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Practice.SourceLang = "en"
	cfg.Practice.TargetLang = "nl"
	return cfg
}

type testEnv struct {
	db       *gorm.DB
	cfg      *config.Config
	clock    *testClock
	practice PracticeService
	words    WordService
	practRep repository.PracticeRepository
	progRep  repository.ProgressRepository
	wordRep  repository.WordRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := setupTestDB(t)
	cfg := testConfig()
	clock := &testClock{now: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)}
	env := &testEnv{
		db:       db,
		cfg:      cfg,
		clock:    clock,
		practRep: repository.NewGormPracticeRepository(),
		progRep:  repository.NewGormProgressRepository(),
		wordRep:  repository.NewGormWordRepository(),
	}
	env.practice = NewPracticeService(db, env.practRep, env.progRep, env.wordRep, cfg, fixedRandom{v: 0}, clock.Now)
	env.words = NewWordService(db, env.wordRep, env.practRep, cfg, clock.Now)
	return env
}

// addWords は target/source の組を n 件作り、練習対象 (ステージ0、即時) に追加する
func (e *testEnv) addWords(t *testing.T, chatID int64, n int) []uuid.UUID {
	t.Helper()
	ids := make([]uuid.UUID, 0, n)
	for i := 0; i < n; i++ {
		w := &model.Word{ID: uuid.New()}
		w.SetText(model.LanguageNL, fmt.Sprintf("woord%d", i))
		w.SetText(model.LanguageEN, fmt.Sprintf("word%d", i))
		require.NoError(t, e.db.Create(w).Error)
		ids = append(ids, w.ID)
	}
	_, err := e.practRep.AddRecords(testCtx(), e.db, chatID, ids, e.clock.Now())
	require.NoError(t, err)
	return ids
}

func (e *testEnv) record(t *testing.T, chatID int64, wordID uuid.UUID) *model.PracticeRecord {
	t.Helper()
	var rec model.PracticeRecord
	require.NoError(t, e.db.Where("chat_id = ? AND word_id = ?", chatID, wordID).Take(&rec).Error)
	return &rec
}

// testCtx はログを捨てるロガー入りのコンテキスト
func testCtx() context.Context {
	return middleware.WithLogger(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}
