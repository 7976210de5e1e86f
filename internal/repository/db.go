package repository

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"go_4_word_learn/internal/config"
	"go_4_word_learn/internal/model"

	slogGorm "github.com/orandin/slog-gorm" // slogGormはエイリアス
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDB は設定に応じて postgres または sqlite に接続します。
func NewDB(cfg config.DatabaseConfig, appLogger *slog.Logger) (*gorm.DB, error) {
	gormLogLevel := gormlogger.Warn
	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		gormLogLevel = gormlogger.Info
	}

	// GORM のログを slog に流す
	gormLogger := slogGorm.New(
		slogGorm.WithHandler(appLogger.Handler()),
		slogGorm.WithTraceAll(),
		slogGorm.WithSlowThreshold(500*time.Millisecond),
	).LogMode(gormLogLevel)

	var dialector gorm.Dialector
	switch cfg.Type {
	case "sqlite":
		// 共有キャッシュ無しの sqlite は同時書き込みでロックされるため busy_timeout を付ける
		sep := "?"
		if strings.Contains(cfg.Path, "?") {
			sep = "&"
		}
		dialector = sqlite.Open(cfg.Path + sep + "_busy_timeout=5000&_foreign_keys=on")
	case "postgres", "":
		dialector = postgres.Open(cfg.URL)
	default:
		return nil, fmt.Errorf("repository.NewDB: unsupported database type %q", cfg.Type)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:  gormLogger,
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		appLogger.Error("Failed to connect to database with GORM", slog.Any("error", err), slog.String("type", cfg.Type))
		return nil, translateError(err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		appLogger.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		return nil, err
	}
	if err = sqlDB.Ping(); err != nil {
		appLogger.Error("Error pinging database", slog.Any("error", err))
		sqlDB.Close()
		return nil, translateError(err)
	}

	if cfg.Type == "sqlite" {
		// sqlite は単一ライターなので接続を1本に絞る
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	appLogger.Info("Database connection established with GORM", slog.String("type", cfg.Type))
	return db, nil
}

// Models はスキーマに含まれる全モデル
func Models() []interface{} {
	return []interface{}{
		&model.Word{},
		&model.WordSkip{},
		&model.PracticeRecord{},
		&model.DailyPoolEntry{},
		&model.CurrentPracticeEntry{},
		&model.PracticeStats{},
		&model.SessionWordResult{},
		&model.PracticeStreak{},
		&model.Reminder{},
	}
}

// Migrate は全テーブルを作成・更新します。
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("repository.Migrate: %w", err)
	}
	return nil
}

// isPostgres は行ロックなど postgres 固有の句を付けるかどうかの判定に使う
func isPostgres(db *gorm.DB) bool {
	return db.Dialector.Name() == "postgres"
}
