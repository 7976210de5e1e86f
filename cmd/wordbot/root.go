// cmd/wordbot/root.go
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"go_4_word_learn/internal/config"
	"go_4_word_learn/internal/repository"
	"go_4_word_learn/internal/service"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// app はサブコマンド間で共有する設定とロガー
type app struct {
	configPath string
	cfg        *config.Config
	logger     *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           config.AppName,
		Short:         "Vocabulary practice chat bot",
		Version:       config.AppVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "configs", "directory containing config.yaml")

	root.AddCommand(
		newServeCmd(a),
		newRemindCmd(a),
		newAddBatchCmd(a),
		newMigrateCmd(a),
	)
	return root
}

// setup は .env と設定を読み込み、既定のロガーを差し替えます。
func (a *app) setup(logOut io.Writer) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Failed to load .env file", slog.Any("error", err))
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = newLogger(logOut, cfg.Log.Level, os.Getenv("APP_ENV"))
	slog.SetDefault(a.logger)
	return nil
}

func parseLogLevel(level string) (slog.Level, bool) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}

// newLogger は APP_ENV=dev なら tint、それ以外は JSON のハンドラを使う
func newLogger(w io.Writer, level, appEnv string) *slog.Logger {
	lvl, known := parseLogLevel(level)

	var handler slog.Handler
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(w, &tint.Options{
			Level:      lvl,
			TimeFormat: time.RFC3339,
		})
	} else {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:     lvl,
			AddSource: true,
		})
	}
	logger := slog.New(handler)
	if !known {
		logger.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", level))
	}
	return logger
}

func (a *app) openDB() (*gorm.DB, func(), error) {
	db, err := repository.NewDB(a.cfg.Database, a.logger)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	closeDB := func() {
		sqlDB, err := db.DB()
		if err != nil {
			return
		}
		if err := sqlDB.Close(); err != nil {
			a.logger.Error("Error closing database connection", slog.Any("error", err))
			return
		}
		a.logger.Info("Database connection closed.")
	}
	return db, closeDB, nil
}

// services はコマンドが使うサービス一式
type services struct {
	practice  service.PracticeService
	words     service.WordService
	addWords  service.AddWordsService
	reminders service.ReminderService
}

func (a *app) newServices(db *gorm.DB) (*services, error) {
	practiceRepo := repository.NewGormPracticeRepository()
	progressRepo := repository.NewGormProgressRepository()
	wordRepo := repository.NewGormWordRepository()
	reminderRepo := repository.NewGormReminderRepository()

	store, err := repository.NewDialogStore(a.cfg, a.logger)
	if err != nil {
		return nil, err
	}

	rnd := service.NewRandomSource(time.Now().UnixNano())
	words := service.NewWordService(db, wordRepo, practiceRepo, a.cfg, nil)
	return &services{
		practice:  service.NewPracticeService(db, practiceRepo, progressRepo, wordRepo, a.cfg, rnd, nil),
		words:     words,
		addWords:  service.NewAddWordsService(store, words),
		reminders: service.NewReminderService(db, reminderRepo, practiceRepo, service.NewNotifier(a.cfg), a.cfg, nil),
	}, nil
}
