// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "wordbot"
	AppVersion = "0.3.0"
)

// デフォルト設定値
const (
	DefaultServerPort       = ":8080"
	DefaultDatabaseType     = "postgres"
	DefaultSQLitePath       = "wordbot.db"
	DefaultQueryTimeout     = 5 * time.Second
	DefaultLogLevel         = "info"
	DefaultPoolMin          = 67
	DefaultPoolMax          = 76
	DefaultBatchSize        = 10
	DefaultTimezone         = "Europe/Amsterdam"
	DefaultSourceLang       = "en"
	DefaultTargetLang       = "ru"
	DefaultWordsToAdd       = 10
	DefaultReminderInterval = time.Minute
	DefaultReminderRate     = 25
	DefaultNotifierType     = "log"
	DefaultDialogStore      = "memory"
)
