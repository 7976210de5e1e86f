// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	_ "time/tzdata"

	"go_4_word_learn/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Practice PracticeConfig `mapstructure:"practice"`
	Reminder ReminderConfig `mapstructure:"reminder"`
	Notifier NotifierConfig `mapstructure:"notifier"`
	Dialog   DialogConfig   `mapstructure:"dialog"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Log      LogConfig      `mapstructure:"log"`
	CORS     CORSConfig     `mapstructure:"cors"`
}

type ServerConfig struct {
	Port string `mapstructure:"port" validate:"required"`
}

type DatabaseConfig struct {
	Type string `mapstructure:"type" validate:"oneof=postgres sqlite"`
	URL  string `mapstructure:"url" validate:"required_if=Type postgres"`
	// Path は sqlite のファイルパス
	Path         string        `mapstructure:"path" validate:"required_if=Type sqlite"`
	QueryTimeout time.Duration `mapstructure:"query_timeout" validate:"gt=0"`
}

type PracticeConfig struct {
	PoolMin    int    `mapstructure:"pool_min" validate:"gte=1"`
	PoolMax    int    `mapstructure:"pool_max" validate:"gtefield=PoolMin"`
	BatchSize  int    `mapstructure:"batch_size" validate:"gte=1"`
	WordsToAdd int    `mapstructure:"words_to_add" validate:"gte=1"`
	Timezone   string `mapstructure:"timezone" validate:"required"`
	SourceLang string `mapstructure:"source_lang" validate:"oneof=en nl ru"`
	TargetLang string `mapstructure:"target_lang" validate:"oneof=en nl ru,nefield=SourceLang"`

	location *time.Location
}

// Location returns the zone used for "today" and review-date midnights.
func (p PracticeConfig) Location() *time.Location {
	if p.location == nil {
		return time.UTC
	}
	return p.location
}

func (p PracticeConfig) SourceLanguage() model.Language {
	return model.Language(p.SourceLang)
}

func (p PracticeConfig) TargetLanguage() model.Language {
	return model.Language(p.TargetLang)
}

type ReminderConfig struct {
	CheckInterval  time.Duration `mapstructure:"check_interval" validate:"gt=0"`
	SendsPerSecond int           `mapstructure:"sends_per_second" validate:"gte=1"`
}

type NotifierConfig struct {
	Type    string        `mapstructure:"type" validate:"oneof=log webhook"`
	URL     string        `mapstructure:"url" validate:"required_if=Type webhook"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type DialogConfig struct {
	Store string        `mapstructure:"store" validate:"oneof=memory redis"`
	TTL   time.Duration `mapstructure:"ttl"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("database.type", DefaultDatabaseType)
	v.SetDefault("database.url", "")
	v.SetDefault("database.path", DefaultSQLitePath)
	v.SetDefault("database.query_timeout", DefaultQueryTimeout)
	v.SetDefault("practice.pool_min", DefaultPoolMin)
	v.SetDefault("practice.pool_max", DefaultPoolMax)
	v.SetDefault("practice.batch_size", DefaultBatchSize)
	v.SetDefault("practice.words_to_add", DefaultWordsToAdd)
	v.SetDefault("practice.timezone", DefaultTimezone)
	v.SetDefault("practice.source_lang", DefaultSourceLang)
	v.SetDefault("practice.target_lang", DefaultTargetLang)
	v.SetDefault("reminder.check_interval", DefaultReminderInterval)
	v.SetDefault("reminder.sends_per_second", DefaultReminderRate)
	v.SetDefault("notifier.type", DefaultNotifierType)
	v.SetDefault("notifier.url", "")
	v.SetDefault("notifier.timeout", 10*time.Second)
	v.SetDefault("dialog.store", DefaultDialogStore)
	v.SetDefault("dialog.ttl", 24*time.Hour)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Accept", "Content-Type", "X-Request-ID"})
	v.SetDefault("cors.exposed_headers", []string{})
	v.SetDefault("cors.allow_credentials", false)
	v.SetDefault("cors.max_age", 300)
}

// Load は config.yaml (path → カレントディレクトリの順で探索) と
// APP_ で始まる環境変数 (例: APP_DATABASE_URL) から設定を読み込みます。
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if path != "" {
		v.AddConfigPath(path)
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config.Load: read config: %w", err)
		}
		slog.Warn("Config file not found, using defaults and environment variables")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config.Load: unmarshal: %w", err)
	}
	if err := cfg.finalize(); err != nil {
		return nil, err
	}

	slog.Info("Config loaded",
		"config_file", v.ConfigFileUsed(),
		"database_type", cfg.Database.Type,
		"timezone", cfg.Practice.Timezone,
		"pool", fmt.Sprintf("%d-%d", cfg.Practice.PoolMin, cfg.Practice.PoolMax),
		"batch_size", cfg.Practice.BatchSize,
	)
	return &cfg, nil
}

// finalize は値を検証し、タイムゾーンを解決します。
func (c *Config) finalize() error {
	c.Practice.SourceLang = strings.ToLower(c.Practice.SourceLang)
	c.Practice.TargetLang = strings.ToLower(c.Practice.TargetLang)

	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config: invalid configuration: %w", err)
	}
	loc, err := time.LoadLocation(c.Practice.Timezone)
	if err != nil {
		return fmt.Errorf("config: invalid practice.timezone %q: %w", c.Practice.Timezone, err)
	}
	c.Practice.location = loc
	return nil
}

// Default returns a configuration with every default applied. Used by tests
// and the sqlite quick start.
func Default() *Config {
	cfg := &Config{
		Server:   ServerConfig{Port: DefaultServerPort},
		Database: DatabaseConfig{Type: "sqlite", Path: DefaultSQLitePath, QueryTimeout: DefaultQueryTimeout},
		Practice: PracticeConfig{
			PoolMin:    DefaultPoolMin,
			PoolMax:    DefaultPoolMax,
			BatchSize:  DefaultBatchSize,
			WordsToAdd: DefaultWordsToAdd,
			Timezone:   DefaultTimezone,
			SourceLang: DefaultSourceLang,
			TargetLang: DefaultTargetLang,
		},
		Reminder: ReminderConfig{CheckInterval: DefaultReminderInterval, SendsPerSecond: DefaultReminderRate},
		Notifier: NotifierConfig{Type: DefaultNotifierType, Timeout: 10 * time.Second},
		Dialog:   DialogConfig{Store: DefaultDialogStore, TTL: 24 * time.Hour},
		Log:      LogConfig{Level: DefaultLogLevel},
	}
	if err := cfg.finalize(); err != nil {
		// 既定値は常に妥当なはず
		panic(err)
	}
	return cfg
}
