// internal/service/notifier.go
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"go_4_word_learn/internal/config"
	"go_4_word_learn/internal/middleware"
	"go_4_word_learn/internal/model"
)

// Notifier はサーバー側から能動的にチャットへ送信する (リマインダー用)
type Notifier interface {
	Send(ctx context.Context, reply *model.Reply) error
}

// --- LogNotifier ---
type LogNotifier struct{}

func (n *LogNotifier) Send(ctx context.Context, reply *model.Reply) error {
	logger := middleware.GetLogger(ctx)
	logger.Info("--- Sending Message (LogNotifier) ---", "chat_id", reply.ChatID, "text", reply.Text, "buttons", len(reply.Buttons))
	return nil
}

// --- WebhookNotifier ---
// 返信を JSON で外部のチャットゲートウェイに POST する
type WebhookNotifier struct {
	url    string
	client *http.Client
}

func NewWebhookNotifier(url string, timeout time.Duration) *WebhookNotifier {
	return &WebhookNotifier{url: url, client: &http.Client{Timeout: timeout}}
}

func (n *WebhookNotifier) Send(ctx context.Context, reply *model.Reply) error {
	logger := middleware.GetLogger(ctx)

	body, err := json.Marshal(reply)
	if err != nil {
		return fmt.Errorf("WebhookNotifier.Send: marshal: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("WebhookNotifier.Send: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	logger.Debug("Posting message to webhook", "url", n.url, "chat_id", reply.ChatID)
	resp, err := n.client.Do(req)
	if err != nil {
		logger.Error("Failed to post message to webhook", "error", err, "url", n.url)
		return fmt.Errorf("WebhookNotifier.Send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		logger.Warn("Webhook rejected message", "status", resp.StatusCode, "chat_id", reply.ChatID)
		return fmt.Errorf("WebhookNotifier.Send: unexpected status %d", resp.StatusCode)
	}
	logger.Info("Message sent via webhook", "chat_id", reply.ChatID)
	return nil
}

// --- NewNotifier ファクトリ関数 ---
func NewNotifier(cfg *config.Config) Notifier {
	logger := slog.Default()
	switch cfg.Notifier.Type {
	case "webhook":
		logger.Info("Initializing webhook notifier...", "url", cfg.Notifier.URL)
		return NewWebhookNotifier(cfg.Notifier.URL, cfg.Notifier.Timeout)
	case "log":
		logger.Info("Initializing log notifier...")
		return &LogNotifier{}
	default:
		logger.Warn("Unknown notifier type, defaulting to LogNotifier", "type", cfg.Notifier.Type)
		return &LogNotifier{}
	}
}
