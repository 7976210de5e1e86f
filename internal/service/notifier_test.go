// internal/service/notifier_test.go
package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go_4_word_learn/internal/config"
	"go_4_word_learn/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookNotifier_Send(t *testing.T) {
	reply := &model.Reply{
		ChatID:  5,
		Text:    "Time to practice! You have 2 words waiting.",
		Buttons: [][]model.Button{{{Text: "Practice (2)", Data: "practice"}}},
	}

	t.Run("正常系: JSON で POST する", func(t *testing.T) {
		var got model.Reply
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusNoContent)
		}))
		defer srv.Close()

		n := NewWebhookNotifier(srv.URL, time.Second)
		require.NoError(t, n.Send(testCtx(), reply))
		assert.Equal(t, *reply, got)
	})

	t.Run("異常系: 2xx 以外はエラー", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		n := NewWebhookNotifier(srv.URL, time.Second)
		err := n.Send(testCtx(), reply)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "502")
	})
}

func TestNewNotifier(t *testing.T) {
	cfg := config.Default()

	cfg.Notifier.Type = "webhook"
	cfg.Notifier.URL = "http://localhost:9999/send"
	assert.IsType(t, &WebhookNotifier{}, NewNotifier(cfg))

	cfg.Notifier.Type = "log"
	assert.IsType(t, &LogNotifier{}, NewNotifier(cfg))

	cfg.Notifier.Type = "carrier-pigeon"
	assert.IsType(t, &LogNotifier{}, NewNotifier(cfg))
}
