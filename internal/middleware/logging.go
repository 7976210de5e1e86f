package middleware

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// logCtxKey はコンテキストにロガーを格納するためのキーです。
type logCtxKey struct{}

// sensitiveHeaders はログ出力時に値をマスキングするヘッダー名のリストです (小文字で定義)。
var sensitiveHeaders = map[string]bool{
	"authorization":                   true,
	"cookie":                          true,
	"set-cookie":                      true,
	"x-api-key":                       true,
	"x-telegram-bot-api-secret-token": true,
}

// WithLogger はロガーをコンテキストに格納します。
// HTTP 以外の入口 (リマインダー、CLI) もこれを使います。
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, logCtxKey{}, logger)
}

// GetLogger はコンテキストから slog.Logger を取得します。
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(logCtxKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// LoggingMiddleware はリクエスト/レスポンスのログ出力を一元管理するミドルウェアです。
// chi の RequestID ミドルウェアの後に登録してください。
func LoggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestLogger := logger.With("req_id", middleware.GetReqID(r.Context()))
			r = r.WithContext(WithLogger(r.Context(), requestLogger))

			debug := logger.Enabled(r.Context(), slog.LevelDebug)

			// デバッグ時のみボディを読む
			var reqBody []byte
			if debug && r.Body != nil {
				reqBody, _ = io.ReadAll(r.Body)
				r.Body = io.NopCloser(bytes.NewBuffer(reqBody))
			}

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			var respBody *bytes.Buffer
			if debug {
				respBody = new(bytes.Buffer)
				ww.Tee(respBody)
			}

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			level := slog.LevelInfo
			if status >= 500 {
				level = slog.LevelError
			} else if status >= 400 {
				level = slog.LevelWarn
			}

			requestLogger.Log(r.Context(), level, "Request completed",
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"bytes_out", ww.BytesWritten(),
				"latency_ms", float64(time.Since(start).Nanoseconds())/1e6,
			)

			if debug {
				requestLogger.Debug("Request detail",
					"headers", formatHeaders(r.Header),
					"body", string(reqBody),
				)
				requestLogger.Debug("Response detail",
					"status", status,
					"headers", formatHeaders(ww.Header()),
					"body", respBody.String(),
				)
			}
		})
	}
}

// formatHeaders はヘッダー情報をログ出力用に整形・マスキングするヘルパー関数
func formatHeaders(headers http.Header) map[string]string {
	result := make(map[string]string, len(headers))
	for key, values := range headers {
		if sensitiveHeaders[strings.ToLower(key)] {
			result[key] = "[SENSITIVE]"
			continue
		}
		result[key] = strings.Join(values, ", ")
	}
	return result
}
