// internal/webutil/response.go
package webutil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"go_4_word_learn/internal/middleware"
	"go_4_word_learn/internal/model"

	"github.com/go-playground/validator/v10"
)

// HandleError はエラーを解釈し、適切なJSONエラーレスポンスを返します。
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	statusCode := MapErrorToStatusCode(err)
	logger := middleware.GetLogger(r.Context())

	var errResp model.APIErrorResponse
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		errResp = model.APIErrorResponse{Error: appErr.Detail()}
		if statusCode >= http.StatusInternalServerError {
			logger.Error("Request failed", "error", err, "status", statusCode)
		}
	} else {
		// 予期せぬエラーは詳細をログにだけ出す
		logger.Error("Unhandled error", "error", err)
		errResp = model.APIErrorResponse{
			Error: model.ErrorDetail{
				Code:    "INTERNAL_SERVER_ERROR",
				Message: "Something went wrong, please try again.",
			},
		}
	}

	RespondWithJSON(w, statusCode, errResp)
}

// MapErrorToStatusCode はアプリケーションエラーをHTTPステータスコードにマッピングします
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidInput), errors.Is(err, model.ErrInvalidStage):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, model.ErrRepositoryUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// RespondWithJSON はJSONレスポンスを返します
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Error marshaling JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"code":"INTERNAL_SERVER_ERROR","message":"Failed to build the response."}}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// NewValidationErrorResponse は翻訳済みのメッセージをまとめた AppError を返します。
func NewValidationErrorResponse(errs validator.ValidationErrors) *model.AppError {
	var fields []string
	var messages []string

	for _, err := range errs {
		fields = append(fields, err.Field())
		messages = append(messages, err.Translate(Trans))
	}

	return model.NewAppError(
		"VALIDATION_ERROR",
		strings.Join(messages, " "),
		strings.Join(fields, ","),
		model.ErrInvalidInput,
	)
}
