// internal/webutil/request.go
package webutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go_4_word_learn/internal/middleware"
	"go_4_word_learn/internal/model"

	"github.com/go-playground/validator/v10"
)

// maxBodyBytes はチャットの更新1件として十分な大きさ
const maxBodyBytes = 64 << 10

// DecodeJSONBody はリクエストボディをデコードし、validate タグで検証します
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return model.NewAppError("INVALID_INPUT", "Request body is required.", "", model.ErrInvalidInput)
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		middleware.GetLogger(r.Context()).Debug("Error decoding JSON body", "error", err)
		return model.NewAppError("INVALID_INPUT", "Request body is not valid JSON.", "", fmt.Errorf("%w: %w", model.ErrInvalidInput, err))
	}

	if err := Validator.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return NewValidationErrorResponse(verrs)
		}
		return fmt.Errorf("webutil.DecodeJSONBody: %w", err)
	}
	return nil
}
