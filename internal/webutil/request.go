package webutil

import (
	"encoding/json"
	"errors"
	"net/http"

	"go_4_vocab_scan/internal/model"

	"github.com/go-playground/validator/v10"
)

// DecodeJSONBody はリクエストボディをデコードします
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return model.NewAppError("INVALID_REQUEST_BODY", "Request body is empty.", "", model.ErrInvalidInput)
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return model.NewAppError("INVALID_REQUEST_BODY", "Request body is not valid JSON: "+err.Error(), "", model.ErrInvalidInput)
	}
	return nil
}

// ValidateStruct はバリデーションを実行し、失敗時は AppError にして返す
func ValidateStruct(v interface{}) error {
	err := Validator.Struct(v)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		if len(validationErrors) > 1 {
			return NewValidationErrorResponse(validationErrors)
		}
		firstErr := validationErrors[0]
		return model.NewAppError(
			"VALIDATION_ERROR",
			firstErr.Translate(Trans),
			firstErr.Field(),
			model.ErrInvalidInput,
		)
	}
	// InvalidValidationError など、バリデーションライブラリ自体のエラー
	return err
}
