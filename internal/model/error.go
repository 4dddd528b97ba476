// internal/model/error.go
package model

import (
	"errors"
	"fmt"
)

// アプリケーション固有のエラー
var (
	ErrNotFound          = errors.New("resource not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInternalServer    = errors.New("internal server error")
	ErrForbidden         = errors.New("forbidden")
	ErrConflict          = errors.New("resource conflict") // 重複エラー用
	ErrInsufficientWords = errors.New("not enough words matching the filter")
	ErrUnsupportedMedia  = errors.New("unsupported media type")

	// ErrNotFound をラップしているので errors.Is(err, ErrNotFound) でも判定できる
	ErrUserNotFound = fmt.Errorf("user: %w", ErrNotFound)
	ErrWordNotFound = fmt.Errorf("word: %w", ErrNotFound)
)

// ErrorDetail はクライアントに返すエラー内容
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// APIErrorResponse はAPIエラーレスポンスの構造体
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// AppError はクライアント向けの詳細と、原因となったエラーを保持する
type AppError struct {
	Detail ErrorDetail
	Err    error
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{
		Detail: ErrorDetail{Code: code, Message: message, Field: field},
		Err:    err,
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Detail.Code, e.Detail.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Detail.Code, e.Detail.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WordError は単語単位で発生した、処理全体を止めないエラー
type WordError struct {
	Word string
	Err  error
}

func (e WordError) Error() string {
	return fmt.Sprintf("%s: %v", e.Word, e.Err)
}

func (e WordError) Unwrap() error {
	return e.Err
}

// MarshalText でJSONに文字列として出力する
func (e WordError) MarshalText() ([]byte, error) {
	return []byte(e.Error()), nil
}
