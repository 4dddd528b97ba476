package webutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go_4_vocab_scan/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{model.ErrUserNotFound, http.StatusNotFound},
		{fmt.Errorf("save: %w", model.ErrWordNotFound), http.StatusNotFound},
		{model.ErrInvalidInput, http.StatusBadRequest},
		{model.NewAppError("INSUFFICIENT_WORDS", "x", "", model.ErrInsufficientWords), http.StatusConflict},
		{model.ErrConflict, http.StatusConflict},
		{model.ErrUnsupportedMedia, http.StatusUnsupportedMediaType},
		{model.ErrForbidden, http.StatusForbidden},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err), tt.err.Error())
	}
}

func TestHandleError(t *testing.T) {
	decode := func(t *testing.T, rr *httptest.ResponseRecorder) model.ErrorDetail {
		t.Helper()
		var resp model.APIErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		return resp.Error
	}

	t.Run("AppError の詳細をそのまま返す", func(t *testing.T) {
		rr := httptest.NewRecorder()
		HandleError(rr, nil, model.NewAppError("WORDS_NOT_FOUND", "Some words do not exist: ghost.", "words", model.ErrWordNotFound))
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		d := decode(t, rr)
		assert.Equal(t, "WORDS_NOT_FOUND", d.Code)
		assert.Equal(t, "words", d.Field)
	})

	t.Run("センチネルエラーはメッセージを返す", func(t *testing.T) {
		rr := httptest.NewRecorder()
		HandleError(rr, nil, model.ErrUnsupportedMedia)
		assert.Equal(t, http.StatusUnsupportedMediaType, rr.Code)
		d := decode(t, rr)
		assert.Equal(t, "UNSUPPORTED_MEDIA_TYPE", d.Code)
		assert.Equal(t, model.ErrUnsupportedMedia.Error(), d.Message)
	})

	t.Run("内部エラーの詳細は返さない", func(t *testing.T) {
		rr := httptest.NewRecorder()
		HandleError(rr, nil, errors.New("pq: password authentication failed"))
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "password")
		assert.Equal(t, "INTERNAL_SERVER_ERROR", decode(t, rr).Code)
	})
}

func TestValidateStruct(t *testing.T) {
	type sample struct {
		Name  string   `json:"name" validate:"required"`
		URL   string   `json:"url" validate:"omitempty,url"`
		Items []string `json:"items" validate:"omitempty,unique"`
	}

	assert.NoError(t, ValidateStruct(sample{Name: "ok"}))

	err := ValidateStruct(sample{})
	assert.ErrorIs(t, err, model.ErrInvalidInput)
	var appErr *model.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "name", appErr.Detail.Field)
	assert.Equal(t, "name is required.", appErr.Detail.Message)

	err = ValidateStruct(sample{URL: "nope", Items: []string{"a", "a"}})
	require.ErrorAs(t, err, &appErr)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
	assert.Equal(t, "name,url,items", appErr.Detail.Field)
	assert.True(t, strings.Contains(appErr.Detail.Message, "url must be a valid URL."))
}

func TestDecodeJSONBody(t *testing.T) {
	var dst struct {
		Words []string `json:"words"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"words":["a"]}`))
	require.NoError(t, DecodeJSONBody(req, &dst))
	assert.Equal(t, []string{"a"}, dst.Words)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"other":1}`))
	assert.ErrorIs(t, DecodeJSONBody(req, &dst), model.ErrInvalidInput)
}
