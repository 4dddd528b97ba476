// helpers_test.go
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go_4_vocab_scan/internal/middleware"
	"go_4_vocab_scan/internal/model"
	"go_4_vocab_scan/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testUserID = "user-1"

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// newTestRouter は開発用認証ミドルウェアを付けたルーターを作る。
// X-User-ID ヘッダーのユーザーは常にプロビジョン済みとして扱う。
func newTestRouter(t *testing.T, register func(r chi.Router)) *chi.Mux {
	t.Helper()
	users := mocks.NewUserService(t)
	users.On("EnsureUser", mock.Anything, mock.AnythingOfType("model.Identity")).
		Return(func(_ context.Context, id model.Identity) *model.User {
			return &model.User{UserID: id.UserID}
		}, nil).Maybe()

	r := chi.NewRouter()
	r.Use(middleware.DevUserContextMiddleware(users))
	register(r)
	return r
}

// createRequest はテスト用のHTTPリクエストを作る。userID が空ならヘッダーを付けない。
func createRequest(t *testing.T, method, url string, body interface{}, userID string) *http.Request {
	t.Helper()
	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = strings.NewReader(b)
		default:
			raw, err := json.Marshal(body)
			require.NoError(t, err, "Failed to marshal request body")
			reader = bytes.NewBuffer(raw)
		}
	}

	req := httptest.NewRequest(method, url, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	return req
}

// decodeError はエラーレスポンスのボディを取り出す
func decodeError(t *testing.T, rr *httptest.ResponseRecorder) model.ErrorDetail {
	t.Helper()
	var errResp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp), "error body: %s", rr.Body.String())
	assert.NotEmpty(t, errResp.Error.Message, "Error message should not be empty")
	return errResp.Error
}
