package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go_4_vocab_scan/internal/handlers"
	"go_4_vocab_scan/internal/model"
	"go_4_vocab_scan/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLearningHandler_GetLearningSet(t *testing.T) {
	mockService := new(mocks.LearningService)
	h := handlers.NewLearningHandler(mockService, discardLogger)
	router := newTestRouter(t, func(r chi.Router) {
		r.Get("/api/v1/learning", h.GetLearningSet)
	})

	set := model.LearningSet{"dog": "pies", "cat": "kot"}

	tests := []struct {
		name           string
		url            string
		userID         string
		setupMock      func()
		expectedStatus int
		expectedCode   string
	}{
		{
			name:   "正常系: amount 指定",
			url:    "/api/v1/learning?amount=2",
			userID: testUserID,
			setupMock: func() {
				mockService.On("GenerateWordsForLearning", mock.Anything, testUserID, 2).Return(set, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "正常系: amount 省略はデフォルト",
			url:    "/api/v1/learning",
			userID: testUserID,
			setupMock: func() {
				mockService.On("GenerateWordsForLearning", mock.Anything, testUserID, 0).Return(set, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "異常系: amount が数値でない",
			url:            "/api/v1/learning?amount=abc",
			userID:         testUserID,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_QUERY_PARAM",
		},
		{
			name:   "異常系: 単語が足りない",
			url:    "/api/v1/learning?amount=30",
			userID: testUserID,
			setupMock: func() {
				mockService.On("GenerateWordsForLearning", mock.Anything, testUserID, 30).
					Return(nil, model.NewAppError("INSUFFICIENT_WORDS", "Not enough words.", "amount", model.ErrInsufficientWords)).Once()
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   "INSUFFICIENT_WORDS",
		},
		{
			name:           "異常系: ユーザーIDなし",
			url:            "/api/v1/learning",
			setupMock:      func() {},
			expectedStatus: http.StatusForbidden,
			expectedCode:   "UNAUTHORIZED",
		},
		{
			name:   "異常系: サービスの予期しないエラー",
			url:    "/api/v1/learning",
			userID: testUserID,
			setupMock: func() {
				mockService.On("GenerateWordsForLearning", mock.Anything, testUserID, 0).Return(nil, errors.New("db down")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "INTERNAL_SERVER_ERROR",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService.Mock = mock.Mock{}
			tc.setupMock()

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, createRequest(t, http.MethodGet, tc.url, nil, tc.userID))

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedCode != "" {
				detail := decodeError(t, rr)
				assert.Equal(t, tc.expectedCode, detail.Code)
			} else {
				var got model.LearningSet
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
				assert.Equal(t, set, got)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestLearningHandler_PostAppeared(t *testing.T) {
	mockService := new(mocks.LearningService)
	h := handlers.NewLearningHandler(mockService, discardLogger)
	router := newTestRouter(t, func(r chi.Router) {
		r.Post("/api/v1/learning", h.PostAppeared)
	})

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func()
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "正常系: 表示済みにする",
			body: model.MarkAppearedRequest{Words: []string{"dog", "cat"}},
			setupMock: func() {
				mockService.On("MarkWordsAppeared", mock.Anything, testUserID, []string{"dog", "cat"}).
					Return(&model.MarkAppearedResponse{Updated: []string{"cat", "dog"}, Errors: []model.WordError{}}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "異常系: 存在しない単語がある",
			body: model.MarkAppearedRequest{Words: []string{"ghost"}},
			setupMock: func() {
				mockService.On("MarkWordsAppeared", mock.Anything, testUserID, []string{"ghost"}).
					Return(&model.MarkAppearedResponse{}, model.NewAppError("WORDS_NOT_FOUND", "Some words do not exist: ghost.", "words", model.ErrWordNotFound)).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "WORDS_NOT_FOUND",
		},
		{
			name:           "異常系: 空の配列",
			body:           model.MarkAppearedRequest{Words: []string{}},
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "異常系: JSONが不正",
			body:           `{"words": [`,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_REQUEST_BODY",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService.Mock = mock.Mock{}
			tc.setupMock()

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, createRequest(t, http.MethodPost, "/api/v1/learning", tc.body, testUserID))

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedCode != "" {
				assert.Equal(t, tc.expectedCode, decodeError(t, rr).Code)
			} else {
				var got model.MarkAppearedResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
				assert.Equal(t, []string{"cat", "dog"}, got.Updated)
			}
			mockService.AssertExpectations(t)
		})
	}
}
