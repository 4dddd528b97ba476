package handlers

import (
	"log/slog"
	"net/http"

	"go_4_vocab_scan/internal/model"
	"go_4_vocab_scan/internal/service"
	"go_4_vocab_scan/internal/webutil"
)

type TestHandler struct {
	service service.TestService
	logger  *slog.Logger
}

func NewTestHandler(s service.TestService, logger *slog.Logger) *TestHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TestHandler{
		service: s,
		logger:  logger,
	}
}

// GetTest はテストを出題するハンドラ
func (h *TestHandler) GetTest(w http.ResponseWriter, r *http.Request) {
	userID, logger, ok := currentUser(w, r, h.logger.With(slog.String("handler", "GetTest")))
	if !ok {
		return
	}

	amount, err := parseAmount(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	data, err := h.service.GenerateTest(r.Context(), userID, amount)
	if err != nil {
		logger.Info("Failed to generate test", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, data, logger)
}

// PostTest は回答を採点するハンドラ。存在しない単語があっても 200 で結果を返す。
func (h *TestHandler) PostTest(w http.ResponseWriter, r *http.Request) {
	userID, logger, ok := currentUser(w, r, h.logger.With(slog.String("handler", "PostTest")))
	if !ok {
		return
	}

	var req model.GradeTestRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	if err := webutil.ValidateStruct(req); err != nil {
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	results, err := h.service.GradeTest(r.Context(), userID, req.TestData, req.Answers)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Test graded", slog.Int("points", results.Points), slog.Int("max_points", results.MaxPoints))
	webutil.RespondWithJSON(w, http.StatusOK, results, logger)
}
