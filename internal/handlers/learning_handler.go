package handlers

import (
	"log/slog"
	"net/http"

	"go_4_vocab_scan/internal/model"
	"go_4_vocab_scan/internal/service"
	"go_4_vocab_scan/internal/webutil"
)

type LearningHandler struct {
	service service.LearningService
	logger  *slog.Logger
}

func NewLearningHandler(s service.LearningService, logger *slog.Logger) *LearningHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &LearningHandler{
		service: s,
		logger:  logger,
	}
}

// GetLearningSet は学習用の単語セットを返すハンドラ
func (h *LearningHandler) GetLearningSet(w http.ResponseWriter, r *http.Request) {
	userID, logger, ok := currentUser(w, r, h.logger.With(slog.String("handler", "GetLearningSet")))
	if !ok {
		return
	}

	amount, err := parseAmount(r)
	if err != nil {
		logger.Warn("Invalid amount", slog.String("amount", r.URL.Query().Get("amount")))
		webutil.HandleError(w, logger, err)
		return
	}

	set, err := h.service.GenerateWordsForLearning(r.Context(), userID, amount)
	if err != nil {
		logger.Info("Failed to generate learning set", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, set, logger)
}

// PostAppeared は学習画面で表示した単語を記録するハンドラ
func (h *LearningHandler) PostAppeared(w http.ResponseWriter, r *http.Request) {
	userID, logger, ok := currentUser(w, r, h.logger.With(slog.String("handler", "PostAppeared")))
	if !ok {
		return
	}

	var req model.MarkAppearedRequest
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

	resp, err := h.service.MarkWordsAppeared(r.Context(), userID, req.Words)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Words marked as appeared", slog.Int("count", len(resp.Updated)))
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
