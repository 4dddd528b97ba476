// internal/handlers/word_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"go_4_vocab_scan/internal/model"
	"go_4_vocab_scan/internal/service"
	"go_4_vocab_scan/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type WordHandler struct {
	store  service.WordStore
	logger *slog.Logger
}

func NewWordHandler(s service.WordStore, logger *slog.Logger) *WordHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &WordHandler{
		store:  s,
		logger: logger,
	}
}

// GetWordByIndex は連番 (id) で単語を1件取得するハンドラ
func (h *WordHandler) GetWordByIndex(w http.ResponseWriter, r *http.Request) {
	userID, logger, ok := currentUser(w, r, h.logger.With(slog.String("handler", "GetWordByIndex")))
	if !ok {
		return
	}

	idStr := chi.URLParam(r, "id")
	seq, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		logger.Warn("Invalid word index in URL", slog.String("id", idStr))
		appErr := model.NewAppError("INVALID_URL_PARAM", "id must be an integer.", "id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	word, err := h.store.GetWordByIndex(r.Context(), userID, seq)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, word, logger)
}
