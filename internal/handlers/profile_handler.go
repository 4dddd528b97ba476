package handlers

import (
	"log/slog"
	"net/http"

	"go_4_vocab_scan/internal/service"
	"go_4_vocab_scan/internal/webutil"
)

type ProfileHandler struct {
	service service.StatsService
	logger  *slog.Logger
}

func NewProfileHandler(s service.StatsService, logger *slog.Logger) *ProfileHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProfileHandler{
		service: s,
		logger:  logger,
	}
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, logger, ok := currentUser(w, r, h.logger.With(slog.String("handler", "GetProfile")))
	if !ok {
		return
	}

	profile, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, profile, logger)
}
