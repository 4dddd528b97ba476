package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"go_4_vocab_scan/internal/middleware"
	"go_4_vocab_scan/internal/model"
	"go_4_vocab_scan/internal/webutil"
)

// currentUser は認証ミドルウェアが設定したユーザーIDを取り出す。
// 取り出せない場合はエラーレスポンスを書いて false を返す。
func currentUser(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (string, *slog.Logger, bool) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return "", logger, false
	}
	return userID, logger.With(slog.String("user_id", userID)), true
}

// parseAmount は ?amount= を読む。未指定は 0 (サービス側のデフォルト件数)。
func parseAmount(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("amount")
	if raw == "" {
		return 0, nil
	}
	amount, err := strconv.Atoi(raw)
	if err != nil || amount < 0 {
		return 0, model.NewAppError("INVALID_QUERY_PARAM", "amount must be a non-negative integer.", "amount", model.ErrInvalidInput)
	}
	return amount, nil
}
