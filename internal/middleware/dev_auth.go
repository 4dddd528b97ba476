// internal/middleware/dev_auth.go
package middleware

import (
	"net/http"

	"go_4_vocab_scan/internal/model"
	"go_4_vocab_scan/internal/webutil"
)

// DevUserContextMiddleware は開発時用ミドルウェアです。
// X-User-ID ヘッダーをそのままユーザーIDとして扱います (トークン検証なし)。
func DevUserContextMiddleware(provisioner UserProvisioner) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			userID := r.Header.Get("X-User-ID")
			if userID == "" {
				logger.Warn("[DEV AUTH] Failed: X-User-ID header missing")
				appErr := model.NewAppError("UNAUTHORIZED", "[DEV] Missing X-User-ID header.", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			identity := model.Identity{
				UserID:      userID,
				DisplayName: r.Header.Get("X-User-Name"),
			}
			ctx, ok := provisionUser(w, r, provisioner, identity)
			if !ok {
				return
			}
			logger.Debug("[DEV AUTH] User ID set to context (no token validation)", "user_id", userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
