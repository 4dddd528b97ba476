package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go_4_vocab_scan/internal/model"
	"go_4_vocab_scan/internal/webutil"

	"github.com/golang-jwt/jwt/v5"
)

// UserProvisioner は認証済みユーザーの行 (採番カウンタ) を用意する
type UserProvisioner interface {
	EnsureUser(ctx context.Context, identity model.Identity) (*model.User, error)
}

// JWTAuthMiddleware は Authorization ヘッダーの Bearer トークンを検証するミドルウェア
// トークンは外部IDプロバイダが HS256 で署名したもの。
func JWTAuthMiddleware(secret string, provisioner UserProvisioner) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("JWT auth failed: Authorization header missing")
				appErr := model.NewAppError("UNAUTHORIZED", "Authorization header is required.", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			// "Bearer {token}" の形式を検証
			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
				logger.Warn("JWT auth failed: Invalid Authorization header format")
				appErr := model.NewAppError("UNAUTHORIZED", "Authorization header must be 'Bearer <token>'.", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			claims := &model.IdentityClaims{}
			token, err := jwt.ParseWithClaims(headerParts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				logger.Warn("JWT auth failed: Invalid token", "error", err)
				appErr := model.NewAppError("INVALID_TOKEN", "Token is invalid or expired.", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			subject, err := claims.GetSubject()
			if err != nil || subject == "" {
				logger.Warn("JWT auth failed: Subject (sub) claim missing", "error", err)
				appErr := model.NewAppError("INVALID_TOKEN", "Token does not identify a user.", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			identity := model.Identity{
				UserID:      subject,
				DisplayName: claims.Name,
				PhotoURL:    claims.Picture,
			}
			ctx, ok := provisionUser(w, r, provisioner, identity)
			if !ok {
				return
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// provisionUser はユーザー行を用意し、IDと識別情報をコンテキストに格納する
func provisionUser(w http.ResponseWriter, r *http.Request, provisioner UserProvisioner, identity model.Identity) (context.Context, bool) {
	logger := GetLogger(r.Context()).With("user_id", identity.UserID)

	if _, err := provisioner.EnsureUser(r.Context(), identity); err != nil {
		logger.Error("Failed to provision user", "error", err)
		webutil.HandleError(w, logger, err)
		return nil, false
	}

	ctx := context.WithValue(r.Context(), model.UserIDKey, identity.UserID)
	ctx = context.WithValue(ctx, model.IdentityKey, identity)
	ctx = WithLogger(ctx, logger)
	return ctx, true
}

func GetUserIDFromContext(ctx context.Context) (string, error) {
	value, ok := ctx.Value(model.UserIDKey).(string)
	if !ok || value == "" {
		// ミドルウェアが正しく動作していない等の内部エラー
		return "", model.NewAppError("UNAUTHORIZED", "No authenticated user in request.", "", model.ErrForbidden)
	}
	return value, nil
}

func GetIdentityFromContext(ctx context.Context) (model.Identity, bool) {
	identity, ok := ctx.Value(model.IdentityKey).(model.Identity)
	return identity, ok
}
