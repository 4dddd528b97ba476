//go:generate mockery --name UserService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"

	"go_4_vocab_scan/internal/middleware"
	"go_4_vocab_scan/internal/model"
	"go_4_vocab_scan/internal/repository"

	"gorm.io/gorm"
)

// UserService は認証済みユーザーの行を管理する
type UserService interface {
	EnsureUser(ctx context.Context, identity model.Identity) (*model.User, error)
	GetUser(ctx context.Context, userID string) (*model.User, error)
}

type userService struct {
	db       *gorm.DB
	userRepo repository.UserRepository
}

func NewUserService(db *gorm.DB, userRepo repository.UserRepository) UserService {
	return &userService{
		db:       db,
		userRepo: userRepo,
	}
}

// EnsureUser は初回アクセス時にカウンタ 0 のユーザーを作成し、以降はプロフィールを更新する
func (s *userService) EnsureUser(ctx context.Context, identity model.Identity) (*model.User, error) {
	logger := middleware.GetLogger(ctx).With("user_id", identity.UserID)

	if identity.UserID == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "User ID is required.", "uid", model.ErrInvalidInput)
	}

	user, err := s.userRepo.FindByID(ctx, s.db, identity.UserID)
	switch {
	case err == nil:
		if s.profileChanged(user, identity) {
			if err := s.userRepo.UpdateProfile(ctx, s.db, identity.UserID, identity.DisplayName, identity.PhotoURL); err != nil {
				return nil, err
			}
			user.DisplayName = identity.DisplayName
			user.PhotoURL = identity.PhotoURL
		}
		return user, nil
	case !errors.Is(err, model.ErrNotFound):
		return nil, err
	}

	user = &model.User{
		UserID:      identity.UserID,
		DisplayName: identity.DisplayName,
		PhotoURL:    identity.PhotoURL,
		WordAmount:  0,
	}
	if err := s.userRepo.Create(ctx, s.db, user); err != nil {
		// 同時に初回アクセスした別リクエストが先に作成した
		if errors.Is(err, model.ErrConflict) {
			return s.userRepo.FindByID(ctx, s.db, identity.UserID)
		}
		return nil, err
	}

	logger.Info("User provisioned")
	return user, nil
}

// profileChanged は空でない新しいプロフィール情報があるかどうか
func (s *userService) profileChanged(user *model.User, identity model.Identity) bool {
	if identity.DisplayName == "" && identity.PhotoURL == "" {
		return false
	}
	return user.DisplayName != identity.DisplayName || user.PhotoURL != identity.PhotoURL
}

func (s *userService) GetUser(ctx context.Context, userID string) (*model.User, error) {
	return s.userRepo.FindByID(ctx, s.db, userID)
}
