//go:generate mockery --name UserRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_4_vocab_scan/internal/middleware"
	"go_4_vocab_scan/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository interface {
	Create(ctx context.Context, db *gorm.DB, user *model.User) error
	FindByID(ctx context.Context, db *gorm.DB, userID string) (*model.User, error)
	// FindByIDForUpdate はカウンタ行をロックして取得する (トランザクション内で使う)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, userID string) (*model.User, error)
	Exists(ctx context.Context, db *gorm.DB, userID string) (bool, error)
	UpdateProfile(ctx context.Context, db *gorm.DB, userID, displayName, photoURL string) error
	SetWordAmount(ctx context.Context, tx *gorm.DB, userID string, amount int64) error
}

type gormUserRepository struct{}

func NewGormUserRepository() UserRepository {
	return &gormUserRepository{}
}

func (r *gormUserRepository) Create(ctx context.Context, db *gorm.DB, user *model.User) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Create(user)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			logger.Warn("Duplicate key error on create user", "error", result.Error, "user_id", user.UserID)
			return model.ErrConflict
		}
		logger.Error("Error creating user in DB", "error", result.Error, "user_id", user.UserID)
		return fmt.Errorf("gormUserRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormUserRepository) FindByID(ctx context.Context, db *gorm.DB, userID string) (*model.User, error) {
	return r.find(ctx, db.WithContext(ctx), userID, "FindByID")
}

func (r *gormUserRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, userID string) (*model.User, error) {
	return r.find(ctx, tx.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), userID, "FindByIDForUpdate")
}

func (r *gormUserRepository) find(ctx context.Context, db *gorm.DB, userID, op string) (*model.User, error) {
	logger := middleware.GetLogger(ctx)
	var user model.User

	result := db.Where("user_id = ?", userID).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrUserNotFound
		}
		logger.Error("Error finding user in DB", "error", result.Error, "user_id", userID, "op", op)
		return nil, fmt.Errorf("gormUserRepository.%s: %w", op, result.Error)
	}
	return &user, nil
}

func (r *gormUserRepository) Exists(ctx context.Context, db *gorm.DB, userID string) (bool, error) {
	logger := middleware.GetLogger(ctx)
	var count int64

	result := db.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userID).Count(&count)
	if result.Error != nil {
		logger.Error("Error checking user existence in DB", "error", result.Error, "user_id", userID)
		return false, fmt.Errorf("gormUserRepository.Exists: %w", result.Error)
	}
	return count > 0, nil
}

func (r *gormUserRepository) UpdateProfile(ctx context.Context, db *gorm.DB, userID, displayName, photoURL string) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userID).
		Updates(map[string]interface{}{"display_name": displayName, "photo_url": photoURL})
	if result.Error != nil {
		logger.Error("Error updating user profile in DB", "error", result.Error, "user_id", userID)
		return fmt.Errorf("gormUserRepository.UpdateProfile: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrUserNotFound
	}
	return nil
}

func (r *gormUserRepository) SetWordAmount(ctx context.Context, tx *gorm.DB, userID string, amount int64) error {
	logger := middleware.GetLogger(ctx)

	// カウンタは増えるだけ。小さい値での上書きは行わない。
	result := tx.WithContext(ctx).Model(&model.User{}).
		Where("user_id = ? AND word_amount < ?", userID, amount).
		Update("word_amount", amount)
	if result.Error != nil {
		logger.Error("Error updating word counter in DB", "error", result.Error, "user_id", userID, "amount", amount)
		return fmt.Errorf("gormUserRepository.SetWordAmount: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("gormUserRepository.SetWordAmount: counter for %s not advanced to %d: %w", userID, amount, model.ErrConflict)
	}
	return nil
}
