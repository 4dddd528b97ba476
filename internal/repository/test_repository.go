//go:generate mockery --name TestRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"go_4_vocab_scan/internal/middleware"
	"go_4_vocab_scan/internal/model"

	"gorm.io/gorm"
)

// TestRepository は採点済みテストの履歴を扱う。更新・削除は提供しない。
type TestRepository interface {
	Create(ctx context.Context, tx *gorm.DB, test *model.TestRecord) error
	CountByUser(ctx context.Context, db *gorm.DB, userID string) (int64, error)
	FindLatestByUser(ctx context.Context, db *gorm.DB, userID string, limit int) ([]*model.TestRecord, error)
}

type gormTestRepository struct{}

func NewGormTestRepository() TestRepository {
	return &gormTestRepository{}
}

// Create はテストと回答をまとめて保存する (Words は関連付けで一緒に INSERT される)
func (r *gormTestRepository) Create(ctx context.Context, tx *gorm.DB, test *model.TestRecord) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(test)
	if result.Error != nil {
		logger.Error("Error creating test record in DB",
			"error", result.Error,
			"user_id", test.UserID,
			"test_id", test.TestID.String(),
		)
		return fmt.Errorf("gormTestRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormTestRepository) CountByUser(ctx context.Context, db *gorm.DB, userID string) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.TestRecord{}).Where("user_id = ?", userID).Count(&count)
	if result.Error != nil {
		logger.Error("Error counting tests in DB", "error", result.Error, "user_id", userID)
		return 0, fmt.Errorf("gormTestRepository.CountByUser: %w", result.Error)
	}
	return count, nil
}

func (r *gormTestRepository) FindLatestByUser(ctx context.Context, db *gorm.DB, userID string, limit int) ([]*model.TestRecord, error) {
	logger := middleware.GetLogger(ctx)
	var tests []*model.TestRecord
	result := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date_finished DESC").
		Limit(limit).
		Find(&tests)
	if result.Error != nil {
		logger.Error("Error finding latest tests in DB", "error", result.Error, "user_id", userID)
		return nil, fmt.Errorf("gormTestRepository.FindLatestByUser: %w", result.Error)
	}
	return tests, nil
}
