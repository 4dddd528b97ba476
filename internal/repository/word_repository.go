//go:generate mockery --name WordRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_4_vocab_scan/internal/middleware"
	"go_4_vocab_scan/internal/model"

	"gorm.io/gorm"
)

type WordRepository interface {
	Create(ctx context.Context, tx *gorm.DB, word *model.WordRecord) error
	FindByText(ctx context.Context, db *gorm.DB, userID, text string) (*model.WordRecord, error)
	FindBySeq(ctx context.Context, db *gorm.DB, userID string, seq int64) (*model.WordRecord, error)
	Exists(ctx context.Context, db *gorm.DB, userID, text string) (bool, error)
	// FindMissing は texts のうち保存されていないものを返す
	FindMissing(ctx context.Context, db *gorm.DB, userID string, texts []string) ([]string, error)
	Update(ctx context.Context, tx *gorm.DB, userID, text string, updates map[string]interface{}) error
	ListByPredicate(ctx context.Context, db *gorm.DB, userID string, pred model.WordPredicate) ([]*model.WordRecord, error)
	CountByUser(ctx context.Context, db *gorm.DB, userID string) (int64, error)
	FindLatestLearnt(ctx context.Context, db *gorm.DB, userID string, limit int) ([]*model.WordRecord, error)
}

type gormWordRepository struct{}

func NewGormWordRepository() WordRepository {
	return &gormWordRepository{}
}

func (r *gormWordRepository) Create(ctx context.Context, tx *gorm.DB, word *model.WordRecord) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(word)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			logger.Warn("Duplicate key error on create word",
				"error", result.Error,
				"user_id", word.UserID,
				"text", word.Text,
			)
			return model.ErrConflict
		}
		logger.Error("Error creating word in DB",
			"error", result.Error,
			"user_id", word.UserID,
			"text", word.Text,
		)
		return fmt.Errorf("gormWordRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormWordRepository) FindByText(ctx context.Context, db *gorm.DB, userID, text string) (*model.WordRecord, error) {
	logger := middleware.GetLogger(ctx)
	var word model.WordRecord
	result := db.WithContext(ctx).Where("user_id = ? AND text = ?", userID, text).First(&word)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrWordNotFound
		}
		logger.Error("Error finding word by text in DB",
			"error", result.Error,
			"user_id", userID,
			"text", text,
		)
		return nil, fmt.Errorf("gormWordRepository.FindByText: %w", result.Error)
	}
	return &word, nil
}

func (r *gormWordRepository) FindBySeq(ctx context.Context, db *gorm.DB, userID string, seq int64) (*model.WordRecord, error) {
	logger := middleware.GetLogger(ctx)
	var word model.WordRecord
	result := db.WithContext(ctx).Where("user_id = ? AND seq = ?", userID, seq).First(&word)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrWordNotFound
		}
		logger.Error("Error finding word by seq in DB",
			"error", result.Error,
			"user_id", userID,
			"seq", seq,
		)
		return nil, fmt.Errorf("gormWordRepository.FindBySeq: %w", result.Error)
	}
	return &word, nil
}

func (r *gormWordRepository) Exists(ctx context.Context, db *gorm.DB, userID, text string) (bool, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.WordRecord{}).Where("user_id = ? AND text = ?", userID, text).Count(&count)
	if result.Error != nil {
		logger.Error("Error checking word existence in DB",
			"error", result.Error,
			"user_id", userID,
			"text", text,
		)
		return false, fmt.Errorf("gormWordRepository.Exists: %w", result.Error)
	}
	return count > 0, nil
}

func (r *gormWordRepository) FindMissing(ctx context.Context, db *gorm.DB, userID string, texts []string) ([]string, error) {
	logger := middleware.GetLogger(ctx)
	if len(texts) == 0 {
		return nil, nil
	}

	var found []string
	result := db.WithContext(ctx).Model(&model.WordRecord{}).
		Where("user_id = ? AND text IN ?", userID, texts).
		Pluck("text", &found)
	if result.Error != nil {
		logger.Error("Error finding existing words in DB",
			"error", result.Error,
			"user_id", userID,
			"count", len(texts),
		)
		return nil, fmt.Errorf("gormWordRepository.FindMissing: %w", result.Error)
	}

	present := make(map[string]struct{}, len(found))
	for _, t := range found {
		present[t] = struct{}{}
	}
	var missing []string
	for _, t := range texts {
		if _, ok := present[t]; !ok {
			missing = append(missing, t)
		}
	}
	return missing, nil
}

func (r *gormWordRepository) Update(ctx context.Context, tx *gorm.DB, userID, text string, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.WordRecord{}).Where("user_id = ? AND text = ?", userID, text).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating word in DB",
			"error", result.Error,
			"user_id", userID,
			"text", text,
		)
		return fmt.Errorf("gormWordRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrWordNotFound
	}
	return nil
}

func (r *gormWordRepository) ListByPredicate(ctx context.Context, db *gorm.DB, userID string, pred model.WordPredicate) ([]*model.WordRecord, error) {
	logger := middleware.GetLogger(ctx)
	var words []*model.WordRecord
	result := db.WithContext(ctx).
		Where("user_id = ? AND learnt = ? AND appeared = ?", userID, pred.Learnt, pred.Appeared).
		Order("seq ASC").
		Find(&words)
	if result.Error != nil {
		logger.Error("Error listing words by predicate in DB",
			"error", result.Error,
			"user_id", userID,
			"learnt", pred.Learnt,
			"appeared", pred.Appeared,
		)
		return nil, fmt.Errorf("gormWordRepository.ListByPredicate: %w", result.Error)
	}
	return words, nil
}

func (r *gormWordRepository) CountByUser(ctx context.Context, db *gorm.DB, userID string) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.WordRecord{}).Where("user_id = ?", userID).Count(&count)
	if result.Error != nil {
		logger.Error("Error counting words in DB", "error", result.Error, "user_id", userID)
		return 0, fmt.Errorf("gormWordRepository.CountByUser: %w", result.Error)
	}
	return count, nil
}

func (r *gormWordRepository) FindLatestLearnt(ctx context.Context, db *gorm.DB, userID string, limit int) ([]*model.WordRecord, error) {
	logger := middleware.GetLogger(ctx)
	var words []*model.WordRecord
	result := db.WithContext(ctx).
		Where("user_id = ? AND learnt = ? AND date_learnt IS NOT NULL", userID, true).
		Order("date_learnt DESC").
		Limit(limit).
		Find(&words)
	if result.Error != nil {
		logger.Error("Error finding latest learnt words in DB", "error", result.Error, "user_id", userID)
		return nil, fmt.Errorf("gormWordRepository.FindLatestLearnt: %w", result.Error)
	}
	return words, nil
}
