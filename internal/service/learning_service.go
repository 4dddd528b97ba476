//go:generate mockery --name LearningService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go_4_vocab_scan/internal/middleware"
	"go_4_vocab_scan/internal/model"
	"go_4_vocab_scan/internal/repository"

	"gorm.io/gorm"
)

// LearningService は学習セットの生成と「表示済み」の記録を行う
type LearningService interface {
	GenerateWordsForLearning(ctx context.Context, userID string, amount int) (model.LearningSet, error)
	MarkWordsAppeared(ctx context.Context, userID string, words []string) (*model.MarkAppearedResponse, error)
}

type learningService struct {
	db        *gorm.DB
	wordRepo  repository.WordRepository
	selector  Selector
	wordStore WordStore
}

func NewLearningService(db *gorm.DB, wordRepo repository.WordRepository, selector Selector, wordStore WordStore) LearningService {
	return &learningService{
		db:        db,
		wordRepo:  wordRepo,
		selector:  selector,
		wordStore: wordStore,
	}
}

// GenerateWordsForLearning はまだ表示も習得もしていない単語から選ぶ
func (s *learningService) GenerateWordsForLearning(ctx context.Context, userID string, amount int) (model.LearningSet, error) {
	words, err := s.selector.SelectRandomSubset(ctx, userID, model.WordPredicate{Learnt: false, Appeared: false}, amount)
	if err != nil {
		return nil, err
	}
	middleware.GetLogger(ctx).Info("Learning set generated", "user_id", userID, "count", len(words))
	return model.LearningSet(words), nil
}

// MarkWordsAppeared は全ての単語の存在を確認してから appeared を立てる。
// 存在しない単語が1つでもあれば何も更新せず、その単語をエラーとして返す。
func (s *learningService) MarkWordsAppeared(ctx context.Context, userID string, words []string) (*model.MarkAppearedResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)
	resp := &model.MarkAppearedResponse{Updated: []string{}, Errors: []model.WordError{}}

	texts := uniqueNormalized(words)
	if len(texts) == 0 {
		return nil, model.NewAppError("VALIDATION_ERROR", "At least one word is required.", "words", model.ErrInvalidInput)
	}

	missing, err := s.wordRepo.FindMissing(ctx, s.db, userID, texts)
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		for _, m := range missing {
			resp.Errors = append(resp.Errors, model.WordError{Word: m, Err: model.ErrWordNotFound})
		}
		logger.Warn("Some words do not exist, nothing marked as appeared", "missing", missing)
		msg := fmt.Sprintf("Some words do not exist: %s. Nothing was updated.", strings.Join(missing, ", "))
		return resp, model.NewAppError("WORDS_NOT_FOUND", msg, "words", model.ErrWordNotFound)
	}

	appeared := true
	for _, text := range texts {
		if _, err := s.wordStore.UpdateWord(ctx, userID, text, model.WordUpdate{Appeared: &appeared}); err != nil {
			logger.Error("Failed to mark word as appeared", "text", text, "error", err)
			return resp, err
		}
		resp.Updated = append(resp.Updated, text)
	}

	logger.Info("Words marked as appeared", "count", len(resp.Updated))
	return resp, nil
}

func uniqueNormalized(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		t := model.NormalizeWord(w)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
