//go:generate mockery --name Selector --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"go_4_vocab_scan/internal/middleware"
	"go_4_vocab_scan/internal/model"
	"go_4_vocab_scan/internal/repository"

	"gorm.io/gorm"
)

// Selector はフィルタに合う単語から重複なしでランダムに選ぶ
type Selector interface {
	// SelectRandomSubset は単語 -> 訳 のマップで返す
	SelectRandomSubset(ctx context.Context, userID string, pred model.WordPredicate, amount int) (map[string]string, error)
	// SelectOrdered は同じ抽選結果を出題順の配列で返す
	SelectOrdered(ctx context.Context, userID string, pred model.WordPredicate, amount int) ([]model.TestItem, error)
}

type selector struct {
	db            *gorm.DB
	wordRepo      repository.WordRepository
	userRepo      repository.UserRepository
	defaultAmount int

	mu  sync.Mutex // *rand.Rand はゴルーチンセーフではない
	rng *rand.Rand
}

// NewSelector は乱数源を受け取る。seed が 0 の場合は現在時刻を使う。
func NewSelector(db *gorm.DB, wordRepo repository.WordRepository, userRepo repository.UserRepository, defaultAmount int, seed int64) Selector {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &selector{
		db:            db,
		wordRepo:      wordRepo,
		userRepo:      userRepo,
		defaultAmount: defaultAmount,
		rng:           rand.New(rand.NewSource(seed)),
	}
}

func (s *selector) SelectRandomSubset(ctx context.Context, userID string, pred model.WordPredicate, amount int) (map[string]string, error) {
	items, err := s.SelectOrdered(ctx, userID, pred, amount)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(items))
	for _, it := range items {
		out[it.Word] = it.Translation
	}
	return out, nil
}

func (s *selector) SelectOrdered(ctx context.Context, userID string, pred model.WordPredicate, amount int) ([]model.TestItem, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "learnt", pred.Learnt, "appeared", pred.Appeared)

	if amount < 0 {
		return nil, model.NewAppError("VALIDATION_ERROR", "Amount must not be negative.", "amount", model.ErrInvalidInput)
	}
	if amount == 0 {
		amount = s.defaultAmount
	}

	exists, err := s.userRepo.Exists(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, model.ErrUserNotFound
	}

	candidates, err := s.wordRepo.ListByPredicate(ctx, s.db, userID, pred)
	if err != nil {
		return nil, err
	}
	if len(candidates) < amount {
		logger.Info("Not enough words for selection", "available", len(candidates), "requested", amount)
		return nil, model.NewAppError(
			"INSUFFICIENT_WORDS",
			"Not enough words to build the set. Upload more documents first.",
			"amount",
			model.ErrInsufficientWords,
		)
	}

	picked := s.sample(len(candidates), amount)
	items := make([]model.TestItem, 0, amount)
	for _, idx := range picked {
		w := candidates[idx]
		items = append(items, model.TestItem{Word: w.Text, Translation: w.Translation})
	}

	logger.Debug("Words selected", "available", len(candidates), "selected", len(items))
	return items, nil
}

// sample は [0, n) から k 個の添字を重複なしで一様に選ぶ (部分的な Fisher-Yates)
func (s *selector) sample(n, k int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 0; i < k; i++ {
		j := i + s.rng.Intn(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx[:k]
}
