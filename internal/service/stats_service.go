//go:generate mockery --name StatsService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"

	"go_4_vocab_scan/internal/middleware"
	"go_4_vocab_scan/internal/model"
	"go_4_vocab_scan/internal/repository"

	"gorm.io/gorm"
)

// プロフィールに表示する件数
const (
	latestTestsLimit  = 10
	latestLearntLimit = 10
)

// StatsService はプロフィールと学習統計をまとめる
type StatsService interface {
	GetProfile(ctx context.Context, userID string) (*model.Profile, error)
}

type statsService struct {
	db       *gorm.DB
	userRepo repository.UserRepository
	wordRepo repository.WordRepository
	testRepo repository.TestRepository
}

func NewStatsService(db *gorm.DB, userRepo repository.UserRepository, wordRepo repository.WordRepository, testRepo repository.TestRepository) StatsService {
	return &statsService{
		db:       db,
		userRepo: userRepo,
		wordRepo: wordRepo,
		testRepo: testRepo,
	}
}

func (s *statsService) GetProfile(ctx context.Context, userID string) (*model.Profile, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}

	testsAmount, err := s.testRepo.CountByUser(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}
	tests, err := s.testRepo.FindLatestByUser(ctx, s.db, userID, latestTestsLimit)
	if err != nil {
		return nil, err
	}
	wordsAmount, err := s.wordRepo.CountByUser(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}
	learnt, err := s.wordRepo.FindLatestLearnt(ctx, s.db, userID, latestLearntLimit)
	if err != nil {
		return nil, err
	}

	profile := &model.Profile{
		UID:         user.UserID,
		Name:        user.DisplayName,
		PhotoURL:    user.PhotoURL,
		TestsAmount: testsAmount,
		Tests:       make([]model.TestSummary, 0, len(tests)),
		WordsAmount: wordsAmount,
		LearntWords: make([]model.LearntWord, 0, len(learnt)),
	}
	for _, t := range tests {
		profile.Tests = append(profile.Tests, model.TestSummary{
			Points:       t.Points,
			MaxPoints:    t.MaxPoints,
			DateFinished: t.DateFinished,
		})
	}
	for _, w := range learnt {
		lw := model.LearntWord{Word: w.Text, Translation: w.Translation}
		if w.DateLearnt != nil {
			lw.DateLearnt = *w.DateLearnt
		}
		profile.LearntWords = append(profile.LearntWords, lw)
	}

	logger.Debug("Profile built", "tests", testsAmount, "words", wordsAmount)
	return profile, nil
}
