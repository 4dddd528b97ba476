//go:generate mockery --name TestService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"time"

	"go_4_vocab_scan/internal/middleware"
	"go_4_vocab_scan/internal/model"
	"go_4_vocab_scan/internal/repository"
	"go_4_vocab_scan/internal/textproc"
	"go_4_vocab_scan/internal/webutil"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TestService はテストの出題と採点を行う
type TestService interface {
	GenerateTest(ctx context.Context, userID string, amount int) (*model.TestData, error)
	GradeTest(ctx context.Context, userID string, testData model.TestData, answers []string) (*model.TestResults, error)
}

type testService struct {
	db        *gorm.DB
	testRepo  repository.TestRepository
	userRepo  repository.UserRepository
	selector  Selector
	wordStore WordStore
	now       func() time.Time
}

func NewTestService(db *gorm.DB, testRepo repository.TestRepository, userRepo repository.UserRepository, selector Selector, wordStore WordStore) TestService {
	return &testService{
		db:        db,
		testRepo:  testRepo,
		userRepo:  userRepo,
		selector:  selector,
		wordStore: wordStore,
		now:       time.Now,
	}
}

// GenerateTest は学習セットで表示済み、かつ未習得の単語から出題する
func (s *testService) GenerateTest(ctx context.Context, userID string, amount int) (*model.TestData, error) {
	items, err := s.selector.SelectOrdered(ctx, userID, model.WordPredicate{Learnt: false, Appeared: true}, amount)
	if err != nil {
		return nil, err
	}
	created := s.now()
	middleware.GetLogger(ctx).Info("Test generated", "user_id", userID, "count", len(items))
	return &model.TestData{DateCreated: &created, Words: items}, nil
}

// GradeTest は前半を「単語 -> 訳」、後半を「訳 -> 単語」として採点する。
// 存在しない単語は結果の Errors に入れ、採点は続ける。
func (s *testService) GradeTest(ctx context.Context, userID string, testData model.TestData, answers []string) (*model.TestResults, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	// 大文字小文字違いの重複で同じ単語を二重に採点しないよう、検証前に正規化する
	testData.Words = normalizeTestItems(testData.Words)
	if err := webutil.ValidateStruct(testData); err != nil {
		return nil, err
	}
	n := len(testData.Words)
	if len(answers) != n {
		return nil, model.NewAppError("VALIDATION_ERROR", "The number of answers must match the number of words.", "answers", model.ErrInvalidInput)
	}

	exists, err := s.userRepo.Exists(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, model.ErrUserNotFound
	}

	results := &model.TestResults{
		TestID:      uuid.New(),
		Words:       make([]model.GradedWord, 0, n),
		MaxPoints:   n,
		DateStarted: *testData.DateCreated,
		Errors:      []model.WordError{},
	}
	recordWords := make([]model.TestRecordWord, 0, n)

	learnt := true
	for i, item := range testData.Words {
		answer := textproc.SanitizeAnswer(answers[i])
		reverse := i >= n/2

		expected := item.Translation
		if reverse {
			expected = item.Word
		}
		correct := answer != "" && textproc.EqualFold(answer, expected)

		upd := model.WordUpdate{TimesInTestDelta: 1}
		if correct {
			upd.Learnt = &learnt
		}
		if _, err := s.wordStore.UpdateWord(ctx, userID, item.Word, upd); err != nil {
			if !errors.Is(err, model.ErrNotFound) {
				logger.Error("Failed to record test answer", "word", item.Word, "error", err)
				return nil, err
			}
			logger.Warn("Graded word does not exist", "word", item.Word)
			results.Errors = append(results.Errors, model.WordError{Word: item.Word, Err: err})
		}

		if correct {
			results.Points++
		}
		results.Words = append(results.Words, model.GradedWord{
			Word:        item.Word,
			Translation: item.Translation,
			Answer:      answer,
			Correct:     correct,
			Reverse:     reverse,
		})
		recordWords = append(recordWords, model.TestRecordWord{
			Position:    i,
			Word:        item.Word,
			Translation: item.Translation,
			UserInput:   answer,
		})
	}

	results.DateFinished = s.now()
	record := &model.TestRecord{
		TestID:       results.TestID,
		UserID:       userID,
		Points:       results.Points,
		MaxPoints:    results.MaxPoints,
		DateCreated:  results.DateStarted,
		DateFinished: results.DateFinished,
		Words:        recordWords,
	}
	if err := s.testRepo.Create(ctx, s.db, record); err != nil {
		logger.Error("Failed to save test record", "error", err)
		return nil, err
	}

	logger.Info("Test graded",
		"test_id", results.TestID.String(),
		"points", results.Points,
		"max_points", results.MaxPoints,
		"errors", len(results.Errors),
	)
	return results, nil
}

func normalizeTestItems(items []model.TestItem) []model.TestItem {
	out := make([]model.TestItem, len(items))
	for i, item := range items {
		out[i] = model.TestItem{Word: model.NormalizeWord(item.Word), Translation: item.Translation}
	}
	return out
}
