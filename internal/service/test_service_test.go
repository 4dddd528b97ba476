package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go_4_vocab_scan/internal/model"
	"go_4_vocab_scan/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTestService_GenerateTest(t *testing.T) {
	ctx := testCtx()
	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	items := []model.TestItem{{Word: "dog", Translation: "pies"}}

	mockSelector := new(mocks.Selector)
	svc := NewTestService(nil, nil, nil, mockSelector, nil).(*testService)
	svc.now = func() time.Time { return fixed }

	tests := []struct {
		name      string
		setupMock func()
		wantErr   error
	}{
		{
			name: "正常系: 表示済みかつ未習得の単語で出題する",
			setupMock: func() {
				mockSelector.On("SelectOrdered", mock.Anything, "u1", model.WordPredicate{Learnt: false, Appeared: true}, 1).
					Return(items, nil).Once()
			},
		},
		{
			name: "異常系: 単語が足りない",
			setupMock: func() {
				mockSelector.On("SelectOrdered", mock.Anything, "u1", mock.Anything, 1).
					Return(nil, model.ErrInsufficientWords).Once()
			},
			wantErr: model.ErrInsufficientWords,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSelector.Mock = mock.Mock{}
			tt.setupMock()

			data, err := svc.GenerateTest(ctx, "u1", 1)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, data)
			} else {
				require.NoError(t, err)
				assert.Equal(t, items, data.Words)
				require.NotNil(t, data.DateCreated)
				assert.True(t, fixed.Equal(*data.DateCreated))
			}
			mockSelector.AssertExpectations(t)
		})
	}
}

func TestTestService_GradeTest(t *testing.T) {
	ctx := testCtx()
	d := newTestDeps(t)
	d.seedUser(t, "u1")
	_, err := d.store.SaveWords(ctx, "u1", map[string]model.IncomingWord{
		"dog":  {Translation: "pies", Priority: 1},
		"cat":  {Translation: "kot", Priority: 1},
		"pies": {Translation: "dog", Priority: 1},
		"kot":  {Translation: "cat", Priority: 1},
	})
	require.NoError(t, err)

	svc := NewTestService(d.db, d.testRepo, d.userRepo, d.selector(1), d.store)
	started := time.Now().Add(-time.Minute)
	data := model.TestData{
		DateCreated: &started,
		Words: []model.TestItem{
			{Word: "dog", Translation: "pies"},
			{Word: "cat", Translation: "kot"},
			{Word: "pies", Translation: "dog"},
			{Word: "kot", Translation: "cat"},
		},
	}

	t.Run("正常系: 前半は訳、後半は単語で採点する", func(t *testing.T) {
		res, err := svc.GradeTest(ctx, "u1", data, []string{"pies", "KOT ", "<b>pies</b>", "wrong"})
		require.NoError(t, err)
		assert.Equal(t, 4, res.MaxPoints)
		assert.Equal(t, 3, res.Points)
		assert.Empty(t, res.Errors)

		require.Len(t, res.Words, 4)
		assert.False(t, res.Words[0].Reverse)
		assert.False(t, res.Words[1].Reverse)
		assert.True(t, res.Words[2].Reverse)
		assert.True(t, res.Words[3].Reverse)
		assert.Equal(t, []bool{true, true, true, false},
			[]bool{res.Words[0].Correct, res.Words[1].Correct, res.Words[2].Correct, res.Words[3].Correct})
		assert.Equal(t, "pies", res.Words[2].Answer)

		assert.True(t, d.word(t, "u1", "dog").Learnt)
		assert.NotNil(t, d.word(t, "u1", "dog").DateLearnt)
		kot := d.word(t, "u1", "kot")
		assert.False(t, kot.Learnt)
		assert.Nil(t, kot.DateLearnt)
		assert.Equal(t, 1, kot.TimesInTest)

		count, err := d.testRepo.CountByUser(ctx, d.db, "u1")
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("正常系: 全問正解で4点", func(t *testing.T) {
		// 後半2問は単語そのものを答える
		res, err := svc.GradeTest(ctx, "u1", data, []string{"pies", "kot", "pies", "kot"})
		require.NoError(t, err)
		assert.Equal(t, 4, res.Points)
		assert.True(t, d.word(t, "u1", "kot").Learnt)
		assert.Equal(t, 2, d.word(t, "u1", "kot").TimesInTest)
	})

	t.Run("正常系: 後半に訳を答えると不正解", func(t *testing.T) {
		res, err := svc.GradeTest(ctx, "u1", data, []string{"pies", "kot", "dog", "cat"})
		require.NoError(t, err)
		assert.Equal(t, 2, res.Points)
		assert.Equal(t, []bool{true, true, false, false},
			[]bool{res.Words[0].Correct, res.Words[1].Correct, res.Words[2].Correct, res.Words[3].Correct})
		assert.Equal(t, 3, d.word(t, "u1", "kot").TimesInTest)
	})

	t.Run("正常系: 存在しない単語はエラーに入れて採点を続ける", func(t *testing.T) {
		missing := model.TestData{
			DateCreated: &started,
			Words: []model.TestItem{
				{Word: "ghost", Translation: "duch"},
				{Word: "dog", Translation: "pies"},
			},
		}
		res, err := svc.GradeTest(ctx, "u1", missing, []string{"duch", "dog"})
		require.NoError(t, err)
		assert.Equal(t, 2, res.Points)
		require.Len(t, res.Errors, 1)
		assert.Equal(t, "ghost", res.Errors[0].Word)
		assert.ErrorIs(t, res.Errors[0].Err, model.ErrWordNotFound)
	})

	t.Run("正常系: 空の回答は不正解", func(t *testing.T) {
		res, err := svc.GradeTest(ctx, "u1", data, []string{"", "  ", "", ""})
		require.NoError(t, err)
		assert.Equal(t, 0, res.Points)
	})

	t.Run("異常系: 回答数が一致しない", func(t *testing.T) {
		_, err := svc.GradeTest(ctx, "u1", data, []string{"pies"})
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("異常系: 単語が重複している", func(t *testing.T) {
		dup := model.TestData{
			DateCreated: &started,
			Words:       []model.TestItem{{Word: "dog", Translation: "pies"}, {Word: "dog", Translation: "pies"}},
		}
		_, err := svc.GradeTest(ctx, "u1", dup, []string{"pies", "dog"})
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("異常系: 大文字小文字だけ違う単語の重複", func(t *testing.T) {
		before := d.word(t, "u1", "dog").TimesInTest
		dup := model.TestData{
			DateCreated: &started,
			Words:       []model.TestItem{{Word: "dog", Translation: "pies"}, {Word: " DOG", Translation: "pies"}},
		}
		_, err := svc.GradeTest(ctx, "u1", dup, []string{"pies", "dog"})
		assert.ErrorIs(t, err, model.ErrInvalidInput)
		assert.Equal(t, before, d.word(t, "u1", "dog").TimesInTest)
	})

	t.Run("異常系: dateCreated がない", func(t *testing.T) {
		_, err := svc.GradeTest(ctx, "u1", model.TestData{Words: data.Words}, []string{"a", "b", "c", "d"})
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("異常系: 存在しないユーザー", func(t *testing.T) {
		_, err := svc.GradeTest(ctx, "nobody", data, []string{"a", "b", "c", "d"})
		assert.ErrorIs(t, err, model.ErrUserNotFound)
	})
}

func TestTestService_GradeTest_StoreFailure(t *testing.T) {
	ctx := testCtx()
	d := newTestDeps(t)
	d.seedUser(t, "u1")

	mockStore := mocks.NewWordStore(t)
	mockStore.On("UpdateWord", mock.Anything, "u1", "dog", mock.Anything).
		Return(nil, errors.New("db down")).Once()

	svc := NewTestService(d.db, d.testRepo, d.userRepo, nil, mockStore)
	now := time.Now()
	_, err := svc.GradeTest(ctx, "u1", model.TestData{
		DateCreated: &now,
		Words:       []model.TestItem{{Word: "dog", Translation: "pies"}},
	}, []string{"pies"})
	require.Error(t, err)

	count, err := d.testRepo.CountByUser(context.Background(), d.db, "u1")
	require.NoError(t, err)
	assert.Zero(t, count)
}

// 24語を学習 -> 表示済み -> テスト -> 全問正解 まで通す
func TestLearningFlow_EndToEnd(t *testing.T) {
	ctx := testCtx()
	d := newTestDeps(t)
	d.seedUser(t, "u1")
	d.seedWords(t, "u1", "w", 24)

	sel := d.selector(11)
	learning := NewLearningService(d.db, d.wordRepo, sel, d.store)
	tests := NewTestService(d.db, d.testRepo, d.userRepo, sel, d.store)
	stats := NewStatsService(d.db, d.userRepo, d.wordRepo, d.testRepo)

	set, err := learning.GenerateWordsForLearning(ctx, "u1", 24)
	require.NoError(t, err)
	require.Len(t, set, 24)

	words := make([]string, 0, len(set))
	for w := range set {
		words = append(words, w)
	}
	resp, err := learning.MarkWordsAppeared(ctx, "u1", words)
	require.NoError(t, err)
	assert.Len(t, resp.Updated, 24)

	data, err := tests.GenerateTest(ctx, "u1", 24)
	require.NoError(t, err)
	require.Len(t, data.Words, 24)

	answers := make([]string, len(data.Words))
	for i, it := range data.Words {
		if i < len(data.Words)/2 {
			answers[i] = it.Translation
		} else {
			answers[i] = it.Word
		}
	}
	res, err := tests.GradeTest(ctx, "u1", *data, answers)
	require.NoError(t, err)
	assert.Equal(t, 24, res.Points)
	assert.Equal(t, 24, res.MaxPoints)

	_, err = tests.GenerateTest(ctx, "u1", 1)
	assert.ErrorIs(t, err, model.ErrInsufficientWords)

	profile, err := stats.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), profile.TestsAmount)
	require.Len(t, profile.Tests, 1)
	assert.Equal(t, 24, profile.Tests[0].MaxPoints)
	assert.Equal(t, int64(24), profile.WordsAmount)
	assert.Len(t, profile.LearntWords, 10)
}
