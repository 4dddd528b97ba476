package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go_4_vocab_scan/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// --- テストヘルパー関数 (インメモリDBセットアップ) ---
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err, "failed to connect database for repository testing")
	require.NoError(t, AutoMigrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func seedUser(t *testing.T, db *gorm.DB, userID string) {
	t.Helper()
	require.NoError(t, db.Create(&model.User{UserID: userID}).Error)
}

func seedWord(t *testing.T, db *gorm.DB, userID, text string, seq int64, learnt, appeared bool) {
	t.Helper()
	w := &model.WordRecord{
		UserID: userID, Text: text, Seq: seq, Translation: text + "-pl",
		Priority: 1, Learnt: learnt, Appeared: appeared, DateAdded: time.Now(),
	}
	if learnt {
		now := time.Now().Add(time.Duration(seq) * time.Second)
		w.DateLearnt = &now
	}
	require.NoError(t, db.Create(w).Error)
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormUserRepository()

	t.Run("正常系: 作成と取得", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, db, &model.User{UserID: "u1", DisplayName: "Ann"}))

		u, err := repo.FindByID(ctx, db, "u1")
		require.NoError(t, err)
		assert.Equal(t, "Ann", u.DisplayName)
		assert.Equal(t, int64(0), u.WordAmount)

		exists, err := repo.Exists(ctx, db, "u1")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("異常系: 重複作成はConflict", func(t *testing.T) {
		err := repo.Create(ctx, db, &model.User{UserID: "u1"})
		assert.ErrorIs(t, err, model.ErrConflict)
	})

	t.Run("異常系: 存在しないユーザー", func(t *testing.T) {
		_, err := repo.FindByID(ctx, db, "nobody")
		assert.ErrorIs(t, err, model.ErrUserNotFound)
		assert.ErrorIs(t, err, model.ErrNotFound)

		_, err = repo.FindByIDForUpdate(ctx, db, "nobody")
		assert.ErrorIs(t, err, model.ErrUserNotFound)

		assert.ErrorIs(t, repo.UpdateProfile(ctx, db, "nobody", "x", "y"), model.ErrUserNotFound)
	})

	t.Run("正常系: カウンタは増加のみ", func(t *testing.T) {
		require.NoError(t, repo.SetWordAmount(ctx, db, "u1", 3))

		err := repo.SetWordAmount(ctx, db, "u1", 2)
		assert.ErrorIs(t, err, model.ErrConflict)

		u, err := repo.FindByID(ctx, db, "u1")
		require.NoError(t, err)
		assert.Equal(t, int64(3), u.WordAmount)
	})
}

func TestWordRepository(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormWordRepository()

	seedUser(t, db, "u1")
	seedUser(t, db, "u2")
	seedWord(t, db, "u1", "dog", 1, false, false)
	seedWord(t, db, "u1", "cat", 2, false, true)
	seedWord(t, db, "u1", "bird", 3, true, true)
	seedWord(t, db, "u1", "fish", 4, true, true)
	seedWord(t, db, "u2", "dog", 1, false, false)

	t.Run("正常系: テキストと連番で取得", func(t *testing.T) {
		w, err := repo.FindByText(ctx, db, "u1", "cat")
		require.NoError(t, err)
		assert.Equal(t, int64(2), w.Seq)

		w, err = repo.FindBySeq(ctx, db, "u1", 3)
		require.NoError(t, err)
		assert.Equal(t, "bird", w.Text)

		_, err = repo.FindBySeq(ctx, db, "u1", 99)
		assert.ErrorIs(t, err, model.ErrWordNotFound)
	})

	t.Run("異常系: 同じユーザーで同じ単語は作成できない", func(t *testing.T) {
		err := repo.Create(ctx, db, &model.WordRecord{UserID: "u1", Text: "dog", Seq: 10, Translation: "pies", Priority: 1, DateAdded: time.Now()})
		assert.ErrorIs(t, err, model.ErrConflict)
	})

	t.Run("正常系: 存在しない単語を列挙", func(t *testing.T) {
		missing, err := repo.FindMissing(ctx, db, "u1", []string{"dog", "cow", "cat", "owl"})
		require.NoError(t, err)
		assert.Equal(t, []string{"cow", "owl"}, missing)
	})

	t.Run("正常系: 条件で絞り込み (連番順)", func(t *testing.T) {
		words, err := repo.ListByPredicate(ctx, db, "u1", model.WordPredicate{Learnt: true, Appeared: true})
		require.NoError(t, err)
		require.Len(t, words, 2)
		assert.Equal(t, "bird", words[0].Text)
		assert.Equal(t, "fish", words[1].Text)

		words, err = repo.ListByPredicate(ctx, db, "u1", model.WordPredicate{})
		require.NoError(t, err)
		require.Len(t, words, 1)
		assert.Equal(t, "dog", words[0].Text)
	})

	t.Run("正常系: 更新と存在しない単語の更新", func(t *testing.T) {
		require.NoError(t, repo.Update(ctx, db, "u1", "dog", map[string]interface{}{"priority": gorm.Expr("priority + ?", 2)}))
		w, err := repo.FindByText(ctx, db, "u1", "dog")
		require.NoError(t, err)
		assert.Equal(t, 3, w.Priority)

		err = repo.Update(ctx, db, "u1", "cow", map[string]interface{}{"appeared": true})
		assert.ErrorIs(t, err, model.ErrWordNotFound)
	})

	t.Run("正常系: 件数と最近覚えた単語", func(t *testing.T) {
		count, err := repo.CountByUser(ctx, db, "u1")
		require.NoError(t, err)
		assert.Equal(t, int64(4), count)

		learnt, err := repo.FindLatestLearnt(ctx, db, "u1", 10)
		require.NoError(t, err)
		require.Len(t, learnt, 2)
		assert.Equal(t, "fish", learnt[0].Text)
	})
}

func TestTestRepository(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormTestRepository()
	seedUser(t, db, "u1")

	base := time.Now()
	for i := 0; i < 12; i++ {
		rec := &model.TestRecord{
			TestID:       uuid.New(),
			UserID:       "u1",
			Points:       i,
			MaxPoints:    12,
			DateCreated:  base,
			DateFinished: base.Add(time.Duration(i) * time.Minute),
			Words: []model.TestRecordWord{
				{Position: 0, Word: "dog", Translation: "pies", UserInput: "pies"},
			},
		}
		require.NoError(t, repo.Create(ctx, db, rec))
	}

	count, err := repo.CountByUser(ctx, db, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(12), count)

	latest, err := repo.FindLatestByUser(ctx, db, "u1", 10)
	require.NoError(t, err)
	require.Len(t, latest, 10)
	assert.Equal(t, 11, latest[0].Points)
	assert.Equal(t, 2, latest[9].Points)

	var words int64
	require.NoError(t, db.Model(&model.TestRecordWord{}).Count(&words).Error)
	assert.Equal(t, int64(12), words)
}
