package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"go_4_vocab_scan/internal/middleware"
	"go_4_vocab_scan/internal/model"
	"go_4_vocab_scan/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// --- テストヘルパー関数 (インメモリDBセットアップ) ---
func setupServiceDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err, "failed to connect database for service testing")
	require.NoError(t, repository.AutoMigrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

// testCtx はログを捨てるロガーを持つコンテキスト
func testCtx() context.Context {
	return middleware.WithLogger(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type testDeps struct {
	db       *gorm.DB
	userRepo repository.UserRepository
	wordRepo repository.WordRepository
	testRepo repository.TestRepository
	store    WordStore
}

func newTestDeps(t *testing.T) *testDeps {
	t.Helper()
	db := setupServiceDB(t)
	d := &testDeps{
		db:       db,
		userRepo: repository.NewGormUserRepository(),
		wordRepo: repository.NewGormWordRepository(),
		testRepo: repository.NewGormTestRepository(),
	}
	d.store = NewWordStore(db, d.wordRepo, d.userRepo)
	return d
}

func (d *testDeps) selector(seed int64) Selector {
	return NewSelector(d.db, d.wordRepo, d.userRepo, 24, seed)
}

func (d *testDeps) seedUser(t *testing.T, userID string) {
	t.Helper()
	require.NoError(t, d.db.Create(&model.User{UserID: userID}).Error)
}

// seedWords は SaveWords を通して n 個の単語を作る。訳は "<単語>-pl"。
func (d *testDeps) seedWords(t *testing.T, userID, prefix string, n int) []string {
	t.Helper()
	in := make(map[string]model.IncomingWord, n)
	texts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		w := fmt.Sprintf("%s%02d", prefix, i)
		in[w] = model.IncomingWord{Translation: w + "-pl", Priority: 1}
		texts = append(texts, w)
	}
	_, err := d.store.SaveWords(testCtx(), userID, in)
	require.NoError(t, err)
	return texts
}

func (d *testDeps) setFlags(t *testing.T, userID string, texts []string, learnt, appeared bool) {
	t.Helper()
	updates := map[string]interface{}{"learnt": learnt, "appeared": appeared}
	if learnt {
		updates["date_learnt"] = time.Now()
	}
	require.NoError(t, d.db.Model(&model.WordRecord{}).
		Where("user_id = ? AND text IN ?", userID, texts).
		Updates(updates).Error)
}

func (d *testDeps) word(t *testing.T, userID, text string) *model.WordRecord {
	t.Helper()
	w, err := d.wordRepo.FindByText(context.Background(), d.db, userID, text)
	require.NoError(t, err)
	return w
}
