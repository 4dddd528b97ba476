//go:generate mockery --name WordStore --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"go_4_vocab_scan/internal/middleware"
	"go_4_vocab_scan/internal/model"
	"go_4_vocab_scan/internal/repository"
	"go_4_vocab_scan/internal/webutil"

	"gorm.io/gorm"
)

// WordStore はユーザーごとの単語コレクションを管理する
type WordStore interface {
	// SaveWords は新しい単語を採番して作成し、既存の単語は priority を加算する。
	// エラー時も、それまでにコミットされた単語は結果に含めて返す。
	SaveWords(ctx context.Context, userID string, words map[string]model.IncomingWord) (*model.SaveWordsResult, error)
	UpdateWord(ctx context.Context, userID, text string, upd model.WordUpdate) (*model.WordRecord, error)
	CheckIfWordExists(ctx context.Context, userID, text string) (bool, error)
	GetWordByIndex(ctx context.Context, userID string, seq int64) (*model.WordRecord, error)
}

type wordStore struct {
	db       *gorm.DB // トランザクション用にDB接続を持つ
	wordRepo repository.WordRepository
	userRepo repository.UserRepository
	locks    *userLocker
	now      func() time.Time
}

func NewWordStore(db *gorm.DB, wordRepo repository.WordRepository, userRepo repository.UserRepository) WordStore {
	return &wordStore{
		db:       db,
		wordRepo: wordRepo,
		userRepo: userRepo,
		locks:    newUserLocker(),
		now:      time.Now,
	}
}

func (s *wordStore) SaveWords(ctx context.Context, userID string, words map[string]model.IncomingWord) (*model.SaveWordsResult, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)
	result := &model.SaveWordsResult{Created: []string{}, Merged: []string{}}

	normalized, err := normalizeIncoming(words)
	if err != nil {
		return result, err
	}
	if len(normalized) == 0 {
		return result, nil
	}

	exists, err := s.userRepo.Exists(ctx, s.db, userID)
	if err != nil {
		return result, err
	}
	if !exists {
		return result, model.ErrUserNotFound
	}

	// 同じユーザーの取り込みは直列化する
	unlock := s.locks.Lock(userID)
	defer unlock()

	texts := make([]string, 0, len(normalized))
	for text := range normalized {
		texts = append(texts, text)
	}
	sort.Strings(texts)

	for _, text := range texts {
		created, err := s.saveOne(ctx, userID, text, normalized[text])
		if err != nil {
			logger.Error("Failed to save word", "text", text, "error", err,
				"created", len(result.Created), "merged", len(result.Merged))
			return result, fmt.Errorf("save word %q: %w", text, err)
		}
		if created {
			result.Created = append(result.Created, text)
		} else {
			result.Merged = append(result.Merged, text)
		}
	}

	logger.Info("Words saved", "created", len(result.Created), "merged", len(result.Merged))
	return result, nil
}

// saveOne は1単語を1トランザクションで作成または加算する。
// 別インスタンスと作成が競合した場合は一度だけ加算としてやり直す。
func (s *wordStore) saveOne(ctx context.Context, userID, text string, in model.IncomingWord) (bool, error) {
	var created bool
	var err error
	for attempt := 0; attempt < 2; attempt++ {
		created, err = s.saveOneTx(ctx, userID, text, in)
		if err == nil || !errors.Is(err, model.ErrConflict) {
			return created, err
		}
		middleware.GetLogger(ctx).Warn("Concurrent create detected, retrying as merge", "user_id", userID, "text", text)
	}
	return false, err
}

func (s *wordStore) saveOneTx(ctx context.Context, userID, text string, in model.IncomingWord) (bool, error) {
	created := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// カウンタ行をロックしてから存在確認する
		user, err := s.userRepo.FindByIDForUpdate(ctx, tx, userID)
		if err != nil {
			return err
		}

		_, err = s.wordRepo.FindByText(ctx, tx, userID, text)
		switch {
		case err == nil:
			return s.wordRepo.Update(ctx, tx, userID, text, map[string]interface{}{
				"priority": gorm.Expr("priority + ?", in.Priority),
			})
		case !errors.Is(err, model.ErrNotFound):
			return err
		}

		seq := user.WordAmount + 1
		word := &model.WordRecord{
			UserID:      userID,
			Text:        text,
			Seq:         seq,
			Translation: in.Translation,
			Priority:    in.Priority,
			Learnt:      false,
			Appeared:    false,
			TimesInTest: 0,
			DateAdded:   s.now(),
		}
		if err := s.wordRepo.Create(ctx, tx, word); err != nil {
			return err
		}
		if err := s.userRepo.SetWordAmount(ctx, tx, userID, seq); err != nil {
			return err
		}
		created = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return created, nil
}

// normalizeIncoming はキーを正規化し、正規化後に重複したキーは priority を合算する
func normalizeIncoming(words map[string]model.IncomingWord) (map[string]model.IncomingWord, error) {
	keys := make([]string, 0, len(words))
	for k := range words {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[string]model.IncomingWord, len(words))
	for _, k := range keys {
		in := words[k]
		text := model.NormalizeWord(k)
		if text == "" {
			return nil, model.NewAppError("VALIDATION_ERROR", "Word must not be empty.", "word", model.ErrInvalidInput)
		}
		if err := webutil.ValidateStruct(in); err != nil {
			return nil, err
		}
		if prev, ok := out[text]; ok {
			prev.Priority += in.Priority
			out[text] = prev
			continue
		}
		out[text] = in
	}
	return out, nil
}

func (s *wordStore) UpdateWord(ctx context.Context, userID, text string, upd model.WordUpdate) (*model.WordRecord, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "text", text)

	if err := webutil.ValidateStruct(upd); err != nil {
		return nil, err
	}
	text = model.NormalizeWord(text)

	var updated *model.WordRecord
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		word, err := s.wordRepo.FindByText(ctx, tx, userID, text)
		if err != nil {
			return err
		}

		updates, err := s.buildUpdates(word, upd)
		if err != nil {
			return err
		}
		if len(updates) == 0 {
			updated = word
			return nil
		}

		if err := s.wordRepo.Update(ctx, tx, userID, text, updates); err != nil {
			return err
		}
		updated, err = s.wordRepo.FindByText(ctx, tx, userID, text)
		return err
	})
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) && !errors.Is(err, model.ErrInvalidInput) {
			logger.Error("Failed to update word", "error", err)
		}
		return nil, err
	}

	logger.Debug("Word updated", "learnt", updated.Learnt, "appeared", updated.Appeared)
	return updated, nil
}

// buildUpdates は WordUpdate を更新カラムに変換する。learnt は一度 true になったら戻せない。
func (s *wordStore) buildUpdates(word *model.WordRecord, upd model.WordUpdate) (map[string]interface{}, error) {
	updates := make(map[string]interface{})

	if upd.Translation != nil && *upd.Translation != word.Translation {
		updates["translation"] = *upd.Translation
	}
	if upd.Appeared != nil && *upd.Appeared != word.Appeared {
		updates["appeared"] = *upd.Appeared
	}
	if upd.Learnt != nil {
		switch {
		case !*upd.Learnt && word.Learnt:
			return nil, model.NewAppError("LEARNT_IS_FINAL", "A learnt word cannot be marked as not learnt.", "learnt", model.ErrInvalidInput)
		case *upd.Learnt && !word.Learnt:
			updates["learnt"] = true
			// 並行して採点された場合も最初の日時を残す
			updates["date_learnt"] = gorm.Expr("COALESCE(date_learnt, ?)", s.now())
		}
	}
	if upd.PriorityDelta > 0 {
		updates["priority"] = gorm.Expr("priority + ?", upd.PriorityDelta)
	}
	if upd.TimesInTestDelta > 0 {
		updates["times_in_test"] = gorm.Expr("times_in_test + ?", upd.TimesInTestDelta)
	}
	return updates, nil
}

func (s *wordStore) CheckIfWordExists(ctx context.Context, userID, text string) (bool, error) {
	text = model.NormalizeWord(text)
	if text == "" {
		return false, nil
	}
	return s.wordRepo.Exists(ctx, s.db, userID, text)
}

func (s *wordStore) GetWordByIndex(ctx context.Context, userID string, seq int64) (*model.WordRecord, error) {
	if seq < 1 {
		return nil, model.NewAppError("VALIDATION_ERROR", "Index must be a positive integer.", "id", model.ErrInvalidInput)
	}
	return s.wordRepo.FindBySeq(ctx, s.db, userID, seq)
}
