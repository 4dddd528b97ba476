// internal/model/word.go
package model

import (
	"strings"
	"time"
)

// WordRecord はユーザーごとに保存される単語
// (user_id, text) が主キー。Seq はユーザー内の連番で再利用されない。
type WordRecord struct {
	UserID      string     `gorm:"type:varchar(128);primaryKey;uniqueIndex:idx_words_user_seq,priority:1" json:"-"`
	Text        string     `gorm:"type:varchar(255);primaryKey" json:"text"`
	Seq         int64      `gorm:"not null;uniqueIndex:idx_words_user_seq,priority:2" json:"id"`
	Translation string     `gorm:"not null" json:"translation"`
	Priority    int        `gorm:"not null;default:1" json:"priority"`
	Learnt      bool       `gorm:"not null;default:false;index" json:"learnt"`
	Appeared    bool       `gorm:"not null;default:false;index" json:"appeared"`
	TimesInTest int        `gorm:"not null;default:0" json:"timesInTest"`
	DateAdded   time.Time  `gorm:"not null" json:"dateAdded"`
	DateLearnt  *time.Time `json:"dateLearnt"`
}

func (WordRecord) TableName() string {
	return "words"
}

// IncomingWord は取り込み時に SaveWords へ渡す1単語分の入力
type IncomingWord struct {
	Translation string `json:"translation" validate:"required"`
	Priority    int    `json:"priority" validate:"min=1"`
}

// SaveWordsResult は SaveWords の結果。新規作成と加算を分けて返す。
type SaveWordsResult struct {
	Created []string `json:"created"`
	Merged  []string `json:"merged"`
}

// WordUpdate は単語の部分更新。nil のフィールドは変更しない。
type WordUpdate struct {
	Translation      *string `json:"translation,omitempty" validate:"omitempty,min=1"`
	Learnt           *bool   `json:"learnt,omitempty"`
	Appeared         *bool   `json:"appeared,omitempty"`
	PriorityDelta    int     `json:"priorityDelta,omitempty" validate:"min=0"`
	TimesInTestDelta int     `json:"timesInTestDelta,omitempty" validate:"min=0"`
}

// IsEmpty は更新内容が何もないかを返す
func (u WordUpdate) IsEmpty() bool {
	return u.Translation == nil && u.Learnt == nil && u.Appeared == nil &&
		u.PriorityDelta == 0 && u.TimesInTestDelta == 0
}

// WordPredicate は learnt / appeared フラグによる絞り込み条件
type WordPredicate struct {
	Learnt   bool
	Appeared bool
}

// NormalizeWord は保存・比較用に単語を正規化する
func NormalizeWord(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}
