// internal/model/test.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// TestRecord は採点済みテストの履歴。作成後は変更しない。
type TestRecord struct {
	TestID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       string    `gorm:"type:varchar(128);not null;index" json:"-"`
	Points       int       `gorm:"not null" json:"points"`
	MaxPoints    int       `gorm:"not null" json:"maxPoints"`
	DateCreated  time.Time `gorm:"not null" json:"dateCreated"`
	DateFinished time.Time `gorm:"not null;index" json:"dateFinished"`

	Words []TestRecordWord `gorm:"foreignKey:TestID;references:TestID" json:"words,omitempty"`
}

func (TestRecord) TableName() string {
	return "tests"
}

// TestRecordWord はテスト内の1問分の回答
type TestRecordWord struct {
	TestID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	Position    int       `gorm:"primaryKey;autoIncrement:false" json:"position"`
	Word        string    `gorm:"type:varchar(255);not null" json:"word"`
	Translation string    `gorm:"not null" json:"translation"`
	UserInput   string    `gorm:"not null" json:"userInput"`
}

func (TestRecordWord) TableName() string {
	return "test_words"
}

// TestItem はテストの1問。順序で出題方向が決まるので配列で持つ。
type TestItem struct {
	Word        string `json:"word" validate:"required"`
	Translation string `json:"translation" validate:"required"`
}

// TestData は GenerateTest が返し、採点時にそのまま送り返される
type TestData struct {
	DateCreated *time.Time `json:"dateCreated" validate:"required"`
	Words       []TestItem `json:"words" validate:"required,min=1,unique=Word,dive"`
}

// GradeTestRequest は採点リクエストのDTO
type GradeTestRequest struct {
	TestData TestData `json:"testData" validate:"required"`
	Answers  []string `json:"answers" validate:"required"`
}

// GradedWord は1問分の採点結果
type GradedWord struct {
	Word        string `json:"word"`
	Translation string `json:"translation"`
	Answer      string `json:"answer"`
	Correct     bool   `json:"correct"`
	Reverse     bool   `json:"reverse"`
}

// TestResults は採点結果のレスポンス
type TestResults struct {
	TestID       uuid.UUID    `json:"id"`
	Words        []GradedWord `json:"words"`
	Points       int          `json:"points"`
	MaxPoints    int          `json:"maxPoints"`
	DateStarted  time.Time    `json:"dateStarted"`
	DateFinished time.Time    `json:"dateFinished"`
	Errors       []WordError  `json:"errors"`
}
