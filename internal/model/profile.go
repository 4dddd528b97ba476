package model

import "time"

// TestSummary はプロフィール画面に出すテスト1件分
type TestSummary struct {
	Points       int       `json:"points"`
	MaxPoints    int       `json:"maxPoints"`
	DateFinished time.Time `json:"dateFinished"`
}

// LearntWord は最近覚えた単語
type LearntWord struct {
	Word        string    `json:"word"`
	Translation string    `json:"translation"`
	DateLearnt  time.Time `json:"dateLearnt"`
}

// Profile はプロフィールと学習統計
type Profile struct {
	UID         string        `json:"uid"`
	Name        string        `json:"name"`
	PhotoURL    string        `json:"photoURL"`
	TestsAmount int64         `json:"testsAmount"`
	Tests       []TestSummary `json:"tests"`
	WordsAmount int64         `json:"wordsAmount"`
	LearntWords []LearntWord  `json:"learntWords"`
}
