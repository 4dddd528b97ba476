package model

// LearningSet は学習用に選ばれた単語 (単語 -> 訳)
type LearningSet map[string]string

// MarkAppearedRequest は学習済み表示の登録リクエスト
type MarkAppearedRequest struct {
	Words []string `json:"words" validate:"required,min=1,dive,required"`
}

// MarkAppearedResponse は MarkWordsAppeared の結果
type MarkAppearedResponse struct {
	Updated []string    `json:"updated"`
	Errors  []WordError `json:"errors"`
}
