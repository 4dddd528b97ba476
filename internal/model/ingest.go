package model

// IngestURLRequest はURLからの取り込みリクエスト
type IngestURLRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// IngestResult は1ドキュメント分の取り込み結果
type IngestResult struct {
	Source  string                  `json:"source"`
	Words   map[string]IncomingWord `json:"words"`
	Created []string                `json:"created"`
	Merged  []string                `json:"merged"`
	Errors  []WordError             `json:"errors"`
}

// UploadInfo はアップロード画面用の情報
type UploadInfo struct {
	SupportedTypes []string `json:"supportedTypes"`
	MaxFileBytes   int64    `json:"maxFileBytes"`
	WordsAmount    int64    `json:"wordsAmount"`
}

// FileError はアップロードされた1ファイル分の失敗
type FileError struct {
	File    string `json:"file"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// UploadResponse は複数ファイルのアップロード結果。失敗したファイルがあっても他は処理する。
type UploadResponse struct {
	Results []*IngestResult `json:"results"`
	Errors  []FileError     `json:"errors"`
}
