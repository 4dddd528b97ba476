// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "vocab-scan"
	AppVersion = "0.3.0"
)

// デフォルト設定値
const (
	DefaultServerPort     = ":8080"
	DefaultLogLevel       = "info"
	DefaultDatabaseDriver = "postgres"
	DefaultAmount         = 24
	DefaultMaxBodyBytes   = 10 * 1024 * 1024 // 10 MB
)

// 翻訳APIの設定
const (
	DefaultTranslatorURL = "https://api.mymemory.translated.net/get"
	DefaultSourceLang    = "en"
	DefaultTargetLang    = "pl"
)
