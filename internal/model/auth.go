package model

import (
	"github.com/golang-jwt/jwt/v5"
)

// IdentityClaims は外部IDプロバイダが発行するトークンのクレーム
// sub がユーザーID、name / picture がプロフィール情報になる。
type IdentityClaims struct {
	Name    string `json:"name,omitempty"`
	Picture string `json:"picture,omitempty"`
	jwt.RegisteredClaims
}

// Identity は認証済みユーザーの情報 (トークンまたは開発用ヘッダーから取得)
type Identity struct {
	UserID      string
	DisplayName string
	PhotoURL    string
}
