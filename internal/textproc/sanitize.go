// Package textproc はアップロードされた文書から単語を取り出し、回答を正規化する。
package textproc

import (
	"strings"
	"unicode"

	"go_4_vocab_scan/internal/model"
)

// Tokenize は本文を空白・改行で分割する
func Tokenize(text string) []string {
	return strings.Fields(text)
}

// SanitizeToken は記号とアンダースコアを除去し、空白をまとめて小文字にする
func SanitizeToken(token string) string {
	var b strings.Builder
	b.Grow(len(token))
	for _, r := range token {
		switch {
		case r == '_':
		case unicode.IsLetter(r), unicode.IsDigit(r), unicode.IsSpace(r):
			b.WriteRune(r)
		}
	}
	return strings.ToLower(strings.Join(strings.Fields(b.String()), " "))
}

// keep は単語として残すかどうか。空、1文字、数字を含むものは捨てる。
func keep(word string) bool {
	if word == "" || len([]rune(word)) == 1 {
		return false
	}
	return strings.IndexFunc(word, unicode.IsDigit) < 0
}

// SanitizeTokens はトークンを正規化し、出現回数を priority として数える
func SanitizeTokens(tokens []string) map[string]int {
	result := make(map[string]int)
	for _, t := range tokens {
		word := model.NormalizeWord(SanitizeToken(t))
		if !keep(word) {
			continue
		}
		result[word]++
	}
	return result
}
