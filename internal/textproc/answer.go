package textproc

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// 中身を回答として扱わない要素
var rawTextElements = map[string]bool{
	"script": true,
	"style":  true,
}

// SanitizeAnswer はユーザーの回答からマークアップを取り除き、前後の空白を削る
// 文字参照 (&amp; など) は展開される。閉じていない末尾の "<..." はそのまま文字として残す。
func SanitizeAnswer(answer string) string {
	markup, tail := splitUnterminatedTag(answer)

	z := html.NewTokenizer(strings.NewReader(markup))
	var b strings.Builder
	skip := ""
	for {
		switch z.Next() {
		case html.ErrorToken:
			if z.Err() != io.EOF {
				return ""
			}
			b.WriteString(html.UnescapeString(tail))
			return strings.TrimSpace(b.String())
		case html.StartTagToken:
			name, _ := z.TagName()
			if skip == "" && rawTextElements[string(name)] {
				skip = string(name)
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if string(name) == skip {
				skip = ""
			}
		case html.TextToken:
			if skip == "" {
				b.Write(z.Text())
			}
		}
	}
}

// splitUnterminatedTag は最後の '<' 以降に '>' がなければそこで分割する
func splitUnterminatedTag(s string) (markup, tail string) {
	i := strings.LastIndexByte(s, '<')
	if i < 0 || strings.IndexByte(s[i:], '>') >= 0 {
		return s, ""
	}
	return s[:i], s[i:]
}

// EqualFold は採点用の比較 (大文字小文字を区別しない)
func EqualFold(answer, expected string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(expected))
}
