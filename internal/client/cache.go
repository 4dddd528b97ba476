package client

import (
	"context"
	"sync"
)

// Translator は単語をまとめて翻訳する
type Translator interface {
	Translate(ctx context.Context, words []string) (map[string]string, error)
}

// CachedTranslator は翻訳結果をプロセス内に保持し、同じ単語を再度問い合わせない
type CachedTranslator struct {
	mu    sync.Mutex
	next  Translator
	words map[string]string
}

func NewCachedTranslator(next Translator) *CachedTranslator {
	return &CachedTranslator{
		next:  next,
		words: make(map[string]string),
	}
}

func (c *CachedTranslator) Translate(ctx context.Context, words []string) (map[string]string, error) {
	result := make(map[string]string, len(words))
	var misses []string

	c.mu.Lock()
	for _, w := range words {
		if t, ok := c.words[w]; ok {
			result[w] = t
		} else {
			misses = append(misses, w)
		}
	}
	c.mu.Unlock()

	if len(misses) == 0 {
		return result, nil
	}

	fetched, err := c.next.Translate(ctx, misses)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for w, t := range fetched {
		c.words[w] = t
		result[w] = t
	}
	return result, nil
}

// Len はキャッシュ済みの単語数
func (c *CachedTranslator) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.words)
}
