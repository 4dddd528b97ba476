package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go_4_vocab_scan/internal/config"
	"go_4_vocab_scan/internal/middleware"
)

// myMemoryResponse は MyMemory API のレスポンス (必要な項目のみ)
type myMemoryResponse struct {
	ResponseData struct {
		TranslatedText string  `json:"translatedText"`
		Match          float64 `json:"match"`
	} `json:"responseData"`
	ResponseStatus  json.Number `json:"responseStatus"`
	ResponseDetails string      `json:"responseDetails"`
}

var errRetryable = errors.New("retryable translation failure")

// MyMemoryAPI は MyMemory 翻訳APIのクライアント
type MyMemoryAPI struct {
	httpClient  *http.Client
	baseURL     string
	langPair    string
	maxAttempts int
	backoff     time.Duration
}

func NewMyMemoryAPI(cfg config.TranslatorConfig) *MyMemoryAPI {
	return &MyMemoryAPI{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		baseURL:     cfg.BaseURL,
		langPair:    cfg.SourceLang + "|" + cfg.TargetLang,
		maxAttempts: cfg.MaxAttempts,
		backoff:     500 * time.Millisecond,
	}
}

// Translate は単語ごとに翻訳する。翻訳できなかった単語は結果に含めない。
// 1件でもAPIに到達できなければエラーを返す。
func (m *MyMemoryAPI) Translate(ctx context.Context, words []string) (map[string]string, error) {
	logger := middleware.GetLogger(ctx)
	result := make(map[string]string, len(words))

	for _, w := range words {
		translated, err := m.translateWithRetry(ctx, w)
		if err != nil {
			return nil, fmt.Errorf("MyMemoryAPI.Translate %q: %w", w, err)
		}
		if translated == "" {
			logger.Debug("No translation returned", "word", w)
			continue
		}
		result[w] = translated
	}
	return result, nil
}

func (m *MyMemoryAPI) translateWithRetry(ctx context.Context, text string) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= m.maxAttempts; attempt++ {
		translated, err := m.translateOne(ctx, text)
		if err == nil {
			return translated, nil
		}
		lastErr = err
		if !errors.Is(err, errRetryable) || attempt == m.maxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(m.backoff * time.Duration(attempt)):
		}
	}
	return "", lastErr
}

func (m *MyMemoryAPI) translateOne(ctx context.Context, text string) (string, error) {
	q := url.Values{}
	q.Set("q", text)
	q.Set("langpair", m.langPair)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}
	resp, err := m.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errRetryable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return "", fmt.Errorf("%w: status %d", errRetryable, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var data myMemoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if data.ResponseStatus.String() != "200" {
		return "", fmt.Errorf("translation rejected: %s", data.ResponseDetails)
	}

	translated := strings.TrimSpace(data.ResponseData.TranslatedText)
	// 訳が原文と同じ場合は訳なしとして扱う
	if strings.EqualFold(translated, text) {
		return "", nil
	}
	return strings.ToLower(translated), nil
}
