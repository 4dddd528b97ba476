//go:generate mockery --name IngestService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"io"
	"sort"

	"go_4_vocab_scan/internal/middleware"
	"go_4_vocab_scan/internal/model"
	"go_4_vocab_scan/internal/textproc"
)

var errNoTranslation = errors.New("no translation available")

//go:generate mockery --name ContentExtractor --output ./mocks --outpkg mocks --case=underscore

// ContentExtractor は文書やURLから単語候補 (未加工のトークン) を取り出す
type ContentExtractor interface {
	FromDocument(ctx context.Context, mimeType string, r io.Reader) ([]string, error)
	FromURL(ctx context.Context, rawURL string) ([]string, error)
}

//go:generate mockery --name Translator --output ./mocks --outpkg mocks --case=underscore

// Translator は単語をまとめて翻訳する。訳がない単語は結果に含めない。
type Translator interface {
	Translate(ctx context.Context, words []string) (map[string]string, error)
}

// IngestService は 抽出 -> 正規化 -> 翻訳 -> 保存 を行う
type IngestService interface {
	IngestDocument(ctx context.Context, userID, name, mimeType string, r io.Reader) (*model.IngestResult, error)
	IngestURL(ctx context.Context, userID, rawURL string) (*model.IngestResult, error)
}

type ingestService struct {
	extractor   ContentExtractor
	translator  Translator
	wordStore   WordStore
	userService UserService
}

func NewIngestService(extractor ContentExtractor, translator Translator, wordStore WordStore, userService UserService) IngestService {
	return &ingestService{
		extractor:   extractor,
		translator:  translator,
		wordStore:   wordStore,
		userService: userService,
	}
}

func (s *ingestService) IngestDocument(ctx context.Context, userID, name, mimeType string, r io.Reader) (*model.IngestResult, error) {
	if _, err := s.userService.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	tokens, err := s.extractor.FromDocument(ctx, mimeType, r)
	if err != nil {
		return nil, err
	}
	return s.ingestTokens(ctx, userID, name, tokens)
}

func (s *ingestService) IngestURL(ctx context.Context, userID, rawURL string) (*model.IngestResult, error) {
	if _, err := s.userService.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	tokens, err := s.extractor.FromURL(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	return s.ingestTokens(ctx, userID, rawURL, tokens)
}

func (s *ingestService) ingestTokens(ctx context.Context, userID, source string, tokens []string) (*model.IngestResult, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "source", source)

	result := &model.IngestResult{
		Source:  source,
		Words:   map[string]model.IncomingWord{},
		Created: []string{},
		Merged:  []string{},
		Errors:  []model.WordError{},
	}

	priorities := textproc.SanitizeTokens(tokens)
	if len(priorities) == 0 {
		logger.Info("No usable words found in document", "tokens", len(tokens))
		return result, nil
	}

	words := make([]string, 0, len(priorities))
	for w := range priorities {
		words = append(words, w)
	}
	sort.Strings(words)

	translations, err := s.translator.Translate(ctx, words)
	if err != nil {
		logger.Error("Translation failed", "error", err, "words", len(words))
		return nil, err
	}

	for _, w := range words {
		tr, ok := translations[w]
		if !ok || tr == "" {
			result.Errors = append(result.Errors, model.WordError{Word: w, Err: errNoTranslation})
			continue
		}
		result.Words[w] = model.IncomingWord{Translation: tr, Priority: priorities[w]}
	}
	if len(result.Words) == 0 {
		return result, nil
	}

	saved, err := s.wordStore.SaveWords(ctx, userID, result.Words)
	if saved != nil {
		result.Created = saved.Created
		result.Merged = saved.Merged
	}
	if err != nil {
		return result, err
	}

	logger.Info("Document ingested",
		"tokens", len(tokens),
		"created", len(result.Created),
		"merged", len(result.Merged),
		"untranslated", len(result.Errors),
	)
	return result, nil
}
