package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net"
	"net/http"
	"net/url"
	"strings"
	"syscall"
	"time"

	"go_4_vocab_scan/internal/config"
	"go_4_vocab_scan/internal/middleware"
	"go_4_vocab_scan/internal/model"
	"go_4_vocab_scan/internal/textproc"

	"github.com/go-shiori/go-readability"
)

// 対応するMIMEタイプ。画像とPDFはOCRが必要なので扱わない。
const (
	MimeTextPlain = "text/plain"
	MimeTextHTML  = "text/html"
)

// アップロードされたHTMLには元のURLがないので相対リンクの基準に使う
var uploadBaseURL = &url.URL{Scheme: "http", Host: "localhost", Path: "/"}

// DocumentExtractor はアップロードされた文書やURLから単語候補を取り出す
type DocumentExtractor struct {
	httpClient   *http.Client
	maxBodyBytes int64
	userAgent    string
}

var errPrivateAddress = errors.New("destination address is not public")

func NewDocumentExtractor(cfg config.ExtractorConfig) *DocumentExtractor {
	dialer := &net.Dialer{Timeout: 10 * time.Second}
	if !cfg.AllowPrivateNetworks {
		dialer.Control = rejectPrivateAddress
	}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = dialer.DialContext

	return &DocumentExtractor{
		httpClient:   &http.Client{Timeout: cfg.Timeout, Transport: transport},
		maxBodyBytes: cfg.MaxBodyBytes,
		userAgent:    "Mozilla/5.0 (compatible; " + config.AppName + "/" + config.AppVersion + ")",
	}
}

// FromDocument は MIME タイプに応じて本文を取り出し、トークンに分割する
func (e *DocumentExtractor) FromDocument(ctx context.Context, mimeType string, r io.Reader) ([]string, error) {
	mediaType, _, err := mime.ParseMediaType(mimeType)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", model.ErrUnsupportedMedia, mimeType)
	}

	body, err := e.readLimited(r)
	if err != nil {
		return nil, err
	}

	switch mediaType {
	case MimeTextPlain:
		return textproc.Tokenize(string(body)), nil
	case MimeTextHTML:
		return e.fromHTML(ctx, body, uploadBaseURL)
	default:
		return nil, fmt.Errorf("%w: %s", model.ErrUnsupportedMedia, mediaType)
	}
}

// FromURL はページを取得し、readability で本文だけを取り出す
func (e *DocumentExtractor) FromURL(ctx context.Context, rawURL string) ([]string, error) {
	logger := middleware.GetLogger(ctx).With("url", rawURL)

	parsedURL, err := url.Parse(rawURL)
	if err != nil || (parsedURL.Scheme != "http" && parsedURL.Scheme != "https") {
		return nil, model.NewAppError("INVALID_URL", "URL must be an absolute http(s) URL.", "url", model.ErrInvalidInput)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("DocumentExtractor.FromURL: %w", err)
	}
	req.Header.Set("User-Agent", e.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,text/plain;q=0.9,*/*;q=0.5")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := e.httpClient.Do(req)
	if errors.Is(err, errPrivateAddress) {
		logger.Warn("Refused to fetch non-public address", "error", err)
		return nil, model.NewAppError("URL_NOT_ALLOWED", "URL must point to a public address.", "url", model.ErrForbidden)
	}
	if err != nil {
		logger.Warn("Failed to fetch URL", "error", err)
		return nil, fmt.Errorf("DocumentExtractor.FromURL: fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Warn("Unexpected status when fetching URL", "status", resp.StatusCode)
		return nil, model.NewAppError("URL_FETCH_FAILED", fmt.Sprintf("URL responded with status %d.", resp.StatusCode), "url", model.ErrInvalidInput)
	}
	if resp.ContentLength > e.maxBodyBytes {
		return nil, model.NewAppError("BODY_TOO_LARGE", "Page is too large.", "url", model.ErrInvalidInput)
	}

	body, err := e.readLimited(resp.Body)
	if err != nil {
		return nil, err
	}

	mediaType, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if mediaType == MimeTextPlain {
		return textproc.Tokenize(string(body)), nil
	}
	return e.fromHTML(ctx, body, parsedURL)
}

func (e *DocumentExtractor) fromHTML(ctx context.Context, body []byte, pageURL *url.URL) ([]string, error) {
	article, err := readability.FromReader(bytes.NewReader(body), pageURL)
	if err != nil {
		middleware.GetLogger(ctx).Warn("Readability extraction failed", "error", err)
		return nil, model.NewAppError("EXTRACTION_FAILED", "Could not extract readable text.", "", model.ErrInvalidInput)
	}
	text := article.TextContent
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	return textproc.Tokenize(text), nil
}

// rejectPrivateAddress は名前解決後の接続先がループバック・プライベート・リンクローカルなら拒否する。
// リダイレクト先も接続ごとにここを通る。
func rejectPrivateAddress(network, address string, _ syscall.RawConn) error {
	host, _, err := net.SplitHostPort(address)
	if err != nil {
		return err
	}
	ip := net.ParseIP(host)
	if ip == nil {
		return fmt.Errorf("%w: %s", errPrivateAddress, host)
	}
	if ip.IsLoopback() || ip.IsPrivate() || ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast() ||
		ip.IsUnspecified() || ip.IsMulticast() {
		return fmt.Errorf("%w: %s", errPrivateAddress, ip)
	}
	return nil
}

// readLimited は maxBodyBytes を超える入力を拒否する
func (e *DocumentExtractor) readLimited(r io.Reader) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r, e.maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if int64(len(body)) > e.maxBodyBytes {
		return nil, model.NewAppError("BODY_TOO_LARGE", fmt.Sprintf("Document exceeds %d bytes.", e.maxBodyBytes), "", model.ErrInvalidInput)
	}
	return body, nil
}
