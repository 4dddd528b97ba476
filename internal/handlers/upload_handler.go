package handlers

import (
	"errors"
	"log/slog"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"go_4_vocab_scan/internal/client"
	"go_4_vocab_scan/internal/model"
	"go_4_vocab_scan/internal/service"
	"go_4_vocab_scan/internal/webutil"
)

// multipart の各パートをメモリに置く上限。超えた分は一時ファイルになる。
const multipartMemory = 8 << 20

type UploadHandler struct {
	ingest       service.IngestService
	users        service.UserService
	maxFileBytes int64
	logger       *slog.Logger
}

func NewUploadHandler(ingest service.IngestService, users service.UserService, maxFileBytes int64, logger *slog.Logger) *UploadHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &UploadHandler{
		ingest:       ingest,
		users:        users,
		maxFileBytes: maxFileBytes,
		logger:       logger,
	}
}

// GetUploadInfo は対応形式と現在の単語数を返す
func (h *UploadHandler) GetUploadInfo(w http.ResponseWriter, r *http.Request) {
	userID, logger, ok := currentUser(w, r, h.logger.With(slog.String("handler", "GetUploadInfo")))
	if !ok {
		return
	}

	user, err := h.users.GetUser(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, model.UploadInfo{
		SupportedTypes: []string{client.MimeTextPlain, client.MimeTextHTML},
		MaxFileBytes:   h.maxFileBytes,
		WordsAmount:    user.WordAmount,
	}, logger)
}

// PostFiles は multipart の "files" を1つずつ取り込む。
// 失敗したファイルは errors に入れ、残りのファイルは処理を続ける。
func (h *UploadHandler) PostFiles(w http.ResponseWriter, r *http.Request) {
	userID, logger, ok := currentUser(w, r, h.logger.With(slog.String("handler", "PostFiles")))
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		logger.Warn("Failed to parse multipart form", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "Request must be multipart/form-data with a 'files' field.", "files", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	defer r.MultipartForm.RemoveAll()

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		appErr := model.NewAppError("VALIDATION_ERROR", "At least one file is required.", "files", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	resp := model.UploadResponse{
		Results: make([]*model.IngestResult, 0, len(files)),
		Errors:  []model.FileError{},
	}
	for _, fh := range files {
		result, err := h.ingestFile(r, userID, fh)
		if err != nil {
			// ユーザーが存在しない場合は全ファイル共通なので打ち切る
			if errors.Is(err, model.ErrUserNotFound) {
				webutil.HandleError(w, logger, err)
				return
			}
			logger.Warn("File ingestion failed", slog.String("file", fh.Filename), slog.Any("error", err))
			resp.Errors = append(resp.Errors, fileError(fh.Filename, err))
		}
		if result != nil {
			resp.Results = append(resp.Results, result)
		}
	}

	logger.Info("Upload processed", slog.Int("files", len(files)), slog.Int("failed", len(resp.Errors)))
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

func (h *UploadHandler) ingestFile(r *http.Request, userID string, fh *multipart.FileHeader) (*model.IngestResult, error) {
	if h.maxFileBytes > 0 && fh.Size > h.maxFileBytes {
		return nil, model.NewAppError("FILE_TOO_LARGE", "File exceeds the size limit.", "files", model.ErrInvalidInput)
	}

	mimeType := fh.Header.Get("Content-Type")
	if mimeType == "" || mimeType == "application/octet-stream" {
		if byExt := mime.TypeByExtension(filepath.Ext(fh.Filename)); byExt != "" {
			mimeType = byExt
		}
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return h.ingest.IngestDocument(r.Context(), userID, fh.Filename, mimeType, f)
}

// PostURL はURLのページ本文を取り込む
func (h *UploadHandler) PostURL(w http.ResponseWriter, r *http.Request) {
	userID, logger, ok := currentUser(w, r, h.logger.With(slog.String("handler", "PostURL")))
	if !ok {
		return
	}

	var req model.IngestURLRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	if err := webutil.ValidateStruct(req); err != nil {
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	result, err := h.ingest.IngestURL(r.Context(), userID, req.URL)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("URL ingested", slog.String("url", req.URL), slog.Int("created", len(result.Created)))
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}

// fileError はエラーをクライアント向けの FileError に変換する。内部エラーの詳細は出さない。
func fileError(name string, err error) model.FileError {
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		return model.FileError{File: name, Code: appErr.Detail.Code, Message: appErr.Detail.Message}
	}
	switch {
	case errors.Is(err, model.ErrUnsupportedMedia):
		return model.FileError{File: name, Code: "UNSUPPORTED_MEDIA_TYPE", Message: "Only text/plain and text/html files are supported."}
	case errors.Is(err, model.ErrInvalidInput):
		return model.FileError{File: name, Code: "INVALID_INPUT", Message: err.Error()}
	default:
		return model.FileError{File: name, Code: "INGEST_FAILED", Message: "The file could not be processed."}
	}
}
