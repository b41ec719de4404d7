package service

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/kelasin/kelasin-api/pkg/config"
	appErrors "github.com/kelasin/kelasin-api/pkg/errors"
	"github.com/kelasin/kelasin-api/pkg/storage"
)

// FileUpload describes an incoming multipart file.
type FileUpload struct {
	Filename string
	Size     int64
	Content  io.Reader
}

// UploadedFile is the stored result exposed to clients.
type UploadedFile struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

// UploadService validates and stores image uploads on local disk. Stored
// files are served statically under /upload.
type UploadService struct {
	storage     *storage.LocalStorage
	maxSize     int64
	allowedExts map[string]struct{}
	logger      *zap.Logger
}

// NewUploadService constructs the upload service.
func NewUploadService(store *storage.LocalStorage, cfg config.UploadConfig, logger *zap.Logger) *UploadService {
	if logger == nil {
		logger = zap.NewNop()
	}
	exts := cfg.AllowedExts
	if len(exts) == 0 {
		exts = []string{".jpg", ".jpeg", ".png", ".pdf"}
	}
	allowed := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		allowed[strings.ToLower(strings.TrimSpace(ext))] = struct{}{}
	}
	maxSize := cfg.MaxFileSizeBytes
	if maxSize <= 0 {
		maxSize = 5 * 1024 * 1024
	}
	return &UploadService{storage: store, maxSize: maxSize, allowedExts: allowed, logger: logger}
}

// Store validates the upload and writes it under a collision-free name.
func (s *UploadService) Store(upload FileUpload) (*UploadedFile, error) {
	ext := strings.ToLower(filepath.Ext(upload.Filename))
	if _, ok := s.allowedExts[ext]; !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, "File type is not supported")
	}
	if upload.Size > s.maxSize {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("File exceeds the %d byte limit", s.maxSize))
	}

	name := storage.UniqueName(upload.Filename)
	if _, err := s.storage.SaveStream(name, upload.Content); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store file")
	}

	s.logger.Info("file stored", zap.String("filename", name), zap.Int64("size", upload.Size))
	return &UploadedFile{Filename: name, URL: "/upload/" + name}, nil
}
