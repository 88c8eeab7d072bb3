package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"

	"github.com/google/uuid"

	"sonna_backend/internal/storage"
	"sonna_backend/pkg/apperrors"
)

// FileService stores uploaded files and returns their public URLs.
type FileService interface {
	Store(ctx context.Context, fh *multipart.FileHeader) (string, error)
}

// UploadConfig limits accepted uploads.
type UploadConfig struct {
	MaxSize      int64
	AllowedTypes []string // empty allows any MIME type
}

type FileServiceImpl struct {
	storage storage.Storage
	config  UploadConfig
}

func NewFileService(st storage.Storage, config UploadConfig) FileService {
	return &FileServiceImpl{
		storage: st,
		config:  config,
	}
}

// Store validates the upload, writes it under a collision-free name and
// returns the public URL.
func (s *FileServiceImpl) Store(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	if fh == nil || fh.Size == 0 {
		return "", apperrors.ErrEmptyFile
	}
	if s.config.MaxSize > 0 && fh.Size > s.config.MaxSize {
		return "", apperrors.ErrFileTooLarge
	}

	contentType := fh.Header.Get("Content-Type")
	if len(s.config.AllowedTypes) > 0 && !s.isAllowedType(contentType) {
		return "", apperrors.ErrInvalidFileType
	}

	file, err := fh.Open()
	if err != nil {
		return "", apperrors.InternalError(fmt.Errorf("failed to open upload: %w", err))
	}
	defer file.Close()

	// uuid prefix keeps user-chosen names from colliding
	name := uuid.NewString() + "_" + filepath.Base(fh.Filename)

	if err := s.storage.Save(ctx, name, file, contentType); err != nil {
		return "", apperrors.InternalError(err)
	}

	url, err := s.storage.GetURL(ctx, name)
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	return url, nil
}

func (s *FileServiceImpl) isAllowedType(contentType string) bool {
	for _, t := range s.config.AllowedTypes {
		if t == contentType {
			return true
		}
	}
	return false
}
