package usecases

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"vaulttube/internal/domain/dto"
	"vaulttube/pkg/errors"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

var allowedImageExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

type UploadService interface {
	ProcessThumbnail(ctx context.Context, fileHeader *multipart.FileHeader) (*dto.UploadResponse, error)
}

type uploadService struct {
	tempDir     string
	maxFileSize int64
	derive      DeriveService
}

func NewUploadService(tempDir string, maxFileSize int64, derive DeriveService) UploadService {
	return &uploadService{
		tempDir:     tempDir,
		maxFileSize: maxFileSize,
		derive:      derive,
	}
}

// ProcessThumbnail validates the upload, stages it in the temp dir, derives the
// six responsive variants and removes the staged original. Validation rejects
// the file before a single artifact is written.
func (s *uploadService) ProcessThumbnail(ctx context.Context, fileHeader *multipart.FileHeader) (*dto.UploadResponse, error) {
	if fileHeader.Size > s.maxFileSize {
		return nil, errors.ErrValidation(fmt.Sprintf("File exceeds the %d MB limit", s.maxFileSize/(1024*1024)))
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExts[ext] {
		return nil, errors.ErrValidation("Only image files are allowed (jpeg, jpg, png, gif, webp)")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.ErrInternal(err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.ErrInternal(err)
	}

	if !allowedImageTypes[sniffContentType(data)] {
		return nil, errors.ErrValidation("Only image files are allowed (jpeg, jpg, png, gif, webp)")
	}

	tempPath, err := s.stageUpload(data, ext)
	if err != nil {
		return nil, err
	}

	set, primaryURL, err := s.derive.DeriveFromFile(ctx, tempPath)
	if err != nil {
		return nil, err
	}

	// The staged original has served its purpose; losing the delete is not fatal
	if err := os.Remove(tempPath); err != nil {
		log.Printf("Could not remove staged upload %s: %v", tempPath, err)
	}

	return &dto.UploadResponse{
		Success:  true,
		URL:      primaryURL,
		Filename: path.Base(primaryURL),
		Sizes:    *set,
	}, nil
}

func (s *uploadService) stageUpload(data []byte, ext string) (string, error) {
	if err := os.MkdirAll(s.tempDir, 0o755); err != nil {
		return "", errors.ErrStorage(err)
	}

	tempPath := filepath.Join(s.tempDir, "thumbnail-"+uuid.NewString()+ext)
	if err := os.WriteFile(tempPath, data, 0o644); err != nil {
		return "", errors.ErrStorage(err)
	}
	return tempPath, nil
}

func sniffContentType(data []byte) string {
	// DetectContentType wants at most the first 512 bytes
	if len(data) > 512 {
		data = data[:512]
	}
	return http.DetectContentType(data)
}
