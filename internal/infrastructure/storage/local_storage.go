package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"vaulttube/internal/domain/dto"
	"vaulttube/pkg/errors"
)

// LocalStorage persists thumbnail artifacts on the local disk and exposes them
// under a fixed public prefix served by the HTTP layer.
type LocalStorage struct {
	BasePath     string
	PublicPrefix string
}

func NewLocalStorage(basePath string) *LocalStorage {
	return &LocalStorage{
		BasePath:     basePath,
		PublicPrefix: "/uploads",
	}
}

func (l *LocalStorage) Write(filename string, data []byte) (string, error) {
	if err := os.MkdirAll(l.BasePath, 0o755); err != nil {
		return "", errors.ErrStorage(fmt.Errorf("could not create upload dir: %w", err))
	}

	fullPath := filepath.Join(l.BasePath, filename)
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return "", errors.ErrStorage(fmt.Errorf("could not write %s: %w", filename, err))
	}

	return l.PublicPrefix + "/" + filename, nil
}

func (l *LocalStorage) WriteVariants(baseFilename string, artifacts map[dto.VariantKey][]byte) (*dto.VariantSet, error) {
	set := &dto.VariantSet{}
	for key, data := range artifacts {
		relPath, err := l.Write(fmt.Sprintf("%s-%s.%s", baseFilename, key.Size, key.Format), data)
		if err != nil {
			// Files already written stay on disk; the caller sees the failure
			return nil, err
		}
		set.SetPath(key, relPath)
	}
	return set, nil
}

func (l *LocalStorage) Delete(relPath string) error {
	filename := strings.TrimPrefix(relPath, l.PublicPrefix+"/")
	if err := os.Remove(filepath.Join(l.BasePath, filepath.Base(filename))); err != nil {
		return errors.ErrStorage(err)
	}
	return nil
}
