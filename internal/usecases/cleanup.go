package usecases

import (
	"log"
	"os"
	"path/filepath"
	"time"
)

// CleanupService sweeps staged uploads whose derivation never completed. The
// happy path removes its own temp file; anything left behind is a leftover of
// a failed run.
type CleanupService interface {
	CleanupOldTempFiles(maxAge time.Duration) error
}

type cleanupService struct {
	tempDir string
}

func NewCleanupService(tempDir string) CleanupService {
	return &cleanupService{tempDir: tempDir}
}

func (s *cleanupService) CleanupOldTempFiles(maxAge time.Duration) error {
	entries, err := os.ReadDir(s.tempDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	now := time.Now()
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if now.Sub(info.ModTime()) > maxAge {
			stale := filepath.Join(s.tempDir, entry.Name())
			if err := os.Remove(stale); err != nil {
				log.Printf("Could not remove stale temp file %s: %v", stale, err)
			} else {
				log.Printf("Removed stale temp file: %s", stale)
			}
		}
	}
	return nil
}
