package repositories

import "vaulttube/internal/domain/dto"

type BlobStorage interface {
	// WriteVariants persists every artifact under <baseFilename>-<size>.<ext> and
	// returns the public-facing relative paths. A partial write is surfaced as an
	// error; the caller decides what partial success means.
	WriteVariants(baseFilename string, artifacts map[dto.VariantKey][]byte) (*dto.VariantSet, error)
	Write(filename string, data []byte) (string, error)
	Delete(relPath string) error
}
