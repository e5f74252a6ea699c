package usecases

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"vaulttube/internal/domain/dto"
	"vaulttube/internal/domain/repositories"
	"vaulttube/internal/infrastructure/encoder"
	"vaulttube/internal/infrastructure/fetcher"
	"vaulttube/pkg/errors"
)

// DeriveService runs the fetch -> encode -> write pipeline for one source image
// and yields the canonical variant set plus the primary (medium webp) URL.
type DeriveService interface {
	DeriveFromURL(ctx context.Context, imageURL string) (*dto.VariantSet, string, error)
	DeriveFromFile(ctx context.Context, path string) (*dto.VariantSet, string, error)
}

type deriveService struct {
	fetcher *fetcher.Fetcher
	storage repositories.BlobStorage
}

func NewDeriveService(f *fetcher.Fetcher, storage repositories.BlobStorage) DeriveService {
	return &deriveService{fetcher: f, storage: storage}
}

func (s *deriveService) DeriveFromURL(ctx context.Context, imageURL string) (*dto.VariantSet, string, error) {
	src, err := s.fetcher.FetchURL(ctx, imageURL)
	if err != nil {
		return nil, "", errors.ErrDerivation(err)
	}
	return s.derive(src)
}

func (s *deriveService) DeriveFromFile(_ context.Context, path string) (*dto.VariantSet, string, error) {
	src, err := s.fetcher.FetchFile(path)
	if err != nil {
		return nil, "", errors.ErrDerivation(err)
	}
	return s.derive(src)
}

func (s *deriveService) derive(src []byte) (*dto.VariantSet, string, error) {
	artifacts, err := encoder.Encode(src, encoder.Sizes, encoder.Formats)
	if err != nil {
		// A partial artifact map never reaches storage; one derivation is all or nothing
		return nil, "", errors.ErrDerivation(err)
	}

	set, err := s.storage.WriteVariants(NewBaseFilename(), artifacts)
	if err != nil {
		return nil, "", errors.ErrDerivation(err)
	}

	return set, set.Primary(), nil
}

// NewBaseFilename builds the shared base name of one variant set. Millisecond
// timestamp plus a random integer keeps collisions negligible under concurrent
// derivations without coordination.
func NewBaseFilename() string {
	return fmt.Sprintf("thumbnail-%d-%d", time.Now().UnixMilli(), rand.Int63n(1e9))
}
