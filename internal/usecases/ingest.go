package usecases

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"vaulttube/internal/domain/dto"
	"vaulttube/internal/domain/entities"
	"vaulttube/internal/domain/repositories"
	"vaulttube/pkg/errors"
)

// ingestWorkers bounds concurrent derivations; batches point at arbitrary
// remote hosts and unbounded fan-out would be a resource-exhaustion risk.
const ingestWorkers = 4

type IngestService interface {
	Ingest(ctx context.Context, entries []dto.VideoEntry, userID string) *dto.IngestionResult
}

// Notifier receives the finished batch report. Optional; failures are logged
// and never change the result.
type Notifier interface {
	NotifyBatchFinished(result *dto.IngestionResult) error
}

type ingestService struct {
	derive   DeriveService
	catalog  repositories.CatalogRepository
	cache    repositories.VideoCache
	notifier Notifier
}

func NewIngestService(derive DeriveService, catalog repositories.CatalogRepository, cache repositories.VideoCache, notifier Notifier) IngestService {
	return &ingestService{
		derive:   derive,
		catalog:  catalog,
		cache:    cache,
		notifier: notifier,
	}
}

// Ingest processes every entry of the batch and always returns a complete
// accounting: one failed entry never aborts the rest, and the error list is
// ordered by input index. Entries run on a bounded worker pool; each entry's
// catalog write is a single transaction.
func (s *ingestService) Ingest(ctx context.Context, entries []dto.VideoEntry, userID string) *dto.IngestionResult {
	entryErrs := make([]error, len(entries))

	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < ingestWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				// A canceled batch records the remaining entries as failed, never drops them
				if err := ctx.Err(); err != nil {
					entryErrs[i] = err
					continue
				}
				entryErrs[i] = s.processEntry(ctx, entries[i], userID)
			}
		}()
	}

	for i := range entries {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	result := &dto.IngestionResult{Errors: []dto.EntryError{}}
	for i, err := range entryErrs {
		if err == nil {
			result.Successful++
			continue
		}
		result.Failed++
		title := entries[i].Title
		if title == "" {
			title = "Unknown"
		}
		result.Errors = append(result.Errors, dto.EntryError{
			Index: i,
			Title: title,
			Error: err.Error(),
		})
	}

	if result.Successful > 0 && s.cache != nil {
		s.cache.InvalidateLists(ctx)
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyBatchFinished(result); err != nil {
			log.Printf("Batch notification failed: %v", err)
		}
	}

	return result
}

func (s *ingestService) processEntry(ctx context.Context, entry dto.VideoEntry, userID string) error {
	if err := validateEntry(entry); err != nil {
		return err
	}

	// Only the first image is ingested; the rest of the slice is accepted
	// and ignored, matching what the admin tooling already submits
	_, primaryURL, err := s.derive.DeriveFromURL(ctx, entry.Images[0])
	if err != nil {
		return err
	}

	tags := []string{}
	if entry.Category != "" {
		tags = append(tags, entry.Category)
	}
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return errors.ErrInternal(err)
	}

	video := &entities.Video{
		ID:           uuid.New(),
		Title:        entry.Title,
		ThumbnailURL: primaryURL,
		Tags:         datatypes.JSON(tagsJSON),
		CreatedBy:    userID,
	}

	links := make([]entities.DownloadLink, len(entry.Downloads))
	for i, d := range entry.Downloads {
		links[i] = entities.DownloadLink{
			ID:    uuid.New(),
			Label: d.Name,
			URL:   d.Link,
		}
	}

	if err := s.catalog.CreateVideoWithLinks(ctx, video, links); err != nil {
		return errors.ErrStorage(err)
	}
	return nil
}

func validateEntry(entry dto.VideoEntry) error {
	if strings.TrimSpace(entry.Title) == "" || len(entry.Images) == 0 {
		return errors.ErrValidation("Missing required fields: title or images")
	}
	if len(entry.Downloads) == 0 {
		return errors.ErrValidation("No download links provided")
	}
	return nil
}
