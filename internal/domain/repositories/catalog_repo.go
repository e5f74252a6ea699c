package repositories

import (
	"context"

	"vaulttube/internal/domain/entities"
)

type CatalogRepository interface {
	// CreateVideoWithLinks writes the video record and its ordered download links
	// as one unit: a link failure must not leave an orphaned video record behind.
	CreateVideoWithLinks(ctx context.Context, video *entities.Video, links []entities.DownloadLink) error
	ListVideos(ctx context.Context, page, perPage int) ([]entities.Video, int64, error)
	GetVideoByID(ctx context.Context, id string) (*entities.Video, []entities.DownloadLink, error)
}
