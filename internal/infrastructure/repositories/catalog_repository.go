package repositories

import (
	"context"

	"gorm.io/gorm"

	"vaulttube/internal/domain/entities"
	"vaulttube/internal/domain/repositories"
)

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) repositories.CatalogRepository {
	return &catalogRepository{db: db}
}

// CreateVideoWithLinks runs both inserts in one transaction so a link failure
// rolls the video record back instead of leaving an orphan behind.
func (r *catalogRepository) CreateVideoWithLinks(ctx context.Context, video *entities.Video, links []entities.DownloadLink) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(video).Error; err != nil {
			return err
		}
		for i := range links {
			links[i].VideoID = video.ID
			links[i].Position = i
		}
		if len(links) > 0 {
			if err := tx.Create(&links).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *catalogRepository) ListVideos(ctx context.Context, page, perPage int) ([]entities.Video, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&entities.Video{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var videos []entities.Video
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&videos).Error
	if err != nil {
		return nil, 0, err
	}
	return videos, total, nil
}

func (r *catalogRepository) GetVideoByID(ctx context.Context, id string) (*entities.Video, []entities.DownloadLink, error) {
	var video entities.Video
	if err := r.db.WithContext(ctx).First(&video, "id = ?", id).Error; err != nil {
		return nil, nil, err
	}

	var links []entities.DownloadLink
	if err := r.db.WithContext(ctx).
		Where("video_id = ?", video.ID).
		Order("position ASC").
		Find(&links).Error; err != nil {
		return nil, nil, err
	}
	return &video, links, nil
}
