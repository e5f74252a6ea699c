package usecases

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"vaulttube/internal/domain/dto"
	"vaulttube/internal/domain/entities"
	"vaulttube/internal/domain/repositories"
	"vaulttube/pkg/errors"
	"vaulttube/pkg/imageurl"
)

const listCacheTTL = 60 * time.Second

type VideoService interface {
	ListVideos(ctx context.Context, page, perPage int) (*dto.VideoListResponse, error)
	GetVideo(ctx context.Context, id string) (*dto.VideoDetailDTO, error)
}

type videoService struct {
	catalog repositories.CatalogRepository
	cache   repositories.VideoCache
}

func NewVideoService(catalog repositories.CatalogRepository, cache repositories.VideoCache) VideoService {
	return &videoService{catalog: catalog, cache: cache}
}

func (s *videoService) ListVideos(ctx context.Context, page, perPage int) (*dto.VideoListResponse, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 24
	}

	cacheKey := fmt.Sprintf("videos:list:%d:%d", page, perPage)
	if s.cache != nil {
		if payload, ok := s.cache.Get(ctx, cacheKey); ok {
			var cached dto.VideoListResponse
			if err := json.Unmarshal(payload, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	videos, total, err := s.catalog.ListVideos(ctx, page, perPage)
	if err != nil {
		return nil, errors.ErrInternal(err)
	}

	response := &dto.VideoListResponse{
		Videos:  make([]dto.VideoDTO, len(videos)),
		Total:   total,
		Page:    page,
		PerPage: perPage,
	}
	for i := range videos {
		response.Videos[i] = toVideoDTO(&videos[i])
	}

	if s.cache != nil {
		if payload, err := json.Marshal(response); err == nil {
			s.cache.Set(ctx, cacheKey, payload, listCacheTTL)
		}
	}
	return response, nil
}

func (s *videoService) GetVideo(ctx context.Context, id string) (*dto.VideoDetailDTO, error) {
	video, links, err := s.catalog.GetVideoByID(ctx, id)
	if err != nil {
		return nil, errors.ErrNotFound(err)
	}

	detail := &dto.VideoDetailDTO{
		VideoDTO:  toVideoDTO(video),
		Downloads: make([]dto.DownloadLinkDTO, len(links)),
	}
	for i, link := range links {
		detail.Downloads[i] = dto.DownloadLinkDTO{
			Label: link.Label,
			URL:   link.URL,
			Order: link.Position,
		}
	}
	return detail, nil
}

func toVideoDTO(video *entities.Video) dto.VideoDTO {
	tags := []string{}
	if len(video.Tags) > 0 {
		// A malformed tags column degrades to an empty list, never an error
		_ = json.Unmarshal(video.Tags, &tags)
	}
	return dto.VideoDTO{
		ID:           video.ID.String(),
		Title:        video.Title,
		ThumbnailURL: imageurl.Primary(video.ThumbnailURL),
		Thumbnails:   imageurl.Resolve(video.ThumbnailURL),
		Tags:         tags,
		CreatedBy:    video.CreatedBy,
		CreatedAt:    video.CreatedAt,
	}
}
