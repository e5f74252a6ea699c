package dto

import (
	"time"

	"vaulttube/pkg/imageurl"
)

type VideoDTO struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	ThumbnailURL string        `json:"thumbnail_url"`
	Thumbnails   *imageurl.Set `json:"thumbnails,omitempty"`
	Tags         []string      `json:"tags"`
	CreatedBy    string        `json:"created_by"`
	CreatedAt    time.Time     `json:"created_at"`
}

type DownloadLinkDTO struct {
	Label string `json:"label"`
	URL   string `json:"url"`
	Order int    `json:"order"`
}

type VideoDetailDTO struct {
	VideoDTO
	Downloads []DownloadLinkDTO `json:"downloads"`
}

type VideoListResponse struct {
	Videos  []VideoDTO `json:"videos"`
	Total   int64      `json:"total"`
	Page    int        `json:"page"`
	PerPage int        `json:"per_page"`
}
