package handlers

import (
	"github.com/gofiber/fiber/v2"

	"vaulttube/internal/usecases"
	"vaulttube/pkg/errors"
)

type VideoHandler struct {
	videoService usecases.VideoService
}

func NewVideoHandler(videoService usecases.VideoService) *VideoHandler {
	return &VideoHandler{videoService: videoService}
}

// ListVideos
//
// @Summary      List catalog videos
// @Tags         Videos
// @Produce      json
// @Param        page      query     int false "Page number"
// @Param        per_page  query     int false "Page size"
// @Success      200       {object}  dto.VideoListResponse
// @Router       /videos [get]
func (h *VideoHandler) ListVideos(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	perPage := c.QueryInt("per_page", 24)

	response, err := h.videoService.ListVideos(c.UserContext(), page, perPage)
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(response)
}

// GetVideo
//
// @Summary      Get one video with its download links
// @Tags         Videos
// @Produce      json
// @Param        id   path      string true "Video ID"
// @Success      200  {object}  dto.VideoDetailDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /videos/{id} [get]
func (h *VideoHandler) GetVideo(c *fiber.Ctx) error {
	detail, err := h.videoService.GetVideo(c.UserContext(), c.Params("id"))
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(detail)
}
