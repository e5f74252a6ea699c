package handlers

import (
	"github.com/gofiber/fiber/v2"

	"vaulttube/internal/domain/dto"
	"vaulttube/internal/usecases"
	"vaulttube/pkg/errors"
)

type UploadHandler struct {
	uploadService usecases.UploadService
}

func NewUploadHandler(uploadService usecases.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// UploadThumbnail
//
// @Summary      Upload a thumbnail
// @Description  Accepts one image file and derives the responsive variant set from it
// @Tags         Upload
// @Accept       multipart/form-data
// @Produce      json
// @Param        thumbnail  formData  file true "Image file (jpeg, jpg, png, gif, webp; max 5MB)"
// @Success      200        {object}  dto.UploadResponse
// @Failure      400        {object}  dto.ErrorResponse "Missing file, bad type or oversized"
// @Failure      401        {object}  dto.ErrorResponse
// @Failure      500        {object}  dto.ErrorResponse
// @Router       /upload/thumbnail [post]
func (h *UploadHandler) UploadThumbnail(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("thumbnail")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "No file uploaded",
		})
	}

	response, err := h.uploadService.ProcessThumbnail(c.UserContext(), fileHeader)
	if err != nil {
		return errors.HandleError(c, err)
	}

	return c.JSON(response)
}
