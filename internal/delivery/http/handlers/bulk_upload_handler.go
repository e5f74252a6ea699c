package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"vaulttube/internal/domain/dto"
	"vaulttube/internal/usecases"
)

type BulkUploadHandler struct {
	ingestService usecases.IngestService
}

func NewBulkUploadHandler(ingestService usecases.IngestService) *BulkUploadHandler {
	return &BulkUploadHandler{ingestService: ingestService}
}

// BulkUploadJSON
//
// @Summary      Bulk upload catalog entries
// @Description  Ingests a batch of video entries; each entry's first image is downloaded and derived into responsive thumbnails
// @Tags         Bulk Upload
// @Accept       json
// @Produce      json
// @Param        request  body      dto.BulkUploadRequest true "Batch of video entries"
// @Success      200      {object}  dto.BulkUploadResponse
// @Failure      400      {object}  dto.ErrorResponse "Malformed batch"
// @Failure      401      {object}  dto.ErrorResponse
// @Router       /bulk-upload/json [post]
func (h *BulkUploadHandler) BulkUploadJSON(c *fiber.Ctx) error {
	var req dto.BulkUploadRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid request. Expected an array of videos in the request body.",
		})
	}

	// A structurally invalid batch fails the whole call; per-entry faults never do
	if len(req.Videos) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid request. Expected an array of videos in the request body.",
		})
	}

	userID, _ := c.Locals("userID").(string)
	log.Printf("Bulk upload started: %d entries by %s", len(req.Videos), userID)

	result := h.ingestService.Ingest(c.UserContext(), req.Videos, userID)

	return c.JSON(dto.BulkUploadResponse{
		Success: result.Failed == 0,
		Results: *result,
	})
}
