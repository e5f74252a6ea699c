package routers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/robfig/cron/v3"

	"vaulttube/internal/delivery/http/handlers"
	"vaulttube/internal/delivery/http/middleware"
	"vaulttube/internal/pkg/config"
	"vaulttube/internal/usecases"
)

func SetupUploadRoutes(app *fiber.App, cfg *config.Config, uploadService usecases.UploadService, ingestService usecases.IngestService) {
	cleanupUC := usecases.NewCleanupService(cfg.Upload.TempDir)
	c := cron.New(cron.WithSeconds())

	c.AddFunc("0 */5 * * * *", func() {
		if err := cleanupUC.CleanupOldTempFiles(24 * time.Hour); err != nil {
			log.Printf("Error cleaning up old temp files: %v", err)
		}
	})
	c.Start()

	uploadHandler := handlers.NewUploadHandler(uploadService)
	bulkUploadHandler := handlers.NewBulkUploadHandler(ingestService)

	guard := middleware.AdminGuard(cfg.Auth.AdminToken, cfg.Auth.AdminUserID)

	api := app.Group("/api/v1")
	api.Post("/upload/thumbnail", guard, uploadHandler.UploadThumbnail)
	api.Post("/bulk-upload/json", guard, bulkUploadHandler.BulkUploadJSON)
}
