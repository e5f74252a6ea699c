package routers

import (
	"github.com/gofiber/fiber/v2"

	"vaulttube/internal/delivery/http/handlers"
	"vaulttube/internal/usecases"
)

func SetupVideoRoutes(app *fiber.App, videoService usecases.VideoService) {
	videoHandler := handlers.NewVideoHandler(videoService)

	api := app.Group("/api/v1")
	api.Get("/videos", videoHandler.ListVideos)
	api.Get("/videos/:id", videoHandler.GetVideo)
}
