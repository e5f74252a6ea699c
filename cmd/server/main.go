package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "vaulttube/docs"

	"vaulttube/internal/delivery/http/routers"
	"vaulttube/internal/domain/repositories"
	"vaulttube/internal/infrastructure/cache"
	"vaulttube/internal/infrastructure/db"
	"vaulttube/internal/infrastructure/fetcher"
	"vaulttube/internal/infrastructure/mailer"
	infra_repo "vaulttube/internal/infrastructure/repositories"
	"vaulttube/internal/infrastructure/storage"
	"vaulttube/internal/pkg/config"
	"vaulttube/internal/usecases"
	consts "vaulttube/pkg/constants"

	_ "vaulttube/migrations"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/swagger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
	cfg := config.LoadConfig()
	if err := cfg.EnsureDirs(); err != nil {
		log.Fatalf("Could not create upload dirs: %v", err)
	}

	database, err := db.NewPostgresDB()
	if err != nil {
		log.Fatalf("DB connection failed: %v", err)
	}

	if os.Getenv("RUN_AUTO_MIGRATION") == "true" {
		sqlDB, err := database.DB()
		if err != nil {
			log.Fatalf("Could not get sql.DB: %v", err)
		}
		goose.SetBaseFS(nil)
		if err := goose.SetDialect("postgres"); err != nil {
			log.Fatalf("goose dialect: %v", err)
		}
		if err := goose.Up(sqlDB, "."); err != nil {
			log.Fatalf("Failed to apply migrations: %v", err)
		}
	} else if err := db.AutoMigrate(database); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})

	// One outbound HTTP client for the whole process, handed to the fetcher
	httpClient := &http.Client{}

	blobStorage, err := buildStorage(cfg)
	if err != nil {
		log.Fatalf("Storage init failed: %v", err)
	}

	// Repositories & Services
	catalogRepo := infra_repo.NewCatalogRepository(database)
	videoCache := cache.NewRedisVideoCache(rdb)
	deriveService := usecases.NewDeriveService(fetcher.New(httpClient), blobStorage)
	uploadService := usecases.NewUploadService(cfg.Upload.TempDir, cfg.Upload.MaxFileSize, deriveService)
	videoService := usecases.NewVideoService(catalogRepo, videoCache)

	var notifier usecases.Notifier
	if cfg.SMTP.Host != "" {
		n, err := mailer.New(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.From, cfg.SMTP.To)
		if err != nil {
			log.Printf("Mailer disabled: %v", err)
		} else {
			notifier = n
		}
	}
	ingestService := usecases.NewIngestService(deriveService, catalogRepo, videoCache, notifier)

	app := fiber.New(fiber.Config{
		BodyLimit: int(cfg.Upload.MaxFileSize) + 1024*1024, // multipart overhead
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Derived artifacts are immutable; a fresh upload always gets a fresh suffix
	app.Use("/uploads", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderCacheControl, "public, max-age=31536000, immutable")
		return c.Next()
	})
	app.Static("/uploads", cfg.Upload.UploadsDir)

	// Routes
	routers.SetupUploadRoutes(app, cfg, uploadService, ingestService)
	routers.SetupVideoRoutes(app, videoService)

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": consts.StatusOK, "timestamp": time.Now().UTC()})
	})

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server starting on %s", addr)

	// Graceful shutdown
	go func() {
		if err := app.Listen(addr); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Print("Shutdown signal received, stopping server...")

	ctxShut, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctxShut); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped cleanly")
}

func buildStorage(cfg *config.Config) (repositories.BlobStorage, error) {
	if cfg.Storage.Driver == "s3" {
		return storage.NewS3Storage(cfg.Storage.S3Bucket, cfg.Storage.S3Region)
	}
	return storage.NewLocalStorage(cfg.Upload.UploadsDir), nil
}
