package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	consts "media-service/pkg/constants"

	"media-service/internal/delivery/http/routers"
	"media-service/internal/domain/dto"
	domain "media-service/internal/domain/repositories"
	"media-service/internal/infrastructure/auth"
	"media-service/internal/infrastructure/chunker"
	"media-service/internal/infrastructure/db"
	"media-service/internal/infrastructure/queue"
	"media-service/internal/infrastructure/registry"
	infra_repo "media-service/internal/infrastructure/repositories"
	"media-service/internal/infrastructure/storage"
	"media-service/internal/pkg/config"
	"media-service/internal/usecases"

	_ "media-service/migrations"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/robfig/cron/v3"

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

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
	})

	// Storage backend
	var gateway domain.StorageGateway
	if os.Getenv("STORAGE_BACKEND") == "memory" {
		gateway = storage.NewMemoryStorage()
	} else {
		s3Gateway, err := storage.NewS3Storage(cfg.AWS)
		if err != nil {
			log.Fatalf("S3 storage init failed: %v", err)
		}
		gateway = s3Gateway
	}

	// Job persistence
	var jobRepo domain.TranscodeJobRepository
	if os.Getenv("JOB_STORE") == "memory" {
		jobRepo = infra_repo.NewInMemoryJobRepository()
	} else {
		database, err := db.NewPostgresDB(cfg.Database)
		if err != nil {
			log.Fatalf("DB connection failed: %v", err)
		}

		if os.Getenv("RUN_AUTO_MIGRATION") == "true" {
			sqlDB, err := database.DB()
			if err != nil {
				log.Fatalf("failed to unwrap sql.DB: %v", err)
			}
			goose.SetBaseFS(nil)
			if err := goose.Up(sqlDB, "."); err != nil {
				log.Fatalf("failed to apply migrations: %v", err)
			}
		}

		jobRepo = infra_repo.NewTranscodeJobRepository(database)
	}

	// External collaborators
	authClient := auth.NewHTTPAuthClient(cfg.Services.AuthBaseURL)
	contentRegistry := registry.NewHTTPContentRegistry(cfg.Services.ContentBaseURL)
	chunkerClient := chunker.NewRedisChunkerClient(rdb, cfg.Chunker.JobQueue, cfg.Chunker.CancelQueue)

	// Services
	dispatcher := usecases.NewTranscodeDispatcher(jobRepo, chunkerClient, contentRegistry)
	processingService := usecases.NewFileProcessingService(gateway, contentRegistry, dispatcher)
	pool := queue.NewWorkerPool(cfg.Upload.WorkerCount, processingService)
	bucketService := usecases.NewBucketService(gateway, pool)

	// Periodic purge of terminal transcode jobs past their retention.
	cleanupService := usecases.NewJobCleanupService(jobRepo)
	c := cron.New(cron.WithSeconds())
	c.AddFunc("0 0 * * * *", func() {
		if err := cleanupService.PurgeTerminalJobs(context.Background(), 24*time.Hour); err != nil {
			log.Printf("Error purging terminal transcode jobs: %v", err)
		}
	})
	c.Start()

	app := fiber.New(fiber.Config{
		BodyLimit: int(cfg.Upload.MaxFileSize),
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Routes
	routers.SetupMediaRoutes(app, authClient, bucketService, dispatcher)

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": consts.StatusOK})
	})

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server starting on %s", addr)

	// Chunker completion listener (queue counterpart of the HTTP callback)
	listenerCtx, stopListener := context.WithCancel(context.Background())
	go startProcessedQueueListener(listenerCtx, rdb, cfg.Chunker.ProcessedQueue, dispatcher)

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

	stopListener()
	c.Stop()
	pool.Shutdown()

	ctxShut, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctxShut); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped cleanly")
}

// startProcessedQueueListener feeds chunker completions from Redis into the
// dispatcher. The same reports can also arrive on the HTTP callback
// endpoint; the dispatcher treats duplicates as no-ops.
func startProcessedQueueListener(ctx context.Context, rdb *redis.Client, queueName string, dispatcher usecases.TranscodeDispatcher) {
	for {
		val, err := rdb.BRPop(ctx, 0, queueName).Result()
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Println("BRPop failed:", err)
			time.Sleep(time.Second)
			continue
		}

		var callback dto.ProcessVideoCallback
		if err := json.Unmarshal([]byte(val[1]), &callback); err != nil {
			log.Println("Deserialize chunker callback failed:", err)
			continue
		}

		if err := dispatcher.OnCompletion(ctx, callback); err != nil {
			log.Printf("OnCompletion error for job %s: %v", callback.JobID, err)
		} else {
			log.Printf("Transcode completion reconciled for job %s", callback.JobID)
		}
	}
}
