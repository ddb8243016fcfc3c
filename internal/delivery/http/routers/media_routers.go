package routers

import (
	"github.com/gofiber/fiber/v2"

	"media-service/internal/delivery/http/handlers"
	"media-service/internal/delivery/http/middleware"
	domain "media-service/internal/domain/repositories"
	"media-service/internal/usecases"
	consts "media-service/pkg/constants"
)

func SetupMediaRoutes(
	app *fiber.App,
	authClient domain.AuthClient,
	bucketService usecases.BucketService,
	dispatcher usecases.TranscodeDispatcher,
) {
	bucketHandler := handlers.NewBucketHandler(bucketService)
	callbackHandler := handlers.NewCallbackHandler(dispatcher)

	authGuard := middleware.NewAuthGuard(authClient)
	adminOnly := middleware.RequireRole(consts.RoleAdmin)

	buckets := app.Group("/v1/buckets")
	buckets.Get("/", authGuard, adminOnly, bucketHandler.GetBuckets)
	buckets.Post("/", authGuard, adminOnly, bucketHandler.CreateBucket)
	buckets.Delete("/:bucket", authGuard, adminOnly, bucketHandler.DeleteBucket)

	buckets.Get("/:bucket/files", authGuard, adminOnly, bucketHandler.GetFiles)
	buckets.Post("/:bucket/files", authGuard, adminOnly, bucketHandler.CreateFile)
	// Raw file retrieval is public so players can stream HLS segments.
	buckets.Get("/:bucket/files/+", bucketHandler.GetFile)
	buckets.Put("/:bucket/files/+", authGuard, adminOnly, bucketHandler.UpdateFile)
	buckets.Delete("/:bucket/files/+", authGuard, adminOnly, bucketHandler.DeleteFile)

	// Worker-facing control path, separate from the client surface.
	app.Post("/v1/chunker/callback", callbackHandler.ProcessVideoCallback)
}
