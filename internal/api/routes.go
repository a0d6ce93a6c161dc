package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"portfolio/internal/api/middleware"
	"portfolio/internal/config"
	"portfolio/internal/database"
	"portfolio/internal/repository"
	"portfolio/internal/storage"
)

// RegisterRoutes mounts the /api surface. Reads are public; everything that
// mutates sits behind the admin cookie gate, except login/logout and the
// public contact form.
func RegisterRoutes(
	router *gin.Engine,
	adapter *database.Adapter,
	asynqClient *asynq.Client,
	redisClient redis.UniversalClient,
	storageClient *storage.Client,
	logger *slog.Logger,
	cfg *config.Config,
) {
	authHandler := NewAuthHandler(repository.NewUserRepo(adapter), redisClient, logger, cfg.Auth)
	projectHandler := NewProjectHandler(repository.NewProjectRepo(adapter))
	resumeHandler := NewResumeHandler(repository.NewResumeRepo(adapter))
	statsHandler := NewStatsHandler(repository.NewStatsRepo(adapter))
	contactHandler := NewContactHandler(repository.NewContactRepo(adapter), asynqClient, cfg.SMTP.Enable)
	cvHandler := NewCVHandler(repository.NewCVRepo(adapter), storageClient, cfg.MinIO.CVBucket, cfg.Uploads.ClamdAddr)
	uploadHandler := NewUploadHandler(storageClient, cfg.MinIO.ImagesBucket, cfg.Uploads.ClamdAddr)
	dbCheckHandler := NewDBCheckHandler(adapter)

	gate := middleware.AdminGateMiddleware()

	apiGroup := router.Group("/api")
	{
		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/logout", authHandler.Logout)
			authGroup.GET("/check", authHandler.Check)
		}

		projectsGroup := apiGroup.Group("/projects")
		{
			projectsGroup.GET("", projectHandler.List)
			projectsGroup.GET("/:id", projectHandler.Get)
			projectsGroup.POST("", gate, projectHandler.Create)
			projectsGroup.PUT("/:id", gate, projectHandler.Update)
			projectsGroup.DELETE("/:id", gate, projectHandler.Delete)
		}

		resumeGroup := apiGroup.Group("/resume")
		{
			resumeGroup.GET("", resumeHandler.List)
			resumeGroup.POST("", gate, resumeHandler.Create)
			resumeGroup.PUT("/:id", gate, resumeHandler.Update)
			resumeGroup.DELETE("/:id", gate, resumeHandler.Delete)
		}

		statsGroup := apiGroup.Group("/stats")
		{
			statsGroup.GET("", statsHandler.List)
			statsGroup.POST("", gate, statsHandler.Upsert)
			statsGroup.PUT("", gate, statsHandler.BulkUpdate)
			statsGroup.DELETE("", gate, statsHandler.Delete)
		}

		contactGroup := apiGroup.Group("/contact")
		{
			contactGroup.GET("", contactHandler.List)
			contactGroup.POST("", gate, contactHandler.Save)
			contactGroup.POST("/send", contactHandler.Send)
		}

		cvGroup := apiGroup.Group("/cv")
		{
			cvGroup.GET("", cvHandler.Get)
			cvGroup.POST("", gate, cvHandler.Upload)
			cvGroup.DELETE("", gate, cvHandler.Delete)
		}

		apiGroup.POST("/upload", gate, uploadHandler.Upload)
		apiGroup.GET("/db-check", dbCheckHandler.Check)
	}
}
