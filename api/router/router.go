package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"go.mongodb.org/mongo-driver/bson"

	"echo-analytics/api/auth"
	"echo-analytics/api/handlers"
	"echo-analytics/api/middleware"
	"echo-analytics/config"
	"echo-analytics/db"
	"echo-analytics/repositories"
	"echo-analytics/schema"
	"echo-analytics/services"
)

// New wires repositories, services and routes. Fails when required
// environment (SECRET_KEY, upload timezone) is missing.
func New(reg *schema.Registry) (*gin.Engine, error) {
	cfg := config.GetConfig()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestTrace())
	r.Use(corsMiddleware(cfg.Server.AllowedOrigins))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		if err := db.Database().RunCommand(context.Background(), bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	tokens, err := auth.NewTokenManagerFromEnv()
	if err != nil {
		return nil, err
	}

	d := db.Database()
	uploadSvc, err := services.NewUploadService(
		reg,
		repositories.NewUploadRepository(d),
		repositories.NewDuplicateRepository(d),
		repositories.NewMetadataRepository(d),
		cfg.Upload.Timezone,
	)
	if err != nil {
		return nil, err
	}
	exportSvc := services.NewExportService(repositories.NewPostRepository(d))
	processSvc := services.NewProcessService(reg)

	api := r.Group("/api/v1")
	{
		api.POST("/upload", handlers.UploadFileHandler(uploadSvc))
		api.POST("/token", handlers.IssueTokenHandler(tokens))
		api.POST("/trigger-daily-process", handlers.TriggerDailyProcessHandler(tokens))
		api.POST("/process", handlers.RunProcessHandler(processSvc))
		api.GET("/download", handlers.DownloadDataHandler(exportSvc))
	}

	return r, nil
}

// corsMiddleware adapts rs/cors for gin so the desktop shell origin can call
// the API.
func corsMiddleware(origins []string) gin.HandlerFunc {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	handler := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})
	return func(c *gin.Context) {
		handler.HandlerFunc(c.Writer, c.Request)
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
