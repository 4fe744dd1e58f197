package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"formsubmit/internal/config"
	"formsubmit/internal/database"
	"formsubmit/internal/handlers"
	"formsubmit/internal/services"
	"formsubmit/internal/storage"
	"formsubmit/internal/uploads"
)

func main() {
	cfg := config.Load()

	db := database.Connect(cfg.DatabaseURL)
	store := storage.NewGormStore(db)

	files, err := uploads.NewDiskStore(cfg.UploadDir)
	if err != nil {
		log.Fatal("Failed to prepare upload directory:", err)
	}

	submissionService := services.NewSubmissionService(store)
	formHandler := handlers.NewFormHandler(submissionService, files, cfg.StrictValidation)

	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)
		api.POST("/forms", formHandler.CreateSubmission)
		api.GET("/forms", formHandler.ListSubmissions)
	}

	log.Printf("Server starting on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
