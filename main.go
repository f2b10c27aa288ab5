package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/nutricoach/nutricoach-api/internal/api"
	"github.com/nutricoach/nutricoach-api/internal/config"
	"github.com/nutricoach/nutricoach-api/internal/database"
	apperrors "github.com/nutricoach/nutricoach-api/internal/errors"
	"github.com/nutricoach/nutricoach-api/internal/logger"
	"github.com/nutricoach/nutricoach-api/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.InitWithConfig(logger.Config{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	}); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	logger.Info("Configuration loaded")

	db, err := database.NewPostgresDB(cfg.DB)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	logger.Info("Database connection established and migrations completed")

	customerService := services.NewCustomerService(db, cfg.Server.MaxPageSize)
	measurementService := services.NewMeasurementService(db, cfg.Server.MaxPageSize)
	injuryService := services.NewInjuryService(db, cfg.Server.MaxPageSize)
	diseaseService := services.NewDiseaseService(db, cfg.Server.MaxPageSize)
	logger.Info("Services initialized")

	gin.SetMode(cfg.Server.GinMode)
	handler := api.NewHandler(
		customerService,
		measurementService,
		injuryService,
		diseaseService,
		apperrors.NewHandler(logger.GetLogger()),
		cfg.Server.MaxPageSize,
	)
	router := api.SetupRouter(handler)

	logger.Info("Starting HTTP server", "port", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatalf("Server stopped with error: %v", err)
	}
}
