package main

import (
	"fmt"
	"os"

	"plate-check-service/internal/client"
	"plate-check-service/internal/config"
	"plate-check-service/internal/db"
	httphandler "plate-check-service/internal/http"
	"plate-check-service/internal/http/middleware"
	"plate-check-service/internal/logger"
	"plate-check-service/internal/repository"
	"plate-check-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.New(cfg.Environment)

	if cfg.OCRAPIKey() == "" {
		appLogger.Warn().Msg("OCR_API_KEY is not set, recognition requests will fail")
	}

	database, err := db.New(cfg, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect database")
	}

	var plateSource service.PlateSource
	if database != nil {
		plateSource = repository.NewAllowedPlateRepository(database)
	}

	ocrClient := client.NewOCRSpaceClient(cfg)
	recognitionService := service.NewRecognitionService(cfg, ocrClient, plateSource)

	handler := httphandler.NewHandler(recognitionService, cfg.Device.MaxImageBytes, appLogger)
	authMiddleware := middleware.DeviceKey(cfg.Device.APIKey)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	appLogger.Info().Str("addr", addr).Msg("starting plate check service")

	if err := router.Run(addr); err != nil {
		appLogger.Error().Err(err).Msg("failed to start server")
		os.Exit(1)
	}
}
