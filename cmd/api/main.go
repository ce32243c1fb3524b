package main

import (
	"fmt"
	"os"

	"wealthcheck/internal/config"
	"wealthcheck/internal/logger"
	"wealthcheck/internal/metrics"
	"wealthcheck/internal/server"
	"wealthcheck/internal/services"
)

// @title           Wealth Health Check API
// @version         1.0
// @description     Asset allocation analysis and advisory recommendations for individual investors.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	recorder := metrics.New()
	analysisService := services.NewAnalysisService(appConfig.Firm, services.WithObserver(recorder))

	router, err := server.NewRouter(server.Deps{
		Analysis: analysisService,
		Metrics:  recorder,
		Firm:     appConfig.Firm,
	})
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}

	log.Infof("Starting wealth health check server on port %s for %s", appConfig.Port, appConfig.Firm.Name)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
