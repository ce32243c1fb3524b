// Package server wires handlers and middleware into the HTTP router.
package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "wealthcheck/internal/docs" // Import swagger docs
	apperrors "wealthcheck/internal/errors"
	"wealthcheck/internal/handlers"
	"wealthcheck/internal/metrics"
	"wealthcheck/internal/middleware"
	"wealthcheck/internal/models"
	"wealthcheck/internal/services"
	"wealthcheck/internal/validator"
)

// Deps are the collaborators the router needs. Metrics may be nil.
type Deps struct {
	Analysis services.AnalysisServicer
	Metrics  *metrics.Recorder
	Firm     models.Firm
}

// NewRouter builds the gin engine serving the HTML form, the JSON API, the
// swagger UI and the metrics endpoint.
func NewRouter(d Deps) (*gin.Engine, error) {
	validator.Register()

	tmpl, err := handlers.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	router := gin.New()
	router.SetHTMLTemplate(tmpl)
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(d.Metrics.Middleware())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS())

	router.NoRoute(func(c *gin.Context) {
		_ = c.Error(apperrors.ErrNotFound)
	})

	var documents handlers.DocumentObserver
	if d.Metrics != nil {
		documents = d.Metrics
	}
	formHandler := handlers.NewFormHandler(d.Analysis, documents, d.Firm)
	analysisHandler := handlers.NewAnalysisHandler(d.Analysis, documents)

	// HTML form
	router.GET("/", formHandler.Index)
	router.POST("/analyze", formHandler.Analyze)
	router.POST("/report.pdf", formHandler.DownloadPDF)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if d.Metrics != nil {
		router.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	// API v1 group
	v1 := router.Group("/api/v1")
	analysis := v1.Group("/analysis")
	analysis.POST("", analysisHandler.Analyze)
	analysis.POST("/pdf", analysisHandler.AnalyzePDF)
	analysis.POST("/chart.svg", analysisHandler.AnalyzeChart)
	analysis.POST("/text", analysisHandler.AnalyzeText)

	return router, nil
}
