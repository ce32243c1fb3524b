package services

import (
	"wealthcheck/internal/models"
)

// AnalysisServicer defines the contract for running a wealth health check.
type AnalysisServicer interface {
	// Analyze validates in and returns a freshly assembled report. Validation
	// failures are *AppError values: ErrClientNameRequired, ErrInvalidInput or
	// ErrEmptyPortfolio, checked in that order.
	Analyze(in models.PortfolioInput) (*models.Report, error)
}

// AnalysisObserver receives analysis outcomes, typically for metrics.
type AnalysisObserver interface {
	ObserveAnalysis(riskTier string)
	ObserveRejection(code string)
}
