package services

import (
	"errors"
	"time"

	"wealthcheck/internal/advisory"
	"wealthcheck/internal/allocation"
	apperrors "wealthcheck/internal/errors"
	"wealthcheck/internal/logger"
	"wealthcheck/internal/models"
	"wealthcheck/internal/report"
	"wealthcheck/internal/validator"
)

// analysisService runs the allocation, advisory and assembly steps for one client.
type analysisService struct {
	firm     models.Firm
	engine   *advisory.Engine
	observer AnalysisObserver
	now      func() time.Time
}

// AnalysisOption customises an analysis service.
type AnalysisOption func(*analysisService)

// WithClock overrides the time stamped on reports.
func WithClock(now func() time.Time) AnalysisOption {
	return func(s *analysisService) { s.now = now }
}

// WithObserver reports outcomes to o.
func WithObserver(o AnalysisObserver) AnalysisOption {
	return func(s *analysisService) { s.observer = o }
}

// NewAnalysisService creates a new AnalysisServicer issuing reports for firm.
func NewAnalysisService(firm models.Firm, opts ...AnalysisOption) AnalysisServicer {
	s := &analysisService{
		firm:   firm,
		engine: advisory.New(advisory.DefaultThresholds()),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Analyze validates the input and builds the report.
func (s *analysisService) Analyze(in models.PortfolioInput) (*models.Report, error) {
	if in.Name() == "" {
		return nil, s.reject(apperrors.ErrClientNameRequired)
	}
	if err := validator.Struct(in); err != nil {
		return nil, s.reject(apperrors.WithMessage(apperrors.ErrInvalidInput, validator.Describe(err)))
	}

	breakdown, err := allocation.Calculate(in)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return nil, s.reject(appErr)
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	res := s.engine.Evaluate(in, breakdown)
	r := report.Assemble(s.firm, in, breakdown, res, s.now())

	severities := make([]string, 0, len(r.Findings))
	for _, f := range r.Findings {
		severities = append(severities, string(f.Rule)+"="+string(f.Severity))
	}
	logger.Get().Debugw("analysis completed",
		"total_portfolio", r.TotalPortfolio.String(),
		"equity_pct", r.Allocation.Percent(models.BucketEquity),
		"risk_tier", r.Risk.Tier,
		"findings", severities,
	)
	if s.observer != nil {
		s.observer.ObserveAnalysis(string(r.Risk.Tier))
	}

	return &r, nil
}

func (s *analysisService) reject(appErr *apperrors.AppError) *apperrors.AppError {
	logger.Get().Infow("analysis rejected", "code", appErr.Code, "reason", appErr.Message)
	if s.observer != nil {
		s.observer.ObserveRejection(appErr.Code)
	}
	return appErr
}
