package handlers

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	apperrors "wealthcheck/internal/errors"
	"wealthcheck/internal/logger"
	"wealthcheck/internal/models"
	"wealthcheck/internal/validator"
)

// DocumentObserver records the size of rendered documents.
type DocumentObserver interface {
	ObserveDocument(format string, size int)
}

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// bindInput decodes the request into a PortfolioInput. Only decoding failures are
// returned here; rule violations are left to the analysis service, which checks
// them in a fixed order.
func bindInput(c *gin.Context, b binding.Binding) (models.PortfolioInput, error) {
	var in models.PortfolioInput
	err := c.ShouldBindWith(&in, b)
	if err == nil || validator.IsValidationError(err) {
		return in, nil
	}
	if errors.Is(err, io.EOF) {
		return in, apperrors.WithMessage(apperrors.ErrInvalidInput, "Request body is required")
	}
	return in, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
}

// asAppError returns err as an *AppError, wrapping anything else as an internal error.
func asAppError(err error) *apperrors.AppError {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, ErrorResponse{Error: ErrorDetail{Code: appErr.Code, Message: appErr.Message}})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, ErrorResponse{Error: ErrorDetail{
		Code:    apperrors.ErrInternalServer.Code,
		Message: apperrors.ErrInternalServer.Message,
	}})
}
