// Package middleware contains HTTP middleware for the echo server.
package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"resto/internal/delivery/http/response"
	domainerrors "resto/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. Client faults
// (4xx) render the message alone; server faults (5xx) add the diagnostic
// detail so the frontend can surface it.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Try to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logger.Error("Request failed",
				"error", err.Error(),
				"errorCode", appErr.ErrorCode(),
				"path", c.Request().URL.Path,
			)
			_ = response.ServerError(c, appErr.HTTPCode(), appErr.Message(), appErr.Details())

			return
		}

		_ = response.ClientError(c, appErr.HTTPCode(), appErr.Message())

		return
	}

	// Check if it's Echo's HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := fmt.Sprintf("%v", httpErr.Message)
		if httpErr.Code >= http.StatusInternalServerError {
			_ = response.ServerError(c, httpErr.Code, message, "")

			return
		}

		_ = response.ClientError(c, httpErr.Code, message)

		return
	}

	// Default to internal error, log error and return generic error
	m.logger.Error("Unhandled error",
		"error", err.Error(),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	)

	_ = response.InternalServerError(c, "Internal server error", err.Error())
}
