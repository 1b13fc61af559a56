package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/greenhouse/console/internal/core/domain"
	"github.com/greenhouse/console/internal/core/service"
	"github.com/greenhouse/console/internal/infrastructure/greenhouseapi"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Passes backend statuses and messages through.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, domain.ErrNotImplemented):
		return http.StatusNotImplemented, err.Error()
	case errors.Is(err, domain.ErrServerUnreachable):
		return http.StatusBadGateway, domain.ErrServerUnreachable.Error()
	case errors.Is(err, domain.ErrMissingEmployeeID):
		return http.StatusBadGateway, err.Error()
	}

	// Backend answered with an error status: keep it.
	if status := greenhouseapi.StatusCode(err); status != 0 {
		return status, err.Error()
	}

	var failure *service.Failure
	if errors.As(err, &failure) {
		log.Error().Err(err).Str("op", failure.Op).Str("path", c.Path()).Msg("service failure")
		return http.StatusInternalServerError, failure.Message
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
