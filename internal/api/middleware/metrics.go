package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/greenhouse/console/internal/pkg/metrics"
)

// Metrics counts and times every request by route template.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			// Record the status the client actually gets. The error handler
			// skips committed responses, so it does not write twice.
			if err != nil && !c.Response().Committed {
				c.Error(err)
			}
			status := c.Response().Status

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			method := c.Request().Method
			metrics.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
			metrics.HTTPRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
			return err
		}
	}
}
