package middleware

import (
	"strconv"
	"time"

	"mealmarket/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// Metrics observes request latency by route template. Errors are rendered here
// so the recorded status is the one the client sees.
func Metrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		if err := next(c); err != nil {
			c.Error(err)
		}

		path := c.Path()
		if path == "" {
			path = "unmatched"
		}

		metrics.APILatency.
			WithLabelValues(c.Request().Method, path, strconv.Itoa(c.Response().Status)).
			Observe(time.Since(start).Seconds())

		return nil
	}
}
