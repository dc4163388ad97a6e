package middleware

import (
	"time"

	"github.com/deppfellow/sweets/internal/metrics"
	"github.com/labstack/echo/v4"
)

// unmatchedRoute labels requests no route matched, keeping raw paths out
// of the label set.
const unmatchedRoute = "unmatched"

type MetricsMiddleware struct {
	metrics *metrics.Metrics
}

func NewMetricsMiddleware(m *metrics.Metrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m}
}

// Instrument records count and latency per route template.
func (mm *MetricsMiddleware) Instrument() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if mm.metrics == nil {
			return next
		}

		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			route := c.Path()
			if route == "" {
				route = unmatchedRoute
			}
			mm.metrics.ObserveHTTPRequest(c.Request().Method, route, statusFromError(c, err), time.Since(start))

			return err
		}
	}
}
