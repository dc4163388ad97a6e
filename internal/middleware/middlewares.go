package middleware

import (
	"github.com/deppfellow/sweets/internal/server"
)

// Middlewares groups every middleware component so router setup builds
// them once.
type Middlewares struct {
	Global          *GlobalMiddlewares
	ContextEnhancer *ContextEnhancer
	Tracing         *TracingMiddleware
	Metrics         *MetricsMiddleware
}

func NewMiddlewares(s *server.Server) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, s.LoggerService.GetApplication()),
		Metrics:         NewMetricsMiddleware(s.Metrics),
	}
}
