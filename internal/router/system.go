package router

import (
	"github.com/deppfellow/sweets/internal/handler"
	"github.com/deppfellow/sweets/internal/server"
	"github.com/labstack/echo/v4"
)

func registerSystemRoutes(r *echo.Echo, s *server.Server, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	r.StaticFS("/static", h.OpenAPI.StaticFS())
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)

	if s.Metrics != nil {
		r.GET(s.Config.Observability.Metrics.Path, echo.WrapHandler(s.Metrics.Handler()))
	}
}
