// Package router builds the Echo instance: global middleware, the error
// handler, the sweets resource routes and the system routes.
package router

import (
	"github.com/deppfellow/sweets/internal/handler"
	"github.com/deppfellow/sweets/internal/middleware"
	"github.com/deppfellow/sweets/internal/server"
	"github.com/labstack/echo/v4"
)

func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	// Order matters: the request id feeds the tracing attributes and the
	// request logger, and the New Relic transaction must exist before the
	// context logger reads its trace ids.
	router.Use(
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.Metrics.Instrument(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, s, h)
	registerSweetRoutes(router, h)

	return router
}
