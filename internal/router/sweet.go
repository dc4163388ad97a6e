package router

import (
	"github.com/deppfellow/sweets/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSweetRoutes mounts the resource. Paths keep their trailing slash.
func registerSweetRoutes(r *echo.Echo, h *handler.Handlers) {
	sweets := r.Group("/sweets")

	sweets.GET("/", h.Sweet.ListSweets)
	sweets.POST("/", h.Sweet.CreateSweet)
	sweets.GET("/:id/", h.Sweet.GetSweet)
	sweets.PUT("/:id/", h.Sweet.UpdateSweet)
	sweets.DELETE("/:id/", h.Sweet.DeleteSweet)
}
