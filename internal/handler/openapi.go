package handler

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/deppfellow/sweets/internal/server"
	"github.com/labstack/echo/v4"
)

//go:embed static
var staticFiles embed.FS

type OpenAPIHandler struct {
	Handler
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
	}
}

// ServeOpenAPIUI renders the documentation page, which loads
// /static/openapi.json.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	page, err := staticFiles.ReadFile("static/openapi.html")
	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	c.Response().Header().Set("Cache-Control", "no-cache")
	return c.HTMLBlob(http.StatusOK, page)
}

// StaticFS exposes the embedded static directory for /static.
func (h *OpenAPIHandler) StaticFS() fs.FS {
	return echo.MustSubFS(staticFiles, "static")
}
