package handler

import (
	"net/http"

	"github.com/deppfellow/sweets/internal/model/sweet"
	"github.com/deppfellow/sweets/internal/server"
	"github.com/deppfellow/sweets/internal/service"
	"github.com/labstack/echo/v4"
)

type SweetHandler struct {
	Handler
	sweetService *service.SweetService
}

func NewSweetHandler(s *server.Server, sweetService *service.SweetService) *SweetHandler {
	return &SweetHandler{
		Handler:      NewHandler(s),
		sweetService: sweetService,
	}
}

func (h *SweetHandler) ListSweets(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, _ *sweet.ListSweetsRequest) ([]sweet.Sweet, error) {
			return h.sweetService.ListSweets(c.Request().Context())
		},
		http.StatusOK,
		&sweet.ListSweetsRequest{},
	)(c)
}

func (h *SweetHandler) CreateSweet(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, req *sweet.CreateSweetRequest) (*sweet.Sweet, error) {
			return h.sweetService.CreateSweet(c.Request().Context(), req.Payload)
		},
		http.StatusCreated,
		&sweet.CreateSweetRequest{},
	)(c)
}

func (h *SweetHandler) GetSweet(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, req *sweet.GetSweetRequest) (*sweet.Sweet, error) {
			return h.sweetService.GetSweet(c.Request().Context(), req.ID)
		},
		http.StatusOK,
		&sweet.GetSweetRequest{},
	)(c)
}

func (h *SweetHandler) UpdateSweet(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, req *sweet.UpdateSweetRequest) (*sweet.Sweet, error) {
			return h.sweetService.UpdateSweet(c.Request().Context(), req.ID, req.Payload)
		},
		http.StatusOK,
		&sweet.UpdateSweetRequest{},
	)(c)
}

func (h *SweetHandler) DeleteSweet(c echo.Context) error {
	return HandleNoContent(
		h.Handler,
		func(c echo.Context, req *sweet.DeleteSweetRequest) error {
			return h.sweetService.DeleteSweet(c.Request().Context(), req.ID)
		},
		http.StatusNoContent,
		&sweet.DeleteSweetRequest{},
	)(c)
}
