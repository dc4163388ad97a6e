package handler

import (
	"github.com/deppfellow/sweets/internal/server"
	"github.com/deppfellow/sweets/internal/service"
)

type Handlers struct {
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
	Sweet   *SweetHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
		Sweet:   NewSweetHandler(s, services.Sweet),
	}
}
