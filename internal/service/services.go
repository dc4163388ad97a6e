// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives
// validated requests from handlers, decides what a missing record means
// and calls the repository to read or persist data.
package service

import (
	"github.com/deppfellow/sweets/internal/repository"
	"github.com/deppfellow/sweets/internal/server"
)

type Services struct {
	Sweet *SweetService
}

func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		Sweet: NewSweetService(repos.Sweet, s.Metrics),
	}
}
