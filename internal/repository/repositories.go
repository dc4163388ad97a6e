// Package repository handles all interactions with the database.
//
// It contains the SQL queries and the methods that fetch, persist or
// update data, keeping SQL away from the service layer.
package repository

import (
	"github.com/deppfellow/sweets/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Sweet *SweetRepository
}

// NewRepositories builds every repository on the server's pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Sweet: NewSweetRepository(s),
	}
}
