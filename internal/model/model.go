// Package model holds the entities persisted by the repository layer
// and the request payloads the handler layer binds into.
//
// One sub-package per resource; each has the entity (sweet.go) and its
// request DTOs (dto.go).
package model
