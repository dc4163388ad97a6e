// Package errs define custom error types and utilities.
//
// Its purpose is to create specific error structures
// (FieldErrors for validation, HTTPError for API responses)
// so the client receives meaningful and consistent error messages.
// Every error body carries a human-readable `msg` field.
package errs
