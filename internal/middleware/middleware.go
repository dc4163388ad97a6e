// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns such as
// request ids, request-scoped logging, tracing, metrics, CORS and panic
// recovery, and provide the global error handler.
package middleware

import (
	"net/http"

	"github.com/deppfellow/sweets/internal/errs"
	"github.com/deppfellow/sweets/internal/sqlerr"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// statusFromError returns the status the global error handler will write
// for err. Echo has not committed a response yet when a handler returns
// an error, so v.Status would still read 200.
// See https://github.com/labstack/echo/issues/2310
func statusFromError(c echo.Context, err error) int {
	if err == nil {
		return c.Response().Status
	}

	var httpErr *errs.HTTPError
	var echoErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Status
	case errors.As(err, &echoErr):
		return echoErr.Code
	case errors.As(sqlerr.HandleError(err), &httpErr):
		return httpErr.Status
	default:
		return http.StatusInternalServerError
	}
}
