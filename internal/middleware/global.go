package middleware

import (
	"net/http"

	"github.com/deppfellow/sweets/internal/errs"
	"github.com/deppfellow/sweets/internal/server"
	"github.com/deppfellow/sweets/internal/sqlerr"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// GlobalMiddlewares groups the middleware applied to every route and the
// global error handler.
type GlobalMiddlewares struct {
	server *server.Server
}

func NewGlobalMiddlewares(s *server.Server) *GlobalMiddlewares {
	return &GlobalMiddlewares{
		server: s,
	}
}

func (global *GlobalMiddlewares) CORS() echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: global.server.Config.Server.CORSAllowedOrigins,
	})
}

// RequestLogger writes one "API" line per request: error level for 5xx,
// warn for 4xx, info otherwise.
func (global *GlobalMiddlewares) RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogHost:    true,
		LogMethod:  true,
		LogURIPath: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			statusCode := v.Status
			if v.Error != nil {
				statusCode = statusFromError(c, v.Error)
			}

			logger := GetLogger(c)

			var e *zerolog.Event
			switch {
			case statusCode >= http.StatusInternalServerError:
				e = logger.Error().Err(v.Error)
			case statusCode >= http.StatusBadRequest:
				e = logger.Warn()
			default:
				e = logger.Info()
			}

			e.
				Dur("latency", v.Latency).
				Int("status", statusCode).
				Str("method", v.Method).
				Str("uri", v.URI).
				Str("host", v.Host).
				Str("ip", c.RealIP()).
				Str("user_agent", c.Request().UserAgent()).
				Msg("API")

			return nil
		},
	})
}

func (global *GlobalMiddlewares) Recover() echo.MiddlewareFunc {
	return middleware.Recover()
}

func (global *GlobalMiddlewares) Secure() echo.MiddlewareFunc {
	return middleware.Secure()
}

// GlobalErrorHandler renders every error returned by a handler or
// middleware as an errs.HTTPError body.
//
//   - *errs.HTTPError is written as is
//   - Echo's 404 becomes "Route not found", other Echo errors keep their status
//   - anything else goes through sqlerr.HandleError, so driver details never
//     reach the client
func (global *GlobalMiddlewares) GlobalErrorHandler(err error, c echo.Context) {
	originalErr := err

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) {
			if echoErr.Code == http.StatusNotFound {
				err = errs.NewNotFoundError("Route not found", false, nil)
			}
		} else {
			err = sqlerr.HandleError(err)
		}
	}

	var echoErr *echo.HTTPError
	var response errs.HTTPError

	switch {
	case errors.As(err, &httpErr):
		response = *httpErr

	case errors.As(err, &echoErr):
		response.Status = echoErr.Code
		response.Code = errs.MakeUpperCaseWithUnderscores(http.StatusText(echoErr.Code))
		if msg, ok := echoErr.Message.(string); ok {
			response.Message = msg
		} else {
			response.Message = http.StatusText(echoErr.Code)
		}

	default:
		response.Status = http.StatusInternalServerError
		response.Code = errs.MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError))
		response.Message = http.StatusText(http.StatusInternalServerError)
	}

	logger := GetLogger(c)
	event := logger.Warn()
	if response.Status >= http.StatusInternalServerError {
		event = logger.Error().Stack()
	}
	event.
		Err(originalErr).
		Int("status", response.Status).
		Str("error_code", response.Code).
		Msg(response.Message)

	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(response.Status)
	} else {
		err = c.JSON(response.Status, response)
	}
	if err != nil {
		logger.Error().Err(err).Msg("failed to write error response")
	}
}
