package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/sweets/internal/config"
	"github.com/deppfellow/sweets/internal/errs"
	"github.com/deppfellow/sweets/internal/metrics"
	"github.com/deppfellow/sweets/internal/server"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(buf *bytes.Buffer) *server.Server {
	logger := zerolog.New(buf)
	return &server.Server{
		Config: &config.Config{
			Primary: config.Primary{Env: "development"},
			Server:  config.ServerConfig{CORSAllowedOrigins: []string{"*"}},
		},
		Logger:  &logger,
		Metrics: metrics.New(),
	}
}

func newTestEcho(s *server.Server) *echo.Echo {
	mw := NewMiddlewares(s)

	e := echo.New()
	e.HTTPErrorHandler = mw.Global.GlobalErrorHandler
	e.Use(
		RequestID(),
		mw.Metrics.Instrument(),
		mw.ContextEnhancer.EnhanceContext(),
		mw.Global.RequestLogger(),
		mw.Global.Recover(),
	)
	return e
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errs.HTTPError {
	t.Helper()

	var body errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRequestID(t *testing.T) {
	e := newTestEcho(newTestServer(&bytes.Buffer{}))
	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, GetRequestID(c))
	})

	t.Run("generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

		id := rec.Header().Get(RequestIDHeader)
		assert.Len(t, id, 36)
		assert.Equal(t, id, rec.Body.String())
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
		assert.Equal(t, "abc-123", rec.Body.String())
	})
}

func TestGlobalErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "http error passes through",
			err:        errs.NewSweetNotFoundError(7),
			wantStatus: http.StatusNotFound,
			wantCode:   errs.CodeSweetNotFound,
			wantMsg:    "Sweet with id: 7 does not exist",
		},
		{
			name:       "wrapped http error",
			err:        fmt.Errorf("handler: %w", errs.NewNegativeCaloriesError()),
			wantStatus: http.StatusBadRequest,
			wantCode:   errs.CodeNegativeCalories,
			wantMsg:    errs.MsgNegativeCalories,
		},
		{
			name:       "echo error keeps status",
			err:        echo.NewHTTPError(http.StatusUnsupportedMediaType, "Unsupported Media Type"),
			wantStatus: http.StatusUnsupportedMediaType,
			wantCode:   "UNSUPPORTED_MEDIA_TYPE",
			wantMsg:    "Unsupported Media Type",
		},
		{
			name:       "check violation",
			err:        &pgconn.PgError{Code: "23514", TableName: "sweets", ColumnName: "calories"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "SWEET_INVALID",
			wantMsg:    "The Calories value does not meet required conditions",
		},
		{
			name:       "unknown error is hidden",
			err:        errors.New("dial tcp 10.0.0.1:5432: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
			wantMsg:    "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho(newTestServer(&bytes.Buffer{}))
			e.GET("/boom", func(c echo.Context) error { return tt.err })

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.wantStatus, body.Status)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantMsg, body.Message)
		})
	}
}

func TestGlobalErrorHandlerUnknownRoute(t *testing.T) {
	e := newTestEcho(newTestServer(&bytes.Buffer{}))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "Route not found", body.Message)
	assert.Equal(t, "NOT_FOUND", body.Code)
}

func TestRecoverRendersInternalError(t *testing.T) {
	e := newTestEcho(newTestServer(&bytes.Buffer{}))
	e.GET("/panic", func(c echo.Context) error { panic("boom") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal Server Error", decodeError(t, rec).Message)
}

func TestRequestLoggerUsesErrorStatus(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEcho(newTestServer(&buf))
	e.GET("/missing", func(c echo.Context) error { return errs.NewSweetNotFoundError(1) })

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	e.ServeHTTP(httptest.NewRecorder(), req)

	var accessLine map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		if entry["message"] == "API" {
			accessLine = entry
		}
	}

	require.NotNil(t, accessLine, "no access log line in %s", buf.String())
	assert.Equal(t, "warn", accessLine["level"])
	assert.EqualValues(t, http.StatusNotFound, accessLine["status"])
	assert.Equal(t, "req-1", accessLine["request_id"])
	assert.Equal(t, "/missing", accessLine["path"])
}

func TestMetricsInstrument(t *testing.T) {
	s := newTestServer(&bytes.Buffer{})
	e := newTestEcho(s)
	e.GET("/sweets/:id/", func(c echo.Context) error { return errs.NewSweetNotFoundError(3) })

	for _, path := range []string{"/sweets/3/", "/sweets/4/"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	rec := httptest.NewRecorder()
	s.Metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(),
		`sweets_api_http_requests_total{method="GET",route="/sweets/:id/",status_code="404"} 2`)
}

func TestGetLoggerWithoutEnhancer(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.NotNil(t, GetLogger(c))
}
