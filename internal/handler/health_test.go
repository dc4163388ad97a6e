package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/sweets/internal/config"
	"github.com/deppfellow/sweets/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct {
	err   error
	calls int
}

func (f *fakePinger) Ping(ctx context.Context) error {
	f.calls++
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("ping without deadline")
	}
	return f.err
}

func newHealthHandler(db pinger, obs *config.ObservabilityConfig) *HealthHandler {
	logger := zerolog.Nop()
	s := &server.Server{
		Config: &config.Config{
			Primary:       config.Primary{Env: "test"},
			Observability: obs,
		},
		Logger: &logger,
	}

	h := NewHealthHandler(s)
	h.db = db
	return h
}

func checkHealth(t *testing.T, h *HealthHandler) (int, healthResponse) {
	t.Helper()

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/status", nil), rec)
	require.NoError(t, h.CheckHealth(c))

	var body healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestCheckHealthHealthy(t *testing.T) {
	db := &fakePinger{}
	code, body := checkHealth(t, newHealthHandler(db, config.DefaultObservabilityConfig()))

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, statusHealthy, body.Status)
	assert.Equal(t, "test", body.Environment)
	assert.Equal(t, statusHealthy, body.Checks["database"].Status)
	assert.Equal(t, 1, db.calls)
}

func TestCheckHealthDatabaseDown(t *testing.T) {
	db := &fakePinger{err: errors.New("connection refused")}
	code, body := checkHealth(t, newHealthHandler(db, config.DefaultObservabilityConfig()))

	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, statusUnhealthy, body.Status)
	assert.Equal(t, "connection refused", body.Checks["database"].Error)
}

func TestCheckHealthChecksDisabled(t *testing.T) {
	obs := config.DefaultObservabilityConfig()
	obs.HealthChecks.Enabled = false
	db := &fakePinger{err: errors.New("unused")}

	code, body := checkHealth(t, newHealthHandler(db, obs))

	assert.Equal(t, http.StatusOK, code)
	assert.Empty(t, body.Checks)
	assert.Zero(t, db.calls)
}

func TestCheckHealthWithoutDatabase(t *testing.T) {
	code, body := checkHealth(t, newHealthHandler(nil, config.DefaultObservabilityConfig()))

	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "database not configured", body.Checks["database"].Error)
}
