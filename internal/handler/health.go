package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/deppfellow/sweets/internal/middleware"
	"github.com/deppfellow/sweets/internal/server"
	"github.com/labstack/echo/v4"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
)

// pinger is satisfied by *database.Database.
type pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves /status for load balancers and uptime monitors.
type HealthHandler struct {
	Handler
	db pinger
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	h := &HealthHandler{Handler: NewHandler(s)}
	if s.DB != nil {
		h.db = s.DB
	}
	return h
}

type checkResult struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

type healthResponse struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Checks      map[string]checkResult `json:"checks"`
}

// CheckHealth answers 200 when every configured check passes, 503 otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	obs := h.server.Config.Observability
	response := healthResponse{
		Status:      statusHealthy,
		Timestamp:   time.Now().UTC(),
		Environment: h.server.Config.Primary.Env,
		Checks:      map[string]checkResult{},
	}

	if obs.HasCheck("database") {
		result := h.checkDatabase(c.Request().Context(), obs.HealthChecks.Timeout)
		response.Checks["database"] = result

		if result.Status != statusHealthy {
			response.Status = statusUnhealthy
			logger.Error().Str("error", result.Error).Msg("database health check failed")

			if app := h.server.LoggerService.GetApplication(); app != nil {
				app.RecordCustomEvent("HealthCheckError", map[string]any{
					"check_type":    "database",
					"error_message": result.Error,
				})
			}
		}
	}

	status := http.StatusOK
	if response.Status != statusHealthy {
		status = http.StatusServiceUnavailable
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Str("status", response.Status).
		Msg("health check finished")

	return c.JSON(status, response)
}

func (h *HealthHandler) checkDatabase(ctx context.Context, timeout time.Duration) checkResult {
	start := time.Now()
	if h.db == nil {
		return checkResult{Status: statusUnhealthy, ResponseTime: "0s", Error: "database not configured"}
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		return checkResult{
			Status:       statusUnhealthy,
			ResponseTime: time.Since(start).String(),
			Error:        err.Error(),
		}
	}

	return checkResult{Status: statusHealthy, ResponseTime: time.Since(start).String()}
}
