package handlers

import (
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
)

// HealthCheck is a basic liveness probe.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// ReadinessCheck reports whether the service can take traffic.
func ReadinessCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ready",
	})
}

// HealthCheckDetailed pings the database and degrades the status when the
// store is unreachable.
func HealthCheckDetailed(c echo.Context, pool *pgxpool.Pool) error {
	ctx := c.Request().Context()

	health := map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"services":  map[string]string{"database": "healthy"},
	}

	statusCode := http.StatusOK
	if err := pool.Ping(ctx); err != nil {
		health["status"] = "degraded"
		health["services"] = map[string]string{"database": "unhealthy"}
		statusCode = http.StatusServiceUnavailable
	}

	return c.JSON(statusCode, health)
}
