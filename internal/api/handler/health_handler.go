package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

const checkTimeout = 3 * time.Second

// Liveness handles GET /health. It only proves the process accepts
// requests; dependency state belongs to the readiness endpoint.
func Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// dependencyCheck verifies one backing service is reachable.
type dependencyCheck struct {
	name  string
	check func(context.Context) error
}

// ReadinessHandler handles GET /health/ready. Every dependency is checked
// even after the first failure, so the response names all broken ones at
// once; any failure turns the answer into a 503.
type ReadinessHandler struct {
	checks []dependencyCheck
}

func NewReadinessHandler(db *mongo.Database, rdb *redis.Client) *ReadinessHandler {
	return &ReadinessHandler{checks: []dependencyCheck{
		{name: "mongodb", check: func(ctx context.Context) error {
			return db.Client().Ping(ctx, nil)
		}},
		{name: "redis", check: func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}},
	}}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

func (h *ReadinessHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), checkTimeout)
	defer cancel()

	deps := make(map[string]dependencyStatus, len(h.checks))
	status, code := "ready", http.StatusOK

	for _, d := range h.checks {
		if err := d.check(ctx); err != nil {
			deps[d.name] = dependencyStatus{Status: "down", Error: err.Error()}
			status, code = "degraded", http.StatusServiceUnavailable
			continue
		}
		deps[d.name] = dependencyStatus{Status: "ok"}
	}

	return c.JSON(code, readinessResponse{Status: status, Dependencies: deps})
}
