package handler

import (
	"context"
	"time"

	"quiz-master/internal/domain"
	"quiz-master/internal/dto"
	"quiz-master/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const healthCheckTimeout = 2 * time.Second

// DBPinger is satisfied by *sqlx.DB.
type DBPinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db    DBPinger
	cache domain.Cache
}

// NewHealthHandler accepts a nil cache when Redis is not configured.
func NewHealthHandler(db DBPinger, cache domain.Cache) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

// Health godoc
// @Summary Health check
// @Description Pings the database and, when configured, Redis
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /healthz [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthCheckTimeout)
	defer cancel()

	resp := dto.HealthResponse{Status: "ok", Checks: map[string]string{}}
	status := fiber.StatusOK

	if err := h.db.PingContext(ctx); err != nil {
		logger.Get().Warn("Database health check failed", zap.Error(err))
		resp.Checks["database"] = "unavailable"
		resp.Status = "degraded"
		status = fiber.StatusServiceUnavailable
	} else {
		resp.Checks["database"] = "ok"
	}

	switch {
	case h.cache == nil:
		resp.Checks["redis"] = "disabled"
	case h.cache.Ping(ctx) != nil:
		// The API still works without the cache.
		logger.Get().Warn("Redis health check failed")
		resp.Checks["redis"] = "unavailable"
		resp.Status = "degraded"
	default:
		resp.Checks["redis"] = "ok"
	}

	return c.Status(status).JSON(resp)
}
