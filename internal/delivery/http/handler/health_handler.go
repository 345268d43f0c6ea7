package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/venue-admin/internal/querycache"
	"go.uber.org/zap"
)

// HealthChecker - зависимость, которую проверяет /health (Redis)
type HealthChecker interface {
	Health(ctx context.Context) error
}

type HealthResponse struct {
	Status string           `json:"status"`
	Time   time.Time        `json:"time"`
	Uptime string           `json:"uptime"`
	Cache  querycache.Stats `json:"cache"`
	Redis  string           `json:"redis,omitempty"`
}

type HealthHandler struct {
	cache     *querycache.Cache
	redis     HealthChecker
	startedAt time.Time
	logger    *zap.Logger
}

// NewHealthHandler - redis может быть nil, если стрим инвалидаций выключен
func NewHealthHandler(cache *querycache.Cache, redis HealthChecker, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		cache:     cache,
		redis:     redis,
		startedAt: time.Now(),
		logger:    logger,
	}
}

// Health godoc
// @Summary Health check
// @Description Состояние сервиса и счётчики кеша запросов
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /api/v1/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	resp := HealthResponse{
		Status: "healthy",
		Time:   time.Now(),
		Uptime: time.Since(h.startedAt).Round(time.Second).String(),
		Cache:  h.cache.Stats(),
	}

	if h.redis != nil {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		resp.Redis = "ok"
		if err := h.redis.Health(ctx); err != nil {
			h.logger.Warn("Redis health check failed", zap.Error(err))
			resp.Status = "degraded"
			resp.Redis = err.Error()
			return c.Status(fiber.StatusServiceUnavailable).JSON(resp)
		}
	}

	return c.JSON(resp)
}
