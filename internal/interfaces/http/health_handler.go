package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Invoicing-api/pkg/logger"
)

// ReadinessChecker lo implementa *health.ReadinessUseCase.
type ReadinessChecker interface {
	Ready(ctx context.Context) error
}

// HealthHandler liveness y readiness.
type HealthHandler struct {
	ready   ReadinessChecker
	service string
	log     *logger.Logger
}

func NewHealthHandler(ready ReadinessChecker, service string, log *logger.Logger) *HealthHandler {
	return &HealthHandler{ready: ready, service: service, log: log}
}

// Health GET /health: el proceso responde.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "service": h.service})
}

// Ready GET /ready: dependencias disponibles; 503 si alguna falla.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	if err := h.ready.Ready(c.UserContext()); err != nil {
		h.log.Warn().Err(err).Msg("readiness fallida")
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
	}
	return c.JSON(fiber.Map{"status": "ready"})
}
