package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/demo-api/internal/application/usecase"
	"github.com/jhoicas/demo-api/pkg/logger"
)

// StatusHandler health check y endpoint lento.
type StatusHandler struct {
	uc  *usecase.StatusUseCase
	log *logger.Logger
}

// NewStatusHandler construye el handler.
func NewStatusHandler(uc *usecase.StatusUseCase, log *logger.Logger) *StatusHandler {
	return &StatusHandler{uc: uc, log: log}
}

// Health godoc
// @Summary      Estado del servicio
// @Description  Siempre 200. database/redis indican "connected" o "disconnected".
// @Tags         status
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /api/health [get]
func (h *StatusHandler) Health(c *fiber.Ctx) error {
	return c.JSON(h.uc.Health(c.UserContext()))
}

// Slow godoc
// @Summary      Endpoint intencionalmente lento
// @Description  Duerme entre 2 y 5 segundos antes de responder.
// @Tags         status
// @Produce      json
// @Success      200  {object}  dto.SlowResponse
// @Router       /api/slow-endpoint [get]
func (h *StatusHandler) Slow(c *fiber.Ctx) error {
	out, err := h.uc.Slow(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}
