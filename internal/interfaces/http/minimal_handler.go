package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/demo-api/internal/application/dto"
)

// staticUsers lista fija del servicio mínimo.
var staticUsers = []dto.StaticUser{
	{ID: 1, Name: "John Doe", Email: "john@example.com"},
	{ID: 2, Name: "Jane Smith", Email: "jane@example.com"},
}

// MinimalHandler endpoints del servicio mínimo, sin persistencia.
type MinimalHandler struct {
	service string
}

// NewMinimalHandler construye el handler.
func NewMinimalHandler(service string) *MinimalHandler {
	return &MinimalHandler{service: service}
}

// Health godoc
// @Summary      Estado del servicio mínimo
// @Tags         minimal
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/health [get]
func (h *MinimalHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "healthy", "service": h.service})
}

// Users godoc
// @Summary      Usuarios estáticos
// @Tags         minimal
// @Produce      json
// @Success      200  {array}  dto.StaticUser
// @Router       /api/users [get]
func (h *MinimalHandler) Users(c *fiber.Ctx) error {
	return c.JSON(staticUsers)
}
