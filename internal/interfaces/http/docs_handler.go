package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/demo-api/pkg/logger"
	"github.com/swaggo/swag"
)

// DocsHandler expone el documento OpenAPI registrado en swag por el paquete docs.
type DocsHandler struct {
	log *logger.Logger
}

// NewDocsHandler construye el handler.
func NewDocsHandler(log *logger.Logger) *DocsHandler {
	return &DocsHandler{log: log}
}

// Spec godoc
// @Summary      Documento OpenAPI
// @Tags         docs
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/docs/spec [get]
func (h *DocsHandler) Spec(c *fiber.Ctx) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return respondError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.SendString(doc)
}
