package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/demo-api/internal/application/usecase"
	"github.com/jhoicas/demo-api/pkg/logger"
)

// AnalyticsHandler resumen agregado y su exportación PDF.
type AnalyticsHandler struct {
	uc  *usecase.AnalyticsUseCase
	log *logger.Logger
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *usecase.AnalyticsUseCase, log *logger.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc, log: log}
}

// Summary godoc
// @Summary      Resumen de analítica
// @Description  Totales de usuarios, productos y órdenes, más órdenes de los últimos 7 días.
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  dto.AnalyticsSummaryDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics [get]
func (h *AnalyticsHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// ReportPDF godoc
// @Summary      Resumen de analítica en PDF
// @Tags         analytics
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/report.pdf [get]
func (h *AnalyticsHandler) ReportPDF(c *fiber.Ctx) error {
	doc, err := h.uc.ReportPDF(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	filename := fmt.Sprintf("analytics-%s.pdf", time.Now().UTC().Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="%s"`, filename))
	return c.Send(doc)
}
