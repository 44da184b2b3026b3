package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jhoicas/demo-api/pkg/logger"
	"github.com/rs/zerolog"
)

// HeaderRequestID header de correlación. Si el cliente no lo envía se genera uno.
const HeaderRequestID = "X-Request-ID"

const localsRequestID = "request_id"

// RequestLogger registra una línea por request: método, path, timestamp, status y latencia.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		reqID := c.Get(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Locals(localsRequestID, reqID)
		c.Set(HeaderRequestID, reqID)

		chainErr := c.Next()
		if chainErr != nil {
			// Ejecutar el ErrorHandler aquí para loguear el status final.
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		var ev *zerolog.Event
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = log.Error()
		case status >= fiber.StatusBadRequest:
			ev = log.Warn()
		default:
			ev = log.Info()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Time("timestamp", start.UTC()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("request_id", reqID).
			Msg("request")
		return nil
	}
}

// GetRequestID devuelve el ID de correlación del request actual.
func GetRequestID(c *fiber.Ctx) string {
	if v, ok := c.Locals(localsRequestID).(string); ok {
		return v
	}
	return ""
}
