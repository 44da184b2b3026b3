package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/demo-api/internal/application/dto"
	"github.com/jhoicas/demo-api/internal/domain"
	"github.com/jhoicas/demo-api/pkg/logger"
)

// Mensajes genéricos de las páginas de error.
const (
	msgNotFound      = "Not found"
	msgInternalError = "Internal server error"
)

// ErrorHandler handler de errores de Fiber: rutas inexistentes → 404, resto → 500 genérico.
// También recibe los panics recuperados por el middleware recover.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			switch fe.Code {
			case fiber.StatusNotFound:
				return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: msgNotFound, Code: "NOT_FOUND"})
			case fiber.StatusInternalServerError:
			default:
				return c.Status(fe.Code).JSON(dto.ErrorResponse{Error: fe.Message})
			}
		}
		log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Str("request_id", GetRequestID(c)).
			Msg("error no controlado")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: msgInternalError, Code: "INTERNAL"})
	}
}

// NotFound se registra al final de la cadena para capturar cualquier ruta sin handler.
func NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: msgNotFound, Code: "NOT_FOUND"})
}

// simulatedStatus traduce las fallas simuladas y errores de dominio a su status HTTP.
// ok=false si err no es uno de ellos.
func simulatedStatus(err error) (status int, code string, ok bool) {
	switch {
	case errors.Is(err, domain.ErrSimulatedDBFailure):
		return fiber.StatusInternalServerError, "DB_FAILURE", true
	case errors.Is(err, domain.ErrSimulatedUnavailable):
		return fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", true
	case errors.Is(err, domain.ErrSimulatedPaymentFailure):
		return fiber.StatusPaymentRequired, "PAYMENT_FAILED", true
	case errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound, "USER_NOT_FOUND", true
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "VALIDATION", true
	}
	return 0, "", false
}

// respondError escribe err con su status. Los errores desconocidos se registran y se
// responden con un 500 genérico.
func respondError(c *fiber.Ctx, log *logger.Logger, err error) error {
	if status, code, ok := simulatedStatus(err); ok {
		return c.Status(status).JSON(dto.ErrorResponse{Error: err.Error(), Code: code})
	}
	log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Str("request_id", GetRequestID(c)).
		Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: msgInternalError, Code: "INTERNAL"})
}

// respondBadRequest usado por los POST: cualquier error que no sea una falla simulada
// se devuelve como 400 con el texto crudo.
func respondBadRequest(c *fiber.Ctx, err error) error {
	if status, code, ok := simulatedStatus(err); ok {
		return c.Status(status).JSON(dto.ErrorResponse{Error: err.Error(), Code: code})
	}
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error(), Code: "BAD_REQUEST"})
}
