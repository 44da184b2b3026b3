package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los mensajes viajan tal cual al cliente HTTP, por eso están en inglés.
var (
	ErrUserNotFound       = errors.New("User not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidInput       = errors.New("invalid input")
)

// Fallas simuladas por la política de caos. El cliente no las distingue de fallas reales.
var (
	ErrSimulatedDBFailure      = errors.New("Database connection failed")
	ErrSimulatedUnavailable    = errors.New("Product service unavailable")
	ErrSimulatedPaymentFailure = errors.New("Payment processing failed")
)
