package dto

import "time"

// Estados de conectividad reportados por el health check.
const (
	StatusConnected    = "connected"
	StatusDisconnected = "disconnected"
)

// HealthResponse respuesta de GET /api/health del servicio extendido.
type HealthResponse struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Database  string    `json:"database"`
	Redis     string    `json:"redis"`
}

// SlowResponse respuesta de GET /api/slow-endpoint.
type SlowResponse struct {
	Message      string  `json:"message"`
	DelaySeconds float64 `json:"delay_seconds"`
}
