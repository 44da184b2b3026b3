package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest entrada para POST /api/orders. Punteros para distinguir campos ausentes.
type CreateOrderRequest struct {
	UserID *int64           `json:"userId"`
	Total  *decimal.Decimal `json:"total"`
}

// OrderResponse salida de una orden.
type OrderResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Total     float64   `json:"total"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
