package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de Order. La transición pending -> confirmed ocurre al crear la orden.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
)

// Order representa una orden de compra de un User.
// La existencia del usuario se verifica en el caso de uso, no con FK.
type Order struct {
	ID        int64
	UserID    int64
	Total     decimal.Decimal
	Status    string
	CreatedAt time.Time
}
