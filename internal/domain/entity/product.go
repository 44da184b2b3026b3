package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo demo.
// Price no se valida (se espera >= 0).
type Product struct {
	ID        int64
	Name      string
	Price     decimal.Decimal
	Category  string
	Stock     int
	CreatedAt time.Time
}
