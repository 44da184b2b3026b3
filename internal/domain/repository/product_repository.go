package repository

import (
	"context"

	"github.com/jhoicas/demo-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ProductFilter filtros conjuntivos para el listado de productos. Campos nil/vacíos no filtran.
type ProductFilter struct {
	Category string           // subcadena, sin distinguir mayúsculas
	MinPrice *decimal.Decimal // inclusivo
	MaxPrice *decimal.Decimal // inclusivo
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
}
