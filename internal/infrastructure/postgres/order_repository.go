package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/demo-api/internal/domain/entity"
	"github.com/jhoicas/demo-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste una orden. Status vacío toma el default de la columna ('pending').
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO orders (user_id, total, status)
		VALUES ($1, $2, COALESCE(NULLIF($3, ''), 'pending'))
		RETURNING id, status, created_at`
	err := r.q.QueryRow(ctx, query, order.UserID, order.Total, order.Status).
		Scan(&order.ID, &order.Status, &order.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}
