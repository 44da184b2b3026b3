package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/demo-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el resumen de analítica.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// CountUsers total de usuarios.
func (r *AnalyticsRepo) CountUsers(ctx context.Context) (int64, error) {
	return r.count(ctx, "analytics.CountUsers", `SELECT COUNT(*) FROM users`)
}

// CountProducts total de productos.
func (r *AnalyticsRepo) CountProducts(ctx context.Context) (int64, error) {
	return r.count(ctx, "analytics.CountProducts", `SELECT COUNT(*) FROM products`)
}

// CountOrders total de órdenes.
func (r *AnalyticsRepo) CountOrders(ctx context.Context) (int64, error) {
	return r.count(ctx, "analytics.CountOrders", `SELECT COUNT(*) FROM orders`)
}

// CountOrdersSince órdenes con created_at >= since (usa idx_orders_created_at).
func (r *AnalyticsRepo) CountOrdersSince(ctx context.Context, since time.Time) (int64, error) {
	return r.count(ctx, "analytics.CountOrdersSince", `SELECT COUNT(*) FROM orders WHERE created_at >= $1`, since)
}

func (r *AnalyticsRepo) count(ctx context.Context, op, query string, args ...any) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}
