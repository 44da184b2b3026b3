package repository

import (
	"context"
	"time"
)

// AnalyticsRepository define las consultas de lectura para el resumen de analítica.
// Las implementaciones son read-only (no modifican datos).
type AnalyticsRepository interface {
	CountUsers(ctx context.Context) (int64, error)
	CountProducts(ctx context.Context) (int64, error)
	CountOrders(ctx context.Context) (int64, error)
	// CountOrdersSince cuenta las órdenes con created_at >= since.
	CountOrdersSince(ctx context.Context, since time.Time) (int64, error)
}
