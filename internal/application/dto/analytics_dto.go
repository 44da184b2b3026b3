package dto

import "time"

// AnalyticsSummaryDTO respuesta de GET /api/analytics.
type AnalyticsSummaryDTO struct {
	TotalUsers    int64     `json:"total_users"`
	TotalProducts int64     `json:"total_products"`
	TotalOrders   int64     `json:"total_orders"`
	RecentOrders  int64     `json:"recent_orders"` // órdenes de los últimos 7 días
	GeneratedAt   time.Time `json:"generated_at"`
}
