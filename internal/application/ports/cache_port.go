package ports

import (
	"context"
	"time"
)

// Claves y TTL de la caché auxiliar.
const (
	UsersCacheKey = "users_cache"
	UsersCacheTTL = 300 * time.Second
)

// CacheWriter define el puerto de salida hacia la caché auxiliar (Redis).
// Solo se escribe: ningún caso de uso lee de la caché. Los errores se ignoran en el llamador.
type CacheWriter interface {
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}

// PDFRenderer genera documentos PDF a partir de los DTOs de la aplicación.
type PDFRenderer interface {
	RenderAnalyticsReport(ctx context.Context, title string, summary AnalyticsReport) ([]byte, error)
}

// AnalyticsReport datos que necesita el renderer; evita acoplar infraestructura al DTO HTTP.
type AnalyticsReport struct {
	Service       string
	Version       string
	TotalUsers    int64
	TotalProducts int64
	TotalOrders   int64
	RecentOrders  int64
	GeneratedAt   time.Time
}
