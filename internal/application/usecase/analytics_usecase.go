package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/demo-api/internal/application/chaos"
	"github.com/jhoicas/demo-api/internal/application/dto"
	"github.com/jhoicas/demo-api/internal/application/ports"
	"github.com/jhoicas/demo-api/internal/domain/repository"
)

// recentOrdersWindow ventana de "órdenes recientes".
const recentOrdersWindow = 7 * 24 * time.Hour

// AnalyticsUseCase conteos agregados de usuarios, productos y órdenes.
//
// Fuente de datos: AnalyticsRepository (consultas read-only).
type AnalyticsUseCase struct {
	repo     repository.AnalyticsRepository
	policy   chaos.Policy
	renderer ports.PDFRenderer
	service  string
	version  string
	now      func() time.Time
}

// NewAnalyticsUseCase construye el caso de uso. renderer puede ser nil si no se expone el PDF.
func NewAnalyticsUseCase(
	repo repository.AnalyticsRepository,
	policy chaos.Policy,
	renderer ports.PDFRenderer,
	service, version string,
) *AnalyticsUseCase {
	return &AnalyticsUseCase{
		repo:     repo,
		policy:   policy,
		renderer: renderer,
		service:  service,
		version:  version,
		now:      time.Now,
	}
}

// Summary construye el resumen.
//
// Cuatro consultas en paralelo:
//  1. CountUsers
//  2. CountProducts
//  3. CountOrders
//  4. CountOrdersSince(now - 7d)
func (uc *AnalyticsUseCase) Summary(ctx context.Context) (*dto.AnalyticsSummaryDTO, error) {
	if _, err := uc.policy.Delay(ctx, chaos.RequestLatency); err != nil {
		return nil, err
	}
	return uc.collect(ctx)
}

func (uc *AnalyticsUseCase) collect(ctx context.Context) (*dto.AnalyticsSummaryDTO, error) {
	now := uc.now().UTC()

	type countResult struct {
		n   int64
		err error
	}
	run := func(fn func(context.Context) (int64, error)) <-chan countResult {
		ch := make(chan countResult, 1)
		go func() {
			n, err := fn(ctx)
			ch <- countResult{n, err}
		}()
		return ch
	}

	usersCh := run(uc.repo.CountUsers)
	productsCh := run(uc.repo.CountProducts)
	ordersCh := run(uc.repo.CountOrders)
	recentCh := run(func(ctx context.Context) (int64, error) {
		return uc.repo.CountOrdersSince(ctx, now.Add(-recentOrdersWindow))
	})

	users := <-usersCh
	products := <-productsCh
	orders := <-ordersCh
	recent := <-recentCh

	if users.err != nil {
		return nil, fmt.Errorf("analytics: usuarios: %w", users.err)
	}
	if products.err != nil {
		return nil, fmt.Errorf("analytics: productos: %w", products.err)
	}
	if orders.err != nil {
		return nil, fmt.Errorf("analytics: órdenes: %w", orders.err)
	}
	if recent.err != nil {
		return nil, fmt.Errorf("analytics: órdenes recientes: %w", recent.err)
	}

	return &dto.AnalyticsSummaryDTO{
		TotalUsers:    users.n,
		TotalProducts: products.n,
		TotalOrders:   orders.n,
		RecentOrders:  recent.n,
		GeneratedAt:   now,
	}, nil
}

// ReportPDF genera el resumen como PDF. Sin latencia artificial: es una exportación.
func (uc *AnalyticsUseCase) ReportPDF(ctx context.Context) ([]byte, error) {
	if uc.renderer == nil {
		return nil, fmt.Errorf("analytics: renderer PDF no configurado")
	}
	summary, err := uc.collect(ctx)
	if err != nil {
		return nil, err
	}
	return uc.renderer.RenderAnalyticsReport(ctx, "Analytics report", ports.AnalyticsReport{
		Service:       uc.service,
		Version:       uc.version,
		TotalUsers:    summary.TotalUsers,
		TotalProducts: summary.TotalProducts,
		TotalOrders:   summary.TotalOrders,
		RecentOrders:  summary.RecentOrders,
		GeneratedAt:   summary.GeneratedAt,
	})
}
