package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/demo-api/internal/application/chaos"
	"github.com/jhoicas/demo-api/internal/application/dto"
	"github.com/jhoicas/demo-api/internal/domain"
	"github.com/jhoicas/demo-api/internal/domain/entity"
	"github.com/jhoicas/demo-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ProductUseCase listado filtrado del catálogo.
type ProductUseCase struct {
	repo   repository.ProductRepository
	policy chaos.Policy
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, policy chaos.Policy) *ProductUseCase {
	return &ProductUseCase{repo: repo, policy: policy}
}

// List aplica los filtros de forma conjuntiva. Si la política dispara
// devuelve domain.ErrSimulatedUnavailable.
func (uc *ProductUseCase) List(ctx context.Context, in dto.ListProductsRequest) ([]dto.ProductResponse, error) {
	if _, err := uc.policy.Delay(ctx, chaos.RequestLatency); err != nil {
		return nil, err
	}
	if uc.policy.Trip() {
		return nil, domain.ErrSimulatedUnavailable
	}

	filter, err := parseProductFilter(in)
	if err != nil {
		return nil, err
	}

	products, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

func parseProductFilter(in dto.ListProductsRequest) (repository.ProductFilter, error) {
	f := repository.ProductFilter{Category: strings.TrimSpace(in.Category)}
	var err error
	if f.MinPrice, err = parsePrice("min_price", in.MinPrice); err != nil {
		return f, err
	}
	if f.MaxPrice, err = parsePrice("max_price", in.MaxPrice); err != nil {
		return f, err
	}
	return f, nil
}

func parsePrice(name, raw string) (*decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a number", domain.ErrInvalidInput, name)
	}
	return &d, nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price.InexactFloat64(),
		Category:  p.Category,
		Stock:     p.Stock,
		CreatedAt: p.CreatedAt,
	}
}
