package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/demo-api/internal/application/chaos"
	"github.com/jhoicas/demo-api/internal/application/dto"
	"github.com/jhoicas/demo-api/internal/domain"
	"github.com/jhoicas/demo-api/internal/domain/entity"
	"github.com/jhoicas/demo-api/internal/domain/repository"
)

// OrderTxRunner ejecuta fn con repositorios atados a una misma transacción.
type OrderTxRunner interface {
	RunOrder(ctx context.Context, fn func(
		userRepo repository.UserRepository,
		orderRepo repository.OrderRepository,
	) error) error
}

// OrderUseCase alta de órdenes con "procesamiento de pago" simulado.
type OrderUseCase struct {
	tx     OrderTxRunner
	policy chaos.Policy
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(tx OrderTxRunner, policy chaos.Policy) *OrderUseCase {
	return &OrderUseCase{tx: tx, policy: policy}
}

// Create registra una orden confirmada.
//
// Secuencia: latencia de request → latencia de pago → falla de pago simulada (402)
// → validación del body → existencia del usuario (404) → persistencia.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if _, err := uc.policy.Delay(ctx, chaos.RequestLatency); err != nil {
		return nil, err
	}
	if _, err := uc.policy.Delay(ctx, chaos.PaymentLatency); err != nil {
		return nil, err
	}
	if uc.policy.Trip() {
		return nil, domain.ErrSimulatedPaymentFailure
	}

	switch {
	case in.UserID == nil:
		return nil, fmt.Errorf("%w: userId is required", domain.ErrInvalidInput)
	case in.Total == nil:
		return nil, fmt.Errorf("%w: total is required", domain.ErrInvalidInput)
	}

	order := &entity.Order{
		UserID: *in.UserID,
		Total:  *in.Total,
		Status: entity.OrderStatusConfirmed,
	}
	err := uc.tx.RunOrder(ctx, func(userRepo repository.UserRepository, orderRepo repository.OrderRepository) error {
		user, err := userRepo.GetByID(ctx, order.UserID)
		if err != nil {
			return err
		}
		if user == nil {
			return domain.ErrUserNotFound
		}
		return orderRepo.Create(ctx, order)
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	return &dto.OrderResponse{
		ID:        o.ID,
		UserID:    o.UserID,
		Total:     o.Total.InexactFloat64(),
		Status:    o.Status,
		CreatedAt: o.CreatedAt,
	}
}
