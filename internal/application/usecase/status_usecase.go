package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/demo-api/internal/application/chaos"
	"github.com/jhoicas/demo-api/internal/application/dto"
	"github.com/jhoicas/demo-api/internal/domain/repository"
)

const healthPingTimeout = 2 * time.Second

// StatusUseCase health check y endpoint lento para pruebas de timeouts.
type StatusUseCase struct {
	store          repository.Pinger
	cacheConnected bool
	policy         chaos.Policy
	service        string
	version        string
}

// NewStatusUseCase construye el caso de uso. cacheConnected refleja si el cliente de
// caché se pudo construir al arrancar; no es una verificación en vivo.
func NewStatusUseCase(store repository.Pinger, cacheConnected bool, policy chaos.Policy, service, version string) *StatusUseCase {
	return &StatusUseCase{
		store:          store,
		cacheConnected: cacheConnected,
		policy:         policy,
		service:        service,
		version:        version,
	}
}

// Health nunca falla; los problemas del store se reflejan en el campo Database.
func (uc *StatusUseCase) Health(ctx context.Context) dto.HealthResponse {
	resp := dto.HealthResponse{
		Status:    "healthy",
		Service:   uc.service,
		Timestamp: time.Now().UTC(),
		Version:   uc.version,
		Database:  dto.StatusDisconnected,
		Redis:     dto.StatusDisconnected,
	}

	pingCtx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()
	if uc.store != nil && uc.store.Ping(pingCtx) == nil {
		resp.Database = dto.StatusConnected
	}
	if uc.cacheConnected {
		resp.Redis = dto.StatusConnected
	}
	return resp
}

// Slow duerme entre 2 y 5 segundos (según la política) antes de responder.
func (uc *StatusUseCase) Slow(ctx context.Context) (*dto.SlowResponse, error) {
	d, err := uc.policy.Delay(ctx, chaos.SlowEndpoint)
	if err != nil {
		return nil, err
	}
	return &dto.SlowResponse{
		Message:      "This endpoint is intentionally slow",
		DelaySeconds: d.Seconds(),
	}, nil
}
