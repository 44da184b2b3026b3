package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jhoicas/demo-api/internal/application/chaos"
	"github.com/jhoicas/demo-api/internal/application/dto"
	"github.com/jhoicas/demo-api/internal/application/ports"
	"github.com/jhoicas/demo-api/internal/domain"
	"github.com/jhoicas/demo-api/internal/domain/entity"
	"github.com/jhoicas/demo-api/internal/domain/repository"
	"github.com/jhoicas/demo-api/pkg/logger"
)

// UserUseCase listado y alta de usuarios con latencia y fallas simuladas.
type UserUseCase struct {
	repo   repository.UserRepository
	cache  ports.CacheWriter // opcional
	policy chaos.Policy
	log    *logger.Logger
}

// NewUserUseCase construye el caso de uso. cache puede ser nil.
func NewUserUseCase(repo repository.UserRepository, cache ports.CacheWriter, policy chaos.Policy, log *logger.Logger) *UserUseCase {
	return &UserUseCase{repo: repo, cache: cache, policy: policy, log: log}
}

// List devuelve los usuarios, filtrando por rol exacto si role no está vacío.
// Si la política dispara devuelve domain.ErrSimulatedDBFailure.
func (uc *UserUseCase) List(ctx context.Context, role string) ([]dto.UserResponse, error) {
	if _, err := uc.policy.Delay(ctx, chaos.RequestLatency); err != nil {
		return nil, err
	}
	if uc.policy.Trip() {
		return nil, domain.ErrSimulatedDBFailure
	}

	users, err := uc.repo.List(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("listar usuarios: %w", err)
	}

	uc.cacheCount(ctx, len(users))

	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

// cacheCount escribe el conteo en la caché auxiliar. Best-effort: el error solo se registra.
func (uc *UserUseCase) cacheCount(ctx context.Context, n int) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Set(ctx, ports.UsersCacheKey, strconv.Itoa(n), ports.UsersCacheTTL); err != nil {
		uc.log.Debug().Err(err).Msg("escritura en caché ignorada")
	}
}

// Create valida y persiste un usuario. Role vacío se guarda como "user".
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.CreateUserResponse, error) {
	if _, err := uc.policy.Delay(ctx, chaos.RequestLatency); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	switch {
	case name == "":
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	case email == "":
		return nil, fmt.Errorf("%w: email is required", domain.ErrInvalidInput)
	}
	role := strings.TrimSpace(in.Role)
	if role == "" {
		role = entity.RoleUser
	}

	user := &entity.User{Name: name, Email: email, Role: role}
	// El error del store viaja sin envolver: el handler lo devuelve tal cual (400).
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return &dto.CreateUserResponse{ID: user.ID, Message: "User created successfully"}, nil
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		LastLogin: u.LastLogin,
	}
}
