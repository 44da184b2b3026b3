package repository

import (
	"context"

	"github.com/jhoicas/demo-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// Create persiste el usuario y asigna ID y CreatedAt.
	Create(ctx context.Context, user *entity.User) error
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	// List devuelve los usuarios ordenados por ID; role vacío no filtra.
	List(ctx context.Context, role string) ([]*entity.User, error)
}
