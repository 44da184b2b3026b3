package dto

import "time"

// CreateUserRequest entrada para POST /api/users. Role vacío se guarda como "user".
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// CreateUserResponse salida de POST /api/users.
type CreateUserResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// UserResponse salida de un usuario.
type UserResponse struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login"`
}

// StaticUser usuario del servicio mínimo (sin persistencia).
type StaticUser struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
