package repository

import "context"

// Pinger verifica que el store responde. Lo usa el endpoint de salud.
type Pinger interface {
	Ping(ctx context.Context) error
}
