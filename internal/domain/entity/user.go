package entity

import "time"

// Roles conocidos. Role es texto libre; estas constantes solo nombran los usados por el seed.
const (
	RoleAdmin     = "admin"
	RoleUser      = "user"
	RoleModerator = "moderator"
)

// User representa un usuario de la API demo.
type User struct {
	ID        int64
	Name      string
	Email     string     // único en el store
	Role      string     // "user" si no se indica
	CreatedAt time.Time
	LastLogin *time.Time // nil mientras no haya login (nunca se actualiza en esta API)
}
