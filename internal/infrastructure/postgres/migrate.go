package postgres

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5" // registra el esquema pgx5://
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jhoicas/demo-api/pkg/logger"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// NewMigrator construye un *migrate.Migrate con las migraciones embebidas en el binario.
// dsn acepta postgres:// o postgresql://; se traduce al esquema del driver pgx/v5.
func NewMigrator(dsn string, log *logger.Logger) (*migrate.Migrate, error) {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("migraciones embebidas: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, migrateURL(dsn))
	if err != nil {
		return nil, fmt.Errorf("inicializar migrate: %w", err)
	}
	if log != nil {
		m.Log = migrateLogger{log: log}
	}
	return m, nil
}

// Migrate aplica todas las migraciones pendientes. ErrNoChange no es error.
func Migrate(dsn string, log *logger.Logger) error {
	m, err := NewMigrator(dsn, log)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

// migrateURL reemplaza el esquema postgres:// por pgx5://.
func migrateURL(dsn string) string {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if strings.HasPrefix(dsn, prefix) {
			return "pgx5://" + strings.TrimPrefix(dsn, prefix)
		}
	}
	return dsn
}

// migrateLogger adapta el logger de la app a migrate.Logger.
type migrateLogger struct {
	log *logger.Logger
}

func (l migrateLogger) Printf(format string, v ...interface{}) {
	l.log.Printf(strings.TrimSpace(format), v...)
}

func (l migrateLogger) Verbose() bool { return false }
