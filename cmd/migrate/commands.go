package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"

	"github.com/jhoicas/demo-api/internal/infrastructure/postgres"
	"github.com/jhoicas/demo-api/pkg/config"
	"github.com/jhoicas/demo-api/pkg/logger"
)

// migrator subconjunto de *migrate.Migrate usado por los comandos.
type migrator interface {
	Up() error
	Steps(n int) error
	Version() (version uint, dirty bool, err error)
	Force(version int) error
	Close() (source error, database error)
}

// openMigrator se reemplaza en tests.
var openMigrator = func() (migrator, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: cfg.App.Name + "-migrate"})
	return postgres.NewMigrator(cfg.DB.ConnectionString(), log)
}

var rootCmd = &cobra.Command{
	Use:          "migrate",
	Short:        "Manage the database schema",
	SilenceUsage: true,
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withMigrator(func(m migrator) error {
			err := m.Up()
			if errors.Is(err, migrate.ErrNoChange) {
				cmd.Println("no pending migrations")
				return nil
			}
			if err != nil {
				return err
			}
			cmd.Println("migrations applied")
			return nil
		})
	},
}

var downCmd = &cobra.Command{
	Use:   "down [N]",
	Short: "Roll back the last N migrations (default 1)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n := 1
		if len(args) == 1 {
			v, err := strconv.Atoi(args[0])
			if err != nil || v <= 0 {
				return fmt.Errorf("N must be a positive integer, got %q", args[0])
			}
			n = v
		}
		return withMigrator(func(m migrator) error {
			if err := m.Steps(-n); err != nil && !errors.Is(err, migrate.ErrNoChange) {
				return err
			}
			cmd.Printf("rolled back %d migration(s)\n", n)
			return nil
		})
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current schema version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withMigrator(func(m migrator) error {
			v, dirty, err := m.Version()
			if errors.Is(err, migrate.ErrNilVersion) {
				cmd.Println("no migrations applied")
				return nil
			}
			if err != nil {
				return err
			}
			cmd.Printf("version %d (dirty=%t)\n", v, dirty)
			return nil
		})
	},
}

var forceCmd = &cobra.Command{
	Use:   "force V",
	Short: "Set the schema version without running migrations",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("V must be an integer, got %q", args[0])
		}
		return withMigrator(func(m migrator) error {
			if err := m.Force(v); err != nil {
				return err
			}
			cmd.Printf("forced version %d\n", v)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(upCmd, downCmd, versionCmd, forceCmd)
}

func withMigrator(fn func(m migrator) error) error {
	m, err := openMigrator()
	if err != nil {
		return err
	}
	defer m.Close()
	return fn(m)
}
