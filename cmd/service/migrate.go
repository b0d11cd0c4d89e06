package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/quotations-service/internal/adapters/repository/postgres"
	"github.com/jsamuelsen/quotations-service/internal/platform/config"
)

var errNotPostgres = errors.New("migrations need database.driver=postgres")

func newMigrateCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the PostgreSQL schema",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(*cobra.Command, []string) error {
				url, err := databaseURL(opts.cfg)
				if err != nil {
					return err
				}
				return migrateUp(url, opts.logger)
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back every migration",
			Args:  cobra.NoArgs,
			RunE: func(*cobra.Command, []string) error {
				return withMigrator(opts.cfg, func(m *postgres.Migrator) error {
					if err := m.Down(); err != nil {
						return fmt.Errorf("rolling back migrations: %w", err)
					}
					opts.logger.Info("migrations rolled back")
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the current schema version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withMigrator(opts.cfg, func(m *postgres.Migrator) error {
					version, dirty, err := m.Version()
					if err != nil {
						return fmt.Errorf("reading schema version: %w", err)
					}
					cmd.Printf("version %d (dirty: %t)\n", version, dirty)
					return nil
				})
			},
		},
	)

	return cmd
}

func databaseURL(cfg *config.Config) (string, error) {
	if cfg.Database.Driver != "postgres" {
		return "", errNotPostgres
	}

	return cfg.Database.URL, nil
}

func withMigrator(cfg *config.Config, fn func(*postgres.Migrator) error) error {
	url, err := databaseURL(cfg)
	if err != nil {
		return err
	}

	m, err := postgres.NewMigrator(url)
	if err != nil {
		return fmt.Errorf("preparing migrations: %w", err)
	}
	defer m.Close()

	return fn(m)
}

func migrateUp(url string, logger *slog.Logger) error {
	m, err := postgres.NewMigrator(url)
	if err != nil {
		return fmt.Errorf("preparing migrations: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}

	version, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}
	logger.Info("database schema up to date", slog.Uint64("version", uint64(version)))

	return nil
}
