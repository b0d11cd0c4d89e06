package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/quotations-service/internal/platform/config"
	"github.com/jsamuelsen/quotations-service/internal/platform/logging"
)

// rootOptions is shared by every subcommand. cfg and logger are filled in by
// PersistentPreRunE.
type rootOptions struct {
	profile   string
	configDir string

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "quotations-service",
		Short:         "Quotation submission and review API",
		Version:       fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, BuildTime),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return opts.load()
		},
	}

	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	root.PersistentFlags().StringVarP(&opts.profile, "profile", "p", profile,
		"configuration profile, loaded from <config-dir>/<profile>.yaml")
	root.PersistentFlags().StringVar(&opts.configDir, "config-dir", "configs", "directory holding base.yaml and profile files")

	serve := newServeCommand(opts)
	root.RunE = serve.RunE

	root.AddCommand(
		serve,
		newMigrateCommand(opts),
		newSeedCommand(opts),
	)

	return root
}

// load reads and validates the configuration, then installs the process logger.
func (o *rootOptions) load() error {
	cfg, err := config.LoadFrom(o.configDir, o.profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	o.cfg = cfg
	o.logger = logger

	return nil
}
