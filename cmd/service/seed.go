package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSeedCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the demo catalog into an empty database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.cfg.Database.Driver != "postgres" {
				return fmt.Errorf("seed: %w; the in-memory store is seeded with seed.on_start", errNotPostgres)
			}

			deps, err := openDependencies(cmd.Context(), opts.cfg, opts.logger)
			if err != nil {
				return err
			}
			defer deps.Close()

			seeded, err := deps.seeder().Seed(cmd.Context())
			if err != nil {
				return fmt.Errorf("seeding demo catalog: %w", err)
			}

			if seeded {
				cmd.Println("demo catalog inserted")
			} else {
				cmd.Println("database already populated, nothing to do")
			}

			return nil
		},
	}
}
