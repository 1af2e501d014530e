// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"folio/internal/database"
	"folio/internal/memstore"
)

func (a *app) migrateCmd() *cobra.Command {
	var down bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pool, err := database.Connect(cmd.Context(), a.cfg.DSN())
			if err != nil {
				return err
			}
			defer pool.Close()

			if down {
				if err := database.Rollback(pool); err != nil {
					return fmt.Errorf("rollback: %w", err)
				}
				slog.Info("last migration rolled back")
				return nil
			}
			if err := database.Migrate(pool); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			slog.Info("migrations applied")
			return nil
		},
	}
	cmd.Flags().BoolVar(&down, "down", false, "roll back the most recent migration")
	return cmd
}

func (a *app) seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Copy the fallback dataset into empty database tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			pool, err := database.Connect(ctx, a.cfg.DSN())
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := database.Migrate(pool); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			data, err := memstore.New()
			if err != nil {
				return fmt.Errorf("load fallback data: %w", err)
			}
			seeded, err := database.Seed(ctx, pool, data)
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			slog.Info("seed complete", "tables", seeded)
			return nil
		},
	}
}
