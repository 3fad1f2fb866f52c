package main

import (
	"context"
	"fmt"

	"mgnrega-dash/internal/bootstrap"
	"mgnrega-dash/internal/database"
	"mgnrega-dash/internal/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage schema migrations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations (or ensure indexes on a document store)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, func(ctx context.Context, st store.Store, logr *zap.Logger) error {
				if _, ok := st.(*store.Relational); ok {
					if _, err := bootstrap.RequireMigratable(st); err != nil {
						return err
					}
				}
				return bootstrap.Migrate(ctx, st, logr)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, func(ctx context.Context, st store.Store, logr *zap.Logger) error {
				rel, err := bootstrap.RequireMigratable(st)
				if err != nil {
					return err
				}
				return database.MigrateDown(ctx, rel.DB(), logr)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the current migration version",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, func(ctx context.Context, st store.Store, logr *zap.Logger) error {
				rel, err := relational(st)
				if err != nil {
					return err
				}
				version, dirty, err := database.MigrateVersion(ctx, rel.DB(), logr)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", version, dirty)
				return nil
			})
		},
	})

	return cmd
}
