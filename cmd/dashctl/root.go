// Command dashctl runs maintenance tasks against the dashboard store: migrations,
// seeding, layout inspection and read-only reports.
package main

import (
	"context"
	"fmt"

	"mgnrega-dash/internal/bootstrap"
	"mgnrega-dash/internal/config"
	"mgnrega-dash/internal/logger"
	"mgnrega-dash/internal/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// databaseURL overrides DATABASE_URL for a single invocation.
	databaseURL string

	rootCmd = &cobra.Command{
		Use:           "dashctl",
		Short:         "Maintenance CLI for the MGNREGA dashboard store",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
)

// Execute runs the root command
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&databaseURL, "database-url", "", "store URL (default: DATABASE_URL, then MONGO_URL)")

	rootCmd.AddCommand(newMigrateCommand())
	rootCmd.AddCommand(newSeedCommand())
	rootCmd.AddCommand(newLayoutCommand())
	rootCmd.AddCommand(newDistrictsCommand())
	rootCmd.AddCommand(newComparisonCommand())
}

// withStore loads config, opens the store and hands it to fn, closing it afterwards.
func withStore(cmd *cobra.Command, fn func(ctx context.Context, st store.Store, logr *zap.Logger) error) error {
	cfg := config.Load()
	if databaseURL != "" {
		cfg.DatabaseURL = databaseURL
	}
	logr := logger.New(cfg)
	defer logr.Sync()

	ctx := cmd.Context()
	st, err := bootstrap.OpenStore(ctx, cfg, logr.Logger)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			logr.Warn("failed to close store", zap.Error(err))
		}
	}()

	return fn(ctx, st, logr.Logger)
}

func relational(st store.Store) (*store.Relational, error) {
	rel, ok := st.(*store.Relational)
	if !ok {
		return nil, fmt.Errorf("command requires a relational store")
	}
	return rel, nil
}
