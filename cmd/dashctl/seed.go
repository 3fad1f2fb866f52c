package main

import (
	"context"
	"fmt"

	"mgnrega-dash/internal/bootstrap"
	"mgnrega-dash/internal/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert reference districts and sample metrics into empty tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, func(ctx context.Context, st store.Store, logr *zap.Logger) error {
				res, err := bootstrap.Seed(ctx, st, logr)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "districts inserted: %d, metrics inserted: %d, skipped: %t\n",
					res.DistrictsInserted, res.MetricsInserted, res.Skipped)
				return nil
			})
		},
	}
}

func newLayoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "layout",
		Short: "Print the detected table layout of a relational store",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, func(ctx context.Context, st store.Store, logr *zap.Logger) error {
				rel, err := relational(st)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), rel.Layout().String())
				return nil
			})
		},
	}
}
