package main

import (
	"context"
	"io"
	"strconv"

	"mgnrega-dash/internal/models"
	"mgnrega-dash/internal/services"
	"mgnrega-dash/internal/store"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newDistrictsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "districts",
		Short: "List districts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, func(ctx context.Context, st store.Store, logr *zap.Logger) error {
				renderDistricts(cmd.OutOrStdout(), services.NewDashboardService(st, logr).Districts(ctx))
				return nil
			})
		},
	}
}

func newComparisonCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "comparison",
		Short: "Show the latest metric of every district and the state summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, func(ctx context.Context, st store.Store, logr *zap.Logger) error {
				svc := services.NewDashboardService(st, logr)
				renderComparison(cmd.OutOrStdout(), svc.Comparison(ctx), svc.StateStatistics(ctx))
				return nil
			})
		},
	}
}

func renderDistricts(w io.Writer, districts []models.District) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Name", "Name (kn)", "Lat", "Lng"})
	for _, d := range districts {
		t.AppendRow(table.Row{d.ID, d.NameEN, d.NameKN, d.Coordinates[0], d.Coordinates[1]})
	}
	t.Render()
}

func renderComparison(w io.Writer, rows []models.DistrictComparison, stats models.StateStatistics) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "District", "Index", "Category", "Job days", "Households"})
	for _, row := range rows {
		index := "-"
		if row.PerformanceIndex != nil {
			index = strconv.FormatFloat(*row.PerformanceIndex, 'f', 2, 64)
		}
		category := services.Classify(&models.MonthlyMetric{PerformanceIndex: row.PerformanceIndex})
		t.AppendRow(table.Row{row.DistrictID, row.NameEN, index, category,
			strconv.FormatFloat(row.TotalJobDays, 'f', 0, 64), row.HouseholdsCovered})
	}
	t.AppendFooter(table.Row{"", "State", strconv.FormatFloat(stats.AvgPerformance, 'f', 2, 64), "",
		strconv.FormatFloat(stats.TotalJobDays, 'f', 0, 64), stats.TotalHouseholds})
	t.Render()
}
