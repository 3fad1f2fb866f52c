package services

import (
	"context"
	"errors"

	"mgnrega-dash/internal/metrics"
	"mgnrega-dash/internal/models"
	"mgnrega-dash/internal/seed"
	"mgnrega-dash/internal/store"

	"go.uber.org/zap"
)

// ErrDistrictNotFound is returned when a district id cannot be resolved.
var ErrDistrictNotFound = errors.New("district not found")

// DashboardService answers the dashboard reads. Store failures never reach callers:
// lists degrade to empty, aggregates to zero values and lookups to ErrDistrictNotFound.
type DashboardService struct {
	store store.Store
	logr  *zap.Logger
}

func NewDashboardService(st store.Store, logr *zap.Logger) *DashboardService {
	return &DashboardService{store: st, logr: logr}
}

// Districts returns every district, or an empty list when the store fails.
func (s *DashboardService) Districts(ctx context.Context) []models.District {
	districts, err := s.store.ListDistricts(ctx)
	if err != nil {
		s.degraded("list_districts", err)
		return []models.District{}
	}
	return districts
}

// DistrictPerformance returns a district with its latest metric, trend and category.
func (s *DashboardService) DistrictPerformance(ctx context.Context, id string) (*models.DistrictPerformance, error) {
	district, err := s.store.GetDistrict(ctx, id)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.degraded("get_district", err, zap.String("district_id", id))
		}
		return nil, ErrDistrictNotFound
	}

	perf := &models.DistrictPerformance{
		District: *district,
		Trend:    []models.MonthlyMetric{},
	}

	latest, err := s.store.LatestMetric(ctx, id)
	switch {
	case err == nil:
		perf.LatestMetrics = latest
	case !errors.Is(err, store.ErrNotFound):
		s.degraded("latest_metric", err, zap.String("district_id", id))
	}

	trend, err := s.store.TrendMetrics(ctx, id, store.TrendLength)
	if err != nil {
		s.degraded("trend_metrics", err, zap.String("district_id", id))
	} else {
		perf.Trend = trend
	}

	perf.PerformanceCategory = Classify(perf.LatestMetrics)
	return perf, nil
}

// StateStatistics aggregates the latest metric of every district.
func (s *DashboardService) StateStatistics(ctx context.Context) models.StateStatistics {
	return ComputeStateStatistics(s.latestPerDistrict(ctx))
}

// Comparison returns the latest snapshot of every district that has metrics. Names
// come from the store, then the reference set, and fall back to the district id.
func (s *DashboardService) Comparison(ctx context.Context) []models.DistrictComparison {
	latest := s.latestPerDistrict(ctx)
	if len(latest) == 0 {
		return []models.DistrictComparison{}
	}

	names := make(map[string]models.District)
	for _, d := range s.Districts(ctx) {
		names[d.ID] = d
	}

	out := make([]models.DistrictComparison, 0, len(latest))
	for _, m := range latest {
		row := models.DistrictComparison{
			DistrictID:        m.DistrictID,
			NameEN:            m.DistrictID,
			NameKN:            m.DistrictID,
			PerformanceIndex:  m.PerformanceIndex,
			TotalJobDays:      m.TotalJobDays,
			HouseholdsCovered: m.HouseholdsCovered,
		}

		d, ok := names[m.DistrictID]
		if !ok {
			d, ok = seed.DistrictByID(m.DistrictID)
		}
		if ok {
			row.NameEN = d.NameEN
			row.NameKN = d.NameKN
		}

		out = append(out, row)
	}
	return out
}

func (s *DashboardService) latestPerDistrict(ctx context.Context) []models.MonthlyMetric {
	latest, err := s.store.LatestPerDistrict(ctx)
	if err != nil {
		s.degraded("latest_per_district", err)
		return nil
	}
	return latest
}

func (s *DashboardService) degraded(op string, err error, fields ...zap.Field) {
	metrics.DegradedReadsTotal.WithLabelValues(op).Inc()
	s.logr.Error("store read failed, serving degraded response",
		append([]zap.Field{zap.String("operation", op), zap.Error(err)}, fields...)...)
}
