package services

import (
	"math"

	"mgnrega-dash/internal/models"
)

// Category thresholds on the performance index.
const (
	HighPerformanceThreshold = 90.0
	LowPerformanceThreshold  = 75.0
)

// Classify labels a metric by its performance index. A missing metric or a metric
// without an index is "medium".
func Classify(m *models.MonthlyMetric) string {
	if m == nil || m.PerformanceIndex == nil {
		return models.CategoryMedium
	}

	switch pi := *m.PerformanceIndex; {
	case pi >= HighPerformanceThreshold:
		return models.CategoryHigh
	case pi < LowPerformanceThreshold:
		return models.CategoryLow
	default:
		return models.CategoryMedium
	}
}

// ComputeStateStatistics aggregates the latest metric of each district. Sums cover
// every metric; the mean and the best/worst ranking only consider metrics that carry
// a performance index. On equal indexes the earlier metric wins.
func ComputeStateStatistics(latest []models.MonthlyMetric) models.StateStatistics {
	var (
		stats       models.StateStatistics
		sumIndex    float64
		indexed     int
		best, worst *models.MonthlyMetric
	)

	for i := range latest {
		m := &latest[i]
		stats.TotalJobDays += m.TotalJobDays
		stats.TotalHouseholds += m.HouseholdsCovered
		stats.TotalWages += m.WagesPaid

		if m.PerformanceIndex == nil {
			continue
		}
		pi := *m.PerformanceIndex
		sumIndex += pi
		indexed++

		if best == nil || pi > *best.PerformanceIndex {
			best = m
		}
		if worst == nil || pi < *worst.PerformanceIndex {
			worst = m
		}
	}

	if indexed > 0 {
		stats.AvgPerformance = round2(sumIndex / float64(indexed))
	}
	if best != nil {
		id := best.DistrictID
		stats.BestDistrict = &id
	}
	if worst != nil {
		id := worst.DistrictID
		stats.WorstDistrict = &id
	}

	return stats
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
