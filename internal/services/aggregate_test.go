package services

import (
	"testing"

	"mgnrega-dash/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func metric(district string, index *float64, jobDays float64, households int64, wages float64) models.MonthlyMetric {
	return models.MonthlyMetric{
		DistrictID:        district,
		TotalJobDays:      jobDays,
		HouseholdsCovered: households,
		WagesPaid:         wages,
		PerformanceIndex:  index,
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		m    *models.MonthlyMetric
		want string
	}{
		{"nil metric", nil, models.CategoryMedium},
		{"nil index", &models.MonthlyMetric{}, models.CategoryMedium},
		{"exactly high threshold", &models.MonthlyMetric{PerformanceIndex: ptr(90)}, models.CategoryHigh},
		{"above high threshold", &models.MonthlyMetric{PerformanceIndex: ptr(104.5)}, models.CategoryHigh},
		{"just below high threshold", &models.MonthlyMetric{PerformanceIndex: ptr(89.99)}, models.CategoryMedium},
		{"exactly low threshold", &models.MonthlyMetric{PerformanceIndex: ptr(75)}, models.CategoryMedium},
		{"just below low threshold", &models.MonthlyMetric{PerformanceIndex: ptr(74.99)}, models.CategoryLow},
		{"zero", &models.MonthlyMetric{PerformanceIndex: ptr(0)}, models.CategoryLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.m))
		})
	}
}

func TestComputeStateStatistics_Empty(t *testing.T) {
	stats := ComputeStateStatistics(nil)

	assert.Zero(t, stats.TotalJobDays)
	assert.Zero(t, stats.TotalHouseholds)
	assert.Zero(t, stats.TotalWages)
	assert.Zero(t, stats.AvgPerformance)
	assert.Nil(t, stats.BestDistrict)
	assert.Nil(t, stats.WorstDistrict)
}

func TestComputeStateStatistics_SumsAndRanking(t *testing.T) {
	latest := []models.MonthlyMetric{
		metric("KA01", ptr(80), 1000, 100, 200000),
		metric("KA02", ptr(95.5), 2000, 200, 400000),
		metric("KA03", ptr(61.25), 500, 50, 100000),
	}

	stats := ComputeStateStatistics(latest)

	assert.Equal(t, 3500.0, stats.TotalJobDays)
	assert.Equal(t, int64(350), stats.TotalHouseholds)
	assert.Equal(t, 700000.0, stats.TotalWages)
	assert.Equal(t, 78.92, stats.AvgPerformance)
	require.NotNil(t, stats.BestDistrict)
	require.NotNil(t, stats.WorstDistrict)
	assert.Equal(t, "KA02", *stats.BestDistrict)
	assert.Equal(t, "KA03", *stats.WorstDistrict)
}

func TestComputeStateStatistics_TiesKeepFirst(t *testing.T) {
	latest := []models.MonthlyMetric{
		metric("KA01", ptr(85), 1, 1, 1),
		metric("KA02", ptr(85), 1, 1, 1),
	}

	stats := ComputeStateStatistics(latest)

	require.NotNil(t, stats.BestDistrict)
	require.NotNil(t, stats.WorstDistrict)
	assert.Equal(t, "KA01", *stats.BestDistrict)
	assert.Equal(t, "KA01", *stats.WorstDistrict)
	assert.Equal(t, 85.0, stats.AvgPerformance)
}

func TestComputeStateStatistics_NilIndexesOnlyCountInSums(t *testing.T) {
	latest := []models.MonthlyMetric{
		metric("1", nil, 1200, 40, 5000),
		metric("2", ptr(70), 800, 60, 3000),
		metric("3", nil, 100, 10, 1000),
	}

	stats := ComputeStateStatistics(latest)

	assert.Equal(t, 2100.0, stats.TotalJobDays)
	assert.Equal(t, int64(110), stats.TotalHouseholds)
	assert.Equal(t, 9000.0, stats.TotalWages)
	assert.Equal(t, 70.0, stats.AvgPerformance)
	require.NotNil(t, stats.BestDistrict)
	assert.Equal(t, "2", *stats.BestDistrict)
	assert.Equal(t, "2", *stats.WorstDistrict)
}

func TestComputeStateStatistics_AllIndexesMissing(t *testing.T) {
	stats := ComputeStateStatistics([]models.MonthlyMetric{metric("1", nil, 10, 1, 5)})

	assert.Equal(t, 10.0, stats.TotalJobDays)
	assert.Zero(t, stats.AvgPerformance)
	assert.Nil(t, stats.BestDistrict)
	assert.Nil(t, stats.WorstDistrict)
}
