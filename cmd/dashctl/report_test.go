package main

import (
	"bytes"
	"testing"

	"mgnrega-dash/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestRenderComparison(t *testing.T) {
	index := 92.5
	best := "KA01"
	rows := []models.DistrictComparison{
		{DistrictID: "KA01", NameEN: "Bagalkot", PerformanceIndex: &index, TotalJobDays: 120000, HouseholdsCovered: 9000},
		{DistrictID: "7", NameEN: "Legacy district", TotalJobDays: 500, HouseholdsCovered: 20},
	}
	stats := models.StateStatistics{TotalJobDays: 120500, TotalHouseholds: 9020, AvgPerformance: 92.5, BestDistrict: &best}

	var buf bytes.Buffer
	renderComparison(&buf, rows, stats)
	out := buf.String()

	assert.Contains(t, out, "Bagalkot")
	assert.Contains(t, out, "92.50")
	assert.Contains(t, out, "high")
	assert.Contains(t, out, "Legacy district")
	assert.Contains(t, out, "medium")
	assert.Contains(t, out, "120500")
}

func TestRenderDistricts(t *testing.T) {
	var buf bytes.Buffer
	renderDistricts(&buf, []models.District{{ID: "KA22", NameEN: "Mysore", NameKN: "ಮೈಸೂರು", Coordinates: models.DefaultCoordinates}})

	assert.Contains(t, buf.String(), "KA22")
	assert.Contains(t, buf.String(), "Mysore")
}

func TestRootCommandWiresSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"migrate", "seed", "layout", "districts", "comparison"} {
		assert.True(t, names[want], want)
	}
}
