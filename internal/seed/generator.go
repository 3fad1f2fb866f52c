package seed

import (
	"math"
	"math/rand/v2"
	"time"

	"mgnrega-dash/internal/models"

	"github.com/google/uuid"
)

// Sampling bounds of the synthetic demonstration data.
const (
	SampleMonths = 6
	monthSpan    = 30 * 24 * time.Hour

	MinTarget     = 80000
	MaxTarget     = 150000
	MinHouseholds = 5000
	MaxHouseholds = 15000
	MinWageRate   = 180.0
	MaxWageRate   = 220.0
)

// Generator produces noisy monthly metrics for demonstration when the store is empty.
type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

// NewGenerator returns a generator. A nil rng uses a randomly seeded source and a nil
// clock uses time.Now.
func NewGenerator(rng *rand.Rand, now func() time.Time) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if now == nil {
		now = time.Now
	}
	return &Generator{rng: rng, now: now}
}

// Generate returns SampleMonths records per district. Month i is taken i*30 days before
// now, so two records can share a calendar month near month boundaries.
func (g *Generator) Generate(districts []models.District) []models.MonthlyMetric {
	current := g.now().UTC()
	metrics := make([]models.MonthlyMetric, 0, len(districts)*SampleMonths)

	for _, d := range districts {
		for offset := 0; offset < SampleMonths; offset++ {
			at := current.Add(-time.Duration(offset) * monthSpan)
			metrics = append(metrics, g.record(d.ID, at))
		}
	}
	return metrics
}

func (g *Generator) record(districtID string, at time.Time) models.MonthlyMetric {
	target := g.intBetween(MinTarget, MaxTarget)
	// 0.6x..1.1x of target, rounded inwards so both bounds hold exactly
	achieved := g.intBetween((6*target+9)/10, (11*target)/10)
	households := g.intBetween(MinHouseholds, MaxHouseholds)
	rate := MinWageRate + g.rng.Float64()*(MaxWageRate-MinWageRate)

	performance := PerformanceIndex(float64(achieved), float64(target))

	return models.MonthlyMetric{
		ID:                uuid.NewString(),
		DistrictID:        districtID,
		Year:              at.Year(),
		Month:             int(at.Month()),
		TotalJobDays:      float64(achieved),
		TargetJobDays:     float64(target),
		HouseholdsCovered: int64(households),
		WagesPaid:         float64(achieved) * rate,
		PerformanceIndex:  &performance,
		Timestamp:         at,
	}
}

// intBetween draws uniformly from [lo, hi].
func (g *Generator) intBetween(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}

// PerformanceIndex is achieved/target as a percentage rounded to two decimals.
func PerformanceIndex(achieved, target float64) float64 {
	if target == 0 {
		return 0
	}
	return math.Round(achieved/target*100*100) / 100
}
