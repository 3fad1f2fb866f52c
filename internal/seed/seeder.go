package seed

import (
	"context"
	"errors"
	"fmt"

	"mgnrega-dash/internal/store"

	"go.uber.org/zap"
)

// Result reports what a seeding run inserted.
type Result struct {
	DistrictsInserted int
	MetricsInserted   int
	Skipped           bool
}

// Seeder inserts the reference districts and sample metrics into an empty store.
type Seeder struct {
	gen  *Generator
	logr *zap.Logger
}

func NewSeeder(gen *Generator, logr *zap.Logger) *Seeder {
	return &Seeder{gen: gen, logr: logr}
}

// Run seeds target under its seed lock. Districts are inserted when the districts table
// is empty and metrics when the metrics table is empty; both checks happen while the
// lock is held. A lock held elsewhere or a legacy layout is reported as a skipped run.
func (s *Seeder) Run(ctx context.Context, target store.Seedable) (Result, error) {
	var res Result

	err := target.Seed(ctx, func(ctx context.Context, tx store.SeedTx) error {
		districts, err := tx.CountDistricts(ctx)
		if err != nil {
			return fmt.Errorf("count districts: %w", err)
		}
		if districts == 0 {
			if err := tx.InsertDistricts(ctx, Districts); err != nil {
				return fmt.Errorf("insert districts: %w", err)
			}
			res.DistrictsInserted = len(Districts)
			s.logr.Info("initialized districts", zap.Int("count", len(Districts)))
		}

		metrics, err := tx.CountMetrics(ctx)
		if err != nil {
			return fmt.Errorf("count metrics: %w", err)
		}
		if metrics == 0 {
			generated := s.gen.Generate(Districts)
			if err := tx.InsertMetrics(ctx, generated); err != nil {
				return fmt.Errorf("insert metrics: %w", err)
			}
			res.MetricsInserted = len(generated)
			s.logr.Info("generated sample metrics", zap.Int("count", len(generated)))
		}
		return nil
	})

	switch {
	case errors.Is(err, store.ErrSeedLocked):
		s.logr.Info("seed lock held by another process, skipping")
		return Result{Skipped: true}, nil
	case errors.Is(err, store.ErrLegacyLayout):
		s.logr.Warn("legacy table layout detected, skipping seed")
		return Result{Skipped: true}, nil
	case err != nil:
		return Result{}, err
	}
	return res, nil
}
