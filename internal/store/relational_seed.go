package store

import (
	"context"
	"fmt"

	"mgnrega-dash/internal/models"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect"
)

// seedLockKey is the Postgres advisory lock id shared by every seeding process.
const seedLockKey int64 = 0x6d676e72 // "mgnr"

// Seed runs fn inside one transaction. On Postgres the transaction first takes a
// transaction-scoped advisory lock, so concurrent seeders queue behind each other and
// see each other's inserts.
func (s *Relational) Seed(ctx context.Context, fn func(ctx context.Context, tx SeedTx) error) error {
	layout := s.Layout()
	if layout.HasLegacy() {
		return ErrLegacyLayout
	}
	if layout.Districts == LayoutMissing || layout.Metrics == LayoutMissing {
		return ErrSchemaMissing
	}

	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if s.db.Dialect().Name() == dialect.PG {
			if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock(?)", seedLockKey); err != nil {
				return fmt.Errorf("acquire seed lock: %w", err)
			}
		}
		return fn(ctx, relationalSeedTx{db: tx})
	})
}

type relationalSeedTx struct {
	db bun.IDB
}

func (t relationalSeedTx) CountDistricts(ctx context.Context) (int, error) {
	return t.db.NewSelect().Model((*districtRow)(nil)).Count(ctx)
}

func (t relationalSeedTx) CountMetrics(ctx context.Context) (int, error) {
	return t.db.NewSelect().Model((*metricRow)(nil)).Count(ctx)
}

func (t relationalSeedTx) InsertDistricts(ctx context.Context, districts []models.District) error {
	if len(districts) == 0 {
		return nil
	}

	rows := make([]districtRow, 0, len(districts))
	for _, d := range districts {
		lat, lng := d.Coordinates[0], d.Coordinates[1]
		rows = append(rows, districtRow{
			ID:        d.ID,
			NameEN:    d.NameEN,
			NameKN:    d.NameKN,
			Feature:   d.Feature,
			Latitude:  &lat,
			Longitude: &lng,
		})
	}

	_, err := t.db.NewInsert().Model(&rows).Exec(ctx)
	return err
}

func (t relationalSeedTx) InsertMetrics(ctx context.Context, metrics []models.MonthlyMetric) error {
	if len(metrics) == 0 {
		return nil
	}

	rows := make([]metricRow, 0, len(metrics))
	for _, m := range metrics {
		rows = append(rows, metricRow{
			ID:                m.ID,
			DistrictID:        m.DistrictID,
			Year:              m.Year,
			Month:             m.Month,
			TotalJobDays:      m.TotalJobDays,
			TargetJobDays:     m.TargetJobDays,
			HouseholdsCovered: m.HouseholdsCovered,
			WagesPaid:         m.WagesPaid,
			PerformanceIndex:  m.PerformanceIndex,
			CreatedAt:         m.Timestamp.UTC(),
		})
	}

	_, err := t.db.NewInsert().Model(&rows).Exec(ctx)
	return err
}
