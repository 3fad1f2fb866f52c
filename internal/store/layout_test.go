package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"go.uber.org/zap"
)

func TestDetectLayout(t *testing.T) {
	ctx := context.Background()

	t.Run("missing", func(t *testing.T) {
		assert.Equal(t, Layout{}, DetectLayout(ctx, newSQLite(t)))
	})

	t.Run("canonical", func(t *testing.T) {
		s := newCanonical(t)
		assert.Equal(t, Layout{Districts: LayoutCanonical, Metrics: LayoutCanonical}, DetectLayout(ctx, s.DB()))
	})

	t.Run("legacy", func(t *testing.T) {
		s := newLegacy(t)
		layout := DetectLayout(ctx, s.DB())
		assert.Equal(t, Layout{Districts: LayoutLegacy, Metrics: LayoutLegacy}, layout)
		assert.True(t, layout.HasLegacy())
	})

	t.Run("mixed and unknown", func(t *testing.T) {
		db := newSQLite(t)
		exec(t, db,
			`CREATE TABLE districts (id TEXT PRIMARY KEY, name_en TEXT)`,
			`CREATE TABLE metrics (id TEXT PRIMARY KEY, district_id TEXT, something_else TEXT)`,
		)
		assert.Equal(t, Layout{Districts: LayoutCanonical, Metrics: LayoutMissing}, DetectLayout(ctx, db))
	})
}

func TestRelational_RedetectAfterMigration(t *testing.T) {
	ctx := context.Background()
	db := newSQLite(t)
	s := NewRelational(ctx, db, zap.NewNop())
	require.Equal(t, "districts=missing metrics=missing", s.Layout().String())

	exec(t, db, legacySchema)

	assert.Equal(t, Layout{Districts: LayoutLegacy, Metrics: LayoutLegacy}, s.Redetect(ctx))
	assert.Equal(t, "districts=legacy metrics=legacy", s.Layout().String())
}

func newMockRelational(t *testing.T) (*Relational, sqlmock.Sqlmock) {
	t.Helper()
	sqldb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqldb.Close() })

	mock.ExpectQuery(`SELECT \* FROM "districts" LIMIT 0`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name_en", "name_kn", "feature", "latitude", "longitude"}))
	mock.ExpectQuery(`SELECT \* FROM "metrics" LIMIT 0`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "district_id", "year", "month", "households_covered", "wages_paid"}))

	db := bun.NewDB(sqldb, pgdialect.New())
	s := NewRelational(context.Background(), db, zap.NewNop())
	require.Equal(t, Layout{Districts: LayoutCanonical, Metrics: LayoutCanonical}, s.Layout())
	return s, mock
}

func TestRelational_QueryErrorsAreWrapped(t *testing.T) {
	ctx := context.Background()
	s, mock := newMockRelational(t)
	boom := errors.New("connection reset by peer")

	mock.ExpectQuery(`FROM "districts" AS d ORDER BY d.id ASC LIMIT 100`).WillReturnError(boom)
	mock.ExpectQuery(`FROM "districts" AS d WHERE \(id = 'KA01'\)`).WillReturnError(boom)
	mock.ExpectQuery(`ROW_NUMBER\(\) OVER \(PARTITION BY district_id`).WillReturnError(boom)

	_, err := s.ListDistricts(ctx)
	assert.ErrorIs(t, err, boom)

	_, err = s.GetDistrict(ctx, "KA01")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrNotFound)

	_, err = s.LatestPerDistrict(ctx)
	assert.ErrorIs(t, err, boom)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRelational_PostgresSeedTakesAdvisoryLock(t *testing.T) {
	s, mock := newMockRelational(t)

	mock.ExpectBegin()
	mock.ExpectExec(`SELECT pg_advisory_xact_lock\(1835495026\)`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	called := false
	err := s.Seed(context.Background(), func(context.Context, SeedTx) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)
	assert.NoError(t, mock.ExpectationsWereMet())
}
