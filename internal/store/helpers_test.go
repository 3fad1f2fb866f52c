package store

import (
	"context"
	"testing"

	"mgnrega-dash/internal/database"

	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

const legacySchema = `
CREATE TABLE districts (
    id      INTEGER PRIMARY KEY,
    name    TEXT NOT NULL,
    feature TEXT
);
CREATE TABLE metrics (
    id              INTEGER PRIMARY KEY,
    district_id     INTEGER NOT NULL,
    year            INTEGER NOT NULL,
    month           INTEGER NOT NULL,
    total_job_days  INTEGER NOT NULL,
    target_job_days INTEGER NOT NULL,
    households      INTEGER NOT NULL,
    wages           REAL NOT NULL,
    created_at      TIMESTAMP NOT NULL
);`

func newSQLite(t *testing.T) *bun.DB {
	t.Helper()
	db, err := database.New(":memory:", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// newCanonical returns a store on a migrated, empty database.
func newCanonical(t *testing.T) *Relational {
	t.Helper()
	db := newSQLite(t)
	require.NoError(t, database.MigrateUp(context.Background(), db, zap.NewNop()))
	return NewRelational(context.Background(), db, zap.NewNop())
}

// newLegacy returns a store on a database created with the legacy layout.
func newLegacy(t *testing.T, statements ...string) *Relational {
	t.Helper()
	db := newSQLite(t)
	exec(t, db, legacySchema)
	exec(t, db, statements...)
	return NewRelational(context.Background(), db, zap.NewNop())
}

func exec(t *testing.T, db bun.IDB, statements ...string) {
	t.Helper()
	for _, stmt := range statements {
		_, err := db.ExecContext(context.Background(), stmt)
		require.NoError(t, err, stmt)
	}
}
