package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMigrations_SQLite(t *testing.T) {
	ctx := context.Background()
	logr := zap.NewNop()

	db, err := New(":memory:", nil)
	require.NoError(t, err)
	defer db.Close()

	version, dirty, err := MigrateVersion(ctx, db, logr)
	require.NoError(t, err)
	assert.Zero(t, version)
	assert.False(t, dirty)

	require.NoError(t, MigrateUp(ctx, db, logr))
	// second run is a no-op
	require.NoError(t, MigrateUp(ctx, db, logr))

	version, dirty, err = MigrateVersion(ctx, db, logr)
	require.NoError(t, err)
	assert.Equal(t, uint(2), version)
	assert.False(t, dirty)

	var tables []string
	err = db.NewSelect().
		TableExpr("sqlite_master").
		Column("name").
		Where("type = 'table'").
		Where("name IN (?, ?)", "districts", "metrics").
		Order("name").
		Scan(ctx, &tables)
	require.NoError(t, err)
	assert.Equal(t, []string{"districts", "metrics"}, tables)

	require.NoError(t, MigrateDown(ctx, db, logr))
	version, _, err = MigrateVersion(ctx, db, logr)
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)

	n, err := db.NewSelect().TableExpr("sqlite_master").Where("type = 'table'").Where("name = ?", "metrics").Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
