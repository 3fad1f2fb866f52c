package database

import (
	"context"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// MigrateUp applies all pending migrations. Postgres migrations are serialised across
// processes by golang-migrate's advisory lock.
func MigrateUp(ctx context.Context, db *bun.DB, logr *zap.Logger) error {
	return withMigrate(ctx, db, logr, func(m *migrate.Migrate) error {
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migration up failed: %w", err)
		}
		return nil
	})
}

// MigrateDown rolls back the most recent migration.
func MigrateDown(ctx context.Context, db *bun.DB, logr *zap.Logger) error {
	return withMigrate(ctx, db, logr, func(m *migrate.Migrate) error {
		if err := m.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migration down failed: %w", err)
		}
		return nil
	})
}

// MigrateVersion returns the applied version; 0 when nothing has been applied.
func MigrateVersion(ctx context.Context, db *bun.DB, logr *zap.Logger) (version uint, dirty bool, err error) {
	err = withMigrate(ctx, db, logr, func(m *migrate.Migrate) error {
		version, dirty, err = m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			version, dirty, err = 0, false, nil
		}
		return err
	})
	return version, dirty, err
}

// withMigrate builds a migrate instance on top of db. The instance is not closed
// because closing it would close db; on Postgres the dedicated connection is
// released instead.
func withMigrate(ctx context.Context, db *bun.DB, logr *zap.Logger, fn func(*migrate.Migrate) error) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	var (
		driver migratedb.Driver
		name   string
	)

	switch db.Dialect().Name() {
	case dialect.PG:
		conn, err := db.DB.Conn(ctx)
		if err != nil {
			return fmt.Errorf("failed to reserve migration connection: %w", err)
		}
		defer conn.Close()

		driver, err = migratepg.WithConnection(ctx, conn, &migratepg.Config{})
		if err != nil {
			return fmt.Errorf("failed to create postgres migration driver: %w", err)
		}
		name = "postgres"
	case dialect.SQLite:
		driver, err = migratesqlite.WithInstance(db.DB, &migratesqlite.Config{})
		if err != nil {
			return fmt.Errorf("failed to create sqlite migration driver: %w", err)
		}
		name = "sqlite"
	default:
		return fmt.Errorf("migrations not supported for dialect %s", db.Dialect().Name())
	}

	m, err := migrate.NewWithInstance("iofs", src, name, driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	m.Log = &migrateLogger{logr: logr}

	return fn(m)
}

// migrateLogger implements migrate.Logger on top of zap
type migrateLogger struct {
	logr *zap.Logger
}

func (l *migrateLogger) Printf(format string, v ...interface{}) {
	l.logr.Sugar().Infof("[migrate] "+format, v...)
}

func (l *migrateLogger) Verbose() bool {
	return false
}
