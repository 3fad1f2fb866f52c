package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"mgnrega-dash/internal/config"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"
	_ "modernc.org/sqlite"
)

// Backend is the kind of store a connection string points at.
type Backend string

const (
	BackendPostgres Backend = "postgres"
	BackendSQLite   Backend = "sqlite"
	BackendMongo    Backend = "mongodb"
)

// BackendOf classifies a connection string by its scheme.
func BackendOf(dsn string) Backend {
	switch {
	case strings.HasPrefix(dsn, "mongodb://"), strings.HasPrefix(dsn, "mongodb+srv://"):
		return BackendMongo
	case strings.HasPrefix(dsn, "sqlite://"), strings.HasPrefix(dsn, "file:"), dsn == ":memory:":
		return BackendSQLite
	default:
		return BackendPostgres
	}
}

// New connects to Postgres (or SQLite for sqlite:// and file: DSNs) and returns a Bun DB handle.
func New(dsn string, cfg *config.Config) (*bun.DB, error) {
	var db *bun.DB

	if BackendOf(dsn) == BackendSQLite {
		sqldb, err := sql.Open("sqlite", strings.TrimPrefix(dsn, "sqlite://"))
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		// single writer; also keeps :memory: databases on one connection
		sqldb.SetMaxOpenConns(1)
		db = bun.NewDB(sqldb, sqlitedialect.New())
	} else {
		connector := pgdriver.NewConnector(
			pgdriver.WithDSN(dsn),
			pgdriver.WithTimeout(30*time.Second),
			pgdriver.WithDialTimeout(10*time.Second),
		)

		sqldb := sql.OpenDB(connector)
		sqldb.SetMaxOpenConns(25)
		sqldb.SetMaxIdleConns(10)
		sqldb.SetConnMaxLifetime(5 * time.Minute)
		sqldb.SetConnMaxIdleTime(10 * time.Minute)
		db = bun.NewDB(sqldb, pgdialect.New())
	}

	// Optional query logging
	if cfg != nil && cfg.BunDebug {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}
