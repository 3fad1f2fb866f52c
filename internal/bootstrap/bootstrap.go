// Package bootstrap opens the configured backing store and prepares it for serving:
// connection with retry, schema migrations and the run-once seed.
package bootstrap

import (
	"context"
	"fmt"

	"mgnrega-dash/internal/config"
	"mgnrega-dash/internal/database"
	"mgnrega-dash/internal/seed"
	"mgnrega-dash/internal/store"

	"github.com/uptrace/bun"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// OpenStore connects to the store named by cfg.StoreURL, retrying with a fixed delay.
func OpenStore(ctx context.Context, cfg *config.Config, logr *zap.Logger) (store.Store, error) {
	dsn := cfg.StoreURL()
	backend := database.BackendOf(dsn)

	if backend == database.BackendMongo {
		var client *mongo.Client
		err := database.Retry(ctx, cfg.ConnectAttempts, cfg.ConnectRetryDelay, logr, string(backend), func() error {
			var err error
			client, err = database.NewMongo(dsn)
			return err
		})
		if err != nil {
			return nil, err
		}
		logr.Info("connected to document store", zap.String("database", cfg.MongoDatabase))
		return store.NewDocument(client, cfg.MongoDatabase, logr), nil
	}

	var db *bun.DB
	err := database.Retry(ctx, cfg.ConnectAttempts, cfg.ConnectRetryDelay, logr, string(backend), func() error {
		var err error
		db, err = database.New(dsn, cfg)
		return err
	})
	if err != nil {
		return nil, err
	}
	logr.Info("connected to relational store", zap.String("backend", string(backend)))
	return store.NewRelational(ctx, db, logr), nil
}

// Migrate applies relational migrations and re-detects the table layout.
// Document stores only get their indexes ensured. Legacy tables are left alone:
// the migrations would record a version over tables they never created, and a
// later down migration would drop them.
func Migrate(ctx context.Context, st store.Store, logr *zap.Logger) error {
	switch s := st.(type) {
	case *store.Relational:
		if layout := s.Layout(); layout.HasLegacy() {
			logr.Warn("legacy table layout detected, skipping migrations", zap.String("layout", layout.String()))
			return nil
		}
		if err := database.MigrateUp(ctx, s.DB(), logr); err != nil {
			return err
		}
		s.Redetect(ctx)
	case *store.Document:
		if err := s.EnsureIndexes(ctx); err != nil {
			return err
		}
	}
	return nil
}

// RequireMigratable returns the relational store behind st, or an error when st is
// not relational or its tables use the legacy layout.
func RequireMigratable(st store.Store) (*store.Relational, error) {
	rel, ok := st.(*store.Relational)
	if !ok {
		return nil, fmt.Errorf("migrations require a relational store")
	}
	if layout := rel.Layout(); layout.HasLegacy() {
		return nil, fmt.Errorf("refusing to migrate %s: %w", layout, store.ErrLegacyLayout)
	}
	return rel, nil
}

// Seed runs the seeder against st when it supports seeding.
func Seed(ctx context.Context, st store.Store, logr *zap.Logger) (seed.Result, error) {
	target, ok := st.(store.Seedable)
	if !ok {
		return seed.Result{Skipped: true}, nil
	}

	res, err := seed.NewSeeder(seed.NewGenerator(nil, nil), logr).Run(ctx, target)
	if err != nil {
		return res, fmt.Errorf("seed: %w", err)
	}
	return res, nil
}
