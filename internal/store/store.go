// Package store is the storage port of the dashboard: one interface for reading
// districts and their monthly metrics, with relational (bun) and document (MongoDB)
// adapters behind it.
package store

import (
	"context"
	"errors"

	"mgnrega-dash/internal/models"
)

var (
	// ErrNotFound is returned by single-item lookups when nothing matches.
	ErrNotFound = errors.New("not found")
	// ErrLegacyLayout is returned when seeding is attempted against the legacy table layout.
	ErrLegacyLayout = errors.New("legacy table layout cannot be seeded")
	// ErrSchemaMissing is returned when seeding finds no tables to write to.
	ErrSchemaMissing = errors.New("schema missing, run migrations first")
	// ErrSeedLocked is returned when another process holds the seed lock.
	ErrSeedLocked = errors.New("seed lock held by another process")
)

// MaxRows caps every list read.
const MaxRows = 100

// TrendLength is the number of months returned in a district trend.
const TrendLength = 6

// Store reads districts and metrics. Metric lists are ordered newest first by
// (year, month), with creation time and id as tie-breakers.
type Store interface {
	ListDistricts(ctx context.Context) ([]models.District, error)
	GetDistrict(ctx context.Context, id string) (*models.District, error)
	LatestMetric(ctx context.Context, districtID string) (*models.MonthlyMetric, error)
	TrendMetrics(ctx context.Context, districtID string, limit int) ([]models.MonthlyMetric, error)
	// LatestPerDistrict returns the newest metric of every district that has one,
	// ordered by district id.
	LatestPerDistrict(ctx context.Context) ([]models.MonthlyMetric, error)
	Close() error
}

// SeedTx is the write surface available while the seed lock is held.
type SeedTx interface {
	CountDistricts(ctx context.Context) (int, error)
	CountMetrics(ctx context.Context) (int, error)
	InsertDistricts(ctx context.Context, districts []models.District) error
	InsertMetrics(ctx context.Context, metrics []models.MonthlyMetric) error
}

// Seedable stores can run a seeding function under a lock shared by every process
// pointed at the same database.
type Seedable interface {
	Seed(ctx context.Context, fn func(ctx context.Context, tx SeedTx) error) error
}

func coordinatesOrDefault(lat, lng *float64) [2]float64 {
	if lat == nil || lng == nil {
		return models.DefaultCoordinates
	}
	return [2]float64{*lat, *lng}
}
