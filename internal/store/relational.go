package store

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"mgnrega-dash/internal/models"

	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

type districtRow struct {
	bun.BaseModel `bun:"table:districts,alias:d"`

	ID        string   `bun:"id,pk"`
	NameEN    string   `bun:"name_en"`
	NameKN    string   `bun:"name_kn"`
	Feature   string   `bun:"feature"`
	Latitude  *float64 `bun:"latitude"`
	Longitude *float64 `bun:"longitude"`
}

func (r districtRow) toModel() models.District {
	return models.District{
		ID:          r.ID,
		NameEN:      r.NameEN,
		NameKN:      r.NameKN,
		Feature:     r.Feature,
		Coordinates: coordinatesOrDefault(r.Latitude, r.Longitude),
	}
}

type metricRow struct {
	bun.BaseModel `bun:"table:metrics,alias:m"`

	ID                string    `bun:"id,pk"`
	DistrictID        string    `bun:"district_id"`
	Year              int       `bun:"year"`
	Month             int       `bun:"month"`
	TotalJobDays      float64   `bun:"total_job_days"`
	TargetJobDays     float64   `bun:"target_job_days"`
	HouseholdsCovered int64     `bun:"households_covered"`
	WagesPaid         float64   `bun:"wages_paid"`
	PerformanceIndex  *float64  `bun:"performance_index"`
	CreatedAt         time.Time `bun:"created_at"`
}

func (r metricRow) toModel() models.MonthlyMetric {
	return models.MonthlyMetric{
		ID:                r.ID,
		DistrictID:        r.DistrictID,
		Year:              r.Year,
		Month:             r.Month,
		TotalJobDays:      r.TotalJobDays,
		TargetJobDays:     r.TargetJobDays,
		HouseholdsCovered: r.HouseholdsCovered,
		WagesPaid:         r.WagesPaid,
		PerformanceIndex:  r.PerformanceIndex,
		Timestamp:         r.CreatedAt.UTC(),
	}
}

func metricsFromRows(rows []metricRow) []models.MonthlyMetric {
	out := make([]models.MonthlyMetric, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toModel())
	}
	return out
}

// Relational reads districts and metrics through bun. The table layout is detected
// once (NewRelational, Redetect) and a fixed query strategy is used afterwards.
type Relational struct {
	db   *bun.DB
	logr *zap.Logger

	mu     sync.RWMutex
	layout Layout
}

var _ Store = (*Relational)(nil)
var _ Seedable = (*Relational)(nil)

// NewRelational wraps db and detects the table layout.
func NewRelational(ctx context.Context, db *bun.DB, logr *zap.Logger) *Relational {
	s := &Relational{db: db, logr: logr}
	s.Redetect(ctx)
	return s
}

// Redetect probes the tables again, e.g. after migrations created them.
func (s *Relational) Redetect(ctx context.Context) Layout {
	layout := DetectLayout(ctx, s.db)

	s.mu.Lock()
	s.layout = layout
	s.mu.Unlock()

	s.logr.Info("detected table layout",
		zap.String("districts", layout.Districts.String()),
		zap.String("metrics", layout.Metrics.String()))
	return layout
}

// Layout returns the layout currently in use.
func (s *Relational) Layout() Layout {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.layout
}

// DB exposes the underlying handle for migrations.
func (s *Relational) DB() *bun.DB {
	return s.db
}

func (s *Relational) Close() error {
	return s.db.Close()
}

// ListDistricts returns up to MaxRows districts ordered by id.
func (s *Relational) ListDistricts(ctx context.Context) ([]models.District, error) {
	layout := s.Layout().Districts
	if layout == LayoutMissing {
		return []models.District{}, nil
	}

	var rows []districtRow
	err := s.db.NewSelect().
		Model(&rows).
		ModelTableExpr("? AS d", bun.Ident(districtsTable)).
		ColumnExpr(strings.Join(districtColumns[layout], ", ")).
		OrderExpr("d.id ASC").
		Limit(MaxRows).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("list districts (%s): %w", layout, err)
	}

	out := make([]models.District, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toModel())
	}
	return out, nil
}

// GetDistrict returns one district or ErrNotFound.
func (s *Relational) GetDistrict(ctx context.Context, id string) (*models.District, error) {
	layout := s.Layout().Districts
	if layout == LayoutMissing {
		return nil, ErrNotFound
	}

	var rows []districtRow
	err := s.db.NewSelect().
		Model(&rows).
		ModelTableExpr("? AS d", bun.Ident(districtsTable)).
		ColumnExpr(strings.Join(districtColumns[layout], ", ")).
		Where(districtKey[layout]+" = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("get district %q (%s): %w", id, layout, err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}

	d := rows[0].toModel()
	return &d, nil
}

// LatestMetric returns the newest metric of a district or ErrNotFound.
func (s *Relational) LatestMetric(ctx context.Context, districtID string) (*models.MonthlyMetric, error) {
	metrics, err := s.TrendMetrics(ctx, districtID, 1)
	if err != nil {
		return nil, err
	}
	if len(metrics) == 0 {
		return nil, ErrNotFound
	}
	return &metrics[0], nil
}

// TrendMetrics returns up to limit metrics of a district, newest first.
func (s *Relational) TrendMetrics(ctx context.Context, districtID string, limit int) ([]models.MonthlyMetric, error) {
	layout := s.Layout().Metrics
	if layout == LayoutMissing || limit <= 0 {
		return []models.MonthlyMetric{}, nil
	}
	if limit > MaxRows {
		limit = MaxRows
	}

	var rows []metricRow
	err := s.db.NewSelect().
		Model(&rows).
		ModelTableExpr("? AS m", bun.Ident(metricsTable)).
		ColumnExpr(strings.Join(metricColumns[layout], ", ")).
		Where(metricDistrictKey[layout]+" = ?", districtID).
		OrderExpr(metricOrder).
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("trend metrics %q (%s): %w", districtID, layout, err)
	}

	return metricsFromRows(rows), nil
}

// LatestPerDistrict ranks metrics per district and keeps the first of each group.
func (s *Relational) LatestPerDistrict(ctx context.Context) ([]models.MonthlyMetric, error) {
	layout := s.Layout().Metrics
	if layout == LayoutMissing {
		return []models.MonthlyMetric{}, nil
	}

	ranked := s.db.NewSelect().
		ColumnExpr("*").
		ColumnExpr("ROW_NUMBER() OVER (PARTITION BY district_id ORDER BY year DESC, month DESC, created_at DESC, id DESC) AS rn").
		TableExpr("?", bun.Ident(metricsTable))

	var rows []metricRow
	err := s.db.NewSelect().
		Model(&rows).
		ModelTableExpr("(?) AS ranked", ranked).
		ColumnExpr(strings.Join(metricColumns[layout], ", ")).
		Where("ranked.rn = 1").
		OrderExpr("ranked.district_id ASC").
		Limit(MaxRows).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("latest metric per district (%s): %w", layout, err)
	}

	return metricsFromRows(rows), nil
}
