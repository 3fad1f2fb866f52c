package store

import (
	"context"
	"strings"

	"github.com/uptrace/bun"
)

// TableLayout identifies which column layout a table follows.
type TableLayout int

const (
	LayoutMissing TableLayout = iota
	LayoutCanonical
	LayoutLegacy
)

func (l TableLayout) String() string {
	switch l {
	case LayoutCanonical:
		return "canonical"
	case LayoutLegacy:
		return "legacy"
	default:
		return "missing"
	}
}

// Layout is the detected layout of the districts and metrics tables.
type Layout struct {
	Districts TableLayout
	Metrics   TableLayout
}

func (l Layout) String() string {
	return "districts=" + l.Districts.String() + " metrics=" + l.Metrics.String()
}

// HasLegacy reports whether either table uses the legacy layout.
func (l Layout) HasLegacy() bool {
	return l.Districts == LayoutLegacy || l.Metrics == LayoutLegacy
}

const (
	districtsTable = "districts"
	metricsTable   = "metrics"
)

// DetectLayout inspects the actual column sets of the districts and metrics tables.
// A table that cannot be probed, or whose columns match neither layout, is reported missing.
func DetectLayout(ctx context.Context, db bun.IDB) Layout {
	var layout Layout

	if cols, err := tableColumns(ctx, db, districtsTable); err == nil {
		switch {
		case cols["id"] && cols["name_en"]:
			layout.Districts = LayoutCanonical
		case cols["id"] && cols["name"]:
			layout.Districts = LayoutLegacy
		}
	}

	if cols, err := tableColumns(ctx, db, metricsTable); err == nil {
		switch {
		case cols["district_id"] && cols["households_covered"] && cols["wages_paid"]:
			layout.Metrics = LayoutCanonical
		case cols["district_id"] && cols["households"] && cols["wages"]:
			layout.Metrics = LayoutLegacy
		}
	}

	return layout
}

func tableColumns(ctx context.Context, db bun.IDB, table string) (map[string]bool, error) {
	rows, err := db.QueryContext(ctx, "SELECT * FROM ? LIMIT 0", bun.Ident(table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	cols := make(map[string]bool, len(names))
	for _, n := range names {
		cols[strings.ToLower(n)] = true
	}
	return cols, rows.Err()
}

// Column expressions per layout. Legacy columns are renamed and cast so both layouts
// scan into the same row structs.
var (
	districtColumns = map[TableLayout][]string{
		LayoutCanonical: {
			"id", "name_en", "name_kn", "feature", "latitude", "longitude",
		},
		LayoutLegacy: {
			"CAST(id AS TEXT) AS id",
			"name AS name_en",
			"'' AS name_kn",
			"COALESCE(feature, '') AS feature",
			"NULL AS latitude",
			"NULL AS longitude",
		},
	}

	districtKey = map[TableLayout]string{
		LayoutCanonical: "id",
		LayoutLegacy:    "CAST(id AS TEXT)",
	}

	metricColumns = map[TableLayout][]string{
		LayoutCanonical: {
			"id", "district_id", "year", "month",
			"total_job_days", "target_job_days",
			"households_covered", "wages_paid", "performance_index", "created_at",
		},
		LayoutLegacy: {
			"CAST(id AS TEXT) AS id",
			"CAST(district_id AS TEXT) AS district_id",
			"year", "month",
			"CAST(total_job_days AS DOUBLE PRECISION) AS total_job_days",
			"CAST(target_job_days AS DOUBLE PRECISION) AS target_job_days",
			"households AS households_covered",
			"CAST(wages AS DOUBLE PRECISION) AS wages_paid",
			"NULL AS performance_index",
			"created_at",
		},
	}

	metricDistrictKey = map[TableLayout]string{
		LayoutCanonical: "district_id",
		LayoutLegacy:    "CAST(district_id AS TEXT)",
	}
)

// metricOrder is qualified with the m alias so legacy integer ids sort numerically
// instead of by their text alias.
const metricOrder = "m.year DESC, m.month DESC, m.created_at DESC, m.id DESC"
