package models

import "time"

// DefaultCoordinates is the Karnataka state centre, used whenever a district has no map position.
var DefaultCoordinates = [2]float64{15.3173, 75.7139}

// District is one of the fixed administrative regions served by the dashboard.
type District struct {
	ID          string     `json:"id" bson:"id"`
	NameEN      string     `json:"name_en" bson:"name_en"`
	NameKN      string     `json:"name_kn" bson:"name_kn"`
	Feature     string     `json:"feature" bson:"feature"`
	Coordinates [2]float64 `json:"coordinates" bson:"coordinates"`
}

// MonthlyMetric is one month of employment-scheme performance for a district.
// PerformanceIndex is nil when the backing schema does not store it.
type MonthlyMetric struct {
	ID                string    `json:"id" bson:"id"`
	DistrictID        string    `json:"district_id" bson:"district_id"`
	Year              int       `json:"year" bson:"year"`
	Month             int       `json:"month" bson:"month"`
	TotalJobDays      float64   `json:"total_job_days" bson:"total_job_days"`
	TargetJobDays     float64   `json:"target_job_days" bson:"target_job_days"`
	HouseholdsCovered int64     `json:"households_covered" bson:"households_covered"`
	WagesPaid         float64   `json:"wages_paid" bson:"wages_paid"`
	PerformanceIndex  *float64  `json:"performance_index" bson:"performance_index"`
	Timestamp         time.Time `json:"timestamp" bson:"timestamp"`
}

// Performance category labels
const (
	CategoryHigh   = "high"
	CategoryMedium = "medium"
	CategoryLow    = "low"
)

// DistrictPerformance is the detail view of a district: latest month, recent trend and category.
type DistrictPerformance struct {
	District            District        `json:"district"`
	LatestMetrics       *MonthlyMetric  `json:"latest_metrics"`
	Trend               []MonthlyMetric `json:"trend"`
	PerformanceCategory string          `json:"performance_category"`
}

// StateStatistics aggregates the latest metric of every district.
type StateStatistics struct {
	TotalJobDays    float64 `json:"total_job_days"`
	TotalHouseholds int64   `json:"total_households"`
	TotalWages      float64 `json:"total_wages"`
	AvgPerformance  float64 `json:"avg_performance"`
	BestDistrict    *string `json:"best_district"`
	WorstDistrict   *string `json:"worst_district"`
}

// DistrictComparison is one row of the all-district snapshot.
type DistrictComparison struct {
	DistrictID        string   `json:"district_id"`
	NameEN            string   `json:"name_en"`
	NameKN            string   `json:"name_kn"`
	PerformanceIndex  *float64 `json:"performance_index"`
	TotalJobDays      float64  `json:"total_job_days"`
	HouseholdsCovered int64    `json:"households_covered"`
}

// APIInfo is returned by the API root.
type APIInfo struct {
	Message string `json:"message"`
	Version string `json:"version"`
}
