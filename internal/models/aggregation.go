package models

import "time"

// AggregationField names a breakdown the dashboard can request.
type AggregationField string

const (
	FieldPosition       AggregationField = "position"
	FieldAssignedUnit   AggregationField = "unit"
	FieldOfficeLocation AggregationField = "office"
	FieldRaceTotal      AggregationField = "race_total"
	FieldRaceUnique     AggregationField = "race_unique"
	FieldSex            AggregationField = "sex"
)

// AggregationFields lists every supported breakdown in dashboard order.
var AggregationFields = []AggregationField{
	FieldPosition,
	FieldAssignedUnit,
	FieldOfficeLocation,
	FieldRaceTotal,
	FieldRaceUnique,
	FieldSex,
}

// ParseAggregationField validates a breakdown name.
func ParseAggregationField(raw string) (AggregationField, bool) {
	for _, f := range AggregationFields {
		if string(f) == raw {
			return f, true
		}
	}
	return "", false
}

// Exploded reports whether the field is multi-valued.
func (f AggregationField) Exploded() bool {
	return f == FieldAssignedUnit || f == FieldRaceTotal
}

// AggregationGroup is one bucket of a breakdown. Percent is relative to the
// population size, so exploded breakdowns can sum past 100.
type AggregationGroup struct {
	Label   string  `json:"label"`
	Display string  `json:"display"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// AggregationResult is a grouped count over a directory population.
type AggregationResult struct {
	Field          AggregationField   `json:"field"`
	Groups         []AggregationGroup `json:"groups"`
	PopulationSize int                `json:"population_size"`
}

// ServiceStats summarises service duration over rows with a known hire date.
type ServiceStats struct {
	Population  int     `json:"population"`
	MeanDays    int     `json:"mean_days"`
	MedianDays  int     `json:"median_days"`
	MinDays     int     `json:"min_days"`
	MaxDays     int     `json:"max_days"`
	MeanYears   int     `json:"mean_years"`
	MedianYears int     `json:"median_years"`
	MinYears    float64 `json:"min_years"`
	MaxYears    float64 `json:"max_years"`
}

// StaffSummary carries the headline counts shown above the dashboard charts.
type StaffSummary struct {
	TotalStaff   int `json:"total_staff"`
	Executive    int `json:"executive"`
	Attorneys    int `json:"attorneys"`
	SupportStaff int `json:"support_staff"`
	Interns      int `json:"interns"`
	Pets         int `json:"pets"`
}

// Dashboard is the full staff analytics payload.
type Dashboard struct {
	Summary     StaffSummary        `json:"summary"`
	Breakdowns  []AggregationResult `json:"breakdowns"`
	Service     ServiceStats        `json:"service"`
	GeneratedAt time.Time           `json:"generated_at"`
}

// ServiceContext places one employee within the service-length distribution.
type ServiceContext struct {
	ServiceDays       *int     `json:"service_days"`
	ServiceYears      *float64 `json:"service_years"`
	ServicePercentile *float64 `json:"service_percentile"`
	PercentileLabel   string   `json:"percentile_label,omitempty"`
}

// Profile is a single directory row with its service context.
type Profile struct {
	Row     DirectoryRow   `json:"row"`
	Service ServiceContext `json:"service"`
}

// BirthdayEntry is a row celebrating in the requested month.
type BirthdayEntry struct {
	Row   DirectoryRow `json:"row"`
	Label string       `json:"label"`
}

// SystemMetrics is a lightweight snapshot of instrumentation counters.
type SystemMetrics struct {
	CacheHitRatio            float64   `json:"cache_hit_ratio"`
	CacheHits                uint64    `json:"cache_hits"`
	CacheMisses              uint64    `json:"cache_misses"`
	RequestsTotal            uint64    `json:"requests_total"`
	AverageRequestDurationMs float64   `json:"average_request_duration_ms"`
	DBQueryCount             uint64    `json:"db_query_count"`
	AverageDBQueryDurationMs float64   `json:"average_db_query_duration_ms"`
	DirectoryBuilds          uint64    `json:"directory_builds"`
	ActivityDropped          uint64    `json:"activity_dropped"`
	Goroutines               int       `json:"goroutines"`
	GeneratedAt              time.Time `json:"generated_at"`
}
