package directory

import (
	"math"
	"sort"

	"github.com/jcpao-csu/staff-directory-api/internal/models"
)

// Mean averages values. ok is false for an empty input.
func Mean(values []float64) (mean float64, ok bool) {
	if len(values) == 0 {
		return 0, false
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), true
}

// Median returns the middle value, averaging the two middle values for even lengths.
func Median(values []float64) (median float64, ok bool) {
	if len(values) == 0 {
		return 0, false
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid], true
	}
	return (sorted[mid-1] + sorted[mid]) / 2, true
}

// ServiceDaysOf collects non-nil service days, skipping rows without tenure.
func ServiceDaysOf(rows []models.DirectoryRow) []float64 {
	days := make([]float64, 0, len(rows))
	for _, row := range rows {
		if row.ServiceDays != nil {
			days = append(days, float64(*row.ServiceDays))
		}
	}
	return days
}

// Summarize computes service duration statistics in days and years.
// Mean and median are rounded half to even.
func Summarize(rows []models.DirectoryRow) models.ServiceStats {
	days := ServiceDaysOf(rows)
	stats := models.ServiceStats{Population: len(days)}
	if len(days) == 0 {
		return stats
	}

	years := make([]float64, len(days))
	minDays, maxDays := days[0], days[0]
	for i, d := range days {
		years[i] = ServiceYears(int(d))
		minDays = math.Min(minDays, d)
		maxDays = math.Max(maxDays, d)
	}

	meanDays, _ := Mean(days)
	medianDays, _ := Median(days)
	meanYears, _ := Mean(years)
	medianYears, _ := Median(years)

	stats.MeanDays = int(math.RoundToEven(meanDays))
	stats.MedianDays = int(math.RoundToEven(medianDays))
	stats.MinDays = int(minDays)
	stats.MaxDays = int(maxDays)
	stats.MeanYears = int(math.RoundToEven(meanYears))
	stats.MedianYears = int(math.RoundToEven(medianYears))
	stats.MinYears = ServiceYears(int(minDays))
	stats.MaxYears = ServiceYears(int(maxDays))
	return stats
}

// Summary counts the staff population by position group. Pets are counted separately.
func Summary(rows []models.DirectoryRow) models.StaffSummary {
	var s models.StaffSummary
	for _, row := range rows {
		if row.IsPet() {
			s.Pets++
			continue
		}
		s.TotalStaff++
		switch {
		case row.Position == models.PositionExec:
			s.Executive++
		case row.Position.IsAttorney():
			s.Attorneys++
		case row.Position.IsSupport():
			s.SupportStaff++
		case row.Position == models.PositionIntern:
			s.Interns++
		}
	}
	return s
}
