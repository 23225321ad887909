package directory

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/jcpao-csu/staff-directory-api/internal/models"
)

const daysPerYear = 365

// DisplayName prefers a non-empty preferred name over the first name.
func DisplayName(row models.DirectoryRow) string {
	first := row.FirstName
	if row.PreferredName != nil && *row.PreferredName != "" {
		first = *row.PreferredName
	}
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(row.LastName))
}

// ServiceYears converts days to years rounded to two decimals.
func ServiceYears(days int) float64 {
	return round2(float64(days) / daysPerYear)
}

// PercentileRank places value in population as (below + half of equal) / n * 100.
// An empty population ranks nothing and returns 0.
func PercentileRank(value float64, population []float64) float64 {
	if len(population) == 0 {
		return 0
	}
	var below, equal int
	for _, v := range population {
		switch {
		case v < value:
			below++
		case v == value:
			equal++
		}
	}
	return (float64(below) + 0.5*float64(equal)) / float64(len(population)) * 100
}

// OrdinalSuffix renders n with its English ordinal suffix: 1st, 2nd, 3rd, 11th, 111th, 121st.
func OrdinalSuffix(n int) string {
	suffix := "th"
	abs := n
	if abs < 0 {
		abs = -abs
	}
	if mod := abs % 100; mod < 10 || mod > 20 {
		switch abs % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}

// ServiceDaysAt counts whole calendar days from hire to now. Future hire dates count as zero.
func ServiceDaysAt(hire, now time.Time) int {
	h := time.Date(hire.Year(), hire.Month(), hire.Day(), 0, 0, 0, 0, time.UTC)
	n := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	days := int(n.Sub(h).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// Derive fills ServiceDays from the hire date and ranks every row that has service days
// against all such rows. Pets and rows without tenure keep nil values. rows is not modified.
func Derive(rows []models.DirectoryRow, now time.Time) []models.DirectoryRow {
	out := make([]models.DirectoryRow, len(rows))
	copy(out, rows)

	population := make([]float64, 0, len(out))
	for i := range out {
		row := &out[i]
		row.ServicePercentile = nil
		if row.IsPet() {
			row.ServiceDays = nil
			continue
		}
		if row.HireDate != nil {
			days := ServiceDaysAt(*row.HireDate, now)
			row.ServiceDays = &days
		}
		if row.ServiceDays != nil {
			population = append(population, float64(*row.ServiceDays))
		}
	}

	for i := range out {
		if out[i].ServiceDays == nil {
			continue
		}
		pct := round2(PercentileRank(float64(*out[i].ServiceDays), population))
		out[i].ServicePercentile = &pct
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
