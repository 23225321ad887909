package directory

import (
	"time"

	"github.com/jcpao-csu/staff-directory-api/internal/models"
)

func strp(s string) *string { return &s }

func intp(i int) *int { return &i }

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func staff(first, last string, pos models.Position, units ...string) models.DirectoryRow {
	if units == nil {
		units = []string{}
	}
	return models.DirectoryRow{
		Source:        models.SourceEmployee,
		FullName:      first + " " + last,
		FirstName:     first,
		LastName:      last,
		WorkEmail:     first + "." + last + "@jcpao.org",
		Position:      pos,
		AssignedUnits: units,
		RaceTags:      []string{},
	}
}

func names(rows []models.DirectoryRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.FirstName + " " + r.LastName
	}
	return out
}
