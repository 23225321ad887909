package directory

import (
	"sort"

	"github.com/jcpao-csu/staff-directory-api/internal/models"
)

// Birthdays lists staff born in month (1-12), ordered by day then last name. Rows with an
// unknown day sort last. Month 0 lists every staff member with a known birth month.
// Pets are not included.
func Birthdays(rows []models.DirectoryRow, month int) []models.BirthdayEntry {
	picked := make([]models.DirectoryRow, 0)
	for _, row := range rows {
		if row.IsPet() || row.BirthMonth == nil {
			continue
		}
		if month != 0 && *row.BirthMonth != month {
			continue
		}
		picked = append(picked, row)
	}

	sort.SliceStable(picked, func(i, j int) bool {
		a, b := picked[i], picked[j]
		if *a.BirthMonth != *b.BirthMonth {
			return *a.BirthMonth < *b.BirthMonth
		}
		switch {
		case a.BirthDay == nil && b.BirthDay != nil:
			return false
		case a.BirthDay != nil && b.BirthDay == nil:
			return true
		case a.BirthDay != nil && *a.BirthDay != *b.BirthDay:
			return *a.BirthDay < *b.BirthDay
		}
		return a.LastName < b.LastName
	})

	entries := make([]models.BirthdayEntry, 0, len(picked))
	for _, row := range picked {
		entries = append(entries, models.BirthdayEntry{Row: row, Label: BirthdayLabel(row)})
	}
	return entries
}

// BirthdayLabel renders "Jan 1st", or just the month when the day is unknown.
func BirthdayLabel(row models.DirectoryRow) string {
	if row.BirthMonth == nil {
		return ""
	}
	month := models.MonthAbbrev(*row.BirthMonth)
	if row.BirthDay == nil {
		return month
	}
	return month + " " + OrdinalSuffix(*row.BirthDay)
}
