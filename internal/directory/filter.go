package directory

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jcpao-csu/staff-directory-api/internal/models"
)

// Apply returns the rows matching every active constraint of spec, in directory order.
// The result is a fresh slice on every call.
func Apply(rows []models.DirectoryRow, spec models.FilterSpec) []models.DirectoryRow {
	if spec.IsEmpty() {
		return append(make([]models.DirectoryRow, 0, len(rows)), rows...)
	}
	// cases.Caser keeps state, so each call gets its own.
	fold := cases.Lower(language.Und)
	needle := fold.String(strings.TrimSpace(spec.SearchText))

	out := make([]models.DirectoryRow, 0, len(rows))
	for _, row := range rows {
		if matches(row, spec, needle, fold) {
			out = append(out, row)
		}
	}
	return out
}

func matches(row models.DirectoryRow, spec models.FilterSpec, needle string, fold cases.Caser) bool {
	if models.Active(spec.Position) && string(row.Position) != spec.Position {
		return false
	}
	if models.Active(spec.Unit) && !row.HasUnit(spec.Unit) {
		return false
	}
	if models.Active(spec.OfficeLocation) && string(row.OfficeLocation) != spec.OfficeLocation {
		return false
	}
	if spec.BirthMonth != nil && (row.BirthMonth == nil || *row.BirthMonth != *spec.BirthMonth) {
		return false
	}
	if needle == "" {
		return true
	}
	for _, name := range nameFields(row) {
		if strings.Contains(fold.String(name), needle) {
			return true
		}
	}
	return false
}

func nameFields(row models.DirectoryRow) [6]string {
	return [6]string{
		row.FullName,
		row.FirstName,
		value(row.MiddleName),
		row.LastName,
		value(row.Suffix),
		value(row.PreferredName),
	}
}
