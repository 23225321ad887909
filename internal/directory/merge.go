package directory

import (
	"sort"

	"github.com/jcpao-csu/staff-directory-api/internal/models"
)

// Merge backfills pet contact fields from the owning employee (matched on work email),
// appends pets after employees and stable-sorts by last then first name. The result
// always holds len(employees)+len(pets) rows.
func Merge(employees, pets []models.DirectoryRow) []models.DirectoryRow {
	owners := make(map[string]int, len(employees))
	for i, emp := range employees {
		if _, seen := owners[emp.WorkEmail]; !seen {
			owners[emp.WorkEmail] = i
		}
	}

	merged := make([]models.DirectoryRow, 0, len(employees)+len(pets))
	merged = append(merged, employees...)
	for _, pet := range pets {
		if i, ok := owners[pet.WorkEmail]; ok {
			owner := employees[i]
			pet.WorkPhone = clone(owner.WorkPhone)
			pet.PersonalPhone = clone(owner.PersonalPhone)
			pet.PersonalEmail = clone(owner.PersonalEmail)
		} else {
			pet.WorkPhone = nil
			pet.PersonalPhone = nil
			pet.PersonalEmail = nil
		}
		merged = append(merged, pet)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].LastName != merged[j].LastName {
			return merged[i].LastName < merged[j].LastName
		}
		return merged[i].FirstName < merged[j].FirstName
	})
	return merged
}
