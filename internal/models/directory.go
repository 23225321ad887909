package models

import "time"

// RowSource records which upstream view produced a directory row.
type RowSource string

const (
	SourceEmployee RowSource = "employee"
	SourcePet      RowSource = "pet"
)

// DirectoryRow is one person or office pet in the merged directory.
// Nullable attributes are pointers; AssignedUnits and RaceTags are never nil.
type DirectoryRow struct {
	Source            RowSource      `json:"source"`
	FullName          string         `json:"full_name"`
	FirstName         string         `json:"first_name"`
	MiddleName        *string        `json:"middle_name"`
	LastName          string         `json:"last_name"`
	Suffix            *string        `json:"suffix"`
	PreferredName     *string        `json:"preferred_name"`
	ExternalID        *string        `json:"external_id"`
	WorkPhone         *string        `json:"work_phone"`
	PersonalPhone     *string        `json:"personal_phone"`
	WorkEmail         string         `json:"work_email"`
	PersonalEmail     *string        `json:"personal_email"`
	JobTitle          string         `json:"job_title"`
	Position          Position       `json:"position"`
	AssignedUnits     []string       `json:"assigned_units"`
	OfficeLocation    OfficeLocation `json:"office_location"`
	HireDate          *time.Time     `json:"hire_date"`
	ServiceDays       *int           `json:"service_days"`
	ServicePercentile *float64       `json:"service_percentile"`
	DateOfBirth       *time.Time     `json:"date_of_birth"`
	BirthMonth        *int           `json:"birth_month"`
	BirthDay          *int           `json:"birth_day"`
	RaceTags          []string       `json:"race_tags"`
	Sex               *Sex           `json:"sex"`
	PhotoID           *string        `json:"photo_id"`
}

// IsPet reports whether the row came from the pets view.
func (r DirectoryRow) IsPet() bool {
	return r.Position == PositionPet
}

// HasUnit reports whether unit is one of the row's assigned units.
func (r DirectoryRow) HasUnit(unit string) bool {
	for _, u := range r.AssignedUnits {
		if u == unit {
			return true
		}
	}
	return false
}

// DirectorySnapshot is a built directory plus build metadata.
type DirectorySnapshot struct {
	Rows          []DirectoryRow `json:"rows"`
	EmployeeCount int            `json:"employee_count"`
	PetCount      int            `json:"pet_count"`
	BuiltAt       time.Time      `json:"built_at"`
}
