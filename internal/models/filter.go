package models

// FilterAll is the sentinel meaning "no constraint" for string filters.
const FilterAll = "All"

// FilterSpec narrows the directory. Empty or "All" fields impose no constraint and
// every other field is ANDed.
type FilterSpec struct {
	Position       string `json:"position,omitempty"`
	Unit           string `json:"unit,omitempty"`
	OfficeLocation string `json:"office_location,omitempty"`
	BirthMonth     *int   `json:"birth_month,omitempty"`
	SearchText     string `json:"search_text,omitempty"`
}

// Active reports whether a string filter value constrains anything.
func Active(value string) bool {
	return value != "" && value != FilterAll
}

// IsEmpty is true when the spec matches every row.
func (f FilterSpec) IsEmpty() bool {
	return !Active(f.Position) && !Active(f.Unit) && !Active(f.OfficeLocation) && f.BirthMonth == nil && f.SearchText == ""
}

// Pagination contains pagination metadata returned in list responses.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}
