package dto

import (
	"strconv"
	"strings"
	"time"

	"github.com/jcpao-csu/staff-directory-api/internal/directory"
	"github.com/jcpao-csu/staff-directory-api/internal/models"
)

// DirectoryQuery binds the directory filter query string.
type DirectoryQuery struct {
	Position string `form:"position" json:"position" validate:"omitempty,max=32"`
	Unit     string `form:"unit" json:"unit" validate:"omitempty,max=32"`
	Office   string `form:"office" json:"office" validate:"omitempty,max=32"`
	Month    string `form:"month" json:"month" validate:"omitempty,month_filter"`
	Search   string `form:"search" json:"search" validate:"omitempty,max=128"`
	Page     int    `form:"page" json:"-" validate:"omitempty,min=1"`
	PageSize int    `form:"page_size" json:"-" validate:"omitempty,min=1,max=500"`
}

// ValidMonthFilter accepts "", "All" or 1..12.
func ValidMonthFilter(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == models.FilterAll {
		return true
	}
	month, err := strconv.Atoi(raw)
	return err == nil && month >= 1 && month <= 12
}

// Filter converts the query into a filter spec. Month must already be validated.
func (q DirectoryQuery) Filter() models.FilterSpec {
	spec := models.FilterSpec{
		Position:       strings.TrimSpace(q.Position),
		Unit:           strings.TrimSpace(q.Unit),
		OfficeLocation: strings.TrimSpace(q.Office),
		SearchText:     q.Search,
	}
	if month, err := strconv.Atoi(strings.TrimSpace(q.Month)); err == nil {
		spec.BirthMonth = &month
	}
	return spec
}

// DirectoryEntry is a directory row with presentation fields resolved.
type DirectoryEntry struct {
	models.DirectoryRow
	DisplayName        string `json:"display_name"`
	PositionBadge      string `json:"position_badge"`
	UnitBadges         string `json:"unit_badges"`
	OfficeBadge        string `json:"office_badge"`
	WorkPhoneDisplay   string `json:"work_phone_display"`
	Extension          string `json:"extension,omitempty"`
	PersonalPhoneLabel string `json:"personal_phone_display"`
	BirthdayBadge      string `json:"birthday_badge"`
}

// NewDirectoryEntry resolves the presentation fields of row.
func NewDirectoryEntry(row models.DirectoryRow) DirectoryEntry {
	return DirectoryEntry{
		DirectoryRow:       row,
		DisplayName:        directory.DisplayName(row),
		PositionBadge:      row.Position.Badge(),
		UnitBadges:         directory.UnitBadges(row),
		OfficeBadge:        row.OfficeLocation.Badge(),
		WorkPhoneDisplay:   directory.FormatPhone(row.WorkPhone),
		Extension:          directory.PhoneExtension(row.WorkPhone),
		PersonalPhoneLabel: directory.FormatPhone(row.PersonalPhone),
		BirthdayBadge:      directory.BirthdayBadge(row),
	}
}

// NewDirectoryEntries maps rows in order.
func NewDirectoryEntries(rows []models.DirectoryRow) []DirectoryEntry {
	entries := make([]DirectoryEntry, len(rows))
	for i, row := range rows {
		entries[i] = NewDirectoryEntry(row)
	}
	return entries
}

// BirthdayResponse is one birthday listing entry.
type BirthdayResponse struct {
	DirectoryEntry
	Label string `json:"label"`
}

// ProfileResponse pairs an entry with its service context.
type ProfileResponse struct {
	Entry   DirectoryEntry        `json:"entry"`
	Service models.ServiceContext `json:"service"`
}

// RefreshResponse reports the outcome of a rebuild.
type RefreshResponse struct {
	Rows      int       `json:"rows"`
	Employees int       `json:"employees"`
	Pets      int       `json:"pets"`
	BuiltAt   time.Time `json:"built_at"`
}

// FilterOption is one choice of a listing filter.
type FilterOption struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Badge       string `json:"badge,omitempty"`
	Description string `json:"description,omitempty"`
}

// FilterOptions backs the listing page select boxes. Every list starts with All.
type FilterOptions struct {
	Positions []FilterOption `json:"positions"`
	Units     []FilterOption `json:"units"`
	Offices   []FilterOption `json:"offices"`
	Months    []FilterOption `json:"months"`
}

// NewFilterOptions lists the selectable filter values in display order.
func NewFilterOptions() FilterOptions {
	all := FilterOption{Value: models.FilterAll, Label: models.FilterAll}
	out := FilterOptions{
		Positions: []FilterOption{all},
		Units:     []FilterOption{all},
		Offices:   []FilterOption{all},
		Months:    []FilterOption{all},
	}
	for _, p := range models.Positions {
		out.Positions = append(out.Positions, FilterOption{Value: string(p), Label: p.Label(), Badge: p.Badge()})
	}
	for _, u := range models.Units {
		out.Units = append(out.Units, FilterOption{Value: u, Label: models.UnitLabel(u), Badge: models.UnitBadge(u)})
	}
	for _, o := range models.OfficeLocations {
		out.Offices = append(out.Offices, FilterOption{
			Value:       string(o),
			Label:       o.Label(),
			Badge:       o.Badge(),
			Description: o.Description(),
		})
	}
	for m := 1; m <= 12; m++ {
		out.Months = append(out.Months, FilterOption{Value: strconv.Itoa(m), Label: models.MonthAbbrev(m)})
	}
	return out
}
