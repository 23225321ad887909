package directory

import (
	"math"
	"time"

	"github.com/jcpao-csu/staff-directory-api/internal/models"
)

// Directory is an immutable, built directory. It is safe for concurrent readers.
type Directory struct {
	rows      []models.DirectoryRow
	byEmail   map[string]int
	employees int
	pets      int
	builtAt   time.Time
}

// Build normalizes both sources, merges them and derives tenure fields as of now.
func Build(employees []models.RawEmployeeRecord, pets []models.RawPetRecord, now time.Time) *Directory {
	emp := NormalizeEmployees(employees)
	pet := NormalizePets(pets)
	rows := Derive(Merge(emp, pet), now)

	byEmail := make(map[string]int, len(emp))
	for i, row := range rows {
		if row.Source != models.SourceEmployee || row.WorkEmail == "" {
			continue
		}
		if _, ok := byEmail[row.WorkEmail]; !ok {
			byEmail[row.WorkEmail] = i
		}
	}

	return &Directory{
		rows:      rows,
		byEmail:   byEmail,
		employees: len(emp),
		pets:      len(pet),
		builtAt:   now,
	}
}

// Empty is the directory served when neither source produced rows.
func Empty(now time.Time) *Directory {
	return Build(nil, nil, now)
}

// Rows returns the canonical ordered rows. Callers must not modify them.
func (d *Directory) Rows() []models.DirectoryRow { return d.rows }

func (d *Directory) Len() int { return len(d.rows) }

func (d *Directory) BuiltAt() time.Time { return d.builtAt }

// Snapshot copies the row slice header along with build metadata.
func (d *Directory) Snapshot() models.DirectorySnapshot {
	return models.DirectorySnapshot{
		Rows:          d.rows,
		EmployeeCount: d.employees,
		PetCount:      d.pets,
		BuiltAt:       d.builtAt,
	}
}

// Staff returns the rows that are not pets.
func (d *Directory) Staff() []models.DirectoryRow {
	staff := make([]models.DirectoryRow, 0, d.employees)
	for _, row := range d.rows {
		if !row.IsPet() {
			staff = append(staff, row)
		}
	}
	return staff
}

func (d *Directory) Filter(spec models.FilterSpec) []models.DirectoryRow {
	return Apply(d.rows, spec)
}

func (d *Directory) Aggregate(field models.AggregationField) (models.AggregationResult, error) {
	return Aggregate(d.rows, field)
}

func (d *Directory) Birthdays(month int) []models.BirthdayEntry {
	return Birthdays(d.rows, month)
}

// Profile finds the employee row for a work email together with its service context.
func (d *Directory) Profile(email string) (models.Profile, bool) {
	i, ok := d.byEmail[email]
	if !ok {
		return models.Profile{}, false
	}
	row := d.rows[i]
	return models.Profile{Row: row, Service: ServiceContextOf(row)}, true
}

// ServiceContextOf describes one row's tenure, including the ordinal percentile label.
func ServiceContextOf(row models.DirectoryRow) models.ServiceContext {
	sc := models.ServiceContext{ServiceDays: row.ServiceDays, ServicePercentile: row.ServicePercentile}
	if row.ServiceDays != nil {
		years := ServiceYears(*row.ServiceDays)
		sc.ServiceYears = &years
	}
	if row.ServicePercentile != nil {
		sc.PercentileLabel = OrdinalSuffix(int(math.Round(*row.ServicePercentile)))
	}
	return sc
}
