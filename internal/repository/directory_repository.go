package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/jcpao-csu/staff-directory-api/internal/models"
)

const employeeColumns = `"Full Name" AS full_name,
	"First Name" AS first_name,
	"Middle Name" AS middle_name,
	"Last Name" AS last_name,
	"Suffix" AS suffix,
	"Preferred Name" AS preferred_name,
	"Employee ID"::text AS external_id,
	"Work Phone #" AS work_phone,
	"Personal Phone #" AS personal_phone,
	"Work Email Address" AS work_email,
	"Personal Email Address" AS personal_email,
	"Job Title" AS job_title,
	"Position"::text AS position,
	"Assigned Unit"::text AS assigned_unit,
	"Office Location"::text AS office_location,
	"Hire Date" AS hire_date,
	"Service (days)"::int AS service_days,
	"DOB" AS dob,
	"DOB Month"::int AS dob_month,
	"DOB Day"::int AS dob_day,
	"Race"::text AS race,
	"Sex"::text AS sex,
	"PhotoID" AS photo_id`

const petColumns = `"Pet Name" AS pet_name,
	"Pet Preferred Name" AS pet_preferred_name,
	"Last Name" AS last_name,
	"Work Email Address" AS work_email,
	"Job Title" AS job_title,
	"Assigned Unit"::text AS assigned_unit,
	"Office Location"::text AS office_location,
	"DOB" AS dob,
	"DOB Month"::int AS dob_month,
	"DOB Day"::int AS dob_day,
	"PhotoID" AS photo_id`

// QueryObserver receives query timings.
type QueryObserver interface {
	ObserveDBQuery(label string, duration time.Duration)
}

// DirectoryRepository reads the employee and pet views. It never writes.
type DirectoryRepository struct {
	db            *sqlx.DB
	employeeQuery string
	petQuery      string
	observer      QueryObserver
}

// NewDirectoryRepository builds the view queries once. View names may be schema qualified.
func NewDirectoryRepository(db *sqlx.DB, employeeView, petView string) *DirectoryRepository {
	return &DirectoryRepository{
		db:            db,
		employeeQuery: fmt.Sprintf("SELECT %s FROM %s", employeeColumns, QuoteQualified(employeeView)),
		petQuery:      fmt.Sprintf("SELECT %s FROM %s", petColumns, QuoteQualified(petView)),
	}
}

// WithObserver attaches a timing observer and returns the repository.
func (r *DirectoryRepository) WithObserver(o QueryObserver) *DirectoryRepository {
	r.observer = o
	return r
}

// FetchEmployeeRows returns every row of the employee view in fetch order.
func (r *DirectoryRepository) FetchEmployeeRows(ctx context.Context) ([]models.RawEmployeeRecord, error) {
	start := time.Now()
	var rows []models.RawEmployeeRecord
	err := r.db.SelectContext(ctx, &rows, r.employeeQuery)
	r.observe("directory_employees", start)
	if err != nil {
		return nil, fmt.Errorf("select employee view: %w", err)
	}
	if rows == nil {
		rows = []models.RawEmployeeRecord{}
	}
	return rows, nil
}

// FetchPetRows returns every row of the pets view in fetch order.
func (r *DirectoryRepository) FetchPetRows(ctx context.Context) ([]models.RawPetRecord, error) {
	start := time.Now()
	var rows []models.RawPetRecord
	err := r.db.SelectContext(ctx, &rows, r.petQuery)
	r.observe("directory_pets", start)
	if err != nil {
		return nil, fmt.Errorf("select pet view: %w", err)
	}
	if rows == nil {
		rows = []models.RawPetRecord{}
	}
	return rows, nil
}

// Ping checks the connection for readiness probes.
func (r *DirectoryRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *DirectoryRepository) observe(label string, start time.Time) {
	if r.observer != nil {
		r.observer.ObserveDBQuery(label, time.Since(start))
	}
}

// QuoteQualified quotes each dot-separated part of a relation name.
func QuoteQualified(name string) string {
	parts := strings.Split(name, ".")
	for i, p := range parts {
		parts[i] = pq.QuoteIdentifier(p)
	}
	return strings.Join(parts, ".")
}
