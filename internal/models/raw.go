package models

import "time"

// RawEmployeeRecord mirrors one row of the employee view. Enum array columns arrive as
// Postgres text such as "{GCU,SVU}".
type RawEmployeeRecord struct {
	FullName       *string    `db:"full_name" json:"full_name"`
	FirstName      *string    `db:"first_name" json:"first_name"`
	MiddleName     *string    `db:"middle_name" json:"middle_name"`
	LastName       *string    `db:"last_name" json:"last_name"`
	Suffix         *string    `db:"suffix" json:"suffix"`
	PreferredName  *string    `db:"preferred_name" json:"preferred_name"`
	ExternalID     *string    `db:"external_id" json:"external_id"`
	WorkPhone      *string    `db:"work_phone" json:"work_phone"`
	PersonalPhone  *string    `db:"personal_phone" json:"personal_phone"`
	WorkEmail      *string    `db:"work_email" json:"work_email"`
	PersonalEmail  *string    `db:"personal_email" json:"personal_email"`
	JobTitle       *string    `db:"job_title" json:"job_title"`
	Position       *string    `db:"position" json:"position"`
	AssignedUnit   *string    `db:"assigned_unit" json:"assigned_unit"`
	OfficeLocation *string    `db:"office_location" json:"office_location"`
	HireDate       *time.Time `db:"hire_date" json:"hire_date"`
	ServiceDays    *int       `db:"service_days" json:"service_days"`
	DateOfBirth    *time.Time `db:"dob" json:"dob"`
	BirthMonth     *int       `db:"dob_month" json:"dob_month"`
	BirthDay       *int       `db:"dob_day" json:"dob_day"`
	Race           *string    `db:"race" json:"race"`
	Sex            *string    `db:"sex" json:"sex"`
	PhotoID        *string    `db:"photo_id" json:"photo_id"`
}

// RawPetRecord mirrors one row of the active pets view.
type RawPetRecord struct {
	PetName          *string    `db:"pet_name" json:"pet_name"`
	PetPreferredName *string    `db:"pet_preferred_name" json:"pet_preferred_name"`
	LastName         *string    `db:"last_name" json:"last_name"`
	WorkEmail        *string    `db:"work_email" json:"work_email"`
	JobTitle         *string    `db:"job_title" json:"job_title"`
	AssignedUnit     *string    `db:"assigned_unit" json:"assigned_unit"`
	OfficeLocation   *string    `db:"office_location" json:"office_location"`
	DateOfBirth      *time.Time `db:"dob" json:"dob"`
	BirthMonth       *int       `db:"dob_month" json:"dob_month"`
	BirthDay         *int       `db:"dob_day" json:"dob_day"`
	PhotoID          *string    `db:"photo_id" json:"photo_id"`
}
