package directory

import "github.com/jcpao-csu/staff-directory-api/internal/models"

// NormalizeEmployees converts every employee record. An empty input yields an empty directory slice.
func NormalizeEmployees(records []models.RawEmployeeRecord) []models.DirectoryRow {
	rows := make([]models.DirectoryRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, NormalizeEmployee(rec))
	}
	return rows
}

// NormalizeEmployee copies view columns onto the directory shape and decodes the unit and race arrays.
func NormalizeEmployee(rec models.RawEmployeeRecord) models.DirectoryRow {
	row := models.DirectoryRow{
		Source:         models.SourceEmployee,
		FullName:       value(rec.FullName),
		FirstName:      value(rec.FirstName),
		MiddleName:     clone(rec.MiddleName),
		LastName:       value(rec.LastName),
		Suffix:         clone(rec.Suffix),
		PreferredName:  clone(rec.PreferredName),
		ExternalID:     clone(rec.ExternalID),
		WorkPhone:      clone(rec.WorkPhone),
		PersonalPhone:  clone(rec.PersonalPhone),
		WorkEmail:      value(rec.WorkEmail),
		PersonalEmail:  clone(rec.PersonalEmail),
		JobTitle:       value(rec.JobTitle),
		Position:       models.Position(value(rec.Position)),
		AssignedUnits:  DecodeEnum(rec.AssignedUnit),
		OfficeLocation: models.OfficeLocation(value(rec.OfficeLocation)),
		HireDate:       rec.HireDate,
		ServiceDays:    rec.ServiceDays,
		DateOfBirth:    rec.DateOfBirth,
		BirthMonth:     rec.BirthMonth,
		BirthDay:       rec.BirthDay,
		RaceTags:       DecodeEnum(rec.Race),
		PhotoID:        clone(rec.PhotoID),
	}
	if rec.Sex != nil {
		sex := models.Sex(*rec.Sex)
		row.Sex = &sex
	}
	return row
}

// NormalizePets converts every pet record.
func NormalizePets(records []models.RawPetRecord) []models.DirectoryRow {
	rows := make([]models.DirectoryRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, NormalizePet(rec))
	}
	return rows
}

// NormalizePet maps pet columns onto the shared shape. The pet's name becomes the full
// name, its preferred name fills both first and preferred name, and every
// employee-only attribute stays empty. Contact fields are filled later by Merge.
func NormalizePet(rec models.RawPetRecord) models.DirectoryRow {
	return models.DirectoryRow{
		Source:         models.SourcePet,
		FullName:       value(rec.PetName),
		FirstName:      value(rec.PetPreferredName),
		LastName:       value(rec.LastName),
		PreferredName:  clone(rec.PetPreferredName),
		WorkEmail:      value(rec.WorkEmail),
		JobTitle:       value(rec.JobTitle),
		Position:       models.PositionPet,
		AssignedUnits:  DecodeEnum(rec.AssignedUnit),
		OfficeLocation: models.OfficeLocation(value(rec.OfficeLocation)),
		DateOfBirth:    rec.DateOfBirth,
		BirthMonth:     rec.BirthMonth,
		BirthDay:       rec.BirthDay,
		RaceTags:       []string{},
		PhotoID:        clone(rec.PhotoID),
	}
}

func value(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func clone(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
