package directory

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcpao-csu/staff-directory-api/internal/models"
)

var buildClock = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

func TestBuildEmployeeWithPet(t *testing.T) {
	employees := []models.RawEmployeeRecord{{
		FullName:     strp("Alex Smith"),
		FirstName:    strp("Alex"),
		LastName:     strp("Smith"),
		WorkEmail:    strp("a@x.org"),
		WorkPhone:    strp("8168814321"),
		Position:     strp("APA"),
		AssignedUnit: strp("{GCU}"),
		HireDate:     date(2023, 6, 1),
	}}
	pets := []models.RawPetRecord{{
		PetName:          strp("Biscuit"),
		PetPreferredName: strp("Biscuit"),
		LastName:         strp("Smith"),
		WorkEmail:        strp("a@x.org"),
		AssignedUnit:     strp("{GCU}"),
	}}

	dir := Build(employees, pets, buildClock)
	rows := dir.Rows()
	require.Len(t, rows, 2)

	var emp, pet models.DirectoryRow
	for _, r := range rows {
		if r.IsPet() {
			pet = r
		} else {
			emp = r
		}
	}

	assert.Equal(t, models.PositionPet, pet.Position)
	require.NotNil(t, pet.WorkPhone)
	assert.Equal(t, *emp.WorkPhone, *pet.WorkPhone)
	assert.Equal(t, []string{}, pet.RaceTags)
	assert.Nil(t, pet.Sex)

	require.NotNil(t, emp.ServiceDays)
	assert.Equal(t, 366, *emp.ServiceDays)
	assert.Equal(t, 50.0, *emp.ServicePercentile)

	snap := dir.Snapshot()
	assert.Equal(t, 1, snap.EmployeeCount)
	assert.Equal(t, 1, snap.PetCount)
	assert.Equal(t, buildClock, snap.BuiltAt)
	assert.Len(t, dir.Staff(), 1)
}

func TestBuildEmptySources(t *testing.T) {
	dir := Empty(buildClock)

	assert.Zero(t, dir.Len())
	assert.Empty(t, dir.Filter(models.FilterSpec{Position: "APA"}))
	res, err := dir.Aggregate(models.FieldAssignedUnit)
	require.NoError(t, err)
	assert.Empty(t, res.Groups)
	assert.Empty(t, dir.Birthdays(1))
	_, ok := dir.Profile("a@x.org")
	assert.False(t, ok)
}

func TestDirectoryProfile(t *testing.T) {
	employees := []models.RawEmployeeRecord{
		{FirstName: strp("Ana"), LastName: strp("Ruiz"), WorkEmail: strp("ana@jcpao.org"), Position: strp("APA"), ServiceDays: intp(100)},
		{FirstName: strp("Bo"), LastName: strp("Kim"), WorkEmail: strp("bo@jcpao.org"), Position: strp("LA"), ServiceDays: intp(200)},
		{FirstName: strp("Cy"), LastName: strp("Lee"), WorkEmail: strp("cy@jcpao.org"), Position: strp("SS"), ServiceDays: intp(300)},
		{FirstName: strp("Di"), LastName: strp("Park"), WorkEmail: strp("di@jcpao.org"), Position: strp("INTERN")},
	}
	pets := []models.RawPetRecord{{PetName: strp("Rex"), PetPreferredName: strp("Rex"), LastName: strp("Aardvark"), WorkEmail: strp("cy@jcpao.org")}}

	dir := Build(employees, pets, buildClock)

	profile, ok := dir.Profile("cy@jcpao.org")
	require.True(t, ok)
	assert.Equal(t, "Cy", profile.Row.FirstName)
	assert.Equal(t, 300, *profile.Service.ServiceDays)
	assert.Equal(t, 0.82, *profile.Service.ServiceYears)
	assert.InDelta(t, 83.33, *profile.Service.ServicePercentile, 0.001)
	assert.Equal(t, "83rd", profile.Service.PercentileLabel)

	intern, ok := dir.Profile("di@jcpao.org")
	require.True(t, ok)
	assert.Nil(t, intern.Service.ServiceDays)
	assert.Empty(t, intern.Service.PercentileLabel)

	_, ok = dir.Profile("nobody@jcpao.org")
	assert.False(t, ok)
}

func TestDirectoryConcurrentReaders(t *testing.T) {
	employees := make([]models.RawEmployeeRecord, 0, 50)
	for i := 0; i < 50; i++ {
		employees = append(employees, models.RawEmployeeRecord{
			FirstName:    strp(string(rune('A' + i%26))),
			LastName:     strp("Staff"),
			Position:     strp("APA"),
			AssignedUnit: strp("{GCU,SVU}"),
		})
	}
	dir := Build(employees, nil, buildClock)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Len(t, dir.Filter(models.FilterSpec{Unit: "SVU", SearchText: "staff"}), 50)
			res, err := dir.Aggregate(models.FieldAssignedUnit)
			assert.NoError(t, err)
			assert.Len(t, res.Groups, 2)
		}()
	}
	wg.Wait()
}

func TestBirthdays(t *testing.T) {
	mk := func(first, last string, month, day *int) models.DirectoryRow {
		r := staff(first, last, models.PositionAPA)
		r.BirthMonth = month
		r.BirthDay = day
		return r
	}
	pet := NormalizePet(models.RawPetRecord{PetName: strp("Rex"), LastName: strp("Dog"), BirthMonth: intp(1), BirthDay: intp(1)})
	rows := []models.DirectoryRow{
		mk("Ann", "Zed", intp(1), intp(2)),
		mk("Bea", "Young", intp(1), nil),
		mk("Cal", "Adams", intp(1), intp(2)),
		mk("Dee", "Xu", intp(1), intp(11)),
		mk("Eve", "Wu", intp(2), intp(1)),
		mk("Fay", "Vo", nil, nil),
		pet,
	}

	jan := Birthdays(rows, 1)
	labels := make([]string, len(jan))
	for i, e := range jan {
		labels[i] = e.Row.FirstName + ":" + e.Label
	}
	assert.Equal(t, []string{"Cal:Jan 2nd", "Ann:Jan 2nd", "Dee:Jan 11th", "Bea:Jan"}, labels)

	all := Birthdays(rows, 0)
	require.Len(t, all, 5)
	assert.Equal(t, "Eve", all[4].Row.FirstName)
	assert.Equal(t, "Feb 1st", all[4].Label)

	assert.Empty(t, Birthdays(rows, 12))
}

func TestFormatPhone(t *testing.T) {
	assert.Equal(t, "816-881-1234", FormatPhone(strp("8168811234")))
	assert.Equal(t, "555-1234", FormatPhone(strp("555-1234")))
	assert.Equal(t, "", FormatPhone(nil))

	assert.Equal(t, "1234", PhoneExtension(strp("8168811234")))
	assert.Equal(t, "", PhoneExtension(strp("8165551234")))
	assert.Equal(t, "", PhoneExtension(nil))
}

func TestBadges(t *testing.T) {
	row := staff("A", "A", models.PositionAPA, "GCU", "Drug", "FSD")
	assert.Equal(t, "GCU / Drug Court / Family Support", UnitBadges(row))
	assert.Equal(t, " / ", BirthdayBadge(row))

	row.BirthMonth = intp(4)
	row.BirthDay = intp(9)
	assert.Equal(t, "4/9", BirthdayBadge(row))
}
