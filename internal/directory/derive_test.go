package directory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcpao-csu/staff-directory-api/internal/models"
)

func TestDisplayName(t *testing.T) {
	row := staff("Robert", "Lane", models.PositionI)
	assert.Equal(t, "Robert Lane", DisplayName(row))

	row.PreferredName = strp("")
	assert.Equal(t, "Robert Lane", DisplayName(row))

	row.PreferredName = strp("Bob")
	assert.Equal(t, "Bob Lane", DisplayName(row))

	row.LastName = ""
	assert.Equal(t, "Bob", DisplayName(row))
}

func TestServiceYears(t *testing.T) {
	assert.Equal(t, 1.0, ServiceYears(365))
	assert.Equal(t, 2.74, ServiceYears(1000))
	assert.Equal(t, 0.0, ServiceYears(0))
}

func TestPercentileRankMidpoint(t *testing.T) {
	population := []float64{10, 20, 30, 40, 50}

	assert.Equal(t, 50.0, PercentileRank(30, population))
	assert.Equal(t, 10.0, PercentileRank(10, population))
	assert.Equal(t, 90.0, PercentileRank(50, population))
	assert.Equal(t, 100.0, PercentileRank(60, population))
	assert.Equal(t, 0.0, PercentileRank(5, population))
	assert.Equal(t, 0.0, PercentileRank(5, nil))
}

func TestOrdinalSuffix(t *testing.T) {
	cases := map[int]string{
		1: "1st", 2: "2nd", 3: "3rd", 4: "4th",
		10: "10th", 11: "11th", 12: "12th", 13: "13th", 20: "20th",
		21: "21st", 22: "22nd", 23: "23rd",
		101: "101st", 111: "111th", 112: "112th", 113: "113th", 121: "121st",
		0: "0th",
	}
	for n, want := range cases {
		assert.Equal(t, want, OrdinalSuffix(n), "n=%d", n)
	}
}

func TestServiceDaysAt(t *testing.T) {
	now := time.Date(2024, 1, 11, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, 10, ServiceDaysAt(*date(2024, 1, 1), now))
	assert.Equal(t, 0, ServiceDaysAt(*date(2024, 2, 1), now))
}

func TestDeriveComputesTenureAndPercentile(t *testing.T) {
	now := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	a := staff("A", "A", models.PositionAPA)
	a.HireDate = date(2024, 1, 21) // 10 days
	b := staff("B", "B", models.PositionAPA)
	b.HireDate = date(2024, 1, 11) // 20 days
	c := staff("C", "C", models.PositionAPA)
	c.ServiceDays = intp(30) // no hire date, upstream value kept
	d := staff("D", "D", models.PositionAPA)
	d.HireDate = date(2023, 12, 22) // 40 days
	e := staff("E", "E", models.PositionAPA)
	e.HireDate = date(2023, 12, 12) // 50 days
	noTenure := staff("F", "F", models.PositionIntern)
	pet := NormalizePet(models.RawPetRecord{PetName: strp("Rex"), PetPreferredName: strp("Rex"), LastName: strp("G")})
	pet.ServiceDays = intp(999)

	in := []models.DirectoryRow{e, c, a, noTenure, pet, b, d}
	out := Derive(in, now)
	require.Len(t, out, len(in))

	byName := map[string]models.DirectoryRow{}
	for _, r := range out {
		byName[r.FirstName] = r
	}

	require.NotNil(t, byName["C"].ServicePercentile)
	assert.Equal(t, 50.0, *byName["C"].ServicePercentile)
	assert.Equal(t, 10, *byName["A"].ServiceDays)
	assert.Equal(t, 10.0, *byName["A"].ServicePercentile)
	assert.Equal(t, 90.0, *byName["E"].ServicePercentile)

	assert.Nil(t, byName["F"].ServiceDays)
	assert.Nil(t, byName["F"].ServicePercentile)
	assert.Nil(t, byName["Rex"].ServiceDays)
	assert.Nil(t, byName["Rex"].ServicePercentile)

	// input rows are left untouched
	assert.Nil(t, in[2].ServiceDays)
	assert.Equal(t, 999, *in[4].ServiceDays)
}
