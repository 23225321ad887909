package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcpao-csu/staff-directory-api/internal/models"
)

func TestCountByExplodedUsesRowDenominator(t *testing.T) {
	rows := []models.DirectoryRow{
		staff("A", "A", models.PositionAPA, "GCU", "SVU"),
		staff("B", "B", models.PositionAPA, "GCU"),
	}

	groups := CountByExploded(rows, unitKeys)

	assert.Equal(t, []models.AggregationGroup{
		{Label: "GCU", Display: "GCU", Count: 2, Percent: 100},
		{Label: "SVU", Display: "SVU", Count: 1, Percent: 50},
	}, groups)
}

func TestCountByExplodedCountsDistinctPerRow(t *testing.T) {
	rows := []models.DirectoryRow{staff("A", "A", models.PositionAPA, "GCU", "GCU")}

	groups := CountByExploded(rows, unitKeys)

	require.Len(t, groups, 1)
	assert.Equal(t, 1, groups[0].Count)
}

func TestCountByOrdersByCountThenAppearance(t *testing.T) {
	rows := []models.DirectoryRow{
		staff("A", "A", models.PositionLA),
		staff("B", "B", models.PositionAPA),
		staff("C", "C", models.PositionAPA),
		staff("D", "D", models.PositionSS),
		staff("E", "E", ""),
		staff("F", "F", models.PositionLA),
	}

	groups := CountBy(rows, positionKey)

	require.Len(t, groups, 3)
	assert.Equal(t, "LA", groups[0].Label)
	assert.Equal(t, "APA", groups[1].Label)
	assert.Equal(t, "SS", groups[2].Label)
	assert.Equal(t, 33.33, groups[0].Percent)
	assert.Equal(t, 16.67, groups[2].Percent)
}

func TestUniqueRaceCategory(t *testing.T) {
	row := staff("A", "A", models.PositionAPA)
	assert.Equal(t, "Unknown", UniqueRaceCategory(row))

	row.RaceTags = []string{"W", "B"}
	assert.Equal(t, "Multiple", UniqueRaceCategory(row))

	row.RaceTags = []string{"W"}
	assert.Equal(t, "W", UniqueRaceCategory(row))
}

func TestAggregateLabels(t *testing.T) {
	male := models.SexMale
	a := staff("A", "A", models.PositionAPA, "GCU")
	a.Sex = &male
	a.RaceTags = []string{"W", "H"}
	a.OfficeLocation = models.OfficeIndy
	b := staff("B", "B", models.PositionExec, "Exec")
	b.RaceTags = []string{"B"}
	rows := []models.DirectoryRow{a, b}

	res, err := Aggregate(rows, models.FieldPosition)
	require.NoError(t, err)
	assert.Equal(t, 2, res.PopulationSize)
	assert.Equal(t, "Assistant Prosecuting Attorneys", res.Groups[0].Display)

	res, err = Aggregate(rows, models.FieldAssignedUnit)
	require.NoError(t, err)
	assert.Equal(t, "General Crimes Unit (GCU)", res.Groups[0].Display)

	res, err = Aggregate(rows, models.FieldOfficeLocation)
	require.NoError(t, err)
	require.Len(t, res.Groups, 1)
	assert.Equal(t, "Independence", res.Groups[0].Display)
	assert.Equal(t, 50.0, res.Groups[0].Percent)

	res, err = Aggregate(rows, models.FieldRaceUnique)
	require.NoError(t, err)
	assert.Equal(t, []string{"Multiple", "B"}, []string{res.Groups[0].Label, res.Groups[1].Label})
	assert.Equal(t, "Black / African American", res.Groups[1].Display)

	res, err = Aggregate(rows, models.FieldRaceTotal)
	require.NoError(t, err)
	assert.Len(t, res.Groups, 3)

	res, err = Aggregate(rows, models.FieldSex)
	require.NoError(t, err)
	require.Len(t, res.Groups, 1)
	assert.Equal(t, "Male", res.Groups[0].Display)
	assert.Equal(t, 50.0, res.Groups[0].Percent)

	_, err = Aggregate(rows, "hair_color")
	assert.Error(t, err)
}

func TestAggregateExplodesMultiValuedFields(t *testing.T) {
	a := staff("A", "A", models.PositionAPA, "GCU", "SVU")
	a.RaceTags = []string{"W", "H"}
	b := staff("B", "B", models.PositionLA, "GCU")
	b.RaceTags = []string{"B"}
	rows := []models.DirectoryRow{a, b}

	exploded := map[models.AggregationField]bool{}
	for _, field := range models.AggregationFields {
		res, err := Aggregate(rows, field)
		require.NoError(t, err)
		total := 0
		for _, g := range res.Groups {
			total += g.Count
		}
		if field.Exploded() {
			exploded[field] = true
			assert.Equal(t, 3, total, field)
			continue
		}
		assert.LessOrEqual(t, total, len(rows), field)
	}
	assert.Equal(t, map[models.AggregationField]bool{
		models.FieldAssignedUnit: true,
		models.FieldRaceTotal:    true,
	}, exploded)
}

func TestAggregateEmptyDirectory(t *testing.T) {
	for _, field := range models.AggregationFields {
		res, err := Aggregate(nil, field)
		require.NoError(t, err)
		assert.Empty(t, res.Groups)
		assert.Zero(t, res.PopulationSize)
	}
}

func TestMeanMedianSkipMissing(t *testing.T) {
	a := staff("A", "A", models.PositionAPA)
	a.ServiceDays = intp(100)
	b := staff("B", "B", models.PositionAPA)
	b.ServiceDays = intp(200)
	c := staff("C", "C", models.PositionAPA)
	c.ServiceDays = intp(901)
	missing := staff("D", "D", models.PositionIntern)

	days := ServiceDaysOf([]models.DirectoryRow{a, missing, b, c})
	assert.Equal(t, []float64{100, 200, 901}, days)

	mean, ok := Mean(days)
	require.True(t, ok)
	assert.InDelta(t, 400.33, mean, 0.01)

	median, ok := Median(days)
	require.True(t, ok)
	assert.Equal(t, 200.0, median)

	median, _ = Median([]float64{4, 1, 3, 2})
	assert.Equal(t, 2.5, median)

	_, ok = Mean(nil)
	assert.False(t, ok)
	_, ok = Median(nil)
	assert.False(t, ok)
}

func TestSummarize(t *testing.T) {
	rows := []models.DirectoryRow{}
	for i, d := range []int{365, 730, 1095, 1460} {
		r := staff(string(rune('A'+i)), "X", models.PositionAPA)
		r.ServiceDays = intp(d)
		rows = append(rows, r)
	}
	rows = append(rows, staff("Z", "X", models.PositionIntern))

	stats := Summarize(rows)

	assert.Equal(t, models.ServiceStats{
		Population:  4,
		MeanDays:    912,
		MedianDays:  912,
		MinDays:     365,
		MaxDays:     1460,
		MeanYears:   2,
		MedianYears: 2,
		MinYears:    1,
		MaxYears:    4,
	}, stats)

	assert.Equal(t, models.ServiceStats{}, Summarize(nil))
}

func TestSummary(t *testing.T) {
	rows := []models.DirectoryRow{
		staff("A", "A", models.PositionExec),
		staff("B", "B", models.PositionCTA),
		staff("C", "C", models.PositionTTL),
		staff("D", "D", models.PositionAPA),
		staff("E", "E", models.PositionI),
		staff("F", "F", models.PositionVA),
		staff("G", "G", models.PositionLA),
		staff("H", "H", models.PositionSS),
		staff("I", "I", models.PositionIntern),
		NormalizePet(models.RawPetRecord{PetName: strp("Rex")}),
	}

	assert.Equal(t, models.StaffSummary{
		TotalStaff:   9,
		Executive:    1,
		Attorneys:    3,
		SupportStaff: 4,
		Interns:      1,
		Pets:         1,
	}, Summary(rows))
}
