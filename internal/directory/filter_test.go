package directory

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/jcpao-csu/staff-directory-api/internal/models"
)

func filterFixture() []models.DirectoryRow {
	ana := staff("Ana", "Ruiz", models.PositionAPA, "GCU", "SVU")
	ana.OfficeLocation = models.OfficeDowntown11
	ana.BirthMonth = intp(3)
	ana.MiddleName = strp("Lucía")

	bo := staff("Bo", "Kim", models.PositionLA, "GCU")
	bo.OfficeLocation = models.OfficeIndy
	bo.BirthMonth = intp(7)
	bo.PreferredName = strp("Bobby")

	cy := staff("Cy", "Nguyen", models.PositionAPA, "Drug")
	cy.OfficeLocation = models.OfficeDowntown11
	cy.Suffix = strp("Jr.")

	return []models.DirectoryRow{ana, bo, cy}
}

func TestApplyEmptySpecReturnsEverything(t *testing.T) {
	rows := filterFixture()

	for _, spec := range []models.FilterSpec{
		{},
		{Position: models.FilterAll, Unit: models.FilterAll, OfficeLocation: models.FilterAll},
	} {
		got := Apply(rows, spec)
		if diff := cmp.Diff(rows, got); diff != "" {
			t.Fatalf("unexpected result (-want +got):\n%s", diff)
		}
	}
}

func TestApplyEmptySpecReturnsFreshSlice(t *testing.T) {
	rows := filterFixture()

	got := Apply(rows, models.FilterSpec{})
	got[0].FirstName = "Changed"

	assert.Equal(t, "Ana", rows[0].FirstName)
	assert.True(t, models.FilterSpec{Unit: models.FilterAll}.IsEmpty())
	assert.False(t, models.FilterSpec{SearchText: "kim"}.IsEmpty())
}

func TestApplyUnitMembership(t *testing.T) {
	got := Apply(filterFixture(), models.FilterSpec{Unit: "GCU"})
	assert.Equal(t, []string{"Ana Ruiz", "Bo Kim"}, names(got))

	got = Apply(filterFixture(), models.FilterSpec{Unit: "SVU"})
	assert.Equal(t, []string{"Ana Ruiz"}, names(got))
}

func TestApplyCombinesConstraints(t *testing.T) {
	rows := filterFixture()

	assert.Equal(t, []string{"Ana Ruiz", "Cy Nguyen"}, names(Apply(rows, models.FilterSpec{Position: "APA"})))
	assert.Equal(t, []string{"Cy Nguyen"}, names(Apply(rows, models.FilterSpec{Position: "APA", Unit: "Drug"})))
	assert.Equal(t, []string{"Ana Ruiz", "Cy Nguyen"}, names(Apply(rows, models.FilterSpec{OfficeLocation: "Dt-11"})))
	assert.Equal(t, []string{"Bo Kim"}, names(Apply(rows, models.FilterSpec{BirthMonth: intp(7)})))
	assert.Empty(t, Apply(rows, models.FilterSpec{BirthMonth: intp(1)}))
	assert.Empty(t, Apply(rows, models.FilterSpec{Position: "LA", OfficeLocation: "Dt-11"}))
}

func TestApplySearchText(t *testing.T) {
	rows := filterFixture()

	tests := map[string][]string{
		"ruiz":    {"Ana Ruiz"},
		"  RUIZ ": {"Ana Ruiz"},
		"bobby":   {"Bo Kim"},
		"lucía":   {"Ana Ruiz"},
		"LUCÍA":   {"Ana Ruiz"},
		"jr.":     {"Cy Nguyen"},
		"an":      {"Ana Ruiz"},
		"n":       {"Ana Ruiz", "Cy Nguyen"},
		"zzz":     {},
	}
	for search, want := range tests {
		got := Apply(rows, models.FilterSpec{SearchText: search})
		assert.Equal(t, want, names(got), "search %q", search)
	}
}

func TestApplyDoesNotCacheAcrossSpecs(t *testing.T) {
	rows := filterFixture()
	first := Apply(rows, models.FilterSpec{Position: "LA"})
	second := Apply(rows, models.FilterSpec{Position: "APA"})

	assert.Equal(t, []string{"Bo Kim"}, names(first))
	assert.Equal(t, []string{"Ana Ruiz", "Cy Nguyen"}, names(second))
}

func TestApplyEmptyDirectory(t *testing.T) {
	got := Apply(nil, models.FilterSpec{Position: "APA"})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
