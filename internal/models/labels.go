package models

// Position is the position_enum column.
type Position string

const (
	PositionExec   Position = "Exec"
	PositionCTA    Position = "CTA"
	PositionTTL    Position = "TTL"
	PositionAPA    Position = "APA"
	PositionI      Position = "I"
	PositionVA     Position = "VA"
	PositionLA     Position = "LA"
	PositionSS     Position = "SS"
	PositionIntern Position = "INTERN"
	PositionPet    Position = "PET"
)

// Positions lists staff positions in filter order. PET is not selectable.
var Positions = []Position{
	PositionExec, PositionCTA, PositionTTL, PositionAPA, PositionI,
	PositionVA, PositionLA, PositionSS, PositionIntern,
}

// Label is the dashboard name for the position.
func (p Position) Label() string {
	switch p {
	case PositionExec:
		return "Executive Staff"
	case PositionCTA:
		return "Chief Trial Attorneys"
	case PositionTTL:
		return "Team Trial Leaders"
	case PositionAPA:
		return "Assistant Prosecuting Attorneys"
	case PositionI:
		return "Investigators"
	case PositionVA:
		return "Victim Advocates"
	case PositionLA:
		return "Legal Assistants"
	case PositionSS:
		return "Support Staff"
	case PositionIntern:
		return "Interns"
	case PositionPet:
		return "Office Pets"
	}
	return string(p)
}

// Badge is the short label shown on a directory card.
func (p Position) Badge() string {
	switch p {
	case PositionExec:
		return "Exec Staff"
	case PositionCTA, PositionTTL, PositionAPA:
		return string(p)
	case PositionI:
		return "Investigator"
	case PositionVA:
		return "Victim Advocate"
	case PositionLA:
		return "Legal Assistant"
	case PositionSS:
		return "Support Staff"
	case PositionIntern:
		return "Intern"
	case PositionPet:
		return "Paw-secuting Attorney"
	}
	return string(p)
}

// IsAttorney covers CTA, TTL and APA.
func (p Position) IsAttorney() bool {
	return p == PositionCTA || p == PositionTTL || p == PositionAPA
}

// IsSupport covers investigators, advocates, legal assistants and support staff.
func (p Position) IsSupport() bool {
	return p == PositionI || p == PositionVA || p == PositionLA || p == PositionSS
}

// Unit tokens of unit_enum.
const (
	UnitExec    = "Exec"
	UnitGCU     = "GCU"
	UnitSVU     = "SVU"
	UnitVCU     = "VCU"
	UnitCSU     = "CSU"
	UnitCOMBAT  = "COMBAT"
	UnitDrug    = "Drug"
	UnitFSD     = "FSD"
	UnitWarrant = "WARRANT"
)

// Units lists unit tokens in filter order.
var Units = []string{UnitExec, UnitGCU, UnitSVU, UnitVCU, UnitCSU, UnitCOMBAT, UnitDrug, UnitFSD, UnitWarrant}

// UnitLabel is the dashboard name of a unit. Unknown tokens pass through.
func UnitLabel(unit string) string {
	switch unit {
	case UnitExec:
		return "Executive Staff"
	case UnitGCU:
		return "General Crimes Unit (GCU)"
	case UnitSVU:
		return "Special Victims Unit (SVU)"
	case UnitVCU:
		return "Violent Crimes Unit (VCU)"
	case UnitCSU:
		return "Crime Strategies Unit (CSU)"
	case UnitCOMBAT:
		return "COMBAT"
	case UnitDrug:
		return "Drug Court"
	case UnitFSD:
		return "Family Support Division"
	case UnitWarrant:
		return "Warrant Desk"
	}
	return unit
}

// UnitBadge is the short card label of a unit.
func UnitBadge(unit string) string {
	switch unit {
	case UnitExec:
		return "Exec Staff"
	case UnitDrug:
		return "Drug Court"
	case UnitFSD:
		return "Family Support"
	case UnitWarrant:
		return "Warrant Desk"
	}
	return unit
}

// OfficeLocation is the location_enum column.
type OfficeLocation string

const (
	OfficeDowntown11 OfficeLocation = "Dt-11"
	OfficeDowntown10 OfficeLocation = "Dt-10"
	OfficeDowntown9  OfficeLocation = "Dt-9"
	OfficeDowntown7M OfficeLocation = "Dt-7M"
	OfficeIndy       OfficeLocation = "Indy"
	OfficeFSD        OfficeLocation = "FSD"
)

var OfficeLocations = []OfficeLocation{
	OfficeDowntown11, OfficeDowntown10, OfficeDowntown9, OfficeDowntown7M, OfficeIndy, OfficeFSD,
}

// Label is the dashboard name of the office.
func (o OfficeLocation) Label() string {
	switch o {
	case OfficeDowntown11:
		return "Downtown (11th)"
	case OfficeDowntown10:
		return "Downtown (10th)"
	case OfficeDowntown9:
		return "Downtown (9th)"
	case OfficeDowntown7M:
		return "Downtown (7M)"
	case OfficeIndy:
		return "Independence"
	case OfficeFSD:
		return "Family Support Division"
	}
	return string(o)
}

// Description is the long form used for filter options.
func (o OfficeLocation) Description() string {
	switch o {
	case OfficeDowntown11:
		return "Downtown Courthouse, 11th floor"
	case OfficeDowntown10:
		return "Downtown Courthouse, 10th floor"
	case OfficeDowntown9:
		return "Downtown Courthouse, 9th floor (COMBAT)"
	case OfficeDowntown7M:
		return "Downtown Courthouse, 7M"
	case OfficeIndy:
		return "Eastern Jackson Courthouse, Independence"
	case OfficeFSD:
		return "Family Support Division"
	}
	return string(o)
}

// Badge is the short card label of the office.
func (o OfficeLocation) Badge() string {
	switch o {
	case OfficeDowntown11:
		return "Downtown, 11th"
	case OfficeDowntown10:
		return "Downtown, 10th"
	case OfficeDowntown9:
		return "Downtown, 9th"
	case OfficeDowntown7M:
		return "Downtown, 7M"
	case OfficeIndy:
		return "Eastern Jack, Indy"
	case OfficeFSD:
		return "Downtown, FSD"
	}
	return string(o)
}

// Race tokens of race_enum, plus the two synthetic unique-race buckets.
const (
	RaceWhite    = "W"
	RaceBlack    = "B"
	RaceAsian    = "A"
	RaceHispanic = "H"
	RaceAIAN     = "AIAN"
	RaceNHPI     = "NHPI"
	RaceOther    = "O"

	RaceUnknown  = "Unknown"
	RaceMultiple = "Multiple"
)

// RaceLabel is the dashboard name of a race token.
func RaceLabel(tag string) string {
	switch tag {
	case RaceWhite:
		return "White"
	case RaceBlack:
		return "Black / African American"
	case RaceAsian:
		return "Asian"
	case RaceHispanic:
		return "Hispanic / Latino"
	case RaceAIAN:
		return "American Indian / Alaska Native"
	case RaceNHPI:
		return "Native Hawaiian / Pacific Islander"
	case RaceOther:
		return "Other"
	case RaceMultiple:
		return "Two or More Races"
	}
	return tag
}

// Sex is the sex_enum column.
type Sex string

const (
	SexMale   Sex = "M"
	SexFemale Sex = "F"
	SexOther  Sex = "O"
)

func (s Sex) Label() string {
	switch s {
	case SexMale:
		return "Male"
	case SexFemale:
		return "Female"
	case SexOther:
		return "Other / Prefer not to say"
	}
	return string(s)
}

var monthAbbrev = [...]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// MonthAbbrev returns "Jan".."Dec" for 1..12 and "" otherwise.
func MonthAbbrev(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthAbbrev[month-1]
}
