package directory

import (
	"fmt"
	"sort"

	"github.com/jcpao-csu/staff-directory-api/internal/models"
)

// KeyFunc extracts a single category from a row. An empty key is not counted.
type KeyFunc func(models.DirectoryRow) string

// KeysFunc extracts a multi-valued category list from a row.
type KeysFunc func(models.DirectoryRow) []string

// CountBy groups rows by a single-valued key. Percentages use len(rows) as the
// denominator; groups are ordered by count, ties by first appearance.
func CountBy(rows []models.DirectoryRow, key KeyFunc) []models.AggregationGroup {
	return CountByExploded(rows, func(row models.DirectoryRow) []string {
		k := key(row)
		if k == "" {
			return nil
		}
		return []string{k}
	})
}

// CountByExploded counts each distinct element of a row's list once. The denominator is
// still len(rows), so percentages may sum past 100.
func CountByExploded(rows []models.DirectoryRow, keys KeysFunc) []models.AggregationGroup {
	counts := map[string]int{}
	order := []string{}
	for _, row := range rows {
		seen := map[string]struct{}{}
		for _, k := range keys(row) {
			if k == "" {
				continue
			}
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			if _, ok := counts[k]; !ok {
				order = append(order, k)
			}
			counts[k]++
		}
	}

	groups := make([]models.AggregationGroup, 0, len(order))
	for _, k := range order {
		groups = append(groups, models.AggregationGroup{
			Label:   k,
			Display: k,
			Count:   counts[k],
			Percent: percentOf(counts[k], len(rows)),
		})
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Count > groups[j].Count
	})
	return groups
}

// UniqueRaceCategory assigns exactly one race bucket per row.
func UniqueRaceCategory(row models.DirectoryRow) string {
	switch len(row.RaceTags) {
	case 0:
		return models.RaceUnknown
	case 1:
		return row.RaceTags[0]
	default:
		return models.RaceMultiple
	}
}

func positionKey(row models.DirectoryRow) string { return string(row.Position) }

func officeKey(row models.DirectoryRow) string { return string(row.OfficeLocation) }

func sexKey(row models.DirectoryRow) string {
	if row.Sex == nil {
		return ""
	}
	return string(*row.Sex)
}

func unitKeys(row models.DirectoryRow) []string { return row.AssignedUnits }

func raceKeys(row models.DirectoryRow) []string { return row.RaceTags }

// Aggregate runs the breakdown named by field and attaches display labels.
func Aggregate(rows []models.DirectoryRow, field models.AggregationField) (models.AggregationResult, error) {
	var (
		key   KeyFunc
		keys  KeysFunc
		label func(string) string
	)
	switch field {
	case models.FieldPosition:
		key = positionKey
		label = func(k string) string { return models.Position(k).Label() }
	case models.FieldAssignedUnit:
		keys = unitKeys
		label = models.UnitLabel
	case models.FieldOfficeLocation:
		key = officeKey
		label = func(k string) string { return models.OfficeLocation(k).Label() }
	case models.FieldRaceTotal:
		keys = raceKeys
		label = models.RaceLabel
	case models.FieldRaceUnique:
		key = UniqueRaceCategory
		label = models.RaceLabel
	case models.FieldSex:
		key = sexKey
		label = func(k string) string { return models.Sex(k).Label() }
	default:
		return models.AggregationResult{}, fmt.Errorf("unknown aggregation field %q", field)
	}

	var groups []models.AggregationGroup
	if field.Exploded() {
		groups = CountByExploded(rows, keys)
	} else {
		groups = CountBy(rows, key)
	}
	for i := range groups {
		groups[i].Display = label(groups[i].Label)
	}
	return models.AggregationResult{Field: field, Groups: groups, PopulationSize: len(rows)}, nil
}

func percentOf(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return round2(float64(count) / float64(total) * 100)
}
