// Package charts turns the datasets and a selection into chart specs.
// Every function here is pure: the same inputs always give the same spec.
package charts

import (
	"legislators_dashboard/models"
)

// Lookup returns the count tuple of an entity in one dataset.
type Lookup func(entity string) ([]int64, bool)

// Source is the read side of the dataset store the assembler needs.
type Source interface {
	RecordFor(group models.GroupID, entity string) ([]int64, bool)
	Traffic() *models.TrafficTable
}

// AssembleBars builds a grouped bar chart with one series per enabled
// category, in the group's label order. Each series has one value per
// selected entity that has a record, in selection order. Disabled categories
// contribute no series. With no entities or no enabled categories the spec
// has zero series.
func AssembleBars(panel models.PanelID, group models.CategoryGroup, enabled []bool, entities []string, lookup Lookup) models.ChartSpec {
	spec := models.ChartSpec{
		Panel:  panel,
		Kind:   models.ChartGroupedBar,
		Title:  group.Title + " Distribution",
		YTitle: "Count",
		Series: []models.Series{},
	}
	if len(entities) == 0 || !anyTrue(enabled) {
		return spec
	}

	// entities missing from the dataset, or with too short a tuple, are
	// dropped from the panel
	width := len(group.Labels)
	present := make([]string, 0, len(entities))
	tuples := make([][]int64, 0, len(entities))
	for _, e := range entities {
		rec, ok := lookup(e)
		if !ok || len(rec) < width {
			continue
		}
		present = append(present, e)
		tuples = append(tuples, rec)
	}
	spec.Categories = present

	for idx, label := range group.Labels {
		if idx >= len(enabled) || !enabled[idx] {
			continue
		}
		counts := make([]int64, len(tuples))
		for i, rec := range tuples {
			counts[i] = rec[idx]
		}
		s := models.Series{Name: label, Counts: counts}
		if idx < len(group.Colors) {
			s.Color = group.Colors[idx]
		}
		spec.Series = append(spec.Series, s)
	}
	return spec
}

// AssembleTraffic builds a line chart with one line per selected entity
// that has a column in the table. X is the year index and Y the volume.
// Entities without a column and empty cells are skipped.
func AssembleTraffic(entities []string, table *models.TrafficTable) models.ChartSpec {
	spec := models.ChartSpec{
		Panel:  models.PanelTraffic,
		Kind:   models.ChartLine,
		Title:  "Traffic Volume Trend for Selected Entities",
		XTitle: "Year",
		YTitle: "Traffic Volume",
		Series: []models.Series{},
	}
	for _, e := range entities {
		col, ok := table.Column(e)
		if !ok {
			continue
		}
		s := models.Series{Name: e, X: []float64{}, Y: []float64{}}
		for i, year := range table.Years {
			if !models.HasCell(col, i) {
				continue
			}
			s.X = append(s.X, float64(year))
			s.Y = append(s.Y, col[i])
		}
		spec.Series = append(spec.Series, s)
	}
	return spec
}

// GroupLookup adapts a Source to the Lookup of one group.
func GroupLookup(src Source, group models.GroupID) Lookup {
	return func(entity string) ([]int64, bool) {
		return src.RecordFor(group, entity)
	}
}

var barPanels = []struct {
	panel models.PanelID
	group models.CategoryGroup
}{
	{models.PanelGender, models.GenderGroup},
	{models.PanelReligion, models.ReligionGroup},
	{models.PanelSocialMedia, models.SocialMediaGroup},
}

// Panel assembles one panel for the selection. A panel is visible only when
// at least one entity is selected and, for bar panels, at least one category
// of its group is enabled.
func Panel(src Source, state models.SelectionState, id models.PanelID) (models.Panel, bool) {
	if id == models.PanelTraffic {
		return models.Panel{
			ID:      id,
			Visible: len(state.Entities) > 0,
			Chart:   AssembleTraffic(state.Entities, src.Traffic()),
		}, true
	}
	for _, bp := range barPanels {
		if bp.panel != id {
			continue
		}
		enabled := state.Enabled(bp.group.ID)
		return models.Panel{
			ID:      id,
			Visible: len(state.Entities) > 0 && anyTrue(enabled),
			Chart:   AssembleBars(id, bp.group, enabled, state.Entities, GroupLookup(src, bp.group.ID)),
		}, true
	}
	return models.Panel{}, false
}

// Panels assembles all four panels in page order.
func Panels(src Source, state models.SelectionState) []models.Panel {
	out := make([]models.Panel, 0, len(models.Panels))
	for _, id := range models.Panels {
		p, _ := Panel(src, state, id)
		out = append(out, p)
	}
	return out
}

func anyTrue(v []bool) bool {
	for _, b := range v {
		if b {
			return true
		}
	}
	return false
}
