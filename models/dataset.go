package models

import "math"

// CountRecords maps an entity (country) to its count tuple for one group.
type CountRecords map[string][]int64

// TrafficTable is a year-indexed table with one volume column per entity.
// Years are ascending; absent cells are NaN.
type TrafficTable struct {
	Years   []int                `json:"years"`
	Volumes map[string][]float64 `json:"volumes"`
}

// Column returns the volume column for entity, if the table has one.
func (t *TrafficTable) Column(entity string) ([]float64, bool) {
	if t == nil {
		return nil, false
	}
	col, ok := t.Volumes[entity]
	return col, ok
}

// HasCell reports whether the cell at row i of col holds a value.
func HasCell(col []float64, i int) bool {
	return i < len(col) && !math.IsNaN(col[i])
}
