package models

// PanelID identifies one collapsible result panel of the dashboard.
type PanelID string

const (
	PanelGender      PanelID = "gender"
	PanelReligion    PanelID = "religion"
	PanelSocialMedia PanelID = "social_media"
	PanelTraffic     PanelID = "traffic"
)

// Panels lists the result panels in page order.
var Panels = []PanelID{PanelGender, PanelReligion, PanelSocialMedia, PanelTraffic}

// ParsePanelID validates a panel name coming from a URL or flag.
func ParsePanelID(s string) (PanelID, bool) {
	for _, p := range Panels {
		if string(p) == s {
			return p, true
		}
	}
	return "", false
}

type ChartKind string

const (
	ChartGroupedBar ChartKind = "grouped_bar"
	ChartLine       ChartKind = "line"
)

// Series is one named data series. Bar series carry integer Counts aligned
// with ChartSpec.Categories; line series carry parallel X and Y values.
type Series struct {
	Name   string    `json:"name"`
	Color  string    `json:"color,omitempty"`
	Counts []int64   `json:"counts,omitempty"`
	X      []float64 `json:"x,omitempty"`
	Y      []float64 `json:"y,omitempty"`
}


// ChartSpec is an abstract description of one rendered chart.
type ChartSpec struct {
	Panel      PanelID   `json:"panel"`
	Kind       ChartKind `json:"kind"`
	Title      string    `json:"title,omitempty"`
	XTitle     string    `json:"x_title,omitempty"`
	YTitle     string    `json:"y_title,omitempty"`
	Categories []string  `json:"categories,omitempty"`
	Series     []Series  `json:"series"`
}

// Empty reports whether the chart has no series at all.
func (c ChartSpec) Empty() bool {
	return len(c.Series) == 0
}

// Panel pairs a chart spec with its visibility for the current selection.
type Panel struct {
	ID      PanelID   `json:"id"`
	Visible bool      `json:"visible"`
	Chart   ChartSpec `json:"chart"`
}
