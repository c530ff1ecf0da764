package render

import (
	"bytes"
	"math"
	"sort"
	"strconv"

	"github.com/cockroachdb/errors"
	chart "github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/plot"

	"legislators_dashboard/models"
)

func linesPNG(spec models.ChartSpec, size Size) ([]byte, error) {
	series := make([]chart.Series, 0, len(spec.Series))
	xmin, xmax := math.Inf(1), math.Inf(-1)
	ymin, ymax := math.Inf(1), math.Inf(-1)
	years := map[float64]bool{}

	for _, s := range spec.Series {
		if len(s.X) == 0 || len(s.X) != len(s.Y) {
			continue
		}
		style := chart.Style{StrokeWidth: 2, DotWidth: 3}
		if s.Color != "" {
			c := hexColor(s.Color)
			style.StrokeColor = c
			style.DotColor = c
		}
		series = append(series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: s.X,
			YValues: s.Y,
			Style:   style,
		})
		for i := range s.X {
			years[s.X[i]] = true
			xmin, xmax = math.Min(xmin, s.X[i]), math.Max(xmax, s.X[i])
			ymin, ymax = math.Min(ymin, s.Y[i]), math.Max(ymax, s.Y[i])
		}
	}

	// go-chart refuses to draw without a series
	if len(series) == 0 {
		return emptyPNG(spec, size)
	}

	ch := chart.Chart{
		Title:      spec.Title,
		Width:      size.Width,
		Height:     size.Height,
		Background: chart.Style{Padding: chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 14}},
		XAxis: chart.XAxis{
			Name:  spec.XTitle,
			Ticks: yearTicks(years),
			Range: paddedRange(xmin, xmax),
		},
		YAxis: chart.YAxis{
			Name:           spec.YTitle,
			Range:          paddedRange(ymin, ymax),
			ValueFormatter: volumeFormatter,
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, errors.Wrap(err, "render line chart")
	}
	return buf.Bytes(), nil
}

// paddedRange returns an explicit axis range when all values are equal;
// go-chart rejects a zero-width range. Otherwise the axis autoscales.
func paddedRange(min, max float64) chart.Range {
	if min != max {
		return nil
	}
	pad := math.Max(1, math.Abs(min)*0.1)
	return &chart.ContinuousRange{Min: min - pad, Max: max + pad}
}

func yearTicks(years map[float64]bool) []chart.Tick {
	vals := make([]float64, 0, len(years))
	for y := range years {
		vals = append(vals, y)
	}
	sort.Float64s(vals)
	ticks := make([]chart.Tick, len(vals))
	for i, v := range vals {
		ticks[i] = chart.Tick{Value: v, Label: strconv.Itoa(int(v))}
	}
	return ticks
}

func volumeFormatter(v interface{}) string {
	f, ok := v.(float64)
	if !ok {
		return ""
	}
	if f == math.Trunc(f) {
		return strconv.FormatFloat(f, 'f', 0, 64)
	}
	return strconv.FormatFloat(f, 'f', 2, 64)
}

func emptyPNG(spec models.ChartSpec, size Size) ([]byte, error) {
	p := plot.New()
	p.Title.Text = spec.Title
	p.X.Label.Text = spec.XTitle
	p.Y.Label.Text = spec.YTitle
	return writePlot(p, size)
}
