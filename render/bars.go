package render

import (
	"bytes"
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"legislators_dashboard/models"
)

const (
	maxBarWidth = 24.0
	minBarWidth = 2.0
)

func barsPNG(spec models.ChartSpec, size Size) ([]byte, error) {
	p := plot.New()
	p.Title.Text = spec.Title
	p.Y.Label.Text = spec.YTitle
	p.Y.Min = 0
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	width := barWidth(size.Width, len(spec.Categories), len(spec.Series))
	n := len(spec.Series)
	for i, s := range spec.Series {
		if len(s.Counts) == 0 {
			continue
		}
		bars, err := plotter.NewBarChart(countValues(s.Counts), width)
		if err != nil {
			return nil, errors.Wrapf(err, "bar series %q", s.Name)
		}
		bars.LineStyle.Width = vg.Length(0)
		if s.Color != "" {
			bars.Color = toRGBA(hexColor(s.Color))
		}
		// centre the group of bars on each category tick
		bars.Offset = vg.Length(float64(i)-float64(n-1)/2) * width
		p.Add(bars)
		p.Legend.Add(s.Name, bars)
	}

	if len(spec.Categories) > 0 {
		p.NominalX(spec.Categories...)
		p.X.Tick.Label.Rotation = math.Pi / 4
		p.X.Tick.Label.XAlign = draw.XRight
		p.X.Tick.Label.YAlign = draw.YCenter
	}

	return writePlot(p, size)
}

func countValues(counts []int64) plotter.Values {
	vs := make(plotter.Values, len(counts))
	for i, c := range counts {
		vs[i] = float64(c)
	}
	return vs
}

// barWidth splits the plotting width between every bar of every group,
// leaving one bar's width of space between groups.
func barWidth(imageWidth, groups, seriesCount int) vg.Length {
	if groups < 1 {
		groups = 1
	}
	if seriesCount < 1 {
		seriesCount = 1
	}
	w := float64(imageWidth) * 0.7 / float64(groups*(seriesCount+1))
	return vg.Points(math.Max(minBarWidth, math.Min(maxBarWidth, w)))
}

// pngDPI matches the resolution gonum's PNG canvas renders at.
const pngDPI = 96

func pixels(n int) vg.Length {
	return vg.Length(n) * vg.Inch / pngDPI
}

func writePlot(p *plot.Plot, size Size) ([]byte, error) {
	wt, err := p.WriterTo(pixels(size.Width), pixels(size.Height), "png")
	if err != nil {
		return nil, errors.Wrap(err, "create plot writer")
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, errors.Wrap(err, "write plot")
	}
	return buf.Bytes(), nil
}
