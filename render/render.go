// Package render rasterizes chart specs to PNG. Grouped bars are drawn with
// gonum/plot and traffic lines with go-chart.
package render

import (
	"image/color"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"legislators_dashboard/models"
)

const ContentType = "image/png"

// Size is the output image size in pixels.
type Size struct {
	Width  int
	Height int
}

var DefaultSize = Size{Width: 900, Height: 450}

// PNG renders spec at the given size.
func PNG(spec models.ChartSpec, size Size) ([]byte, error) {
	if size.Width <= 0 || size.Height <= 0 {
		return nil, errors.Newf("invalid chart size %dx%d", size.Width, size.Height)
	}
	switch spec.Kind {
	case models.ChartGroupedBar:
		return barsPNG(spec, size)
	case models.ChartLine:
		return linesPNG(spec, size)
	}
	return nil, errors.Newf("unsupported chart kind %q", spec.Kind)
}

func hexColor(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}

func toRGBA(c drawing.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
