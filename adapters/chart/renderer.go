package chart

import (
	"bytes"
	"context"
	"fmt"

	"calfit/internal/errors"
	"calfit/ports"

	"github.com/montanaflynn/stats"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Renderer draws a scatter of the samples with the fitted line overlaid and
// encodes the result as PNG.
type Renderer struct{}

// NewRenderer creates a go-chart based renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// pointStyle returns a style that renders points only (no connecting line)
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    4,
		DotColor:    col,
	}
}

// Render produces PNG bytes for the request
func (r *Renderer) Render(ctx context.Context, req ports.ChartRequest) ([]byte, error) {
	if req.Samples == nil || req.Samples.Len() == 0 {
		return nil, errors.InvalidInput("chart request has no samples")
	}

	scatter := chart.ContinuousSeries{
		Name:    "samples",
		XValues: req.Samples.X,
		YValues: req.Samples.Y,
		Style:   pointStyle(chart.ColorBlue),
	}

	xMin, _ := stats.Min(req.Samples.X)
	xMax, _ := stats.Max(req.Samples.X)
	line := chart.ContinuousSeries{
		Name:    fmt.Sprintf("fit: y = %.4fx + %.4f", req.Fit.Slope, req.Fit.Intercept),
		XValues: []float64{xMin, xMax},
		YValues: []float64{req.Fit.Predict(xMin), req.Fit.Predict(xMax)},
		Style: chart.Style{
			StrokeWidth: 2,
			StrokeColor: chart.ColorRed,
		},
	}

	ch := chart.Chart{
		Title:  req.Title,
		Width:  req.Width,
		Height: req.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis:  chart.XAxis{Name: "X"},
		YAxis:  chart.YAxis{Name: "Y"},
		Series: []chart.Series{scatter, line},
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, errors.RenderFailed(err)
	}
	return buf.Bytes(), nil
}
