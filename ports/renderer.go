package ports

import (
	"context"

	"calfit/domain/fit"
	"calfit/domain/sample"
)

// ChartRequest describes a scatter + fit-line chart to render
type ChartRequest struct {
	Title   string
	Samples *sample.Set
	Fit     fit.Result
	Width   int
	Height  int
}

// ChartRenderer turns a chart request into encoded image bytes
type ChartRenderer interface {
	Render(ctx context.Context, req ChartRequest) ([]byte, error)
}
