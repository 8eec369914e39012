package chart

import (
	"context"
	"testing"

	"calfit/domain/fit"
	"calfit/domain/sample"
	"calfit/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	set := &sample.Set{
		X: []float64{0, 1, 2, 3, 4},
		Y: []float64{0.2, 2.1, 3.9, 6.2, 7.8},
	}
	res, err := fit.Fit(set.X, set.Y)
	require.NoError(t, err)

	png, err := NewRenderer().Render(context.Background(), ports.ChartRequest{
		Title:   "fit",
		Samples: set,
		Fit:     res,
		Width:   800,
		Height:  500,
	})
	require.NoError(t, err)
	require.NotEmpty(t, png)

	// PNG signature
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestRenderer_NoSamples(t *testing.T) {
	_, err := NewRenderer().Render(context.Background(), ports.ChartRequest{Samples: sample.NewSet(0)})
	require.Error(t, err)

	_, err = NewRenderer().Render(context.Background(), ports.ChartRequest{})
	require.Error(t, err)
}
