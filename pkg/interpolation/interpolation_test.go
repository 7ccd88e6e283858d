package interpolation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/epicycles/pkg/fourier"
)

func TestLinear(t *testing.T) {
	gap := Linear{}.Interpolate([]float64{5, 3}, []float64{0, 7}, 2)
	require.Len(t, gap, 2)
	assert.InDelta(t, 2, gap[0], 1e-12)
	assert.InDelta(t, 1, gap[1], 1e-12)

	require.Equal(t, []float64{0, 0, 0}, Linear{}.Interpolate(nil, []float64{1}, 3))
}

func TestClosePath(t *testing.T) {
	path := []fourier.ComplexSample{
		fourier.NewComplexSample(0, 0),
		fourier.NewComplexSample(3, 6),
	}
	closed := ClosePath(path, 2, Linear{})
	require.Len(t, closed, 4)
	require.Equal(t, path, closed[:2])
	for idx, expected := range []fourier.ComplexSample{
		fourier.NewComplexSample(2, 4),
		fourier.NewComplexSample(1, 2),
	} {
		assert.InDelta(t, expected.Re, closed[2+idx].Re, 1e-12)
		assert.InDelta(t, expected.Im, closed[2+idx].Im, 1e-12)
	}

	require.Equal(t, path, ClosePath(path, 0, Linear{}))
	require.Equal(t, path[:1], ClosePath(path[:1], 5, Linear{}))
}
