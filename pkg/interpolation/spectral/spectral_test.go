package spectral

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/epicycles/pkg/fourier"
	"github.com/xaionaro-go/epicycles/pkg/interpolation"
)

func sine(count, offset int, period float64) []float64 {
	result := make([]float64, count)
	for i := range result {
		result[i] = math.Sin(2 * math.Pi * float64(i+offset) / period)
	}
	return result
}

func maxStep(values []float64) float64 {
	var result float64
	for i := 1; i < len(values); i++ {
		result = math.Max(result, math.Abs(values[i]-values[i-1]))
	}
	return result
}

func TestInterpolate_NoJumps(t *testing.T) {
	const (
		period = 100.25
		gapLen = 60
	)
	before := sine(2048, 0, period)
	after := sine(2048, len(before)+gapLen, period)

	for _, transformer := range []fourier.Transformer{nil, fourier.NewNaive(0)} {
		t.Run(fmt.Sprintf("%T", transformer), func(t *testing.T) {
			interpolated := New(transformer).Interpolate(before, after, gapLen)
			require.Len(t, interpolated, gapLen)

			step := maxStep(before)
			require.LessOrEqual(t, math.Abs(interpolated[0]-before[len(before)-1]), step*1.5)
			require.LessOrEqual(t, math.Abs(after[0]-interpolated[gapLen-1]), step*1.5)
			require.LessOrEqual(t, maxStep(interpolated), step*3)
		})
	}
}

func TestInterpolate_ShortInputIsLinear(t *testing.T) {
	before := []float64{0, 1}
	after := []float64{4, 5}
	require.Equal(t,
		interpolation.Linear{}.Interpolate(before, after, 3),
		New(nil).Interpolate(before, after, 3),
	)
}

func TestClosePath_Circle(t *testing.T) {
	// three quarters of a circle, the last quarter is to be filled
	const count = 96
	path := make([]fourier.ComplexSample, count)
	for i := range path {
		phi := 2 * math.Pi * float64(i) / 128
		path[i] = fourier.NewComplexSample(10*math.Cos(phi), 10*math.Sin(phi))
	}
	closed := interpolation.ClosePath(path, 32, New(nil))
	require.Len(t, closed, 128)
	for _, p := range closed {
		require.False(t, math.IsNaN(p.Re) || math.IsNaN(p.Im))
	}
}

func BenchmarkInterpolate(b *testing.B) {
	before := sine(2048, 0, 100.25)
	interpolator := New(nil)
	for _, gapLen := range []int{64, 512} {
		after := sine(2048, len(before)+gapLen, 100.25)
		b.Run(fmt.Sprintf("gap-%d", gapLen), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = interpolator.Interpolate(before, after, gapLen)
			}
		})
	}
}
