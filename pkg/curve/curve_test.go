package curve

import (
	"math"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/epicycles/pkg/fourier"
	"github.com/xaionaro-go/epicycles/pkg/scrollingbuffer"
)

func TestParseKind(t *testing.T) {
	for k := KindUndefined + 1; k < EndOfKind; k++ {
		parsed, err := ParseKind(k.String())
		require.NoError(t, err)
		require.Equal(t, k, parsed)
	}
	k, err := ParseKind("5")
	require.NoError(t, err)
	require.Equal(t, KindSin2x, k)

	_, err = ParseKind("tan(x)")
	require.Error(t, err)
}

func TestKind_DerivativeMatchesFiniteDifference(t *testing.T) {
	const h = 1e-6
	for k := KindUndefined + 1; k < EndOfKind; k++ {
		t.Run(k.String(), func(t *testing.T) {
			for _, x := range []float64{0.1, 1, 2.5, 4} {
				d, ok := k.Derivative(x)
				if !ok {
					return
				}
				expected := (k.Evaluate(x+h, 0) - k.Evaluate(x-h, 0)) / (2 * h)
				assert.InDelta(t, expected, d, 1e-4, "x=%v", x)
			}
		})
	}
}

func TestKind_SeriesConverge(t *testing.T) {
	// square wave tends to 1 inside (0, π)
	assert.InDelta(t, 1, KindSquareWave.Evaluate(math.Pi/2, 500), 0.01)
	assert.InDelta(t, -1, KindSquareWave.Evaluate(3*math.Pi/2, 500), 0.01)

	for _, x := range []float64{0.3, 1.7} {
		assert.InDelta(t, -KindAlternatingSin.Evaluate(x, 7), KindAlternatingSinNegated.Evaluate(x, 7), 1e-12)
	}
	assert.Zero(t, KindSawtooth.Evaluate(1, 0))
}

func TestKind_SquareOutline(t *testing.T) {
	for _, x := range []float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2} {
		assert.InDelta(t, 0, KindSquareOutline.Evaluate(x, 0), 1e-9)
	}
	for _, x := range []float64{math.Pi / 4, 3 * math.Pi / 4, 5 * math.Pi / 4, 7 * math.Pi / 4} {
		assert.InDelta(t, 50*math.Sqrt2-50, KindSquareOutline.Evaluate(x, 0), 1e-9)
	}
}

func TestSample(t *testing.T) {
	dst := scrollingbuffer.New(8)
	dst.Push(100, 100)
	Sample(dst, KindSin, 0, nil)

	points := dst.Points()
	require.Len(t, points, 8, spew.Sdump(points))
	for i, p := range points {
		x := 2 * math.Pi * float64(i) / 8
		assert.InDelta(t, x, p.X, 1e-6)
		assert.InDelta(t, math.Sin(x), p.Y, 1e-6)
	}

	recorded := scrollingbuffer.New(4)
	recorded.Push(0, 3)
	recorded.Push(0, 4)
	Sample(dst, KindRecorded, 0, recorded)
	require.Equal(t, []float64{3, 4, 0, 0, 0, 0, 0, 0}, dst.Ys())
}

func TestSquarePath(t *testing.T) {
	path := SquarePath(100)
	require.Len(t, path, 404)
	require.Equal(t, fourier.NewComplexSample(0, 100), path[0])
	require.Equal(t, fourier.NewComplexSample(100, 100), path[100])
	require.Equal(t, fourier.NewComplexSample(100, 0), path[201])
	require.Equal(t, fourier.NewComplexSample(0, 0), path[302])
	require.Equal(t, fourier.NewComplexSample(0, 100), path[403])
}
