// Package interpolation fills gaps of sampled curves. It is used to close
// a captured path, so the DFT does not see a jump between the last and
// the first point.
package interpolation

import (
	"github.com/xaionaro-go/epicycles/pkg/fourier"
)

type Interpolator interface {
	// Interpolate returns gapLen values between the end of before and
	// the beginning of after.
	Interpolate(before, after []float64, gapLen int) []float64
}

// ClosePath appends gapLen points leading from the last point of the
// path back to its first one. X and Y are interpolated independently.
func ClosePath(
	path []fourier.ComplexSample,
	gapLen int,
	interpolator Interpolator,
) []fourier.ComplexSample {
	if gapLen <= 0 || len(path) < 2 {
		return path
	}

	xs := make([]float64, len(path))
	ys := make([]float64, len(path))
	for idx, p := range path {
		xs[idx] = p.Re
		ys[idx] = p.Im
	}
	gapX := interpolator.Interpolate(xs, xs, gapLen)
	gapY := interpolator.Interpolate(ys, ys, gapLen)

	result := make([]fourier.ComplexSample, 0, len(path)+gapLen)
	result = append(result, path...)
	for idx := 0; idx < gapLen; idx++ {
		result = append(result, fourier.NewComplexSample(gapX[idx], gapY[idx]))
	}
	return result
}
