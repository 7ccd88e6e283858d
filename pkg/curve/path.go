package curve

import (
	"github.com/xaionaro-go/epicycles/pkg/fourier"
)

// SquarePath returns the default drawing used when nothing was captured:
// the outline of a side×side square traversed in four straight runs of
// side+1 points each, starting at (0, side).
func SquarePath(side int) []fourier.ComplexSample {
	s := float64(side)
	result := make([]fourier.ComplexSample, 0, 4*(side+1))
	for i := 0; i <= side; i++ {
		result = append(result, fourier.NewComplexSample(float64(i), s))
	}
	for i := side; i >= 0; i-- {
		result = append(result, fourier.NewComplexSample(s, float64(i)))
	}
	for i := side; i >= 0; i-- {
		result = append(result, fourier.NewComplexSample(float64(i), 0))
	}
	for i := 0; i <= side; i++ {
		result = append(result, fourier.NewComplexSample(0, float64(i)))
	}
	return result
}
