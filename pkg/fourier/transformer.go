package fourier

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when a transform is requested for
	// a zero-length sequence.
	ErrEmptyInput = errors.New("the sample sequence is empty")

	ErrNegativeFrequencyCount = errors.New("the amount of frequencies is negative")
)

// Transformer computes the first maxFrequency normalized DFT components
// of a sequence. The output is indexed by frequency (component[k] has
// Frequency == k), maxFrequency may exceed len(samples).
type Transformer interface {
	TransformReal(
		ctx context.Context,
		samples []float64,
		maxFrequency int,
	) ([]FrequencyComponent, error)

	TransformComplex(
		ctx context.Context,
		samples []ComplexSample,
		maxFrequency int,
	) ([]FrequencyComponent, error)
}

func CheckInput(length, maxFrequency int) error {
	if length == 0 {
		return ErrEmptyInput
	}
	if maxFrequency < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeFrequencyCount, maxFrequency)
	}
	return nil
}

// ComponentsFromSpectrum converts an unnormalized N-point spectrum
// (as returned by FFT libraries) into maxFrequency components. Indices
// at or beyond N alias back onto the spectrum, which is exactly what
// the direct summation yields for them.
func ComponentsFromSpectrum(spectrum []complex128, maxFrequency int) []FrequencyComponent {
	n := len(spectrum)
	invN := 1.0 / float64(n)
	result := make([]FrequencyComponent, maxFrequency)
	for k := range result {
		v := spectrum[k%n]
		result[k] = FrequencyComponent{
			Frequency: int64(k),
			Re:        real(v) * invN,
			Im:        imag(v) * invN,
		}
	}
	return result
}

func ToComplex128(samples []ComplexSample) []complex128 {
	result := make([]complex128, len(samples))
	for i, s := range samples {
		result[i] = s.Complex128()
	}
	return result
}

func RealToComplex128(samples []float64) []complex128 {
	result := make([]complex128, len(samples))
	for i, v := range samples {
		result[i] = complex(v, 0)
	}
	return result
}
