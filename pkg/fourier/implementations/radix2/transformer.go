// Package radix2 implements fourier.Transformer with the in-place radix-2
// FFT of github.com/brettbuddin/fourier. Sequences whose length is not
// a power of two are handed to the fallback transformer.
package radix2

import (
	"context"
	"errors"
	"fmt"

	"github.com/brettbuddin/fourier"
	"github.com/facebookincubator/go-belt/tool/logger"
	dft "github.com/xaionaro-go/epicycles/pkg/fourier"
)

var ErrNotPowerOfTwo = errors.New("the sequence length is not a power of two")

type Transformer struct {
	Fallback dft.Transformer
}

var _ dft.Transformer = (*Transformer)(nil)

// New returns the radix-2 transformer; fallback may be nil, then
// the naive DFT is used for other lengths.
func New(fallback dft.Transformer) *Transformer {
	if fallback == nil {
		fallback = dft.NewNaive(0)
	}
	return &Transformer{
		Fallback: fallback,
	}
}

func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

func (t *Transformer) TransformReal(
	ctx context.Context,
	samples []float64,
	maxFrequency int,
) ([]dft.FrequencyComponent, error) {
	if err := dft.CheckInput(len(samples), maxFrequency); err != nil {
		return nil, err
	}
	result, err := transform(ctx, dft.RealToComplex128(samples), maxFrequency)
	if errors.Is(err, ErrNotPowerOfTwo) {
		logger.Debugf(ctx, "falling back to %T: %v", t.Fallback, err)
		return t.Fallback.TransformReal(ctx, samples, maxFrequency)
	}
	return result, err
}

func (t *Transformer) TransformComplex(
	ctx context.Context,
	samples []dft.ComplexSample,
	maxFrequency int,
) ([]dft.FrequencyComponent, error) {
	if err := dft.CheckInput(len(samples), maxFrequency); err != nil {
		return nil, err
	}
	result, err := transform(ctx, dft.ToComplex128(samples), maxFrequency)
	if errors.Is(err, ErrNotPowerOfTwo) {
		logger.Debugf(ctx, "falling back to %T: %v", t.Fallback, err)
		return t.Fallback.TransformComplex(ctx, samples, maxFrequency)
	}
	return result, err
}

func transform(
	ctx context.Context,
	coeffs []complex128,
	maxFrequency int,
) ([]dft.FrequencyComponent, error) {
	if !IsPowerOfTwo(len(coeffs)) {
		return nil, fmt.Errorf("%w: %d", ErrNotPowerOfTwo, len(coeffs))
	}
	logger.Tracef(ctx, "radix-2 FFT: N:%d, K:%d", len(coeffs), maxFrequency)
	if err := fourier.Forward(coeffs); err != nil {
		return nil, fmt.Errorf("unable to perform the forward FFT: %w", err)
	}
	return dft.ComponentsFromSpectrum(coeffs, maxFrequency), nil
}
