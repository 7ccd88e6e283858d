// Package godsp implements fourier.Transformer on top of the FFT of
// github.com/mjibson/go-dsp, which accepts sequences of any length.
package godsp

import (
	"context"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/mjibson/go-dsp/fft"
	"github.com/xaionaro-go/epicycles/pkg/fourier"
)

type Transformer struct{}

var _ fourier.Transformer = (*Transformer)(nil)

func New() *Transformer {
	return &Transformer{}
}

func (*Transformer) TransformReal(
	ctx context.Context,
	samples []float64,
	maxFrequency int,
) ([]fourier.FrequencyComponent, error) {
	if err := fourier.CheckInput(len(samples), maxFrequency); err != nil {
		return nil, err
	}
	logger.Tracef(ctx, "go-dsp FFTReal: N:%d, K:%d", len(samples), maxFrequency)
	return fourier.ComponentsFromSpectrum(fft.FFTReal(samples), maxFrequency), nil
}

func (*Transformer) TransformComplex(
	ctx context.Context,
	samples []fourier.ComplexSample,
	maxFrequency int,
) ([]fourier.FrequencyComponent, error) {
	if err := fourier.CheckInput(len(samples), maxFrequency); err != nil {
		return nil, err
	}
	logger.Tracef(ctx, "go-dsp FFT: N:%d, K:%d", len(samples), maxFrequency)
	return fourier.ComponentsFromSpectrum(fft.FFT(fourier.ToComplex128(samples)), maxFrequency), nil
}
