// Package gonum implements fourier.Transformer with the complex FFT of
// gonum.org/v1/gonum/dsp/fourier. FFT plans are cached per length.
package gonum

import (
	"context"
	"sync"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/xaionaro-go/epicycles/pkg/fourier"
	gonumfourier "gonum.org/v1/gonum/dsp/fourier"
)

type Transformer struct {
	locker sync.Mutex
	plans  map[int]*gonumfourier.CmplxFFT
}

var _ fourier.Transformer = (*Transformer)(nil)

func New() *Transformer {
	return &Transformer{
		plans: map[int]*gonumfourier.CmplxFFT{},
	}
}

func (t *Transformer) TransformReal(
	ctx context.Context,
	samples []float64,
	maxFrequency int,
) ([]fourier.FrequencyComponent, error) {
	if err := fourier.CheckInput(len(samples), maxFrequency); err != nil {
		return nil, err
	}
	return t.transform(ctx, fourier.RealToComplex128(samples), maxFrequency), nil
}

func (t *Transformer) TransformComplex(
	ctx context.Context,
	samples []fourier.ComplexSample,
	maxFrequency int,
) ([]fourier.FrequencyComponent, error) {
	if err := fourier.CheckInput(len(samples), maxFrequency); err != nil {
		return nil, err
	}
	return t.transform(ctx, fourier.ToComplex128(samples), maxFrequency), nil
}

func (t *Transformer) transform(
	ctx context.Context,
	seq []complex128,
	maxFrequency int,
) []fourier.FrequencyComponent {
	logger.Tracef(ctx, "gonum CmplxFFT: N:%d, K:%d", len(seq), maxFrequency)
	plan := t.getPlan(len(seq))

	t.locker.Lock()
	defer t.locker.Unlock()
	spectrum := plan.Coefficients(nil, seq)
	return fourier.ComponentsFromSpectrum(spectrum, maxFrequency)
}

func (t *Transformer) getPlan(n int) *gonumfourier.CmplxFFT {
	t.locker.Lock()
	defer t.locker.Unlock()
	plan, ok := t.plans[n]
	if !ok {
		plan = gonumfourier.NewCmplxFFT(n)
		t.plans[n] = plan
	}
	return plan
}
