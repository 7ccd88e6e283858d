package fourier

import (
	"context"
	"math"
	"runtime"
	"sync"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/xaionaro-go/observability"
)

const (
	// minFrequenciesPerWorker is the smallest stripe handed to a separate
	// goroutine; smaller transforms run inline.
	minFrequenciesPerWorker = 16
)

// Naive is the direct O(N*K) discrete Fourier transform. Output
// frequencies are independent of each other, so they are split between
// Workers goroutines.
type Naive struct {
	Workers int
}

var _ Transformer = (*Naive)(nil)

// NewNaive returns the direct DFT. workers <= 0 means GOMAXPROCS.
func NewNaive(workers int) *Naive {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Naive{
		Workers: workers,
	}
}

// DFT is a shorthand for the naive transform of a real-valued sequence.
func DFT(samples []float64, maxFrequency int) ([]FrequencyComponent, error) {
	return NewNaive(0).TransformReal(context.Background(), samples, maxFrequency)
}

// DFTComplex is a shorthand for the naive transform of a complex-valued sequence.
func DFTComplex(samples []ComplexSample, maxFrequency int) ([]FrequencyComponent, error) {
	return NewNaive(0).TransformComplex(context.Background(), samples, maxFrequency)
}

func (t *Naive) TransformReal(
	ctx context.Context,
	samples []float64,
	maxFrequency int,
) ([]FrequencyComponent, error) {
	if err := CheckInput(len(samples), maxFrequency); err != nil {
		return nil, err
	}
	n := float64(len(samples))
	return t.run(ctx, len(samples), maxFrequency, func(k int) FrequencyComponent {
		var sum ComplexSample
		for idx, v := range samples {
			phi := 2 * math.Pi * float64(k) * float64(idx) / n
			sum.Re += v * math.Cos(phi)
			sum.Im -= v * math.Sin(phi)
		}
		return NewFrequencyComponent(int64(k), sum.Scale(1/n))
	})
}

func (t *Naive) TransformComplex(
	ctx context.Context,
	samples []ComplexSample,
	maxFrequency int,
) ([]FrequencyComponent, error) {
	if err := CheckInput(len(samples), maxFrequency); err != nil {
		return nil, err
	}
	n := float64(len(samples))
	return t.run(ctx, len(samples), maxFrequency, func(k int) FrequencyComponent {
		var sum ComplexSample
		for idx, v := range samples {
			phi := 2 * math.Pi * float64(k) * float64(idx) / n
			sum = sum.Add(v.RotateConj(phi))
		}
		return NewFrequencyComponent(int64(k), sum.Scale(1/n))
	})
}

func (t *Naive) run(
	ctx context.Context,
	sampleCount int,
	maxFrequency int,
	component func(k int) FrequencyComponent,
) (_ret []FrequencyComponent, _err error) {
	logger.Tracef(ctx, "naive DFT: N:%d, K:%d", sampleCount, maxFrequency)
	defer func() { logger.Tracef(ctx, "/naive DFT: N:%d, K:%d: %v", sampleCount, maxFrequency, _err) }()

	result := make([]FrequencyComponent, maxFrequency)

	workers := t.Workers
	if workers <= 0 {
		workers = 1
	}
	if limit := maxFrequency / minFrequenciesPerWorker; workers > limit {
		workers = limit
	}
	if workers <= 1 {
		for k := range result {
			if k%minFrequenciesPerWorker == 0 {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
			}
			result[k] = component(k)
		}
		return result, nil
	}

	// every worker owns a disjoint stripe of output indices
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		first := w
		observability.Go(ctx, func() {
			defer wg.Done()
			for k := first; k < maxFrequency; k += workers {
				select {
				case <-ctx.Done():
					return
				default:
				}
				result[k] = component(k)
			}
		})
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
