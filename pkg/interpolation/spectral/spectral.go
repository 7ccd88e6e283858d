// Package spectral fills gaps by extrapolating the dominant harmonics of
// the samples on both sides of the gap and cross-fading the two
// projections.
package spectral

import (
	"context"
	"math"

	"github.com/xaionaro-go/epicycles/pkg/fourier"
	"github.com/xaionaro-go/epicycles/pkg/fourier/implementations/radix2"
	"github.com/xaionaro-go/epicycles/pkg/interpolation"
)

const (
	// MaxWindowSize is the maximal amount of samples analysed on each side.
	MaxWindowSize = 1024

	// MinRequiredSamples is the minimal amount of samples on each side;
	// shorter inputs are interpolated linearly.
	MinRequiredSamples = 4

	// SieveSensitivity is how many times a peak amplitude must exceed the
	// mean amplitude to be extrapolated.
	SieveSensitivity = 2.5
)

type Interpolator struct {
	Transformer fourier.Transformer
}

var _ interpolation.Interpolator = (*Interpolator)(nil)

// New returns the spectral interpolator; a nil transformer means the
// radix-2 FFT, the analysed windows are always of a power-of-two length.
func New(transformer fourier.Transformer) *Interpolator {
	if transformer == nil {
		transformer = radix2.New(nil)
	}
	return &Interpolator{
		Transformer: transformer,
	}
}

func (i *Interpolator) Interpolate(before, after []float64, gapLen int) []float64 {
	if len(before) < MinRequiredSamples || len(after) < MinRequiredSamples {
		return interpolation.Linear{}.Interpolate(before, after, gapLen)
	}

	n := largestPowerOfTwo(min(len(before), MaxWindowSize, len(after)))
	windowBefore := before[len(before)-n:]
	windowAfter := after[:n]

	forward, err := i.extend(windowBefore, gapLen, true)
	if err != nil {
		return interpolation.Linear{}.Interpolate(before, after, gapLen)
	}
	backward, err := i.extend(windowAfter, gapLen, false)
	if err != nil {
		return interpolation.Linear{}.Interpolate(before, after, gapLen)
	}

	// forward[0] and backward[gapLen] model the real edge samples; both
	// projections are shifted to meet them
	startDiff := forward[0] - windowBefore[len(windowBefore)-1]
	endDiff := backward[gapLen] - windowAfter[0]

	result := make([]float64, gapLen)
	for idx := range result {
		t := float64(idx+1) / float64(gapLen+1)
		w := t * t * (3 - 2*t)
		result[idx] = (1-w)*forward[idx+1] + w*backward[idx] - ((1-w)*startDiff + w*endDiff)
	}
	return result
}

func largestPowerOfTwo(n int) int {
	p := 1
	for p*2 <= n {
		p *= 2
	}
	return p
}

// extend evaluates the significant harmonics of the window over the gap
// and the adjacent edge sample: from the last sample of the window on
// (forward), or up to its first sample.
func (i *Interpolator) extend(window []float64, gapLen int, forward bool) ([]float64, error) {
	n := len(window)
	components, err := i.Transformer.TransformReal(context.Background(), window, n)
	if err != nil {
		return nil, err
	}

	var threshold float64
	for _, c := range components {
		threshold += c.Amplitude()
	}
	threshold = threshold / float64(n) * SieveSensitivity

	var peaks []fourier.FrequencyComponent
	for k := 1; k < n/2; k++ {
		a := components[k].Amplitude()
		if a > threshold && a > components[k-1].Amplitude() && a > components[k+1].Amplitude() {
			peaks = append(peaks, components[k])
		}
	}

	result := make([]float64, gapLen+1)
	for idx := range result {
		t := float64(idx - gapLen)
		if forward {
			t = float64(n - 1 + idx)
		}
		sum := components[0].Re
		for _, p := range peaks {
			// a real signal splits the amplitude between k and n-k
			sum += 2 * p.Amplitude() * math.Cos(2*math.Pi*float64(p.Frequency)*t/float64(n)+p.Phase())
		}
		result[idx] = sum
	}
	return result, nil
}
