package wavelet

import (
	"fmt"
	"math"

	"github.com/xaionaro-go/epicycles/pkg/fourier"
)

// GenerationStrategy selects how Generate populates a chain. It is
// implemented by ClosedForm, Explicit, Components and Custom only.
type GenerationStrategy interface {
	fmt.Stringer
	isGenerationStrategy()
}

// ClosedForm adds one wavelet per index using analytically known
// square-wave (or, with Alternate, triangle-wave) coefficients.
type ClosedForm struct {
	Indices   []int
	Alternate bool
}

// FrequencyMagnitude is a single explicit wavelet.
type FrequencyMagnitude struct {
	Frequency float64
	Magnitude float64
}

// Explicit adds the given frequency/magnitude pairs as they are. With
// SquareWaveScale every frequency is multiplied by 4/π.
type Explicit struct {
	Pairs           []FrequencyMagnitude
	SquareWaveScale bool
}

// Components seeds the chain from DFT output, keeping the phases:
// angular index = frequency, radius = amplitude*Scale.
type Components struct {
	Components []fourier.FrequencyComponent
	Scale      float64
}

// Custom builds one clockwise wavelet per captured point: the X
// coordinate is the angular index and the Y coordinate the magnitude,
// both multiplied by Scale.
type Custom struct {
	Points []Point
	Scale  float64
}

func (ClosedForm) isGenerationStrategy() {}
func (Explicit) isGenerationStrategy()   {}
func (Components) isGenerationStrategy() {}
func (Custom) isGenerationStrategy()     {}

func (s ClosedForm) String() string {
	series := "square"
	if s.Alternate {
		series = "triangle"
	}
	return fmt.Sprintf("closed-form(%s, %d indices)", series, len(s.Indices))
}

func (s Explicit) String() string {
	return fmt.Sprintf("explicit(%d pairs)", len(s.Pairs))
}

func (s Components) String() string {
	return fmt.Sprintf("components(%d, scale:%g)", len(s.Components), s.Scale)
}

func (s Custom) String() string {
	return fmt.Sprintf("custom(%d points, scale:%g)", len(s.Points), s.Scale)
}

// Generate clears the chain and populates it according to the strategy.
func (c *Chain) Generate(strategy GenerationStrategy) {
	c.Clear()
	switch s := strategy.(type) {
	case ClosedForm:
		c.useAlternateSeries = s.Alternate
		for _, k := range s.Indices {
			c.AddWaveletByIndex(k, s.Alternate)
		}
	case Explicit:
		for _, p := range s.Pairs {
			frequency := p.Frequency
			if s.SquareWaveScale {
				frequency *= 4 / math.Pi
			}
			c.AddWavelet(frequency, p.Magnitude)
		}
	case Components:
		c.AddComponents(s.Components, s.Scale)
	case Custom:
		for _, p := range s.Points {
			c.AddClockwiseWavelet(p.X*s.Scale, p.Y*s.Scale)
		}
	default:
		panic(fmt.Errorf("unknown generation strategy %T", strategy))
	}
}

// AddComponents appends one phase-carrying wavelet per component.
func (c *Chain) AddComponents(components []fourier.FrequencyComponent, scale float64) {
	for _, comp := range components {
		c.AddWaveletWithPhase(float64(comp.Frequency), comp.Amplitude()*scale, comp.Phase())
	}
}
