// Package demodulation extracts the amplitude and phase envelope of a
// driving curve by winding it around a single wavelet at a slowly
// increasing winding frequency and tracking the centroid of the traced
// tip positions.
package demodulation

import (
	"errors"
	"fmt"
	"math"

	"github.com/xaionaro-go/epicycles/pkg/scrollingbuffer"
	"github.com/xaionaro-go/epicycles/pkg/wavelet"
)

const (
	// DefaultStepsPerSweep is how many Advance calls it takes for the
	// winding frequency to grow by 2π.
	DefaultStepsPerSweep = 1000

	// DefaultEnvelopeMinWinding is the winding fraction below which
	// sign changes are not reported as envelope points.
	DefaultEnvelopeMinWinding = 0.33

	// DefaultEnvelopeNoiseFloor is the minimal absolute amplitude of
	// a reported envelope point.
	DefaultEnvelopeNoiseFloor = 0.01

	// RealAxisIsY: the real part of the synthesized signal is read from
	// the chain's Y axis and the imaginary part from the X axis. This
	// follows the rendering coordinate convention, CosComponent is
	// therefore derived from the centroid's Y and SinComponent from its X.
	RealAxisIsY = true
)

var (
	ErrEmptyDrivingCurve = errors.New("the driving curve is empty")
	ErrInvalidWindingCap = errors.New("the winding cap must be positive")
)

type State int

const (
	StateIdle = State(iota)
	StateWinding
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWinding:
		return "winding"
	case StatePaused:
		return "paused"
	default:
		return fmt.Sprintf("unknown_state_%d", int(s))
	}
}

type Config struct {
	// RadiusBase of the driving wavelet (its radius is RadiusBase*4/π).
	RadiusBase    float64
	StepsPerSweep float64

	// EnvelopeSink receives (winding fraction, amplitude) pairs on every
	// significant sign change of CosComponent. Nil disables the detection.
	EnvelopeSink       *scrollingbuffer.Buffer
	EnvelopeMinWinding float64
	EnvelopeNoiseFloor float64
}

// Extractor is the demodulation state machine:
// Idle -> Winding -> Paused. Only Clear leaves Paused.
type Extractor struct {
	config       Config
	chain        *wavelet.Chain
	state        State
	windingRange float64
	isPositive   bool
}

// New creates an extractor; zero values of Config are replaced by defaults.
func New(cfg Config) *Extractor {
	if cfg.RadiusBase <= 0 {
		cfg.RadiusBase = wavelet.DefaultRadius
	}
	if cfg.StepsPerSweep <= 0 {
		cfg.StepsPerSweep = DefaultStepsPerSweep
	}
	if cfg.EnvelopeMinWinding <= 0 {
		cfg.EnvelopeMinWinding = DefaultEnvelopeMinWinding
	}
	if cfg.EnvelopeNoiseFloor <= 0 {
		cfg.EnvelopeNoiseFloor = DefaultEnvelopeNoiseFloor
	}
	e := &Extractor{
		config: cfg,
		chain:  wavelet.NewChain(cfg.RadiusBase),
	}
	e.Clear()
	return e
}

// Clear returns the extractor to Idle with a fresh driving wavelet.
func (e *Extractor) Clear() {
	e.chain.Clear()
	e.chain.AddWaveletByIndex(1, false)
	e.state = StateIdle
	e.windingRange = 0
	e.isPositive = false
}

func (e *Extractor) State() State {
	return e.state
}

func (e *Extractor) IsPaused() bool {
	return e.chain.IsPaused()
}

// Range is the winding frequency the next Advance winds the curve at.
func (e *Extractor) Range() float64 {
	return e.windingRange
}

// Wavelet returns the driving wavelet, including its centroid.
func (e *Extractor) Wavelet() wavelet.Wavelet {
	return e.chain.Wavelet(0)
}

// Advance winds the whole driving curve around the wavelet at the
// current winding frequency, each sample scaling the tip by its Y value,
// and reports the centroid-derived sample. Once the frequency reaches
// windingCap+1 the extractor pauses and emits nothing anymore.
func (e *Extractor) Advance(
	driving *scrollingbuffer.Buffer,
	windingCap int,
) (Sample, bool, error) {
	if e.chain.IsPaused() {
		return Sample{}, true, nil
	}
	if windingCap <= 0 {
		return Sample{}, false, fmt.Errorf("%w: %d", ErrInvalidWindingCap, windingCap)
	}
	if driving == nil || driving.Len() == 0 {
		return Sample{}, false, ErrEmptyDrivingCurve
	}

	maxRange := float64(windingCap) + 1
	e.chain.SetAngleBudget(maxRange)
	e.state = StateWinding

	e.chain.ResetCentroid(0)
	rotationStep := 2 * math.Pi * e.windingRange / float64(driving.Len())
	var (
		rotation float64
		centroid wavelet.Point
	)
	driving.Range(func(_ int, p scrollingbuffer.Point) bool {
		rotation += rotationStep
		e.chain.Rotate(0, -rotation)
		centroid = e.chain.AccumulateCentroid(0, float64(p.Y))
		return true
	})

	if e.windingRange >= maxRange {
		e.chain.Pause()
		e.state = StatePaused
		return Sample{}, true, nil
	}

	sample := newSample(e.windingRange, centroid, e.chain.Wavelet(0).Radius)
	e.detectEnvelope(sample)
	e.windingRange += float64(windingCap) * 2 * math.Pi / e.config.StepsPerSweep
	return sample, false, nil
}

func (e *Extractor) detectEnvelope(sample Sample) {
	if e.config.EnvelopeSink == nil {
		return
	}
	isPositive := sample.CosComponent >= 0
	if isPositive == e.isPositive {
		return
	}
	e.isPositive = isPositive

	fraction := truncate2(sample.WindingIndex)
	amplitude := truncate2(sample.SinComponent)
	if fraction > e.config.EnvelopeMinWinding && math.Abs(amplitude) >= e.config.EnvelopeNoiseFloor {
		e.config.EnvelopeSink.PushFloat64(fraction, amplitude)
	}
}

func truncate2(v float64) float64 {
	return math.Trunc(v*100) / 100
}
