// Package session owns every buffer, chain and transform result of one
// visualization and advances them frame by frame for the selected concept.
// A renderer reads the buffers between the steps. Session is not safe
// for concurrent use.
package session

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/xaionaro-go/epicycles/pkg/curve"
	"github.com/xaionaro-go/epicycles/pkg/demodulation"
	"github.com/xaionaro-go/epicycles/pkg/fourier"
	"github.com/xaionaro-go/epicycles/pkg/interpolation"
	"github.com/xaionaro-go/epicycles/pkg/scrollingbuffer"
	"github.com/xaionaro-go/epicycles/pkg/wavelet"
)

var ErrNotSetUp = errors.New("the session is not set up, call Setup first")

const (
	// AnalogX receives the X of the final point over time.
	AnalogX = 0
	// AnalogY receives the Y of the final point over time.
	AnalogY = 1
	// AnalogRecorded caches the final X over time; it is the source of
	// the curve.KindRecorded driving curve.
	AnalogRecorded = 2

	NumAnalog = 3
)

// Spectra are the ranked DFTs of the analysed path.
type Spectra struct {
	X       []fourier.FrequencyComponent
	Y       []fourier.FrequencyComponent
	Complex []fourier.FrequencyComponent
}

type Session struct {
	config Config

	chain     *wavelet.Chain
	extractor *demodulation.Extractor

	tracer      *scrollingbuffer.Buffer
	result      *scrollingbuffer.Buffer
	modulated   *scrollingbuffer.Buffer
	analog      [NumAnalog]*scrollingbuffer.Buffer
	demodulator [demodulation.NumChannels]*scrollingbuffer.Buffer

	spectra Spectra

	isSetUp        bool
	captureStopped bool
	time           float64
	timePlot       float64
	finalPoint     wavelet.Point
}

// New validates the config and allocates the buffers.
func New(cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	cfg = cfg.WithDefaults()

	s := &Session{
		config:    cfg,
		chain:     wavelet.NewChain(cfg.RadiusBase),
		tracer:    scrollingbuffer.New(cfg.TracerCapacity),
		result:    scrollingbuffer.New(cfg.ResultCapacity),
		modulated: scrollingbuffer.New(cfg.PlotCapacity),
	}
	for idx := range s.analog {
		s.analog[idx] = scrollingbuffer.New(cfg.PlotCapacity)
	}
	for idx := range s.demodulator {
		s.demodulator[idx] = scrollingbuffer.New(cfg.PlotCapacity)
	}

	demodCfg := demodulation.Config{
		RadiusBase:    cfg.RadiusBase,
		StepsPerSweep: cfg.PlotTimeChangeRate,
	}
	if cfg.EnvelopeDetection {
		demodCfg.EnvelopeSink = s.result
	}
	s.extractor = demodulation.New(demodCfg)
	return s, nil
}

func (s *Session) Config() Config {
	return s.config
}

// Setup (re)builds the chain for the concept, samples the driving curve
// and computes the ranked X, Y and complex DFTs of the result buffer,
// or of the default square path if nothing was captured. The demodulator
// buffers and the plot time restart; the recorded curve is only kept
// for the demodulation concept, which reads it.
func (s *Session) Setup(ctx context.Context) (_err error) {
	logger.Debugf(ctx, "Setup: concept:%v strategy:%v", s.config.Concept, s.config.Strategy)
	defer func() { logger.Debugf(ctx, "/Setup: %v", _err) }()

	s.isSetUp = false
	s.chain.Clear()
	s.chain.SetRadius(s.config.RadiusBase)
	s.chain.EnableAlternateSeries(s.config.AlternateSeries)
	if s.config.Concept == ConceptFourierSeries {
		strategy := s.generationStrategy()
		logger.Debugf(ctx, "generating the chain: %v", strategy)
		s.chain.Generate(strategy)
	} else {
		s.chain.AddWaveletByIndexDefault(1)
	}

	s.extractor.Clear()
	for _, buf := range s.demodulator {
		buf.Erase()
	}
	curve.Sample(s.modulated, s.config.Curve, s.config.Nodes, s.analog[AnalogRecorded])
	if s.config.Concept != ConceptDemodulate {
		s.analog[AnalogRecorded].Erase()
	}

	path := s.analysedPath()
	xs := make([]float64, len(path))
	ys := make([]float64, len(path))
	for idx, p := range path {
		xs[idx] = p.Re
		ys[idx] = p.Im
	}

	n := len(path)
	xdft, err := s.config.Transformer.TransformReal(ctx, xs, n)
	if err != nil {
		return fmt.Errorf("unable to transform X: %w", err)
	}
	ydft, err := s.config.Transformer.TransformReal(ctx, ys, n)
	if err != nil {
		return fmt.Errorf("unable to transform Y: %w", err)
	}
	cdft, err := s.config.Transformer.TransformComplex(ctx, path, n)
	if err != nil {
		return fmt.Errorf("unable to transform the complex path: %w", err)
	}
	s.spectra = Spectra{
		X:       fourier.RankByAmplitude(xdft),
		Y:       fourier.RankByAmplitude(ydft),
		Complex: fourier.RankByAmplitude(cdft),
	}
	logger.Debugf(ctx, "analysed a path of %d points", n)

	s.time = 0
	s.timePlot = 0
	s.isSetUp = true
	return nil
}

func (s *Session) generationStrategy() wavelet.GenerationStrategy {
	switch s.config.Strategy {
	case StrategySequence:
		return wavelet.ClosedForm{
			Indices:   s.config.Sequence.Indices(s.config.Nodes),
			Alternate: s.config.AlternateSeries,
		}
	case StrategyCustom:
		points := make([]wavelet.Point, 0, s.result.Len())
		s.result.Range(func(_ int, p scrollingbuffer.Point) bool {
			points = append(points, wavelet.Point{X: float64(p.X), Y: float64(p.Y)})
			return true
		})
		return wavelet.Custom{Points: points, Scale: s.chain.Radius()}
	case StrategySquare:
		return wavelet.SquarePreset(s.chain.Radius())
	default:
		panic(fmt.Errorf("unknown strategy %v", s.config.Strategy))
	}
}

func (s *Session) analysedPath() []fourier.ComplexSample {
	if s.result.Len() == 0 {
		return curve.SquarePath(DefaultSquareSide)
	}
	path := make([]fourier.ComplexSample, 0, s.result.Len())
	s.result.Range(func(_ int, p scrollingbuffer.Point) bool {
		path = append(path, fourier.NewComplexSample(float64(p.X), float64(p.Y)))
		return true
	})
	return interpolation.ClosePath(path, s.config.ClosePathGap, s.config.Interpolator)
}

// Clear erases the per-frame outputs, keeping the captured result and
// the recorded curve.
func (s *Session) Clear() {
	s.tracer.Erase()
	s.modulated.Erase()
	s.analog[AnalogX].Erase()
	s.analog[AnalogY].Erase()
	for _, buf := range s.demodulator {
		buf.Erase()
	}
	s.finalPoint = wavelet.Point{}
}

// Step advances the selected concept by one frame.
func (s *Session) Step(ctx context.Context) (_err error) {
	logger.Tracef(ctx, "Step")
	defer func() { logger.Tracef(ctx, "/Step: %v", _err) }()

	if !s.isSetUp {
		return ErrNotSetUp
	}

	switch s.config.Concept {
	case ConceptFourierSeries:
		tip := s.chain.Advance(s.time)
		s.finalPoint = s.chain.FinalPoint()
		s.tracer.PushFloat64(tip.X, tip.Y)
		s.timePlot += math.Pi / s.config.PlotTimeChangeRate
		s.analog[AnalogX].PushFloat64(-s.timePlot, s.finalPoint.X)
		s.analog[AnalogY].PushFloat64(-s.timePlot, s.finalPoint.Y)
		if s.config.Strategy != StrategyCustom {
			s.analog[AnalogRecorded].PushFloat64(-s.timePlot, s.finalPoint.X)
		}
	case ConceptFourierTransform:
		y := s.config.Curve.Evaluate(s.timePlot, s.config.Nodes)
		dx, _ := s.config.Curve.Derivative(s.timePlot)
		s.finalPoint = wavelet.Point{X: dx, Y: y}
		s.timePlot += math.Pi / s.config.PlotTimeChangeRate
		s.analog[AnalogX].PushFloat64(-s.timePlot, dx)
		s.analog[AnalogY].PushFloat64(-s.timePlot, y)
		tip := s.chain.AdvanceModulated(0, s.time, y)
		s.tracer.PushFloat64(tip.X, tip.Y)
	case ConceptDemodulate:
		sample, isPaused, err := s.extractor.Advance(s.modulated, s.config.Nodes)
		if err != nil {
			return fmt.Errorf("unable to advance the demodulation: %w", err)
		}
		if !isPaused {
			for idx, v := range sample.Channels() {
				s.demodulator[idx].PushFloat64(sample.WindingIndex, v)
			}
		}
	case ConceptDFTTwoEpicycles:
		ex := fourier.EpicycleTip(fourier.ComplexSample{}, s.spectra.X, s.time, 0, 1)
		ey := fourier.EpicycleTip(fourier.ComplexSample{}, s.spectra.Y, s.time, math.Pi/2, 1)
		s.tracer.PushFloat64(ex.Re, ey.Im)
	case ConceptDFTOneEpicycle:
		e := fourier.EpicycleTip(fourier.ComplexSample{}, s.spectra.Complex, s.time, 0, 1)
		s.tracer.PushFloat64(e.Re, e.Im)
	case ConceptCapturePath:
	default:
		return fmt.Errorf("unknown concept %v", s.config.Concept)
	}

	s.advanceTime()
	return nil
}

func (s *Session) advanceTime() {
	if s.config.Concept.isDFTDriven() {
		s.time += 2 * math.Pi / float64(len(s.spectra.Complex))
	} else {
		s.time += 2 * math.Pi / s.config.TimeChangeRate
	}
	if s.time >= 2*math.Pi {
		s.time = 0
	}
}

// Capture appends a point of the drawn path to the result buffer. It
// reports false once the capture was stopped.
func (s *Session) Capture(x, y float64) bool {
	if s.captureStopped {
		return false
	}
	s.result.PushFloat64(x, y)
	return true
}

func (s *Session) StopCapture() {
	s.captureStopped = true
}

// ResetCapture erases the captured path and accepts new points again.
func (s *Session) ResetCapture() {
	s.result.Erase()
	s.captureStopped = false
}

func (s *Session) Tracer() *scrollingbuffer.Buffer {
	return s.tracer
}

func (s *Session) Result() *scrollingbuffer.Buffer {
	return s.result
}

// Modulated is the sampled driving curve.
func (s *Session) Modulated() *scrollingbuffer.Buffer {
	return s.modulated
}

func (s *Session) Analog(idx int) *scrollingbuffer.Buffer {
	return s.analog[idx]
}

// Demodulator returns the buffer of the given demodulation channel,
// see demodulation.Sample.Channels for the order.
func (s *Session) Demodulator(channel int) *scrollingbuffer.Buffer {
	return s.demodulator[channel]
}

func (s *Session) DemodulationState() demodulation.State {
	return s.extractor.State()
}

func (s *Session) Components() Spectra {
	return s.spectra
}

func (s *Session) FinalPoint() wavelet.Point {
	return s.finalPoint
}

func (s *Session) Time() float64 {
	return s.time
}

// Wavelets returns the chain state for drawing the circles.
func (s *Session) Wavelets() []wavelet.Wavelet {
	return s.chain.Wavelets()
}

func (s *Session) Normalizer() float64 {
	return s.chain.Normalizer()
}

// Joints returns the circle centres of the epicycles of the DFT concepts
// at the current time: one set per drawn epicycle chain.
func (s *Session) Joints() [][]fourier.ComplexSample {
	switch s.config.Concept {
	case ConceptDFTTwoEpicycles:
		return [][]fourier.ComplexSample{
			fourier.Epicycles(fourier.ComplexSample{}, s.spectra.X, s.time, 0, 1),
			fourier.Epicycles(fourier.ComplexSample{}, s.spectra.Y, s.time, math.Pi/2, 1),
		}
	case ConceptDFTOneEpicycle:
		return [][]fourier.ComplexSample{
			fourier.Epicycles(fourier.ComplexSample{}, s.spectra.Complex, s.time, 0, 1),
		}
	default:
		return nil
	}
}
