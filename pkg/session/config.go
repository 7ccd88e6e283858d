package session

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/xaionaro-go/epicycles/pkg/curve"
	"github.com/xaionaro-go/epicycles/pkg/fourier"
	"github.com/xaionaro-go/epicycles/pkg/interpolation"
	"github.com/xaionaro-go/epicycles/pkg/wavelet"
)

const (
	DefaultNodes              = 8
	DefaultTimeChangeRate     = 1000
	DefaultPlotTimeChangeRate = 1000
	DefaultTracerCapacity     = 100000
	DefaultResultCapacity     = 1000000
	DefaultPlotCapacity       = 2000

	// DefaultSquareSide is the side of the path traced when nothing
	// was captured.
	DefaultSquareSide = 100
)

type Strategy int

const (
	StrategyUndefined = Strategy(iota)
	StrategySequence
	StrategyCustom
	StrategySquare
	EndOfStrategy
)

func (s Strategy) String() string {
	switch s {
	case StrategyUndefined:
		return "<undefined>"
	case StrategySequence:
		return "sequence"
	case StrategyCustom:
		return "custom"
	case StrategySquare:
		return "square"
	default:
		return fmt.Sprintf("unknown_strategy_%d", int(s))
	}
}

type Config struct {
	Concept Concept

	// Nodes is the amount of wavelets of the index sequences and of
	// the terms of the series curves; in the demodulation concept it is
	// the winding cap.
	Nodes           int
	Strategy        Strategy
	Sequence        wavelet.IndexSequence
	Curve           curve.Kind
	RadiusBase      float64
	AlternateSeries bool

	TimeChangeRate     float64
	PlotTimeChangeRate float64

	TracerCapacity int
	ResultCapacity int
	PlotCapacity   int

	EnvelopeDetection bool

	// ClosePathGap is the amount of points appended to a captured path to
	// lead it back to its beginning before the analysis; 0 disables it.
	ClosePathGap int
	// Interpolator fills the closing gap; nil means straight segments.
	Interpolator interpolation.Interpolator

	// Transformer computes the DFTs; nil means the naive DFT.
	Transformer fourier.Transformer
}

func DefaultConfig() Config {
	return Config{
		Concept:  ConceptFourierSeries,
		Strategy: StrategySequence,
		Sequence: wavelet.IndexSequenceIntegers,
		Curve:    curve.KindSin,
	}.WithDefaults()
}

// WithDefaults replaces zero (or negative) numeric parameters by the
// defaults; enumerations are left as they are.
func (cfg Config) WithDefaults() Config {
	if cfg.Nodes <= 0 {
		cfg.Nodes = DefaultNodes
	}
	if cfg.RadiusBase <= 0 {
		cfg.RadiusBase = wavelet.DefaultRadius
	}
	if cfg.TimeChangeRate <= 0 {
		cfg.TimeChangeRate = DefaultTimeChangeRate
	}
	if cfg.PlotTimeChangeRate <= 0 {
		cfg.PlotTimeChangeRate = DefaultPlotTimeChangeRate
	}
	if cfg.TracerCapacity <= 0 {
		cfg.TracerCapacity = DefaultTracerCapacity
	}
	if cfg.ResultCapacity <= 0 {
		cfg.ResultCapacity = DefaultResultCapacity
	}
	if cfg.PlotCapacity <= 0 {
		cfg.PlotCapacity = DefaultPlotCapacity
	}
	if cfg.Transformer == nil {
		cfg.Transformer = fourier.NewNaive(0)
	}
	if cfg.Interpolator == nil {
		cfg.Interpolator = interpolation.Linear{}
	}
	return cfg
}

// Validate reports every invalid parameter at once.
func (cfg Config) Validate() error {
	var mErr *multierror.Error
	if cfg.Concept <= ConceptUndefined || cfg.Concept >= EndOfConcept {
		mErr = multierror.Append(mErr, fmt.Errorf("invalid concept: %v", cfg.Concept))
	}
	if cfg.Strategy <= StrategyUndefined || cfg.Strategy >= EndOfStrategy {
		mErr = multierror.Append(mErr, fmt.Errorf("invalid strategy: %v", cfg.Strategy))
	}
	if cfg.Strategy == StrategySequence &&
		(cfg.Sequence <= wavelet.IndexSequenceUndefined || cfg.Sequence >= wavelet.EndOfIndexSequence) {
		mErr = multierror.Append(mErr, fmt.Errorf("invalid index sequence: %v", cfg.Sequence))
	}
	if cfg.Curve <= curve.KindUndefined || cfg.Curve >= curve.EndOfKind {
		mErr = multierror.Append(mErr, fmt.Errorf("invalid curve: %v", cfg.Curve))
	}
	if cfg.Nodes < 0 {
		mErr = multierror.Append(mErr, fmt.Errorf("the amount of nodes cannot be negative: %d", cfg.Nodes))
	}
	if cfg.RadiusBase > 0 && cfg.RadiusBase <= wavelet.MinRadius {
		mErr = multierror.Append(mErr, fmt.Errorf("the radius %v is not above %v", cfg.RadiusBase, wavelet.MinRadius))
	}
	if cfg.TimeChangeRate < 0 {
		mErr = multierror.Append(mErr, fmt.Errorf("the time change rate cannot be negative: %v", cfg.TimeChangeRate))
	}
	if cfg.PlotTimeChangeRate < 0 {
		mErr = multierror.Append(mErr, fmt.Errorf("the plot time change rate cannot be negative: %v", cfg.PlotTimeChangeRate))
	}
	if cfg.ClosePathGap < 0 {
		mErr = multierror.Append(mErr, fmt.Errorf("the closing gap cannot be negative: %d", cfg.ClosePathGap))
	}
	for name, capacity := range map[string]int{
		"tracer": cfg.TracerCapacity,
		"result": cfg.ResultCapacity,
		"plot":   cfg.PlotCapacity,
	} {
		if capacity < 0 {
			mErr = multierror.Append(mErr, fmt.Errorf("the %s capacity cannot be negative: %d", name, capacity))
		}
	}
	return mErr.ErrorOrNil()
}
