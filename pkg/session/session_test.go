package session

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/epicycles/pkg/curve"
	"github.com/xaionaro-go/epicycles/pkg/demodulation"
	"github.com/xaionaro-go/epicycles/pkg/wavelet"
)

func newSession(t *testing.T, modify func(cfg *Config)) *Session {
	cfg := DefaultConfig()
	cfg.TracerCapacity = 4096
	cfg.ResultCapacity = 4096
	cfg.PlotCapacity = 256
	if modify != nil {
		modify(&cfg)
	}
	s, err := New(cfg)
	require.NoError(t, err)
	return s
}

func TestConfig_Validate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	err := Config{Nodes: -1, RadiusBase: 1, TracerCapacity: -5}.Validate()
	require.Error(t, err)
	var mErr *multierror.Error
	require.True(t, errors.As(err, &mErr))
	// concept, strategy, curve, nodes, radius, tracer capacity
	require.Len(t, mErr.Errors, 6, spew.Sdump(mErr.Errors))

	_, err = New(Config{})
	require.Error(t, err)
}

func TestSession_StepBeforeSetup(t *testing.T) {
	s := newSession(t, nil)
	require.ErrorIs(t, s.Step(context.Background()), ErrNotSetUp)
}

func TestSession_DFTEpicyclesRetraceThePath(t *testing.T) {
	for _, concept := range []Concept{ConceptDFTOneEpicycle, ConceptDFTTwoEpicycles} {
		t.Run(concept.String(), func(t *testing.T) {
			ctx := context.Background()
			s := newSession(t, func(cfg *Config) { cfg.Concept = concept })
			require.NoError(t, s.Setup(ctx))

			path := curve.SquarePath(DefaultSquareSide)
			spectra := s.Components()
			require.Len(t, spectra.X, len(path))
			require.Len(t, spectra.Y, len(path))
			require.Len(t, spectra.Complex, len(path))

			for range path {
				require.NoError(t, s.Step(ctx))
			}
			traced := s.Tracer().Points()
			require.Len(t, traced, len(path))
			for idx, expected := range path {
				assert.InDelta(t, expected.Re, traced[idx].X, 1e-3, "point %d", idx)
				assert.InDelta(t, expected.Im, traced[idx].Y, 1e-3, "point %d", idx)
			}

			joints := s.Joints()
			require.NotEmpty(t, joints)
			for _, chain := range joints {
				require.Len(t, chain, len(path)+1)
			}
		})
	}
}

func TestSession_FourierSeries(t *testing.T) {
	ctx := context.Background()
	s := newSession(t, func(cfg *Config) {
		cfg.Nodes = 5
		cfg.Sequence = wavelet.IndexSequenceUneven
	})
	require.NoError(t, s.Setup(ctx))
	require.Len(t, s.Wavelets(), 5)

	for i := 0; i < 10; i++ {
		require.NoError(t, s.Step(ctx))
	}
	require.Equal(t, 10, s.Tracer().Len())
	require.Equal(t, 10, s.Analog(AnalogRecorded).Len())

	last := s.Tracer().At(9)
	final := s.FinalPoint()
	assert.InDelta(t, -float64(last.X)/s.Normalizer(), final.X, 1e-5)
	assert.InDelta(t, -float64(last.Y)/s.Normalizer(), final.Y, 1e-5)
	assert.InDelta(t, 10*2*math.Pi/DefaultTimeChangeRate, s.Time(), 1e-12)

	s.Clear()
	require.Zero(t, s.Tracer().Len())
	require.Zero(t, s.Analog(AnalogX).Len())
	require.Equal(t, 10, s.Analog(AnalogRecorded).Len())
	require.Equal(t, wavelet.Point{}, s.FinalPoint())
}

func TestSession_FourierTransform(t *testing.T) {
	ctx := context.Background()
	s := newSession(t, func(cfg *Config) {
		cfg.Concept = ConceptFourierTransform
		cfg.Curve = curve.KindCos
	})
	require.NoError(t, s.Setup(ctx))
	require.Len(t, s.Wavelets(), 1)

	require.NoError(t, s.Step(ctx))
	// cos(0) = 1 doubles the tip of the wavelet at angle 0
	tip := s.Tracer().At(0)
	assert.InDelta(t, 2*wavelet.DefaultRadius*4/math.Pi, tip.X, 1e-3)
	assert.InDelta(t, 0, tip.Y, 1e-6)
	assert.Equal(t, wavelet.Point{X: 0, Y: 1}, s.FinalPoint())
}

func TestSession_Demodulate(t *testing.T) {
	ctx := context.Background()
	s := newSession(t, func(cfg *Config) {
		cfg.Concept = ConceptDemodulate
		cfg.Curve = curve.KindCos
		cfg.Nodes = 1
		cfg.PlotTimeChangeRate = 10
	})
	require.NoError(t, s.Setup(ctx))
	require.Equal(t, 256, s.Modulated().Len())

	for i := 0; i < 10; i++ {
		require.NoError(t, s.Step(ctx))
	}
	require.Equal(t, demodulation.StatePaused, s.DemodulationState())
	for channel := 0; channel < demodulation.NumChannels; channel++ {
		require.Equal(t, 4, s.Demodulator(channel).Len(), "channel %d", channel)
	}

	require.NoError(t, s.Setup(ctx))
	require.Equal(t, demodulation.StateIdle, s.DemodulationState())
	for channel := 0; channel < demodulation.NumChannels; channel++ {
		require.Zero(t, s.Demodulator(channel).Len(), "channel %d", channel)
	}

	s.Clear()
	require.NoError(t, s.Setup(ctx))
	require.NoError(t, s.Step(ctx))
	for channel := 0; channel < demodulation.NumChannels; channel++ {
		require.Equal(t, 1, s.Demodulator(channel).Len(), "channel %d", channel)
	}
}

func TestSession_SetupRestartsThePlots(t *testing.T) {
	ctx := context.Background()
	s := newSession(t, nil)
	require.NoError(t, s.Setup(ctx))
	for i := 0; i < 5; i++ {
		require.NoError(t, s.Step(ctx))
	}
	require.Equal(t, 5, s.Analog(AnalogRecorded).Len())

	require.NoError(t, s.Setup(ctx))
	require.Zero(t, s.Analog(AnalogRecorded).Len())
	require.NoError(t, s.Step(ctx))
	first := s.Analog(AnalogX).At(s.Analog(AnalogX).Len() - 1)
	assert.InDelta(t, -math.Pi/DefaultPlotTimeChangeRate, first.X, 1e-6)
}

func TestSession_CaptureAndCustomStrategy(t *testing.T) {
	ctx := context.Background()
	s := newSession(t, func(cfg *Config) {
		cfg.Strategy = StrategyCustom
		cfg.RadiusBase = 10
	})

	for i := 0; i < 8; i++ {
		require.True(t, s.Capture(float64(i), float64(i%3)))
	}
	s.StopCapture()
	require.False(t, s.Capture(100, 100))
	require.Equal(t, 8, s.Result().Len())

	require.NoError(t, s.Setup(ctx))
	require.Len(t, s.Components().Complex, 8)
	wavelets := s.Wavelets()
	require.Len(t, wavelets, 8)
	require.Equal(t, 70.0, wavelets[7].AngularIndex)
	require.Equal(t, 10.0, wavelets[7].Radius)

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Step(ctx))
	}
	require.Zero(t, s.Analog(AnalogRecorded).Len())

	s.ResetCapture()
	require.Zero(t, s.Result().Len())
	require.True(t, s.Capture(1, 1))
}

func TestSession_ClosePathGap(t *testing.T) {
	ctx := context.Background()
	s := newSession(t, func(cfg *Config) {
		cfg.Concept = ConceptDFTOneEpicycle
		cfg.ClosePathGap = 3
	})
	for i := 0; i < 5; i++ {
		s.Capture(float64(i), 0)
	}
	require.NoError(t, s.Setup(ctx))
	require.Len(t, s.Components().Complex, 8)

	for i := 0; i < 8; i++ {
		require.NoError(t, s.Step(ctx))
	}
	// the closing points lead from x=4 back to x=0
	traced := s.Tracer().Xs()
	require.Len(t, traced, 8)
	for idx, expected := range []float64{0, 1, 2, 3, 4, 3, 2, 1} {
		assert.InDelta(t, expected, traced[idx], 1e-3, "point %d", idx)
	}
}

func TestParseConceptAndStrategy(t *testing.T) {
	for c := ConceptUndefined + 1; c < EndOfConcept; c++ {
		parsed, err := ParseConcept(c.String())
		require.NoError(t, err)
		require.Equal(t, c, parsed)
	}
	for strategy := StrategyUndefined + 1; strategy < EndOfStrategy; strategy++ {
		parsed, err := ParseStrategy(strategy.String())
		require.NoError(t, err)
		require.Equal(t, strategy, parsed)
	}
	_, err := ParseConcept("fourier")
	require.Error(t, err)
}
