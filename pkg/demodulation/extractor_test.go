package demodulation

import (
	"math"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/epicycles/pkg/scrollingbuffer"
)

func cosineCurve(n int, frequency float64) *scrollingbuffer.Buffer {
	b := scrollingbuffer.New(n)
	for i := 0; i < n; i++ {
		x := 2 * math.Pi * float64(i+1) / float64(n)
		b.PushFloat64(x, math.Cos(frequency*x))
	}
	return b
}

func TestExtractor_MatchingWindingFrequency(t *testing.T) {
	for _, frequency := range []float64{1, 3, 7} {
		e := New(Config{})
		e.windingRange = frequency

		sample, isPaused, err := e.Advance(cosineCurve(256, frequency), 10)
		require.NoError(t, err)
		require.False(t, isPaused)
		require.Equal(t, StateWinding, e.State())

		assert.InDelta(t, frequency, sample.WindingIndex, 1e-12)
		assert.InDelta(t, 1, sample.SinComponent, 1e-5, spew.Sdump(sample))
		assert.InDelta(t, 0, sample.CosComponent, 1e-5, spew.Sdump(sample))
		assert.InDelta(t, 1, sample.Magnitude, 1e-5, spew.Sdump(sample))
		assert.InDelta(t, sample.SinComponent+sample.CosComponent, sample.CombinedSum, 1e-12)
		assert.InDelta(t, sample.CosComponent-sample.SinComponent, sample.CombinedDiff, 1e-12)
	}
}

func TestExtractor_MismatchingWindingFrequency(t *testing.T) {
	e := New(Config{})
	e.windingRange = 2

	sample, _, err := e.Advance(cosineCurve(256, 5), 10)
	require.NoError(t, err)
	assert.InDelta(t, 0, sample.Magnitude, 1e-5, spew.Sdump(sample))
}

func TestExtractor_StopsAtWindingCap(t *testing.T) {
	e := New(Config{StepsPerSweep: 10})
	driving := cosineCurve(64, 1)
	require.Equal(t, StateIdle, e.State())

	var emitted []Sample
	for i := 0; i < 20; i++ {
		sample, isPaused, err := e.Advance(driving, 1)
		require.NoError(t, err)
		if isPaused {
			break
		}
		emitted = append(emitted, sample)
	}

	// ranges 0, 0.2π, 0.4π and 0.6π are below 1+1
	require.Len(t, emitted, 4, spew.Sdump(emitted))
	for idx := 1; idx < len(emitted); idx++ {
		require.Greater(t, emitted[idx].WindingIndex, emitted[idx-1].WindingIndex)
	}
	require.True(t, e.IsPaused())
	require.Equal(t, StatePaused, e.State())

	for i := 0; i < 3; i++ {
		sample, isPaused, err := e.Advance(driving, 1)
		require.NoError(t, err)
		require.True(t, isPaused)
		require.Equal(t, Sample{}, sample)
	}

	e.Clear()
	require.Equal(t, StateIdle, e.State())
	require.False(t, e.IsPaused())
	require.Zero(t, e.Range())
}

func TestExtractor_Errors(t *testing.T) {
	e := New(Config{})

	_, _, err := e.Advance(scrollingbuffer.New(4), 3)
	require.ErrorIs(t, err, ErrEmptyDrivingCurve)

	_, _, err = e.Advance(nil, 3)
	require.ErrorIs(t, err, ErrEmptyDrivingCurve)

	_, _, err = e.Advance(cosineCurve(8, 1), 0)
	require.ErrorIs(t, err, ErrInvalidWindingCap)
	require.Equal(t, StateIdle, e.State())
}

func TestExtractor_EnvelopeDetection(t *testing.T) {
	sink := scrollingbuffer.New(16)
	e := New(Config{EnvelopeSink: sink})

	for _, sample := range []Sample{
		{WindingIndex: 0.5, CosComponent: 0.2, SinComponent: 0.456},
		{WindingIndex: 0.6, CosComponent: 0.3, SinComponent: 0.7},
		{WindingIndex: 0.2, CosComponent: -0.1, SinComponent: 0.9},
		{WindingIndex: 0.9, CosComponent: 0.1, SinComponent: 0.004},
		{WindingIndex: 1.237, CosComponent: -0.1, SinComponent: -0.318},
	} {
		e.detectEnvelope(sample)
	}

	points := sink.Points()
	require.Len(t, points, 2, spew.Sdump(points))
	assert.InDelta(t, 0.5, points[0].X, 1e-6)
	assert.InDelta(t, 0.45, points[0].Y, 1e-6)
	assert.InDelta(t, 1.23, points[1].X, 1e-6)
	assert.InDelta(t, -0.31, points[1].Y, 1e-6)
}

func TestSample_Channels(t *testing.T) {
	s := Sample{CosComponent: 1, SinComponent: 2, Magnitude: 3, CombinedSum: 3, CombinedDiff: -1}
	require.Equal(t, [NumChannels]float64{2, -1, 3, -3, 3, -1}, s.Channels())
	require.Equal(t, "magnitude", ChannelName(2))
}

func TestSample_ChannelsOfCosine(t *testing.T) {
	e := New(Config{})
	e.windingRange = 1

	sample, _, err := e.Advance(cosineCurve(256, 1), 10)
	require.NoError(t, err)

	// centroid ≈ (r/2, 0): 2x/r on "cos(x)", -2y/r on "sin(x)", 2y/r-2x/r last
	channels := sample.Channels()
	expected := [NumChannels]float64{1, 0, 1, -1, 1, -1}
	for idx := range expected {
		assert.InDelta(t, expected[idx], channels[idx], 1e-5, "channel %s: %s", ChannelName(idx), spew.Sdump(channels))
	}
}
