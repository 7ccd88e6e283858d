package demodulation

import (
	"math"

	"github.com/xaionaro-go/epicycles/pkg/wavelet"
)

const NumChannels = 6

// Sample is emitted once per Advance while winding.
type Sample struct {
	WindingIndex float64
	CosComponent float64
	SinComponent float64
	Magnitude    float64
	CombinedSum  float64
	CombinedDiff float64
}

func newSample(windingIndex float64, centroid wavelet.Point, radius float64) Sample {
	cosComponent := 2 * centroid.Y / radius
	sinComponent := 2 * centroid.X / radius
	return Sample{
		WindingIndex: windingIndex,
		CosComponent: cosComponent,
		SinComponent: sinComponent,
		Magnitude:    math.Sqrt(4*centroid.X*centroid.X+4*centroid.Y*centroid.Y) / radius,
		CombinedSum:  sinComponent + cosComponent,
		CombinedDiff: cosComponent - sinComponent,
	}
}

// Channels returns the plotted channels in the order of ChannelName. With
// RealAxisIsY the "cos(x)" channel reads the X of the centroid, which is
// SinComponent: a cosine input peaks on channel 0.
func (s Sample) Channels() [NumChannels]float64 {
	return [NumChannels]float64{
		s.SinComponent,
		-s.CosComponent,
		s.Magnitude,
		-s.Magnitude,
		s.CombinedSum,
		s.CombinedDiff,
	}
}

var channelNames = [NumChannels]string{
	"cos(x)",
	"sin(x)",
	"magnitude",
	"-magnitude",
	"sin(x)+cos(x)",
	"sin(x)-cos(x)",
}

func ChannelName(idx int) string {
	return channelNames[idx]
}
