package wavelet

import (
	"math"
)

type Point struct {
	X float64
	Y float64
}

func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Wavelet is one rotating vector of a Chain.
//
// For the last angle θ it was rotated by:
//
//	Rotation = Radius * (cos(Phase - θ*AngularIndex), sin(Phase - θ*AngularIndex))
//	Tip      = Tail + Rotation
//
// A Clockwise wavelet uses Phase + θ*AngularIndex instead, which turns
// clockwise on a screen whose Y axis points down.
type Wavelet struct {
	AngularIndex float64
	// Radius is signed, a negative radius flips the phase by π.
	Radius    float64
	Phase     float64
	Clockwise bool

	Rotation Point
	Tail     Point
	Tip      Point

	// Centroid is the running mean of the (modulated) tip positions
	// accumulated since the last ResetCentroid.
	Centroid        Point
	CoordinateCount uint64
	total           Point
}

func (w *Wavelet) rotate(tail Point, angle float64) {
	a := w.Phase - angle*w.AngularIndex
	if w.Clockwise {
		a = w.Phase + angle*w.AngularIndex
	}
	w.Rotation = Point{
		X: w.Radius * math.Cos(a),
		Y: w.Radius * math.Sin(a),
	}
	w.Tail = tail
	w.Tip = tail.Add(w.Rotation)
}

func (w *Wavelet) resetCentroid() {
	w.total = Point{}
	w.Centroid = Point{}
	w.CoordinateCount = 0
}

func (w *Wavelet) accumulate(p Point) Point {
	w.total = w.total.Add(p)
	w.CoordinateCount++
	w.Centroid = w.total.Scale(1 / float64(w.CoordinateCount))
	return w.Centroid
}
