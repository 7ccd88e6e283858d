// Package wavelet implements a chain of rotating vectors (epicycles):
// every wavelet is anchored at the tip of the previous one, so the tip
// of the last wavelet is a truncated Fourier series evaluated at the
// current angle.
package wavelet

import (
	"fmt"
	"math"
)

const (
	// DefaultRadius is the radius base used for closed-form coefficients.
	DefaultRadius = 64.0

	// MinRadius is the exclusive lower bound accepted by SetRadius.
	MinRadius = 2.0

	// fallbackIndexRadius replaces the radius when index*π overflows.
	fallbackIndexRadius = 1.0

	// fallbackRadius replaces a radius which evaluated to Inf or NaN.
	fallbackRadius = 1.5
)

// Chain owns an ordered set of wavelets. It is not safe for concurrent use.
type Chain struct {
	wavelets           []Wavelet
	radiusBase         float64
	normalizer         float64
	currentAngle       float64
	maxAngleBudget     float64
	useAlternateSeries bool
	isPaused           bool
}

func NewChain(radiusBase float64) *Chain {
	c := &Chain{
		radiusBase: DefaultRadius,
	}
	c.SetRadius(radiusBase)
	return c
}

// SetRadius changes the radius base of closed-form and preset wavelets.
// Values not above MinRadius are ignored.
func (c *Chain) SetRadius(radius float64) {
	if radius > MinRadius {
		c.radiusBase = radius
	}
}

func (c *Chain) Radius() float64 {
	return c.radiusBase
}

// Clear drops all wavelets and resets the angle state.
func (c *Chain) Clear() {
	c.wavelets = c.wavelets[:0]
	c.normalizer = 0
	c.currentAngle = 0
	c.maxAngleBudget = 0
	c.isPaused = false
}

func (c *Chain) Len() int {
	return len(c.wavelets)
}

// Wavelet returns a copy of the idx-th wavelet.
func (c *Chain) Wavelet(idx int) Wavelet {
	c.checkIndex(idx)
	return c.wavelets[idx]
}

// Wavelets returns a copy of all wavelets in composition order.
func (c *Chain) Wavelets() []Wavelet {
	result := make([]Wavelet, len(c.wavelets))
	copy(result, c.wavelets)
	return result
}

// Normalizer is the sum of absolute radii.
func (c *Chain) Normalizer() float64 {
	return c.normalizer
}

func (c *Chain) UseAlternateSeries() bool {
	return c.useAlternateSeries
}

// EnableAlternateSeries selects the triangle-wave coefficients for the
// following AddWaveletByIndexDefault calls. Clear keeps the setting.
func (c *Chain) EnableAlternateSeries(enable bool) {
	c.useAlternateSeries = enable
}

// AddWaveletByIndexDefault is AddWaveletByIndex with the series chosen
// by EnableAlternateSeries.
func (c *Chain) AddWaveletByIndexDefault(k int) {
	c.AddWaveletByIndex(k, c.useAlternateSeries)
}

func (c *Chain) CurrentAngle() float64 {
	return c.currentAngle
}

// WindingCount is the amount of full turns the last angle corresponds to.
func (c *Chain) WindingCount() float64 {
	return c.currentAngle / (2 * math.Pi)
}

// SetAngleBudget sets the value IsPaused-driven sweeps stop at.
func (c *Chain) SetAngleBudget(budget float64) {
	c.maxAngleBudget = budget
}

func (c *Chain) AngleBudget() float64 {
	return c.maxAngleBudget
}

func (c *Chain) Pause() {
	c.isPaused = true
}

func (c *Chain) IsPaused() bool {
	return c.isPaused
}

// AddWavelet appends a wavelet of the given angular index (frequency
// multiplier) and signed magnitude.
func (c *Chain) AddWavelet(frequency, magnitude float64) {
	c.AddWaveletWithPhase(frequency, magnitude, 0)
}

func (c *Chain) AddWaveletWithPhase(frequency, magnitude, phase float64) {
	c.appendWavelet(Wavelet{
		AngularIndex: frequency,
		Radius:       magnitude,
		Phase:        phase,
	})
}

// AddClockwiseWavelet appends a wavelet turning the other way, see
// Wavelet.Clockwise.
func (c *Chain) AddClockwiseWavelet(frequency, magnitude float64) {
	c.appendWavelet(Wavelet{
		AngularIndex: frequency,
		Radius:       magnitude,
		Clockwise:    true,
	})
}

func (c *Chain) appendWavelet(w Wavelet) {
	c.wavelets = append(c.wavelets, w)
	c.normalizer += math.Abs(w.Radius)
}

// AddWaveletByIndex appends the k-th term of the square-wave series
// (radius*4/(kπ)) or, if alternate is set, of the triangle-wave series
// (radius*8/(k²π²) with the sign alternating on k%4).
// Degenerate indices never yield an infinite or NaN radius.
func (c *Chain) AddWaveletByIndex(k int, alternate bool) {
	c.AddWavelet(float64(k), ClosedFormRadius(c.radiusBase, k, alternate))
}

func ClosedFormRadius(radiusBase float64, k int, alternate bool) float64 {
	kPi := float64(k) * math.Pi
	var radius float64
	switch {
	case math.IsInf(kPi, 0):
		radius = fallbackIndexRadius
	case !alternate:
		radius = radiusBase * (4 / kPi)
	default:
		sign := -1.0
		if k%4 == 1 {
			sign = 1
		}
		radius = radiusBase * (8 / (kPi * kPi)) * sign
	}
	if math.IsInf(radius, 0) || math.IsNaN(radius) {
		radius = fallbackRadius
	}
	return radius
}

// Rotate sets the idx-th wavelet to the given angle, anchoring it at the
// tip of the previous wavelet (or at the origin for the first one).
// It panics if idx is out of range.
func (c *Chain) Rotate(idx int, angle float64) Point {
	c.checkIndex(idx)
	var tail Point
	if idx > 0 {
		tail = c.wavelets[idx-1].Tip
	}
	c.wavelets[idx].rotate(tail, angle)
	return c.wavelets[idx].Tip
}

// Advance rotates every wavelet to the given angle and returns the tip
// of the last one.
func (c *Chain) Advance(angle float64) Point {
	for idx := range c.wavelets {
		c.Rotate(idx, angle)
	}
	c.currentAngle = angle
	return c.FinalTip()
}

// AdvanceModulated rotates only the idx-th wavelet, then scales its tip
// by (1 + factor) and folds the modulated contribution into its centroid.
func (c *Chain) AdvanceModulated(idx int, angle float64, factor float64) Point {
	tip := c.Rotate(idx, angle)
	w := &c.wavelets[idx]
	w.accumulate(tip.Scale(factor))
	w.Tip = tip.Scale(factor).Add(tip)
	c.currentAngle = angle
	return w.Tip
}

// ResetCentroid forgets the accumulated positions of the idx-th wavelet.
func (c *Chain) ResetCentroid(idx int) {
	c.checkIndex(idx)
	c.wavelets[idx].resetCentroid()
}

// AccumulateCentroid adds the current tip of the idx-th wavelet scaled by
// factor to its running centroid and returns the new centroid.
func (c *Chain) AccumulateCentroid(idx int, factor float64) Point {
	c.checkIndex(idx)
	w := &c.wavelets[idx]
	return w.accumulate(w.Tip.Scale(factor))
}

// Centroid returns the running centroid of the first wavelet.
func (c *Chain) Centroid() Point {
	if len(c.wavelets) == 0 {
		return Point{}
	}
	return c.wavelets[0].Centroid
}

// FinalTip is the tip of the last wavelet, or the origin for an empty chain.
func (c *Chain) FinalTip() Point {
	if len(c.wavelets) == 0 {
		return Point{}
	}
	return c.wavelets[len(c.wavelets)-1].Tip
}

// FinalPoint is the negated final tip divided by the normalizer, which
// maps the traced curve into [-1, 1].
func (c *Chain) FinalPoint() Point {
	if c.normalizer == 0 {
		return Point{}
	}
	return c.FinalTip().Scale(-1 / c.normalizer)
}

func (c *Chain) checkIndex(idx int) {
	if idx < 0 || idx >= len(c.wavelets) {
		panic(fmt.Errorf("wavelet index %d is out of range [0, %d)", idx, len(c.wavelets)))
	}
}
