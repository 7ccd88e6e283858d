package fourier

import (
	"math"
)

// Epicycles chains the components as circles starting at origin and
// returns every joint: joints[0] is the origin, joints[i+1] is the tip
// of component i. Each circle has radius scale*amplitude and sits at
// angle frequency*time + phase + rotation.
func Epicycles(
	origin ComplexSample,
	components []FrequencyComponent,
	time float64,
	rotation float64,
	scale float64,
) []ComplexSample {
	joints := make([]ComplexSample, 0, len(components)+1)
	joints = append(joints, origin)
	cur := origin
	for _, c := range components {
		angle := float64(c.Frequency)*time + c.Phase() + rotation
		r := scale * c.Amplitude()
		cur = cur.Add(ComplexSample{Re: r * math.Cos(angle), Im: r * math.Sin(angle)})
		joints = append(joints, cur)
	}
	return joints
}

// EpicycleTip is Epicycles without the intermediate joints.
func EpicycleTip(
	origin ComplexSample,
	components []FrequencyComponent,
	time float64,
	rotation float64,
	scale float64,
) ComplexSample {
	cur := origin
	for _, c := range components {
		angle := float64(c.Frequency)*time + c.Phase() + rotation
		r := scale * c.Amplitude()
		cur.Re += r * math.Cos(angle)
		cur.Im += r * math.Sin(angle)
	}
	return cur
}

// Synthesize evaluates the inverse transform of components at sample
// index n of an N-point sequence.
func Synthesize(components []FrequencyComponent, n, sampleCount int) ComplexSample {
	return EpicycleTip(ComplexSample{}, components, 2*math.Pi*float64(n)/float64(sampleCount), 0, 1)
}
