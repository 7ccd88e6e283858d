package fourier

import (
	"math"
)

// ComplexSample is a point of a complex-valued (2D) curve.
type ComplexSample struct {
	Re float64
	Im float64
}

func NewComplexSample(re, im float64) ComplexSample {
	return ComplexSample{Re: re, Im: im}
}

func (c ComplexSample) Add(other ComplexSample) ComplexSample {
	return ComplexSample{Re: c.Re + other.Re, Im: c.Im + other.Im}
}

func (c ComplexSample) Mul(other ComplexSample) ComplexSample {
	return ComplexSample{
		Re: c.Re*other.Re - c.Im*other.Im,
		Im: c.Re*other.Im + c.Im*other.Re,
	}
}

func (c ComplexSample) Scale(f float64) ComplexSample {
	return ComplexSample{Re: c.Re * f, Im: c.Im * f}
}

// RotateConj multiplies the sample by e^{-i*phi}.
func (c ComplexSample) RotateConj(phi float64) ComplexSample {
	return c.Mul(ComplexSample{Re: math.Cos(phi), Im: -math.Sin(phi)})
}

func (c ComplexSample) Amplitude() float64 {
	return math.Sqrt(c.Re*c.Re + c.Im*c.Im)
}

func (c ComplexSample) Phase() float64 {
	return math.Atan2(c.Im, c.Re)
}

func (c ComplexSample) Complex128() complex128 {
	return complex(c.Re, c.Im)
}

func FromComplex128(v complex128) ComplexSample {
	return ComplexSample{Re: real(v), Im: imag(v)}
}

// FrequencyComponent is the normalized DFT coefficient of frequency
// index Frequency. Amplitude and phase are always derived from Re and Im.
type FrequencyComponent struct {
	Frequency int64
	Re        float64
	Im        float64
}

func NewFrequencyComponent(frequency int64, sum ComplexSample) FrequencyComponent {
	return FrequencyComponent{
		Frequency: frequency,
		Re:        sum.Re,
		Im:        sum.Im,
	}
}

func (c FrequencyComponent) Sample() ComplexSample {
	return ComplexSample{Re: c.Re, Im: c.Im}
}

func (c FrequencyComponent) Amplitude() float64 {
	return c.Sample().Amplitude()
}

func (c FrequencyComponent) Phase() float64 {
	return c.Sample().Phase()
}
