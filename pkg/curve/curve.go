// Package curve provides the analytic driving curves sampled over one
// period and fed into the demodulation and transform concepts.
package curve

import (
	"fmt"
	"math"
	"strings"

	"github.com/xaionaro-go/epicycles/pkg/scrollingbuffer"
)

type Kind int

const (
	KindUndefined = Kind(iota)
	KindSin
	KindCos
	KindSinSquaredPlusCos
	KindDoubleSinCos
	KindSin2x
	KindCosSinMinusSin
	KindSin4321
	KindCos4321
	KindSin75321
	KindSin4213731
	KindSawtooth
	KindSquareWave
	KindSquareOutline
	KindAlternatingSin
	KindAlternatingSinNegated
	KindRecorded
	EndOfKind
)

func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "<undefined>"
	case KindSin:
		return "sin(x)"
	case KindCos:
		return "cos(x)"
	case KindSinSquaredPlusCos:
		return "sin(x)^2 + cos(x)"
	case KindDoubleSinCos:
		return "cos(x)sin(x) + sin(x)cos(x)"
	case KindSin2x:
		return "sin(2x)"
	case KindCosSinMinusSin:
		return "cos(x)sin(x) - sin(x)"
	case KindSin4321:
		return "sin(4x) + sin(3x) + sin(2x) + sin(x)"
	case KindCos4321:
		return "cos(4x) + cos(3x) + cos(2x) + cos(x)"
	case KindSin75321:
		return "sin(7x) + sin(5x) + sin(3x) + sin(2x) + sin(x)"
	case KindSin4213731:
		return "sin(42x) + sin(13x) + sin(7x) + sin(3x) + sin(x)"
	case KindSawtooth:
		return "sum(sin(2x))"
	case KindSquareWave:
		return "sum(sin(2x-1))"
	case KindSquareOutline:
		return "square"
	case KindAlternatingSin:
		return "sin(x) - sin(2x) + sin(3x) - ..."
	case KindAlternatingSinNegated:
		return "-sin(x) + sin(2x) - sin(3x) + ..."
	case KindRecorded:
		return "recorded"
	default:
		return fmt.Sprintf("unknown_curve_%d", int(k))
	}
}

// ParseKind accepts either the curve formula as returned by String or
// its index.
func ParseKind(s string) (Kind, error) {
	s = strings.TrimSpace(s)
	for k := KindUndefined + 1; k < EndOfKind; k++ {
		if k.String() == s || fmt.Sprint(int(k)) == s {
			return k, nil
		}
	}
	return KindUndefined, fmt.Errorf("unknown curve '%s'", s)
}

// squareOutlineHalfSide is the distance from the centre to a side of
// the KindSquareOutline square.
const squareOutlineHalfSide = 50.0

// Evaluate returns the value of the curve at x. nodes is the amount of
// terms of the series-based curves. KindRecorded has no analytic form
// and always evaluates to zero.
func (k Kind) Evaluate(x float64, nodes int) float64 {
	sin, cos := math.Sin, math.Cos
	switch k {
	case KindSin:
		return sin(x)
	case KindCos:
		return cos(x)
	case KindSinSquaredPlusCos:
		return sin(x)*sin(x) + cos(x)
	case KindDoubleSinCos:
		return 2 * sin(x) * cos(x)
	case KindSin2x:
		return sin(2 * x)
	case KindCosSinMinusSin:
		return cos(x)*sin(x) - sin(x)
	case KindSin4321:
		return sin(4*x) + sin(3*x) + sin(2*x) + sin(x)
	case KindCos4321:
		return cos(4*x) + cos(3*x) + cos(2*x) + cos(x)
	case KindSin75321:
		return sin(7*x) + sin(5*x) + sin(3*x) + sin(2*x) + sin(x)
	case KindSin4213731:
		return sin(42*x) + sin(13*x) + sin(7*x) + sin(3*x) + sin(x)
	case KindSawtooth:
		var y float64
		for i := 1; i <= nodes; i++ {
			f := float64(2 * i)
			y += 4 * sin(f*x) / (math.Pi * f)
		}
		return y
	case KindSquareWave:
		var y float64
		for i := 1; i <= nodes; i++ {
			f := float64(2*i - 1)
			y += 4 * sin(f*x) / (math.Pi * f)
		}
		return y
	case KindSquareOutline:
		// the polar radius of a square
		return squareOutlineHalfSide/math.Max(math.Abs(cos(x)), math.Abs(sin(x))) - squareOutlineHalfSide
	case KindAlternatingSin, KindAlternatingSinNegated:
		var y float64
		for i := 1; i <= nodes; i++ {
			term := sin(float64(i) * x)
			if i%2 == 0 {
				term = -term
			}
			y += term
		}
		if k == KindAlternatingSinNegated {
			y = -y
		}
		return y
	case KindRecorded:
		return 0
	default:
		panic(fmt.Errorf("unknown curve %v", k))
	}
}

// Derivative returns the first derivative of the curve at x, if the
// curve has one in closed form.
func (k Kind) Derivative(x float64) (float64, bool) {
	sin, cos := math.Sin, math.Cos
	switch k {
	case KindSin:
		return cos(x), true
	case KindCos:
		return -sin(x), true
	case KindSinSquaredPlusCos:
		return 2*sin(x)*cos(x) - sin(x), true
	case KindDoubleSinCos:
		return 2 * cos(2*x), true
	case KindSin2x:
		return 2 * cos(2*x), true
	case KindCosSinMinusSin:
		return cos(2*x) - cos(x), true
	case KindSin4321:
		return 4*cos(4*x) + 3*cos(3*x) + 2*cos(2*x) + cos(x), true
	case KindCos4321:
		return -4*sin(4*x) - 3*sin(3*x) - 2*sin(2*x) - sin(x), true
	case KindSin75321:
		return 7*cos(7*x) + 5*cos(5*x) + 3*cos(3*x) + 2*cos(2*x) + cos(x), true
	case KindSin4213731:
		return 42*cos(42*x) + 13*cos(13*x) + 7*cos(7*x) + 3*cos(3*x) + cos(x), true
	default:
		return 0, false
	}
}

// Sample fills dst with dst.Cap() points of the curve spread evenly over
// [0, 2π). For KindRecorded the Y values are taken from recorded
// (oldest first); missing values are zero.
func Sample(
	dst *scrollingbuffer.Buffer,
	k Kind,
	nodes int,
	recorded *scrollingbuffer.Buffer,
) {
	dst.Erase()
	count := dst.Cap()
	step := 2 * math.Pi / float64(count)
	for i := 0; i < count; i++ {
		x := float64(i) * step
		var y float64
		if k == KindRecorded {
			if recorded != nil && i < recorded.Len() {
				y = float64(recorded.At(i).Y)
			}
		} else {
			y = k.Evaluate(x, nodes)
		}
		dst.PushFloat64(x, y)
	}
}
