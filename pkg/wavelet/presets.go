package wavelet

import (
	"fmt"
	"strings"
)

// IndexSequence names a family of closed-form indices.
type IndexSequence int

const (
	IndexSequenceUndefined = IndexSequence(iota)
	IndexSequenceIntegers
	IndexSequenceUneven
	IndexSequenceEven
	IndexSequenceFibonacci
	IndexSequencePrimes
	IndexSequenceUnevenPrimes
	IndexSequenceEvenPrimes
	IndexSequenceBalancedPrimes
	IndexSequenceEmirps
	IndexSequenceEulerIrregularPrimes
	EndOfIndexSequence
)

func (s IndexSequence) String() string {
	switch s {
	case IndexSequenceUndefined:
		return "<undefined>"
	case IndexSequenceIntegers:
		return "integers"
	case IndexSequenceUneven:
		return "uneven"
	case IndexSequenceEven:
		return "even"
	case IndexSequenceFibonacci:
		return "fibonacci"
	case IndexSequencePrimes:
		return "primes"
	case IndexSequenceUnevenPrimes:
		return "uneven-primes"
	case IndexSequenceEvenPrimes:
		return "even-primes"
	case IndexSequenceBalancedPrimes:
		return "balanced-primes"
	case IndexSequenceEmirps:
		return "emirps"
	case IndexSequenceEulerIrregularPrimes:
		return "euler-irregular-primes"
	default:
		return fmt.Sprintf("unknown_sequence_%d", int(s))
	}
}

func ParseIndexSequence(s string) (IndexSequence, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for seq := IndexSequenceUndefined + 1; seq < EndOfIndexSequence; seq++ {
		if seq.String() == s {
			return seq, nil
		}
	}
	return IndexSequenceUndefined, fmt.Errorf("unknown index sequence '%s'", s)
}

var (
	primes = []int{
		2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67, 71,
		73, 79, 83, 89, 97, 101, 103, 107, 109, 113, 127, 131, 137, 139, 149, 151,
		157, 163, 167, 173, 179, 181, 191, 193, 197, 199, 211, 223, 227, 229,
	}
	balancedPrimes       = []int{5, 53, 157, 173, 211, 257, 263, 373, 563}
	emirps               = []int{13, 17, 31, 37, 71, 73, 79, 97, 107, 113, 149, 157, 167, 179, 199}
	eulerIrregularPrimes = []int{
		19, 31, 43, 47, 61, 67, 71, 79, 101, 137, 139, 149, 193, 223, 241, 251,
		263, 277, 307, 311, 349, 353, 359, 373, 379, 419, 433, 461, 463, 491, 509,
		541, 563, 571, 577, 587,
	}
)

// Indices returns the indices of the sequence. Arithmetic sequences
// yield count entries; the prime tables are returned whole.
func (s IndexSequence) Indices(count int) []int {
	var result []int
	switch s {
	case IndexSequenceIntegers:
		for i := 1; i <= count; i++ {
			result = append(result, i)
		}
	case IndexSequenceUneven:
		for i := 1; i <= count; i++ {
			result = append(result, 2*i-1)
		}
	case IndexSequenceEven:
		for i := 1; i <= count; i++ {
			result = append(result, 2*i)
		}
	case IndexSequenceFibonacci:
		a, b := 1, 2
		for i := 0; i < count; i++ {
			result = append(result, a)
			a, b = b, a+b
		}
	case IndexSequencePrimes:
		result = append(result, primes...)
	case IndexSequenceUnevenPrimes:
		// every second prime starting with 3
		for i := 1; i < len(primes)-2; i += 2 {
			result = append(result, primes[i])
		}
	case IndexSequenceEvenPrimes:
		for i := 0; i < len(primes)-2; i += 2 {
			result = append(result, primes[i])
		}
	case IndexSequenceBalancedPrimes:
		result = append(result, balancedPrimes...)
	case IndexSequenceEmirps:
		result = append(result, emirps...)
	case IndexSequenceEulerIrregularPrimes:
		result = append(result, eulerIrregularPrimes...)
	default:
		panic(fmt.Errorf("unknown index sequence %v", s))
	}
	return result
}

// SquarePreset returns the explicit wavelets tracing a square outline,
// with magnitudes relative to radius.
func SquarePreset(radius float64) Explicit {
	magnitudes := []float64{6.109, -7.823, 2.468, -1.171, .676, -0.439, 0.307, -0.227, 0.174, -0.138, 0.112}
	pairs := make([]FrequencyMagnitude, len(magnitudes))
	for i, m := range magnitudes {
		pairs[i] = FrequencyMagnitude{
			Frequency: float64(4 * i),
			Magnitude: m * radius,
		}
	}
	return Explicit{Pairs: pairs}
}
