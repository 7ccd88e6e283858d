package session

import (
	"fmt"
	"strings"
)

// Concept is what a session animates.
type Concept int

const (
	ConceptUndefined = Concept(iota)

	// ConceptFourierSeries advances a chain of closed-form, square or
	// custom wavelets.
	ConceptFourierSeries

	// ConceptFourierTransform winds the live driving curve around a
	// single wavelet.
	ConceptFourierTransform

	// ConceptDemodulate sweeps the winding frequency over the sampled
	// driving curve.
	ConceptDemodulate

	// ConceptDFTTwoEpicycles traces the path with separate X and Y
	// epicycles of the real DFTs.
	ConceptDFTTwoEpicycles

	// ConceptDFTOneEpicycle traces the path with the epicycles of the
	// complex DFT.
	ConceptDFTOneEpicycle

	// ConceptCapturePath only collects points into the result buffer.
	ConceptCapturePath

	EndOfConcept
)

func (c Concept) String() string {
	switch c {
	case ConceptUndefined:
		return "<undefined>"
	case ConceptFourierSeries:
		return "fourier-series"
	case ConceptFourierTransform:
		return "fourier-transform"
	case ConceptDemodulate:
		return "demodulate"
	case ConceptDFTTwoEpicycles:
		return "dft-2-epicycles"
	case ConceptDFTOneEpicycle:
		return "dft-1-epicycle"
	case ConceptCapturePath:
		return "capture-path"
	default:
		return fmt.Sprintf("unknown_concept_%d", int(c))
	}
}

func ParseConcept(s string) (Concept, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for c := ConceptUndefined + 1; c < EndOfConcept; c++ {
		if c.String() == s {
			return c, nil
		}
	}
	return ConceptUndefined, fmt.Errorf("unknown concept '%s'", s)
}

func ParseStrategy(s string) (Strategy, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for strategy := StrategyUndefined + 1; strategy < EndOfStrategy; strategy++ {
		if strategy.String() == s {
			return strategy, nil
		}
	}
	return StrategyUndefined, fmt.Errorf("unknown strategy '%s'", s)
}

// isDFTDriven tells whether the time step follows the length of the
// analysed path instead of the time change rate.
func (c Concept) isDFTDriven() bool {
	return c == ConceptDFTTwoEpicycles || c == ConceptDFTOneEpicycle
}
