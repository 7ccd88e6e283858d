package fourier

import (
	"cmp"
	"slices"
)

// RankByAmplitude returns a copy of components sorted by descending
// amplitude. Equal amplitudes keep their input order.
func RankByAmplitude(components []FrequencyComponent) []FrequencyComponent {
	type keyed struct {
		amplitude float64
		component FrequencyComponent
	}
	items := make([]keyed, len(components))
	for i, c := range components {
		items[i] = keyed{amplitude: c.Amplitude(), component: c}
	}
	slices.SortStableFunc(items, func(a, b keyed) int {
		return cmp.Compare(b.amplitude, a.amplitude)
	})

	result := make([]FrequencyComponent, len(items))
	for i, item := range items {
		result[i] = item.component
	}
	return result
}

// Top returns at most n leading components.
func Top(components []FrequencyComponent, n int) []FrequencyComponent {
	if n < 0 || n >= len(components) {
		return components
	}
	return components[:n]
}
