package sampler

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/emilleishida/RESSPECT-1/tensor"
)

// Source yields uniform variates in [0, 1). *rand.Rand satisfies it, so
// tests inject a seeded generator for reproducible draws.
type Source interface {
	Float64() float64
}

// globalSource draws from the process-global math/rand generator
type globalSource struct{}

func (globalSource) Float64() float64 {
	return rand.Float64()
}

// Multinomial draws class indices from the categorical distribution held
// in each (item, pass) row of a probability cube by inverting the
// cumulative distribution of the row.
type Multinomial struct {
	Src Source // uniform variate source; nil means the process-global generator
}

// Choices draws m class indices from every row of the cube and returns
// them as items*passes slices of m draws each, where slice b*passes+k
// holds the draws of pass k of item b. The last entry of each cumulative
// distribution is clipped to exactly 1.0 so accumulated rounding error
// cannot push a draw past the final class; a class of zero probability is
// never drawn.
func (this *Multinomial) Choices(probs *tensor.Cube, m int) ([][]int, error) {
	if m <= 0 {
		return nil, fmt.Errorf("sampler: draw count must be positive, got %d", m)
	}
	src := this.Src
	if src == nil {
		src = globalSource{}
	}

	items, passes, classes := probs.Shape()
	choices := make([][]int, items*passes)
	cdf := make([]float64, classes)
	for b := 0; b < items; b += 1 {
		for k := 0; k < passes; k += 1 {
			floats.CumSum(cdf, probs.Row(b, k))
			cdf[classes-1] = 1.0

			draws := make([]int, m)
			for s := 0; s < m; s += 1 {
				u := src.Float64()
				choice := classes - 1
				for c := 0; c < classes; c += 1 {
					if u < cdf[c] {
						choice = c
						break
					}
				}
				draws[s] = choice
			}
			choices[b*passes+k] = draws
		}
	}
	return choices, nil
}
