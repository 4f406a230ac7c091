package batch

import (
	"gonum.org/v1/gonum/stat"

	"github.com/emilleishida/RESSPECT-1/tensor"
)

// ConditionalEntropy computes, for every item of the cube, the Shannon
// entropy in nats of its class distribution averaged over the stochastic
// passes. Classes of zero probability contribute zero to the sum.
func ConditionalEntropy(probs *tensor.Cube) []float64 {
	items, passes, _ := probs.Shape()

	entropy := make([]float64, items)
	for b := 0; b < items; b += 1 {
		sum := 0.0
		for k := 0; k < passes; k += 1 {
			sum += stat.Entropy(probs.Row(b, k))
		}
		entropy[b] = sum / float64(passes)
	}
	return entropy
}
