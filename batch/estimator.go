package batch

import (
	"fmt"

	"github.com/emilleishida/RESSPECT-1/tensor"
)

var constructors = make(map[string]EstimatorCtor)

// Estimator accumulates a growing subset of selected items and scores
// candidates against it. Fold commits items into the held accumulator;
// Score evaluates every candidate independently and commits nothing.
type Estimator interface {
	// commit the items of the cube into the accumulator
	Fold(probs *tensor.Cube) error
	// joint entropy of the subset extended with each candidate alone
	Score(probs *tensor.Cube) ([]float64, error)
	// joint entropy of the accumulated subset itself
	Entropy() float64
}

// new joint entropy estimators should register themselves using this function
func Register(name string, ctor EstimatorCtor) {
	constructors[name] = ctor
}

type EstimatorCtor func(cfg Config) Estimator

func GetEstimator(name string) (EstimatorCtor, error) {
	if _, ok := constructors[name]; !ok {
		return nil, fmt.Errorf("estimator %s not registered", name)
	}
	return constructors[name], nil
}
