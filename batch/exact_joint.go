package batch

import (
	"gonum.org/v1/gonum/mat"

	"github.com/emilleishida/RESSPECT-1/tensor"
)

func init() {
	Register("exact", NewExactJoint)
}

// ExactJoint tracks the exact joint class distribution of the selected
// subset. Folding multiplies the table size by the class count per item,
// so it is only viable for small subsets over few classes; SampledJoint
// covers everything beyond that.
type ExactJoint struct {
	cfg   Config
	joint *mat.Dense // joint table of the folded subset, nil before the first fold
}

// NewExactJoint creates an estimator holding the exact joint table
func NewExactJoint(cfg Config) Estimator {
	return &ExactJoint{cfg: cfg}
}

// fold the items into the held joint table
func (this *ExactJoint) Fold(probs *tensor.Cube) error {
	joint, err := FoldItems(probs, this.joint)
	if err != nil {
		return err
	}
	this.joint = joint
	return nil
}

// score candidates against the held joint table; before the first fold
// candidates are scored against the identity table of the empty subset
func (this *ExactJoint) Score(probs *tensor.Cube) ([]float64, error) {
	return ExactEntropy(probs, this.joint, this.cfg)
}

// Joint returns the accumulated joint table, nil before the first fold.
func (this *ExactJoint) Joint() *mat.Dense {
	return this.joint
}

// Entropy returns the joint entropy of the accumulated subset, zero
// before the first fold.
func (this *ExactJoint) Entropy() float64 {
	if this.joint == nil {
		return 0.0
	}
	return JointEntropy(this.joint)
}
