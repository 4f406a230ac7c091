package batch

import (
	"gonum.org/v1/gonum/mat"

	"github.com/emilleishida/RESSPECT-1/tensor"
)

func init() {
	Register("sampled", NewSampledJoint)
}

// SampledJoint tracks a Monte Carlo sample table of the selected subset's
// joint class distribution, trading exactness for a fixed per-fold budget.
type SampledJoint struct {
	cfg     Config
	samples *mat.Dense // sample table of the folded subset, nil before the first fold
}

// NewSampledJoint creates an estimator holding a sampled joint table
func NewSampledJoint(cfg Config) Estimator {
	return &SampledJoint{cfg: cfg}
}

// fold the items into the held sample table
func (this *SampledJoint) Fold(probs *tensor.Cube) error {
	samples, err := SampleItems(probs, this.cfg.sampleBudget(), this.samples, this.cfg.Src)
	if err != nil {
		return err
	}
	this.samples = samples
	return nil
}

// score candidates against the held sample table; before the first fold
// candidates are scored against the identity table of the empty subset
func (this *SampledJoint) Score(probs *tensor.Cube) ([]float64, error) {
	samples := this.samples
	if samples == nil {
		_, passes, _ := probs.Shape()
		samples = IdentityJoint(passes)
	}
	return SampledEntropy(probs, samples, this.cfg)
}

// Samples returns the accumulated sample table, nil before the first fold.
func (this *SampledJoint) Samples() *mat.Dense {
	return this.samples
}

// Entropy returns the Monte Carlo estimate of the accumulated subset's
// joint entropy, zero before the first fold.
func (this *SampledJoint) Entropy() float64 {
	if this.samples == nil {
		return 0.0
	}
	return SampleEntropy(this.samples)
}
