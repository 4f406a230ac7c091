package batch

import (
	"fmt"

	log "github.com/golang/glog"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/emilleishida/RESSPECT-1/tensor"
)

// outcome count beyond which folding logs its growth
const foldWarnOutcomes = 1 << 24

// IdentityJoint returns the joint table of the empty subset: one outcome
// carrying probability one under each of the k passes.
func IdentityJoint(k int) *mat.Dense {
	ones := make([]float64, k)
	for i := range ones {
		ones[i] = 1.0
	}
	return mat.NewDense(1, k, ones)
}

// FoldItems folds every item of the cube into the prior joint table and
// returns the grown table. A nil prior stands for the identity table of the
// empty subset. Outcome m of the prior combined with class c of the folded
// item lands at row m*classes+c, so the table grows by a factor of classes
// per item; keeping that growth within memory is the caller's
// responsibility. The prior is never mutated.
func FoldItems(probs *tensor.Cube, prior *mat.Dense) (*mat.Dense, error) {
	items, passes, classes := probs.Shape()
	if prior == nil {
		prior = IdentityJoint(passes)
	}
	outcomes, kp := prior.Dims()
	if kp != passes {
		return nil, fmt.Errorf("%w: joint table has %d passes, cube has %d",
			ErrPassMismatch, kp, passes)
	}

	joint := prior
	warned := false
	for b := 0; b < items; b += 1 {
		grown := mat.NewDense(outcomes*classes, passes, nil)
		for m := 0; m < outcomes; m += 1 {
			for c := 0; c < classes; c += 1 {
				for k := 0; k < passes; k += 1 {
					grown.Set(m*classes+c, k, joint.At(m, k)*probs.Get(b, k, c))
				}
			}
		}
		joint = grown
		outcomes *= classes
		if !warned && outcomes >= foldWarnOutcomes {
			log.Warningf("joint table grew to %d outcomes after folding %d of %d items",
				outcomes, b+1, items)
			warned = true
		}
	}
	return joint, nil
}

// JointEntropy computes the Shannon entropy in nats of the outcome
// distribution of a joint table, marginalizing the passes by simple mean.
func JointEntropy(joint *mat.Dense) float64 {
	outcomes, passes := joint.Dims()

	probs := make([]float64, outcomes)
	for m := 0; m < outcomes; m += 1 {
		probs[m] = floats.Sum(joint.RawRowView(m)) / float64(passes)
	}
	return stat.Entropy(probs)
}

// ExactEntropy scores every item of the cube against the prior joint table:
// entropy[b] is the joint Shannon entropy of the previously folded subset
// extended with candidate b alone. No candidate is folded in and the prior
// is never mutated; a nil prior stands for the identity table. Candidates
// are scored in tiles of cfg.ChunkSize items so only a single
// outcomes x classes product is live at a time however large the batch.
func ExactEntropy(probs *tensor.Cube, prior *mat.Dense, cfg Config) ([]float64, error) {
	items, passes, classes := probs.Shape()
	if prior == nil {
		prior = IdentityJoint(passes)
	}
	outcomes, kp := prior.Dims()
	if kp != passes {
		return nil, fmt.Errorf("%w: joint table has %d passes, cube has %d",
			ErrPassMismatch, kp, passes)
	}

	entropy := make([]float64, items)
	product := mat.NewDense(outcomes, classes, nil)
	invK := 1.0 / float64(passes)
	for _, tile := range tensor.Chunks(items, cfg.chunkSize()) {
		view := probs.Slice(tile.Lo, tile.Hi)
		for i := 0; i < tile.Len(); i += 1 {
			product.Mul(prior, view.Item(i))
			product.Scale(invK, product)

			sum := 0.0
			for m := 0; m < outcomes; m += 1 {
				sum += stat.Entropy(product.RawRowView(m))
			}
			entropy[tile.Lo+i] = sum
		}
		log.V(2).Infof("scored candidates [%d, %d) against %d outcomes",
			tile.Lo, tile.Hi, outcomes)
	}
	return entropy, nil
}
