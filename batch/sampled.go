package batch

import (
	"fmt"
	"math"

	log "github.com/golang/glog"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/emilleishida/RESSPECT-1/sampler"
	"github.com/emilleishida/RESSPECT-1/tensor"
)

// SampleItems is the Monte Carlo counterpart of FoldItems. For every
// stochastic pass it draws budget joint class assignments of the cube's
// items and evaluates every drawn assignment under all passes, building a
// passes*budget x passes sample table: row origin*budget+s holds the
// probability of draw s taken from pass origin, one column per evaluating
// pass. Per-item probabilities are accumulated in log space and
// exponentiated once so long subsets cannot underflow term by term.
// A non-nil prior sample table is extended draw by draw (elementwise
// product), which requires it to have been built with the same passes and
// budget. The prior is never mutated.
func SampleItems(probs *tensor.Cube, budget int, prior *mat.Dense, src sampler.Source) (*mat.Dense, error) {
	items, passes, _ := probs.Shape()
	if budget < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadSampleBudget, budget)
	}
	rows := passes * budget
	if prior != nil {
		mp, kp := prior.Dims()
		if kp != passes {
			return nil, fmt.Errorf("%w: sample table has %d passes, cube has %d",
				ErrPassMismatch, kp, passes)
		}
		if mp != rows {
			return nil, fmt.Errorf("%w: sample table has %d rows, want passes*budget = %d",
				ErrSampleSizeMismatch, mp, rows)
		}
	}

	multi := &sampler.Multinomial{Src: src}
	choices, err := multi.Choices(probs, budget)
	if err != nil {
		return nil, err
	}

	samples := mat.NewDense(rows, passes, nil)
	for origin := 0; origin < passes; origin += 1 {
		for s := 0; s < budget; s += 1 {
			row := origin*budget + s
			for k := 0; k < passes; k += 1 {
				logp := 0.0
				for i := 0; i < items; i += 1 {
					c := choices[i*passes+origin][s]
					logp += math.Log(probs.Get(i, k, c))
				}
				samples.Set(row, k, math.Exp(logp))
			}
		}
	}
	if prior != nil {
		samples.MulElem(prior, samples)
	}
	return samples, nil
}

// SampleEntropy estimates the joint entropy in nats held by a sample
// table: the Monte Carlo mean over draws of the negative log marginal
// probability, the marginal being the simple mean over passes.
func SampleEntropy(samples *mat.Dense) float64 {
	rows, passes := samples.Dims()

	sum := 0.0
	for m := 0; m < rows; m += 1 {
		sum += -math.Log(floats.Sum(samples.RawRowView(m)) / float64(passes))
	}
	return sum / float64(rows)
}

// SampledEntropy scores every item of the cube against a sample table, the
// Monte Carlo counterpart of ExactEntropy. The marginal probability of each
// draw doubles as its importance weight and the estimate is normalized by
// the table size. Terms of zero probability contribute zero. No candidate
// is folded in and the table is never mutated. Candidates are scored in
// tiles of cfg.ChunkSize items so only a single rows x classes product is
// live at a time however large the batch.
func SampledEntropy(probs *tensor.Cube, samples *mat.Dense, cfg Config) ([]float64, error) {
	items, passes, classes := probs.Shape()
	rows, kp := samples.Dims()
	if kp != passes {
		return nil, fmt.Errorf("%w: sample table has %d passes, cube has %d",
			ErrPassMismatch, kp, passes)
	}

	// marginal probability of every draw, shared by all candidates
	proposal := make([]float64, rows)
	for m := 0; m < rows; m += 1 {
		proposal[m] = floats.Sum(samples.RawRowView(m)) / float64(passes)
	}

	entropy := make([]float64, items)
	product := mat.NewDense(rows, classes, nil)
	invK := 1.0 / float64(passes)
	for _, tile := range tensor.Chunks(items, cfg.chunkSize()) {
		view := probs.Slice(tile.Lo, tile.Hi)
		for i := 0; i < tile.Len(); i += 1 {
			product.Mul(samples, view.Item(i))

			sum := 0.0
			for m := 0; m < rows; m += 1 {
				prow := product.RawRowView(m)
				for c := 0; c < classes; c += 1 {
					p := prow[c] * invK
					if p == 0 {
						continue
					}
					sum -= math.Log(p) * p / proposal[m]
				}
			}
			entropy[tile.Lo+i] = sum / float64(rows)
		}
		log.V(2).Infof("scored candidates [%d, %d) against %d draws",
			tile.Lo, tile.Hi, rows)
	}
	return entropy, nil
}
