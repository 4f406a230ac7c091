package metrics

import (
	"errors"
	"fmt"
)

// DefaultPenalty is the canonical false positive weight of the SNPCC
// figure of merit.
const DefaultPenalty = 3.0

var (
	ErrLengthMismatch = errors.New("metrics: label slices differ in length")
	ErrNoLabels       = errors.New("metrics: no labels given")
	ErrNoPositives    = errors.New("metrics: no true Ia in the sample")
)

// counts of the binary confusion between Ia and everything else
type counts struct {
	correctIa int // true Ia classified Ia
	wrongIa   int // non-Ia classified Ia
	totalIa   int // true Ia in the sample
	correct   int // correctly classified, any type
}

func tally(pred, truth []int, iaLabel int) (counts, error) {
	if len(pred) != len(truth) {
		return counts{}, fmt.Errorf("%w: %d predicted, %d true",
			ErrLengthMismatch, len(pred), len(truth))
	}
	if len(pred) == 0 {
		return counts{}, ErrNoLabels
	}

	var n counts
	for i := range pred {
		if pred[i] == truth[i] {
			n.correct += 1
		}
		if truth[i] == iaLabel {
			n.totalIa += 1
			if pred[i] == iaLabel {
				n.correctIa += 1
			}
		} else if pred[i] == iaLabel {
			n.wrongIa += 1
		}
	}
	return n, nil
}

// Efficiency is the fraction of true Ia that were classified Ia.
// It errors when the sample holds no true Ia at all.
func Efficiency(pred, truth []int, iaLabel int) (float64, error) {
	n, err := tally(pred, truth, iaLabel)
	if err != nil {
		return 0, err
	}
	if n.totalIa == 0 {
		return 0, ErrNoPositives
	}
	return float64(n.correctIa) / float64(n.totalIa), nil
}

// Purity is the fraction of true Ia among everything classified Ia,
// zero when nothing was classified Ia.
func Purity(pred, truth []int, iaLabel int) (float64, error) {
	n, err := tally(pred, truth, iaLabel)
	if err != nil {
		return 0, err
	}
	classified := n.correctIa + n.wrongIa
	if classified == 0 {
		return 0, nil
	}
	return float64(n.correctIa) / float64(classified), nil
}

// FoM is the SNPCC figure of merit: efficiency times a pseudo purity whose
// false positives are inflated by the penalty weight. Like Purity it is
// zero when nothing was classified Ia, and like Efficiency it errors when
// the sample holds no true Ia.
func FoM(pred, truth []int, iaLabel int, penalty float64) (float64, error) {
	n, err := tally(pred, truth, iaLabel)
	if err != nil {
		return 0, err
	}
	if n.totalIa == 0 {
		return 0, ErrNoPositives
	}
	weighted := float64(n.correctIa) + penalty*float64(n.wrongIa)
	if weighted == 0 {
		return 0, nil
	}
	efficiency := float64(n.correctIa) / float64(n.totalIa)
	return efficiency * float64(n.correctIa) / weighted, nil
}

// Accuracy is the global fraction of correctly classified objects.
func Accuracy(pred, truth []int) (float64, error) {
	n, err := tally(pred, truth, 0)
	if err != nil {
		return 0, err
	}
	return float64(n.correct) / float64(len(pred)), nil
}

// Summary bundles the four SNPCC diagnostics of one classification.
type Summary struct {
	Accuracy   float64
	Efficiency float64
	Purity     float64
	FoM        float64
}

// SNPCC computes the four SNPCC diagnostics in a single pass over the
// labels.
func SNPCC(pred, truth []int, iaLabel int, penalty float64) (Summary, error) {
	n, err := tally(pred, truth, iaLabel)
	if err != nil {
		return Summary{}, err
	}
	if n.totalIa == 0 {
		return Summary{}, ErrNoPositives
	}

	s := Summary{
		Accuracy:   float64(n.correct) / float64(len(pred)),
		Efficiency: float64(n.correctIa) / float64(n.totalIa),
	}
	if classified := n.correctIa + n.wrongIa; classified > 0 {
		s.Purity = float64(n.correctIa) / float64(classified)
	}
	if weighted := float64(n.correctIa) + penalty*float64(n.wrongIa); weighted > 0 {
		s.FoM = s.Efficiency * float64(n.correctIa) / weighted
	}
	return s, nil
}

// Names lists the diagnostics in canonical order.
func (s Summary) Names() []string {
	return []string{"accuracy", "efficiency", "purity", "fom"}
}

// Values lists the diagnostics in canonical order.
func (s Summary) Values() []float64 {
	return []float64{s.Accuracy, s.Efficiency, s.Purity, s.FoM}
}
