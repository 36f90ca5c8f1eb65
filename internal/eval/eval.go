// Package eval scores a trained Network on labeled examples.
package eval

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/born-ml/neuro/internal/nn"
	"github.com/born-ml/neuro/internal/train"
)

// ErrEmpty is returned when there is nothing to evaluate.
var ErrEmpty = errors.New("no examples to evaluate")

// Report summarizes a classification run.
type Report struct {
	Total     int
	Correct   int
	Accuracy  float64    // Correct / Total
	MeanError float64    // Mean RMS error over all examples
	Confusion *mat.Dense // [actual, predicted] counts
}

// Incorrect returns the number of misclassified examples.
func (r Report) Incorrect() int {
	return r.Total - r.Correct
}

// String formats the report for console output.
func (r Report) String() string {
	return fmt.Sprintf("accuracy %.2f%%: recognized %d of %d, failed %d of %d, mean error %.4f",
		r.Accuracy*100, r.Correct, r.Total, r.Incorrect(), r.Total, r.MeanError)
}

// Classify returns the index of the largest output, or -1 for no outputs.
func Classify(outputs []float64) int {
	if len(outputs) == 0 {
		return -1
	}
	return floats.MaxIdx(outputs)
}

// Evaluate runs every example through net and compares the winning output
// with the argmax of its targets. An example whose labeled output ties
// with the maximum counts as correct.
//
// Examples are processed one at a time; net must not be trained concurrently.
func Evaluate(net *nn.Network, examples []train.Example) (Report, error) {
	if len(examples) == 0 {
		return Report{}, ErrEmpty
	}

	classes := net.Topology()[net.NumLayers()-1]
	report := Report{
		Total:     len(examples),
		Confusion: mat.NewDense(classes, classes, nil),
	}

	errs := make([]float64, len(examples))
	for i, ex := range examples {
		if err := net.FeedForward(ex.Inputs); err != nil {
			return Report{}, fmt.Errorf("example %d: %w", i, err)
		}
		e, err := net.RMSNetError(ex.Targets)
		if err != nil {
			return Report{}, fmt.Errorf("example %d: %w", i, err)
		}
		errs[i] = e

		outputs := net.Results()
		actual := Classify(ex.Targets)
		predicted := Classify(outputs)

		if outputs[actual] == floats.Max(outputs) {
			report.Correct++
		}
		report.Confusion.Set(actual, predicted, report.Confusion.At(actual, predicted)+1)
	}

	report.Accuracy = float64(report.Correct) / float64(report.Total)
	report.MeanError = stat.Mean(errs, nil)

	return report, nil
}
