// Package train runs online training loops over a Network: one FeedForward
// and one BackPropagate per example, examples visited in a fixed order.
package train

import (
	"errors"
	"fmt"
	"math"

	"github.com/born-ml/neuro/internal/nn"
)

// DefaultSmoothingFactor is the number of examples the recent average error
// is averaged over.
const DefaultSmoothingFactor = 100.0

// ErrDiverged is returned when the training error stops being a finite number.
var ErrDiverged = errors.New("training diverged")

// Example is one input vector with its expected output.
type Example struct {
	Inputs  []float64
	Targets []float64
}

// Progress is reported to Config.OnProgress.
type Progress struct {
	Epoch       int     // Zero-based epoch
	Step        int     // Zero-based example index inside the epoch
	Error       float64 // RMS error of the last example
	RecentError float64 // Smoothed error
}

// Config holds configuration for a Trainer.
type Config struct {
	Epochs          int     // Passes over the examples (default: 1)
	SmoothingFactor float64 // Recent error smoothing (default: 100)
	ReportEvery     int     // Report every N steps; 0 reports only at epoch end
	OnProgress      func(Progress)
}

// Stats summarizes a Fit call.
type Stats struct {
	Epochs      int
	Steps       int
	LastError   float64
	RecentError float64
}

// Trainer drives a Network through online backpropagation.
type Trainer struct {
	net    *nn.Network
	cfg    Config
	recent float64
	steps  int
}

// New creates a Trainer for net.
func New(net *nn.Network, cfg Config) *Trainer {
	if cfg.Epochs <= 0 {
		cfg.Epochs = 1
	}
	if cfg.SmoothingFactor <= 0 {
		cfg.SmoothingFactor = DefaultSmoothingFactor
	}
	return &Trainer{net: net, cfg: cfg}
}

// Step trains on a single example and returns its RMS error.
func (t *Trainer) Step(inputs, targets []float64) (float64, error) {
	if err := t.net.FeedForward(inputs); err != nil {
		return 0, err
	}
	if err := t.net.BackPropagate(targets); err != nil {
		return 0, err
	}

	e := t.net.Error()
	t.steps++
	if math.IsNaN(e) || math.IsInf(e, 0) {
		return e, fmt.Errorf("%w: error %v after %d steps", ErrDiverged, e, t.steps)
	}

	s := t.cfg.SmoothingFactor
	t.recent = (t.recent*s + e) / (s + 1.0)
	return e, nil
}

// Fit runs Config.Epochs passes over examples in order.
func (t *Trainer) Fit(examples []Example) (Stats, error) {
	var stats Stats
	for epoch := 0; epoch < t.cfg.Epochs; epoch++ {
		for i, ex := range examples {
			e, err := t.Step(ex.Inputs, ex.Targets)
			if err != nil {
				return stats, fmt.Errorf("epoch %d example %d: %w", epoch, i, err)
			}
			stats.Steps++
			stats.LastError = e

			last := i == len(examples)-1
			if t.cfg.OnProgress != nil && ((t.cfg.ReportEvery > 0 && (i+1)%t.cfg.ReportEvery == 0) || last) {
				t.cfg.OnProgress(Progress{Epoch: epoch, Step: i, Error: e, RecentError: t.recent})
			}
		}
		stats.Epochs++
	}

	stats.RecentError = t.recent
	return stats, nil
}

// RecentError returns the smoothed error over recent steps.
func (t *Trainer) RecentError() float64 {
	return t.recent
}

// Steps returns the number of examples trained so far.
func (t *Trainer) Steps() int {
	return t.steps
}

// Predict runs a forward pass and returns the outputs.
func (t *Trainer) Predict(inputs []float64) ([]float64, error) {
	if err := t.net.FeedForward(inputs); err != nil {
		return nil, err
	}
	return t.net.Results(), nil
}
