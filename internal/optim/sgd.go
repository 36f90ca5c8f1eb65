// Package optim implements the weight update rule applied during backpropagation.
package optim

import (
	"fmt"
	"math"
)

// Default hyperparameters of the online trainer.
const (
	DefaultLR       = 0.15
	DefaultMomentum = 0.5
)

// SGD implements online gradient descent with momentum on a single connection.
//
// Update rule, applied once per connection per training example:
//
//	delta  = lr * input * gradient + momentum * delta
//	weight = weight + delta
//
// input is the output of the source neuron and gradient is the gradient of
// the target neuron. The gradient already carries the sign of the error
// (target - output), so the weight moves by +delta.
//
// SGD is an immutable value; networks built with different configs can be
// trained side by side.
type SGD struct {
	lr       float64
	momentum float64
}

// SGDConfig holds configuration for the SGD rule.
type SGDConfig struct {
	LR       float64 // Learning rate, ETA (default: 0.15)
	Momentum float64 // Momentum factor, ALPHA (range: [0, 1))
}

// DefaultSGDConfig returns LR 0.15 and momentum 0.5.
func DefaultSGDConfig() SGDConfig {
	return SGDConfig{LR: DefaultLR, Momentum: DefaultMomentum}
}

// Validate reports whether the config describes a usable update rule.
func (c SGDConfig) Validate() error {
	if c.LR < 0 || math.IsNaN(c.LR) || math.IsInf(c.LR, 0) {
		return fmt.Errorf("%w: learning rate %v", ErrInvalidConfig, c.LR)
	}
	if c.Momentum < 0 || c.Momentum >= 1 || math.IsNaN(c.Momentum) {
		return fmt.Errorf("%w: momentum %v not in [0, 1)", ErrInvalidConfig, c.Momentum)
	}
	return nil
}

// NewSGD creates a new SGD rule.
//
// A zero LR selects DefaultLR. A zero Momentum disables momentum.
//
// Example:
//
//	sgd, err := optim.NewSGD(optim.SGDConfig{LR: 0.15, Momentum: 0.5})
func NewSGD(config SGDConfig) (SGD, error) {
	if config.LR == 0 {
		config.LR = DefaultLR
	}
	if err := config.Validate(); err != nil {
		return SGD{}, err
	}

	return SGD{
		lr:       config.LR,
		momentum: config.Momentum,
	}, nil
}

// Step applies one update to weight and stores the new delta in delta.
func (s SGD) Step(weight, delta *float64, input, gradient float64) {
	d := s.lr*input*gradient + s.momentum*(*delta)
	*delta = d
	*weight += d
}

// GetLR returns the learning rate.
func (s SGD) GetLR() float64 {
	return s.lr
}

// GetMomentum returns the momentum factor.
func (s SGD) GetMomentum() float64 {
	return s.momentum
}

// Config returns the config the rule was built from.
func (s SGD) Config() SGDConfig {
	return SGDConfig{LR: s.lr, Momentum: s.momentum}
}
