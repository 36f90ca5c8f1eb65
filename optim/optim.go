// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/born-ml/neuro/internal/optim"
)

// SGD represents gradient descent with momentum.
type SGD = optim.SGD

// SGDConfig contains configuration for the SGD rule.
type SGDConfig = optim.SGDConfig

// ErrInvalidConfig is returned for out of range hyperparameters.
var ErrInvalidConfig = optim.ErrInvalidConfig

// Default hyperparameters.
const (
	DefaultLR       = optim.DefaultLR
	DefaultMomentum = optim.DefaultMomentum
)

// NewSGD creates a new SGD rule.
//
// Example:
//
//	sgd, err := optim.NewSGD(optim.SGDConfig{LR: 0.15, Momentum: 0.5})
func NewSGD(config SGDConfig) (SGD, error) {
	return optim.NewSGD(config)
}

// DefaultSGDConfig returns LR 0.15 and momentum 0.5.
func DefaultSGDConfig() SGDConfig {
	return optim.DefaultSGDConfig()
}
