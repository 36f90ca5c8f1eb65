// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand/v2"

	"github.com/born-ml/neuro/internal/nn"
)

// Network is a fully connected feedforward network.
type Network = nn.Network

// Layer is a snapshot of one network layer, bias neuron last.
type Layer = nn.Layer

// Neuron is a single unit of a layer.
type Neuron = nn.Neuron

// Connection is a weighted edge between neurons of adjacent layers.
type Connection = nn.Connection

// Config holds construction-time settings of a Network.
type Config = nn.Config

// Errors returned by Network operations.
var (
	ErrDimensionMismatch = nn.ErrDimensionMismatch
	ErrIndexOutOfRange   = nn.ErrIndexOutOfRange
	ErrInvalidTopology   = nn.ErrInvalidTopology
)

// DefaultSeed seeds the weight source when Config.Rand is nil.
const DefaultSeed = nn.DefaultSeed

// New builds a network with topology[i] neurons (plus bias) in layer i.
//
// Example:
//
//	net, err := nn.New([]int{784, 300, 10}, nn.DefaultConfig())
func New(topology []int, cfg Config) (*Network, error) {
	return nn.New(topology, cfg)
}

// DefaultConfig returns LR 0.15, momentum 0.5 and a source seeded with DefaultSeed.
func DefaultConfig() Config {
	return nn.DefaultConfig()
}

// NewRand returns a deterministic random source for weight initialization.
func NewRand(seed uint64) *rand.Rand {
	return nn.NewRand(seed)
}

// Activation applies the hyperbolic tangent.
func Activation(x float64) float64 {
	return nn.Activation(x)
}

// ActivationDerivative returns 1 - v*v, the tanh slope at an already activated value v.
func ActivationDerivative(v float64) float64 {
	return nn.ActivationDerivative(v)
}
