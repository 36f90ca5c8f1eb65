// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides a fully connected feedforward neural network trained
// online with backpropagation and momentum.
//
// # Overview
//
// A Network is built from a topology, the number of neurons per layer.
// Every layer gets one extra bias neuron with a constant output of 1.0, so
// topology {2, 4, 1} allocates 3, 5 and 2 neurons. Weights start uniform
// in [0, 1) and activations use the hyperbolic tangent.
//
// # Basic Usage
//
//	import "github.com/born-ml/neuro/nn"
//
//	func main() {
//	    net, err := nn.New([]int{2, 4, 1}, nn.DefaultConfig())
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    for range 1000 {
//	        for _, ex := range examples {
//	            net.FeedForward(ex.Inputs)
//	            net.BackPropagate(ex.Targets)
//	        }
//	    }
//
//	    net.FeedForward([]float64{1, 0})
//	    fmt.Println(net.Results(), net.Error())
//	}
//
// # Hyperparameters
//
// The learning rate (ETA) and momentum (ALPHA) are fixed per network:
//
//	cfg := nn.Config{
//	    Optimizer: optim.SGDConfig{LR: 0.15, Momentum: 0.5},
//	    Rand:      nn.NewRand(42),
//	}
//
// The random source is only read while building the network, so two
// networks built from the same seed train identically.
//
// # Errors
//
// FeedForward and BackPropagate return ErrDimensionMismatch when a vector
// does not match its layer; Layer returns ErrIndexOutOfRange. Both are
// detected before any state changes.
package nn
