// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the gradient descent rule used to train networks.
//
// # Overview
//
// SGD applies online gradient descent with momentum to one connection at a
// time:
//
//	delta  = LR * input * gradient + Momentum * delta
//	weight = weight + delta
//
// # Basic Usage
//
//	cfg := nn.DefaultConfig()
//	cfg.Optimizer = optim.SGDConfig{LR: 0.1, Momentum: 0.9}
//
//	net, err := nn.New([]int{2, 4, 1}, cfg)
//
// The rule is an immutable value owned by each network, so networks with
// different hyperparameters can be trained in parallel.
package optim
