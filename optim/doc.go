// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for autodiff graphs.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with optional momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//
// An optimizer is bound to one Graph. Step reads the gradient accumulated
// on each listed parameter and writes the updated value back into the
// graph. Parameters without a gradient are skipped.
//
// # Training Loop Pattern
//
//	g := autodiff.NewGraph[float64]()
//	// ... add inputs, parameters and the loss ...
//	opt := optim.NewSGD(g, optim.SGDConfig[float64]{LR: 0.5, Momentum: 0.9})
//
//	for epoch := range numEpochs {
//	    // 1. Zero gradients
//	    opt.ZeroGrad()
//
//	    // 2. Forward pass
//	    loss, err := g.Forward()
//
//	    // 3. Backward pass
//	    err = g.Backward()
//
//	    // 4. Update parameters
//	    err = opt.Step(g.Parameters())
//	}
//
// # Optimizers
//
// SGD:
//
//	opt := optim.NewSGD(g, optim.SGDConfig[float64]{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
//
// Adam:
//
//	opt := optim.NewAdam(g, optim.AdamConfig[float64]{
//	    LR:    0.001,
//	    Betas: [2]float64{0.9, 0.999},
//	    Eps:   1e-8,
//	})
package optim
