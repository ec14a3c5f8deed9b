// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/born-ml/autograd/internal/autodiff"
	"github.com/born-ml/autograd/internal/optim"
	"github.com/born-ml/autograd/internal/tensor"
)

// Optimizer is the interface implemented by all optimizers.
type Optimizer[T tensor.Numeric] = optim.Optimizer[T]

// SGD is Stochastic Gradient Descent with optional momentum.
type SGD[T tensor.Numeric] = optim.SGD[T]

// SGDConfig configures SGD.
type SGDConfig[T tensor.Numeric] = optim.SGDConfig[T]

// NewSGD creates an SGD optimizer over the parameters of g.
func NewSGD[T tensor.Numeric](g *autodiff.Graph[T], config SGDConfig[T]) *SGD[T] {
	return optim.NewSGD(g, config)
}

// Adam is the Adam optimizer.
type Adam[T tensor.Numeric] = optim.Adam[T]

// AdamConfig configures Adam.
type AdamConfig[T tensor.Numeric] = optim.AdamConfig[T]

// NewAdam creates an Adam optimizer over the parameters of g.
func NewAdam[T tensor.Numeric](g *autodiff.Graph[T], config AdamConfig[T]) *Adam[T] {
	return optim.NewAdam(g, config)
}
