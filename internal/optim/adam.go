package optim

import (
	"fmt"
	"math"

	"github.com/born-ml/autograd/internal/autodiff"
	"github.com/born-ml/autograd/internal/tensor"
)

// Adam implements the Adam (Adaptive Moment Estimation) optimizer.
//
// Update rule:
//
//	m_t = beta1 * m_{t-1} + (1-beta1) * gradient       // First moment
//	v_t = beta2 * v_{t-1} + (1-beta2) * gradient²      // Second moment
//	m_hat = m_t / (1 - beta1^t)                        // Bias correction
//	v_hat = v_t / (1 - beta2^t)                        // Bias correction
//	param = param - lr * m_hat / (sqrt(v_hat) + eps)   // Parameter update
//
// Moments are kept in float64 regardless of T.
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014)
type Adam[T tensor.Numeric] struct {
	graph *autodiff.Graph[T]
	lr    T
	beta1 float64
	beta2 float64
	eps   float64
	t     int                                        // Timestep for bias correction
	m     map[autodiff.NodeID]*tensor.Tensor[float64] // First moment estimates
	v     map[autodiff.NodeID]*tensor.Tensor[float64] // Second moment estimates
}

// AdamConfig holds configuration for Adam optimizer.
type AdamConfig[T tensor.Numeric] struct {
	LR    T          // Learning rate (default: 0.001, float types only)
	Betas [2]float64 // Coefficients for computing running averages (default: [0.9, 0.999])
	Eps   float64    // Term for numerical stability (default: 1e-8)
}

// NewAdam creates a new Adam optimizer over the parameters of g.
//
// Default hyperparameters:
//   - LR: 0.001
//   - Beta1: 0.9
//   - Beta2: 0.999
//   - Eps: 1e-8
func NewAdam[T tensor.Numeric](g *autodiff.Graph[T], config AdamConfig[T]) *Adam[T] {
	if config.LR == 0 {
		config.LR = T(defaultAdamLR)
	}
	if config.Betas[0] == 0 {
		config.Betas[0] = 0.9
	}
	if config.Betas[1] == 0 {
		config.Betas[1] = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}

	return &Adam[T]{
		graph: g,
		lr:    config.LR,
		beta1: config.Betas[0],
		beta2: config.Betas[1],
		eps:   config.Eps,
		m:     make(map[autodiff.NodeID]*tensor.Tensor[float64]),
		v:     make(map[autodiff.NodeID]*tensor.Tensor[float64]),
	}
}

// Step performs a single optimization step using Adam algorithm.
// Parameters with no gradient are skipped but still advance the shared
// timestep. A parameter whose shape changed since its moments were
// allocated fails with a wrapped *tensor.ShapeError.
func (a *Adam[T]) Step(params []autodiff.NodeID) error {
	a.t++

	biasCorrection1 := 1.0 - math.Pow(a.beta1, float64(a.t))
	biasCorrection2 := 1.0 - math.Pow(a.beta2, float64(a.t))

	for _, id := range params {
		value, grad, err := paramState(a.graph, id)
		if err != nil {
			return err
		}
		if grad == nil {
			continue
		}

		m, ok := a.m[id]
		if !ok {
			m = tensor.Zeros[float64](value.Shape())
			a.m[id] = m
		}
		v, ok := a.v[id]
		if !ok {
			v = tensor.Zeros[float64](value.Shape())
			a.v[id] = v
		}
		if !m.Shape().Equal(value.Shape()) {
			return fmt.Errorf("moments for %v: %w", id,
				&tensor.ShapeError{Op: "adam", Expected: m.Shape(), Actual: value.Shape()})
		}

		updated := a.updateParameter(value, grad, m, v, biasCorrection1, biasCorrection2)
		if err := a.graph.SetValue(id, updated); err != nil {
			return err
		}
	}
	return nil
}

// updateParameter advances m and v in place and returns the new value.
func (a *Adam[T]) updateParameter(
	value, grad *tensor.Tensor[T],
	m, v *tensor.Tensor[float64],
	biasCorrection1, biasCorrection2 float64,
) *tensor.Tensor[T] {
	gradData := grad.Values()
	paramData := value.Values()
	mData := m.Data()
	vData := v.Data()
	lr := float64(a.lr)

	for i := range paramData {
		g := float64(gradData[i])

		mData[i] = a.beta1*mData[i] + (1.0-a.beta1)*g
		vData[i] = a.beta2*vData[i] + (1.0-a.beta2)*g*g

		mHat := mData[i] / biasCorrection1
		vHat := vData[i] / biasCorrection2

		paramData[i] = T(float64(paramData[i]) - lr*mHat/(math.Sqrt(vHat)+a.eps))
	}

	// Values already returned a fresh row-major copy.
	out, _ := tensor.FromSlice(paramData, value.Shape())
	return out
}

// ZeroGrad clears gradients for all parameters of the graph.
func (a *Adam[T]) ZeroGrad() {
	a.graph.ZeroGrad()
}

// LR returns the current learning rate.
func (a *Adam[T]) LR() T {
	return a.lr
}

// SetLR updates the learning rate.
func (a *Adam[T]) SetLR(lr T) {
	a.lr = lr
}

// Timestep returns the number of steps taken so far.
func (a *Adam[T]) Timestep() int {
	return a.t
}
