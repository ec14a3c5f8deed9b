package nn_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/born-ml/autograd/internal/autodiff"
	"github.com/born-ml/autograd/internal/nn"
	"github.com/born-ml/autograd/internal/optim"
	"github.com/born-ml/autograd/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXavierBounds(t *testing.T) {
	w := nn.Xavier[float64](3, 5, tensor.Shape{3, 5}, rand.New(rand.NewSource(1)))
	bound := math.Sqrt(6.0 / 8.0)

	assert.Equal(t, tensor.Shape{3, 5}, w.Shape())
	assert.True(t, w.All(func(v float64) bool { return v >= -bound && v <= bound }))
	assert.True(t, w.Any(func(v float64) bool { return v != 0 }))
}

func TestLinearForward(t *testing.T) {
	g := autodiff.NewGraph[float64]()
	l, err := nn.NewLinear(g, 2, 3, 4, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	w := tensor.Full[float64](tensor.Shape{2, 3}, 1)
	b, err := tensor.FromSlice([]float64{1, 2, 3}, tensor.Shape{1, 3})
	require.NoError(t, err)
	require.NoError(t, g.SetValue(l.Weight(), w))
	require.NoError(t, g.SetValue(l.Bias(), b))

	xv, err := tensor.FromSlice([]float64{0, 0, 0, 1, 1, 0, 1, 1}, tensor.Shape{4, 2})
	require.NoError(t, err)
	x, err := g.Variable(xv, false)
	require.NoError(t, err)
	_, err = l.Forward(x)
	require.NoError(t, err)

	out, err := g.Forward()
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{4, 3}, out.Shape())
	assert.Equal(t, []float64{
		1, 2, 3,
		2, 3, 4,
		2, 3, 4,
		3, 4, 5,
	}, out.Values())

	// The bias gradient sums the upstream gradient over the batch.
	require.NoError(t, g.Backward())
	bg, err := g.Grad(l.Bias())
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 4, 4}, bg.Values())

	assert.Equal(t, []autodiff.NodeID{l.Weight(), l.Bias()}, l.Parameters())
	assert.Equal(t, 2, l.InFeatures())
	assert.Equal(t, 3, l.OutFeatures())
}

func TestLinearRejectsBadSizes(t *testing.T) {
	g := autodiff.NewGraph[float32]()
	_, err := nn.NewLinear(g, 0, 3, 1, rand.New(rand.NewSource(1)))
	assert.Error(t, err)
	assert.Equal(t, 0, g.Len())
}

func TestSequentialTrainsXOR(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	g := autodiff.NewGraph[float64]()

	l1, err := nn.NewLinear(g, 2, 8, 4, rng)
	require.NoError(t, err)
	l2, err := nn.NewLinear(g, 8, 1, 4, rng)
	require.NoError(t, err)
	model := nn.NewSequential[float64](l1, nn.NewSigmoid(g), l2, nn.NewSigmoid(g))
	assert.Equal(t, 4, model.Len())
	assert.Len(t, model.Parameters(), 4)

	xv, _ := tensor.FromSlice([]float64{0, 0, 0, 1, 1, 0, 1, 1}, tensor.Shape{4, 2})
	yv, _ := tensor.FromSlice([]float64{0, 1, 1, 0}, tensor.Shape{4, 1})
	x, err := g.Variable(xv, false)
	require.NoError(t, err)
	y, err := g.Variable(yv, false)
	require.NoError(t, err)

	pred, err := model.Forward(x)
	require.NoError(t, err)
	_, err = nn.SquaredError(g, pred, y)
	require.NoError(t, err)

	opt := optim.NewAdam(g, optim.AdamConfig[float64]{LR: 0.05})
	var first, last float64
	for epoch := range 500 {
		opt.ZeroGrad()
		out, err := g.Forward()
		require.NoError(t, err)
		if epoch == 0 {
			first = out.Sum()
		}
		last = out.Sum()
		require.NoError(t, g.Backward())
		require.NoError(t, opt.Step(model.Parameters()))
	}
	assert.Less(t, last, first)
}

func TestActivationModules(t *testing.T) {
	g := autodiff.NewGraph[float64]()
	xv, _ := tensor.FromSlice([]float64{-2, 0, 3}, tensor.Shape{3})
	x, _ := g.Variable(xv, true)

	model := nn.NewSequential[float64](nn.NewReLU(g))
	_, err := model.Forward(x)
	require.NoError(t, err)
	assert.Empty(t, model.Parameters())

	out, err := g.Forward()
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 3}, out.Values())
}
