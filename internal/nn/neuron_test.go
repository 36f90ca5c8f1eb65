package nn

import (
	"testing"

	"github.com/born-ml/neuro/internal/optim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNeuron_SumDOW verifies that the next layer's bias gradient is ignored.
func TestNeuron_SumDOW(t *testing.T) {
	n := newNet(t, []int{1, 2, 1}, 1)
	hidden := &n.layers[1]
	output := &n.layers[2]

	h := hidden.Neuron(0)
	h.conns[0].Weight = 0.5
	h.conns[1].Weight = 100 // into the output bias

	output.Neuron(0).gradient = 0.2
	output.Bias().gradient = 7

	assert.InDelta(t, 0.1, h.SumDOW(output), 1e-15)

	h.output = 0.5
	h.CalculateHiddenGradient(output)
	assert.InDelta(t, 0.1*0.75, h.Gradient(), 1e-15)
}

// TestNeuron_OutputGradient tests the output gradient formula.
func TestNeuron_OutputGradient(t *testing.T) {
	var n Neuron
	n.output = 0.5
	n.CalculateOutputGradient(1)
	assert.InDelta(t, 0.5*0.75, n.Gradient(), 1e-15)

	n.CalculateOutputGradient(0.5)
	assert.Zero(t, n.Gradient())
}

// TestNeuron_FeedForwardSkipsBias verifies bias neurons ignore FeedForward.
func TestNeuron_FeedForwardSkipsBias(t *testing.T) {
	n := newNet(t, []int{2, 2}, 1)
	require.NoError(t, n.FeedForward([]float64{5, 5}))

	bias := n.layers[1].Bias()
	bias.FeedForward(&n.layers[0])
	assert.Equal(t, 1.0, bias.Output())
}

// TestNeuron_UpdateInputWeights tests one update into a single neuron.
func TestNeuron_UpdateInputWeights(t *testing.T) {
	n := newNet(t, []int{2, 1}, 1)
	prev := &n.layers[0]
	prev.Neuron(0).output = 0.5
	prev.Neuron(1).output = -1
	for j := range prev.neurons {
		prev.neurons[j].conns[0] = Connection{Weight: 0.1, DeltaWeight: 0.2}
	}

	target := n.layers[1].Neuron(0)
	target.gradient = 0.4

	sgd, err := optim.NewSGD(optim.DefaultSGDConfig())
	require.NoError(t, err)
	target.UpdateInputWeights(prev, sgd)

	for j, out := range []float64{0.5, -1, 1} {
		d := 0.15*out*0.4 + 0.5*0.2
		c := prev.Neuron(j).Connection(0)
		assert.InDelta(t, d, c.DeltaWeight, 1e-15, "neuron %d", j)
		assert.InDelta(t, 0.1+d, c.Weight, 1e-15, "neuron %d", j)
	}
}

// TestNeuron_Contract verifies that primitives panic without adjacent layers.
func TestNeuron_Contract(t *testing.T) {
	n := newNet(t, []int{2, 2, 1}, 1)
	in := n.layers[0].Neuron(0)
	out := n.layers[2].Neuron(0)
	sgd := n.Optimizer()

	assert.Panics(t, func() { in.FeedForward(nil) })
	assert.Panics(t, func() { out.FeedForward(&n.layers[0]) })
	assert.Panics(t, func() { out.SumDOW(nil) })
	assert.Panics(t, func() { in.SumDOW(&n.layers[2]) })
	assert.Panics(t, func() { in.UpdateInputWeights(nil, sgd) })

	assert.NotPanics(t, func() { out.FeedForward(&n.layers[1]) })
	assert.NotPanics(t, func() { in.SumDOW(&n.layers[1]) })
}

func TestNeuron_Accessors(t *testing.T) {
	n := newNet(t, []int{3, 2}, 1)
	layer := &n.layers[0]

	nr := layer.Neuron(2)
	assert.Equal(t, 2, nr.Index())
	assert.Equal(t, 0, nr.LayerIndex())
	assert.Equal(t, 3, nr.NumConnections())

	conns := nr.Connections()
	conns[0].Weight = -5
	assert.NotEqual(t, -5.0, nr.Connection(0).Weight)
}
