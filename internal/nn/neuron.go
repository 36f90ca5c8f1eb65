package nn

import (
	"fmt"

	"github.com/born-ml/neuro/internal/optim"
)

// Neuron is a single unit of a Network.
//
// A neuron owns its outgoing connections: Connection(k) is the edge to
// neuron k of the next layer. Neurons of the last layer have none.
// Adjacent layers are never stored on the neuron; the Network passes them
// to the compute primitives below, which must be called in the order
// FeedForward, gradient, UpdateInputWeights for every training example.
type Neuron struct {
	output   float64
	gradient float64
	layer    int
	index    int
	bias     bool
	conns    []Connection // window into the network arena
}

// Output returns the last computed output.
func (n *Neuron) Output() float64 {
	return n.output
}

// Gradient returns the last computed gradient.
func (n *Neuron) Gradient() float64 {
	return n.gradient
}

// Index returns the position of the neuron inside its layer.
func (n *Neuron) Index() int {
	return n.index
}

// LayerIndex returns the index of the layer the neuron belongs to.
func (n *Neuron) LayerIndex() int {
	return n.layer
}

// IsBias reports whether the neuron is its layer's bias neuron.
func (n *Neuron) IsBias() bool {
	return n.bias
}

// NumConnections returns the number of outgoing connections.
func (n *Neuron) NumConnections() int {
	return len(n.conns)
}

// Connection returns the outgoing connection to neuron k of the next layer.
func (n *Neuron) Connection(k int) Connection {
	return n.conns[k]
}

// Connections returns a copy of all outgoing connections.
func (n *Neuron) Connections() []Connection {
	out := make([]Connection, len(n.conns))
	copy(out, n.conns)
	return out
}

// FeedForward sets the output to the activated weighted sum of prev.
//
// Bias neurons keep their constant output and are left untouched.
func (n *Neuron) FeedForward(prev *Layer) {
	if n.bias {
		return
	}
	n.mustFollow(prev, "FeedForward")

	var sum float64
	for j := range prev.neurons {
		p := &prev.neurons[j]
		sum += p.output * p.conns[n.index].Weight
	}

	n.output = Activation(sum)
}

// CalculateOutputGradient sets the gradient of an output neuron.
func (n *Neuron) CalculateOutputGradient(target float64) {
	delta := target - n.output
	n.gradient = delta * ActivationDerivative(n.output)
}

// CalculateHiddenGradient sets the gradient of a hidden neuron from the
// gradients already computed for next.
func (n *Neuron) CalculateHiddenGradient(next *Layer) {
	dow := n.SumDOW(next)
	n.gradient = dow * ActivationDerivative(n.output)
}

// SumDOW returns the sum over the non-bias neurons of next of the
// connection weight times that neuron's gradient.
func (n *Neuron) SumDOW(next *Layer) float64 {
	n.mustPrecede(next, "SumDOW")

	var dow float64
	for k := 0; k < next.Size(); k++ {
		dow += n.conns[k].Weight * next.neurons[k].gradient
	}

	return dow
}

// UpdateInputWeights applies sgd to every connection from prev into n.
func (n *Neuron) UpdateInputWeights(prev *Layer, sgd optim.SGD) {
	n.mustFollow(prev, "UpdateInputWeights")

	for j := range prev.neurons {
		p := &prev.neurons[j]
		c := &p.conns[n.index]
		sgd.Step(&c.Weight, &c.DeltaWeight, p.output, n.gradient)
	}
}

func (n *Neuron) mustFollow(prev *Layer, op string) {
	if prev == nil || prev.index != n.layer-1 {
		panic(fmt.Sprintf("nn: %s on neuron (%d, %d) needs the previous layer", op, n.layer, n.index))
	}
}

func (n *Neuron) mustPrecede(next *Layer, op string) {
	if next == nil || next.index != n.layer+1 || len(n.conns) != next.Len() {
		panic(fmt.Sprintf("nn: %s on neuron (%d, %d) needs the next layer", op, n.layer, n.index))
	}
}
