// Package nn implements a fully connected feedforward network trained
// online with backpropagation.
//
// This package provides:
//   - Network: topology, forward pass, backpropagation, RMS error
//   - Layer: ordered neurons with a trailing bias neuron
//   - Neuron: output/gradient state and the per-unit compute primitives
//   - Connection: weight and last delta of one edge
//
// All connections of a network live in one contiguous buffer. Neurons do
// not reference each other; the Network hands adjacent layers to them.
package nn

import (
	"fmt"
	"math"

	"github.com/born-ml/neuro/internal/optim"
)

// Network is a fully connected feedforward network trained online with
// backpropagation.
//
// Every layer carries one extra bias neuron with a constant output of 1.0.
// All neurons and connections are allocated once in New; the topology never
// changes afterwards. Connections live in a single arena indexed by
// (layer, neuron, next-layer neuron).
//
// A Network is not safe for concurrent use.
//
// Example:
//
//	net, err := nn.New([]int{2, 4, 1}, nn.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	_ = net.FeedForward([]float64{1, 0})
//	_ = net.BackPropagate([]float64{1})
//	out := net.Results()
type Network struct {
	layers   []Layer
	conns    []Connection
	topology []int
	sgd      optim.SGD
	err      float64
}

// New builds a network with topology[i] neurons (plus bias) in layer i.
//
// Weights are drawn uniformly from [0, 1) in layer, neuron, connection
// order; delta weights start at zero.
func New(topology []int, cfg Config) (*Network, error) {
	if len(topology) == 0 {
		return nil, fmt.Errorf("%w: no layers", ErrInvalidTopology)
	}
	for i, size := range topology {
		if size < 1 {
			return nil, fmt.Errorf("%w: layer %d has size %d", ErrInvalidTopology, i, size)
		}
	}

	if cfg.Optimizer == (optim.SGDConfig{}) {
		cfg.Optimizer = optim.DefaultSGDConfig()
	}
	sgd, err := optim.NewSGD(cfg.Optimizer)
	if err != nil {
		return nil, err
	}
	rng := cfg.Rand
	if rng == nil {
		rng = NewRand(DefaultSeed)
	}

	total := 0
	for i := 0; i < len(topology)-1; i++ {
		total += (topology[i] + 1) * (topology[i+1] + 1)
	}

	n := &Network{
		layers:   make([]Layer, len(topology)),
		conns:    make([]Connection, total),
		topology: append([]int(nil), topology...),
		sgd:      sgd,
	}

	offset := 0
	for i, size := range topology {
		fanOut := 0
		if i < len(topology)-1 {
			fanOut = topology[i+1] + 1
		}
		span := (size + 1) * fanOut

		layer := &n.layers[i]
		layer.index = i
		layer.neurons = make([]Neuron, size+1)
		layer.conns = n.conns[offset : offset+span : offset+span]
		layer.fanOut = fanOut
		offset += span

		for j := range layer.neurons {
			layer.neurons[j].layer = i
			layer.neurons[j].index = j
		}
		layer.wire()

		for j := range layer.neurons {
			for k := range layer.neurons[j].conns {
				layer.neurons[j].conns[k].Weight = rng.Float64()
			}
		}

		bias := layer.Bias()
		bias.bias = true
		bias.output = 1.0
	}

	return n, nil
}

// NumLayers returns the number of layers.
func (n *Network) NumLayers() int {
	return len(n.layers)
}

// Topology returns a copy of the declared layer sizes.
func (n *Network) Topology() []int {
	return append([]int(nil), n.topology...)
}

// Optimizer returns the momentum rule used by BackPropagate.
func (n *Network) Optimizer() optim.SGD {
	return n.sgd
}

// Layer returns a snapshot of layer i. Changes to the snapshot do not
// reach the network.
func (n *Network) Layer(i int) (Layer, error) {
	if i < 0 || i >= len(n.layers) {
		return Layer{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(n.layers))
	}
	return n.layers[i].clone(), nil
}

// FeedForward loads inputs into the input layer and propagates them to
// the output layer. The bias neuron of every layer is skipped.
func (n *Network) FeedForward(inputs []float64) error {
	input := &n.layers[0]
	if len(inputs) != input.Size() {
		return fmt.Errorf("%w: got %d inputs, input layer has %d neurons",
			ErrDimensionMismatch, len(inputs), input.Size())
	}

	for i, v := range inputs {
		input.neurons[i].output = v
	}

	for l := 1; l < len(n.layers); l++ {
		prev := &n.layers[l-1]
		layer := &n.layers[l]
		for i := 0; i < layer.Size(); i++ {
			layer.neurons[i].FeedForward(prev)
		}
	}

	return nil
}

// BackPropagate computes gradients against targets for the last
// FeedForward pass and updates every weight.
//
// Gradients are finalized back to front before any weight changes.
func (n *Network) BackPropagate(targets []float64) error {
	output := n.outputLayer()
	if len(targets) != output.Size() {
		return fmt.Errorf("%w: got %d targets, output layer has %d neurons",
			ErrDimensionMismatch, len(targets), output.Size())
	}

	n.err = n.rms(targets)

	for i, t := range targets {
		output.neurons[i].CalculateOutputGradient(t)
	}

	for l := len(n.layers) - 2; l > 0; l-- {
		next := &n.layers[l+1]
		layer := &n.layers[l]
		for j := range layer.neurons {
			layer.neurons[j].CalculateHiddenGradient(next)
		}
	}

	for l := len(n.layers) - 1; l > 0; l-- {
		prev := &n.layers[l-1]
		layer := &n.layers[l]
		for i := 0; i < layer.Size(); i++ {
			layer.neurons[i].UpdateInputWeights(prev, n.sgd)
		}
	}

	return nil
}

// Results returns the outputs of the non-bias output neurons.
func (n *Network) Results() []float64 {
	return n.outputLayer().Outputs()
}

// Error returns the RMS error computed by the last BackPropagate.
func (n *Network) Error() float64 {
	return n.err
}

// RMSNetError returns the root mean square of (target - output) over the
// non-bias output neurons.
func (n *Network) RMSNetError(targets []float64) (float64, error) {
	if size := n.outputLayer().Size(); len(targets) != size {
		return 0, fmt.Errorf("%w: got %d targets, output layer has %d neurons",
			ErrDimensionMismatch, len(targets), size)
	}
	return n.rms(targets), nil
}

func (n *Network) rms(targets []float64) float64 {
	output := n.outputLayer()

	var sum float64
	for i, t := range targets {
		delta := t - output.neurons[i].output
		sum += delta * delta
	}

	return math.Sqrt(sum / float64(len(targets)))
}

func (n *Network) outputLayer() *Layer {
	return &n.layers[len(n.layers)-1]
}
