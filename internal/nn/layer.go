package nn

// Layer is an ordered run of neurons whose last element is the bias neuron.
type Layer struct {
	index   int
	neurons []Neuron
	conns   []Connection // outgoing connections of all neurons, fanOut per neuron
	fanOut  int
}

// Index returns the position of the layer in its network.
func (l *Layer) Index() int {
	return l.index
}

// Len returns the number of neurons including the bias neuron.
func (l *Layer) Len() int {
	return len(l.neurons)
}

// Size returns the declared number of neurons, bias excluded.
func (l *Layer) Size() int {
	return len(l.neurons) - 1
}

// Neuron returns neuron i of the layer.
func (l *Layer) Neuron(i int) *Neuron {
	return &l.neurons[i]
}

// Neurons returns the neurons of the layer, bias last.
func (l *Layer) Neurons() []Neuron {
	return l.neurons
}

// Bias returns the bias neuron.
func (l *Layer) Bias() *Neuron {
	return &l.neurons[len(l.neurons)-1]
}

// Outputs returns the outputs of the non-bias neurons.
func (l *Layer) Outputs() []float64 {
	out := make([]float64, l.Size())
	for i := range out {
		out[i] = l.neurons[i].output
	}
	return out
}

// clone returns a deep copy with its own connection buffer.
func (l *Layer) clone() Layer {
	c := Layer{
		index:   l.index,
		neurons: make([]Neuron, len(l.neurons)),
		conns:   make([]Connection, len(l.conns)),
		fanOut:  l.fanOut,
	}
	copy(c.neurons, l.neurons)
	copy(c.conns, l.conns)
	c.wire()
	return c
}

// wire points every neuron at its window of l.conns.
func (l *Layer) wire() {
	for j := range l.neurons {
		lo, hi := j*l.fanOut, (j+1)*l.fanOut
		l.neurons[j].conns = l.conns[lo:hi:hi]
	}
}
