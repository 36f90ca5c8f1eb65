package nn

// Connection is a weighted edge from a neuron to one neuron of the next layer.
//
// DeltaWeight holds the last applied update so the next one can carry momentum.
type Connection struct {
	Weight      float64
	DeltaWeight float64
}
