package nn

import "math"

// Activation applies the hyperbolic tangent, mapping any input into (-1, 1).
func Activation(x float64) float64 {
	return math.Tanh(x)
}

// ActivationDerivative returns the slope of Activation expressed through
// its output: tanh'(x) = 1 - tanh(x)^2.
//
// v must be an already activated value (a neuron output), not the
// weighted sum that produced it. The identity only holds for tanh.
func ActivationDerivative(v float64) float64 {
	return 1 - v*v
}
