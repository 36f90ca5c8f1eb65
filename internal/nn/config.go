package nn

import (
	"math/rand/v2"

	"github.com/born-ml/neuro/internal/optim"
)

// DefaultSeed seeds the weight source when Config.Rand is nil.
const DefaultSeed uint64 = 1

// Config holds construction-time settings of a Network.
type Config struct {
	// Optimizer is the momentum rule applied by BackPropagate.
	// The zero value selects optim.DefaultSGDConfig().
	Optimizer optim.SGDConfig

	// Rand draws the initial weights. It is only read during New.
	// Nil selects NewRand(DefaultSeed).
	Rand *rand.Rand
}

// DefaultConfig returns LR 0.15, momentum 0.5 and a source seeded with DefaultSeed.
func DefaultConfig() Config {
	return Config{
		Optimizer: optim.DefaultSGDConfig(),
		Rand:      NewRand(DefaultSeed),
	}
}

// NewRand returns a deterministic PCG source for weight initialization.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed)) //nolint:gosec // weight init, not security-critical
}
