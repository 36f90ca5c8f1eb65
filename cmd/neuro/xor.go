package main

import (
	"flag"
	"fmt"

	"github.com/born-ml/neuro/internal/nn"
	"github.com/born-ml/neuro/internal/optim"
	"github.com/born-ml/neuro/internal/train"
)

var xorExamples = []train.Example{
	{Inputs: []float64{0, 0}, Targets: []float64{0}},
	{Inputs: []float64{1, 0}, Targets: []float64{1}},
	{Inputs: []float64{0, 1}, Targets: []float64{1}},
	{Inputs: []float64{1, 1}, Targets: []float64{0}},
}

func runXOR(args []string) error {
	fs := flag.NewFlagSet("xor", flag.ContinueOnError)
	epochs := fs.Int("epochs", 1000, "Number of passes over the truth table")
	hidden := fs.Int("hidden", 4, "Hidden layer size")
	seed := fs.Uint64("seed", nn.DefaultSeed, "Weight initialization seed")
	lr := fs.Float64("lr", optim.DefaultLR, lrUsage)
	momentum := fs.Float64("momentum", optim.DefaultMomentum, "Momentum (ALPHA)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := checkLR(*lr); err != nil {
		return err
	}

	net, err := nn.New([]int{2, *hidden, 1}, nn.Config{
		Optimizer: optim.SGDConfig{LR: *lr, Momentum: *momentum},
		Rand:      nn.NewRand(*seed),
	})
	if err != nil {
		return err
	}

	fmt.Printf("Training 2-%d-1 on XOR for %d epochs (lr=%.3f, momentum=%.3f)\n",
		*hidden, *epochs, *lr, *momentum)

	report := max(*epochs/10, 1)
	trainer := train.New(net, train.Config{
		Epochs: *epochs,
		OnProgress: func(p train.Progress) {
			if (p.Epoch+1)%report == 0 {
				fmt.Printf("Epoch %5d: recent error %.5f\n", p.Epoch+1, p.RecentError)
			}
		},
	})

	stats, err := trainer.Fit(xorExamples)
	if err != nil {
		return err
	}

	fmt.Printf("Done after %d steps\n\n", stats.Steps)
	for _, ex := range xorExamples {
		out, err := trainer.Predict(ex.Inputs)
		if err != nil {
			return err
		}
		fmt.Printf("  %v -> %.4f (want %.0f)\n", ex.Inputs, out[0], ex.Targets[0])
	}

	return nil
}
