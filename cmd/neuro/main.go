// Package main provides the neuro CLI.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/born-ml/neuro/internal/optim"
	"github.com/klauspost/cpuid/v2"
)

const version = "v0.1.0"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	var err error
	switch os.Args[1] {
	case "version":
		fmt.Printf("neuro %s\n", version)
		fmt.Printf("CPU: %s (%d cores)\n", cpuid.CPU.BrandName, cpuid.CPU.PhysicalCores)
	case "xor":
		err = runXOR(os.Args[2:])
	case "mnist":
		err = runMNIST(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil && !errors.Is(err, flag.ErrHelp) {
		fmt.Fprintf(os.Stderr, "neuro %s: %v\n", os.Args[1], err)
		os.Exit(1)
	}
}

// lrUsage is the help text of the -lr flag.
const lrUsage = "Learning rate (ETA), must be positive"

// checkLR rejects a learning rate that the optimizer would replace with its
// default or refuse.
func checkLR(lr float64) error {
	if !(lr > 0) {
		return fmt.Errorf("%w: learning rate %v must be positive", optim.ErrInvalidConfig, lr)
	}
	return nil
}

func usage() {
	fmt.Println("neuro - feedforward neural network trained with backpropagation")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  xor        Train a 2-4-1 network on XOR")
	fmt.Println("  mnist      Train and test on MNIST digit images")
}
