package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/born-ml/neuro/internal/eval"
	"github.com/born-ml/neuro/internal/mnist"
	"github.com/born-ml/neuro/internal/nn"
	"github.com/born-ml/neuro/internal/optim"
	"github.com/born-ml/neuro/internal/parallel"
	"github.com/born-ml/neuro/internal/train"
)

func runMNIST(args []string) error {
	fs := flag.NewFlagSet("mnist", flag.ContinueOnError)
	dataDir := fs.String("data", "./data", "Directory containing MNIST IDX files")
	csvFile := fs.String("csv", "", "Kaggle-style CSV file used instead of the IDX files")
	trainSize := fs.Int("train", 5000, "Training samples to load (0 = all)")
	testSize := fs.Int("test", 10000, "Test samples to load (0 = all)")
	hidden := fs.Int("hidden", 300, "Hidden layer size")
	epochs := fs.Int("epochs", 1, "Passes over the training set")
	seed := fs.Uint64("seed", nn.DefaultSeed, "Weight initialization seed")
	lr := fs.Float64("lr", optim.DefaultLR, lrUsage)
	momentum := fs.Float64("momentum", optim.DefaultMomentum, "Momentum (ALPHA)")
	show := fs.Int("show", -1, "Print training image N as text before training")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := checkLR(*lr); err != nil {
		return err
	}

	trainData, testData, err := loadMNIST(*dataDir, *csvFile, *trainSize, *testSize)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Println("MNIST data files not found. Download from http://yann.lecun.com/exdb/mnist/")
			fmt.Printf("and extract %s, %s, %s, %s into %s\n",
				mnist.TrainImagesFile, mnist.TrainLabelsFile, mnist.TestImagesFile, mnist.TestLabelsFile, *dataDir)
		}
		return err
	}
	log.Printf("Loaded %d training and %d test images", trainData.Len(), testData.Len())

	if *show >= 0 && *show < trainData.Len() {
		fmt.Println(trainData.Render(*show))
	}

	pcfg := parallel.DefaultConfig()
	trainSet := examples(trainData.Samples(pcfg))
	testSet := examples(testData.Samples(pcfg))

	net, err := nn.New([]int{mnist.Pixels, *hidden, mnist.Classes}, nn.Config{
		Optimizer: optim.SGDConfig{LR: *lr, Momentum: *momentum},
		Rand:      nn.NewRand(*seed),
	})
	if err != nil {
		return err
	}

	trainer := train.New(net, train.Config{
		Epochs:      *epochs,
		ReportEvery: 1000,
		OnProgress: func(p train.Progress) {
			log.Printf("Epoch %d: finished iteration %d, recent error %.4f", p.Epoch+1, p.Step, p.RecentError)
		},
	})

	if _, err := trainer.Fit(trainSet); err != nil {
		return err
	}
	log.Println("Done training, testing number recognition")

	report, err := eval.Evaluate(net, testSet)
	if err != nil {
		return err
	}

	fmt.Printf("Testing score: %s\n", report)
	fmt.Println("Confusion matrix (rows: actual, columns: predicted):")
	for r := 0; r < mnist.Classes; r++ {
		fmt.Printf("  %d:", r)
		for c := 0; c < mnist.Classes; c++ {
			fmt.Printf(" %5.0f", report.Confusion.At(r, c))
		}
		fmt.Println()
	}

	return nil
}

func loadMNIST(dataDir, csvFile string, trainSize, testSize int) (*mnist.Dataset, *mnist.Dataset, error) {
	if csvFile != "" {
		limit := 0
		if trainSize > 0 && testSize > 0 {
			limit = trainSize + testSize
		}
		all, err := mnist.LoadCSVFile(csvFile, limit)
		if err != nil {
			return nil, nil, err
		}
		trainData, testData := splitCSV(all, trainSize, testSize)
		return trainData, testData, nil
	}

	trainData, err := mnist.Load(dataDir, true, trainSize)
	if err != nil {
		return nil, nil, err
	}
	testData, err := mnist.Load(dataDir, false, testSize)
	if err != nil {
		return nil, nil, err
	}
	return trainData, testData, nil
}

// splitCSV divides a single CSV dataset into training and test parts.
// A positive trainSize takes that many leading rows for training, a positive
// testSize that many trailing rows for testing. With neither set the rows
// split 80/20.
func splitCSV(all *mnist.Dataset, trainSize, testSize int) (*mnist.Dataset, *mnist.Dataset) {
	switch {
	case trainSize > 0:
		return all.SplitAt(trainSize)
	case testSize > 0:
		return all.SplitAt(all.Len() - testSize)
	default:
		return all.Split(0.2)
	}
}

func examples(samples []mnist.Sample) []train.Example {
	out := make([]train.Example, len(samples))
	for i, s := range samples {
		out[i] = train.Example{Inputs: s.Inputs, Targets: s.Targets}
	}
	return out
}
