// Package main provides the mlp command line tool.
//
// Usage:
//
//	mlp version
//	mlp train -data train.csv [-test test.csv] [-hidden 1] [-width 4] [-lr 0.5]
//	          [-target 1.0] [-patience 1] [-log-every 100] [-max-epochs 100000]
//	          [-seed 42] [-delimiter ,] [-header]
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/born-ml/mlp/dataset"
	"github.com/born-ml/mlp/mlp"
)

const version = "v0.1.0"

// Exit codes.
const (
	exitError        = 1
	exitNotConverged = 2
)

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		usage()
		os.Exit(exitError)
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("mlp %s\n", version)
	case "train":
		os.Exit(train(os.Args[2:]))
	default:
		usage()
		os.Exit(exitError)
	}
}

func usage() {
	fmt.Println("mlp - sigmoid multilayer perceptron classifier")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  train      Train on a delimited file (mlp train -h for flags)")
}

func train(args []string) int {
	fs := flag.NewFlagSet("train", flag.ExitOnError)
	dataPath := fs.String("data", "", "Training file: features then label on each line")
	testPath := fs.String("test", "", "Optional held-out file scored after training")
	hidden := fs.Int("hidden", 1, "Number of hidden layers")
	width := fs.Int("width", 4, "Neurons per hidden layer")
	lr := fs.Float64("lr", 0.5, "Learning rate")
	target := fs.Float64("target", 1.0, "Target training accuracy in [0, 1]")
	patience := fs.Int("patience", 1, "Consecutive epochs at target before stopping")
	logEvery := fs.Int("log-every", 100, "Report progress every N epochs")
	maxEpochs := fs.Int("max-epochs", 100000, "Epoch budget (0 = unbounded)")
	seed := fs.Int64("seed", -1, "Weight init seed (-1 = random)")
	delimiter := fs.String("delimiter", ",", "Field delimiter")
	header := fs.Bool("header", false, "Skip the first line of each file")
	_ = fs.Parse(args)

	if *dataPath == "" {
		log.Print("train: -data is required")
		fs.Usage()
		return exitError
	}
	delim, size := utf8.DecodeRuneInString(*delimiter)
	if size == 0 || size != len(*delimiter) {
		log.Printf("train: delimiter must be a single character, got %q", *delimiter)
		return exitError
	}
	opts := dataset.Options{Delimiter: delim, Header: *header}

	data, err := dataset.Load(*dataPath, opts)
	if err != nil {
		log.Printf("train: %v", err)
		return exitError
	}
	classes := dataset.Classes(data)

	var netOpts []mlp.Option
	if *seed >= 0 {
		netOpts = append(netOpts, mlp.WithSeed(*seed))
	}
	net, err := mlp.New(dataset.Width(data), *hidden, *width, classes, netOpts...)
	if err != nil {
		log.Printf("train: %v", err)
		return exitError
	}

	log.Printf("network %s: %d inputs, %d hidden x %d, classes [%s]",
		net.ID(), net.InputWidth(), *hidden, *width, strings.Join(classes, " "))
	log.Printf("training on %d examples (lr=%g, target=%g, patience=%d, max epochs=%d)",
		len(data), *lr, *target, *patience, *maxEpochs)

	cfg := mlp.TrainConfig{
		LearningRate:   *lr,
		TargetAccuracy: *target,
		LogEvery:       *logEvery,
		Patience:       *patience,
		MaxEpochs:      *maxEpochs,
		Observer: mlp.ObserverFunc(func(s mlp.EpochStats) {
			log.Printf("epoch %6d: accuracy=%.2f%% loss=%.5f", s.Epoch, s.Accuracy*100, s.Loss)
		}),
	}

	report, err := net.Train(data, cfg)
	code := 0
	switch {
	case errors.Is(err, mlp.ErrNotConverged):
		log.Printf("did not converge: %v", err)
		code = exitNotConverged
	case err != nil:
		log.Printf("train: %v", err)
		return exitError
	default:
		log.Printf("converged after %d epochs: accuracy=%.2f%%", report.Epochs, report.Accuracy*100)
	}

	if *testPath != "" {
		test, err := dataset.Load(*testPath, opts)
		if err != nil {
			log.Printf("test: %v", err)
			return exitError
		}
		acc, err := net.Accuracy(test)
		if err != nil {
			log.Printf("test: %v", err)
			return exitError
		}
		log.Printf("held-out accuracy on %d examples: %.2f%%", len(test), acc*100)
	}
	return code
}
