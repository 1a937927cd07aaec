// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package mlp provides a multilayer perceptron classifier trained by online
// backpropagation with logistic-sigmoid activations.
//
// # Overview
//
// A Network maps a fixed-width real vector to one of a fixed, named set of
// classes. It has zero or more hidden layers of equal width and one output
// neuron per class. The class whose output neuron is most activated wins;
// ties go to the class listed first.
//
// # Basic Usage
//
//	net, err := mlp.New(2, 1, 4, []string{"0", "1"}, mlp.WithSeed(42))
//	if err != nil {
//	    return err
//	}
//
//	data := []mlp.Series{
//	    mlp.NewSeries([]float64{0, 0}, "0"),
//	    mlp.NewSeries([]float64{1, 0}, "1"),
//	    mlp.NewSeries([]float64{0, 1}, "1"),
//	    mlp.NewSeries([]float64{1, 1}, "0"),
//	}
//
//	cfg := mlp.DefaultTrainConfig()
//	cfg.MaxEpochs = 50000
//	report, err := net.Train(data, cfg)
//
//	class, err := net.Infer([]float64{1, 0}) // "1"
//
// # Training
//
// Train visits every example once per epoch, in order. For each example the
// forward pass records every activation, error signals are derived for all
// layers against the current weights, and only then are weights and biases
// updated. After each epoch the accuracy over the whole set is measured;
// training stops once it has stayed at or above TargetAccuracy for Patience
// consecutive epochs, or fails with ErrNotConverged when MaxEpochs runs out.
// Set MaxEpochs for data that may not be separable.
//
// # Input Scaling
//
// Every activation must stay strictly inside (0, 1). In float64 the
// sigmoid rounds to exactly 1 once its weighted sum passes about 36.7 (and
// to 0 below about -745), which Infer and Train report as
// ErrNumericInstability. Features in the hundreds can cross that on the
// first example, so scale inputs to a small range such as [0, 1] or
// [-1, 1] before training.
//
// # Telemetry
//
// Set TrainConfig.Observer to receive EpochStats every LogEvery epochs:
//
//	cfg.Observer = mlp.ObserverFunc(func(s mlp.EpochStats) {
//	    log.Printf("epoch %d accuracy %.2f", s.Epoch, s.Accuracy)
//	})
//
// # Concurrency
//
// Train and TrainStep must not run concurrently with anything else on the
// same Network. Infer, InferWithDetail and InferBatch only read weights and
// may run concurrently with each other.
package mlp
