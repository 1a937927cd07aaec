// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package mlp

import (
	"math/rand"

	"github.com/born-ml/mlp/internal/mlp"
)

// Network is a fully-connected sigmoid MLP classifier.
type Network = mlp.Network

// Layer is an ordered group of neurons sharing one input width.
type Layer = mlp.Layer

// Neuron is a single sigmoid unit.
type Neuron = mlp.Neuron

// Series is one labeled training example.
type Series = mlp.Series

// Gradients holds the activations and error signals of one example.
type Gradients = mlp.Gradients

// Option configures Network construction.
type Option = mlp.Option

// New creates a Network with uniformly random weights in [-0.5, 0.5).
//
// Example:
//
//	net, err := mlp.New(4, 1, 8, []string{"setosa", "versicolor", "virginica"})
func New(inputWidth, hiddenLayerCount, hiddenLayerWidth int, classes []string, opts ...Option) (*Network, error) {
	return mlp.New(inputWidth, hiddenLayerCount, hiddenLayerWidth, classes, opts...)
}

// NewFromLayers assembles a Network from prebuilt layers; the last layer is
// the output layer.
func NewFromLayers(inputWidth int, classes []string, layers ...*Layer) (*Network, error) {
	return mlp.NewFromLayers(inputWidth, classes, layers...)
}

// NewLayerFromNeurons builds a layer from existing neurons.
func NewLayerFromNeurons(neurons ...*Neuron) (*Layer, error) {
	return mlp.NewLayerFromNeurons(neurons...)
}

// NewNeuronWithWeights creates a neuron from explicit parameters.
func NewNeuronWithWeights(bias float64, weights []float64) *Neuron {
	return mlp.NewNeuronWithWeights(bias, weights)
}

// NewSeries creates a labeled example, copying inputs.
func NewSeries(inputs []float64, label string) Series {
	return mlp.NewSeries(inputs, label)
}

// WithSeed makes weight initialization reproducible.
func WithSeed(seed int64) Option {
	return mlp.WithSeed(seed)
}

// WithRand draws initial weights from rng.
func WithRand(rng *rand.Rand) Option {
	return mlp.WithRand(rng)
}

// Training

// TrainConfig controls the convergence loop.
type TrainConfig = mlp.TrainConfig

// TrainingReport summarizes a Train call.
type TrainingReport = mlp.TrainingReport

// DefaultTrainConfig returns learning rate 0.5, target accuracy 1.0,
// a report every 100 epochs, patience 1 and no epoch bound.
func DefaultTrainConfig() TrainConfig {
	return mlp.DefaultTrainConfig()
}

// Telemetry

// EpochStats is one training progress observation.
type EpochStats = mlp.EpochStats

// Observer receives epoch observations during Train.
type Observer = mlp.Observer

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc = mlp.ObserverFunc

// Activation

// Sigmoid is the logistic function.
func Sigmoid(z float64) float64 {
	return mlp.Sigmoid(z)
}

// Errors

// Errors returned by the package. Match them with errors.Is.
var (
	ErrDimensionMismatch   = mlp.ErrDimensionMismatch
	ErrDuplicateOutputName = mlp.ErrDuplicateOutputName
	ErrInvalidShape        = mlp.ErrInvalidShape
	ErrNumericInstability  = mlp.ErrNumericInstability
	ErrEmptyTrainingSet    = mlp.ErrEmptyTrainingSet
	ErrInvalidState        = mlp.ErrInvalidState
	ErrInvalidConfig       = mlp.ErrInvalidConfig
	ErrNotConverged        = mlp.ErrNotConverged
)

// DimensionError reports which vector had the wrong width.
type DimensionError = mlp.DimensionError
