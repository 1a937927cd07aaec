package mlp

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// Neuron is a single sigmoid unit: a bias and one weight per input.
//
// A Neuron holds no per-example state. Activations and error signals
// produced while training live in the step context that owns them, so
// nothing computed for one example can be observed by the next.
type Neuron struct {
	bias    float64
	weights []float64
}

// NewNeuron creates a neuron with the given number of inputs.
//
// Bias and weights are drawn independently from U[-0.5, 0.5).
func NewNeuron(inputs int, rng *rand.Rand) *Neuron {
	weights := make([]float64, inputs)
	for i := range weights {
		weights[i] = rng.Float64() - 0.5
	}
	return &Neuron{
		bias:    rng.Float64() - 0.5,
		weights: weights,
	}
}

// NewNeuronWithWeights creates a neuron from explicit parameters.
// The weights slice is copied.
func NewNeuronWithWeights(bias float64, weights []float64) *Neuron {
	return &Neuron{
		bias:    bias,
		weights: append([]float64(nil), weights...),
	}
}

// Bias returns the neuron bias.
func (n *Neuron) Bias() float64 {
	return n.bias
}

// Weights returns a copy of the input weights.
func (n *Neuron) Weights() []float64 {
	return append([]float64(nil), n.weights...)
}

// Weight returns the weight connecting input i.
func (n *Neuron) Weight(i int) float64 {
	return n.weights[i]
}

// InputWidth returns the number of inputs the neuron expects.
func (n *Neuron) InputWidth() int {
	return len(n.weights)
}

// Activate computes σ(Σ input_i*weight_i + bias).
//
// Returns ErrDimensionMismatch if len(inputs) differs from the neuron's
// input width. The result is not cached on the neuron.
func (n *Neuron) Activate(inputs []float64) (float64, error) {
	if err := checkWidth("neuron input", len(n.weights), len(inputs)); err != nil {
		return 0, err
	}
	return Sigmoid(floats.Dot(inputs, n.weights) + n.bias), nil
}

// Update applies one gradient-descent step for the given error signal:
//
//	bias     += lr * signal
//	weight_i += lr * signal * inputs_i
//
// A NaN signal means the signal was never computed for this example and
// yields ErrInvalidState; nothing is modified in that case.
func (n *Neuron) Update(inputs []float64, signal, learningRate float64) error {
	if math.IsNaN(signal) {
		return ErrInvalidState
	}
	if err := checkWidth("neuron update input", len(n.weights), len(inputs)); err != nil {
		return err
	}
	step := learningRate * signal
	n.bias += step
	floats.AddScaled(n.weights, step, inputs)
	return nil
}

func (n *Neuron) clone() *Neuron {
	return NewNeuronWithWeights(n.bias, n.weights)
}

// String implements fmt.Stringer.
func (n *Neuron) String() string {
	return fmt.Sprintf("Neuron(bias=%.4f, weights=%.4f)", n.bias, n.weights)
}
