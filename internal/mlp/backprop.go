package mlp

import (
	"fmt"
	"math"
)

// stepContext is the per-example training state: the forward trace and one
// error signal per neuron, indexed [layer][position]. It is created at the
// start of a training step and discarded at its end.
type stepContext struct {
	trace   *trace
	signals [][]float64
}

func newStepContext(t *trace) *stepContext {
	signals := make([][]float64, len(t.activations))
	for i, a := range t.activations {
		s := make([]float64, len(a))
		for j := range s {
			s[j] = math.NaN()
		}
		signals[i] = s
	}
	return &stepContext{trace: t, signals: signals}
}

// Gradients exposes the per-example quantities computed by backpropagation.
//
// Both slices are indexed [layer][position], hidden layers first and the
// output layer last.
type Gradients struct {
	Activations [][]float64
	Signals     [][]float64
}

// target returns 1 for the output neuron bound to label and 0 otherwise.
func (n *Network) target(o int, label string) float64 {
	if n.classes[o] == label {
		return 1.0
	}
	return 0.0
}

// backward fills every error signal in ctx. It reads weights only, so every
// signal is derived from the weights as they were before the step.
func (n *Network) backward(ctx *stepContext, label string) error {
	last := len(n.layers) - 1

	// Output layer: delta rule on the logistic derivative.
	for o, a := range ctx.trace.activations[last] {
		ctx.signals[last][o] = (n.target(o, label) - a) * SigmoidDerivative(a)
	}

	// Hidden layers, top to bottom.
	for l := last - 1; l >= 0; l-- {
		above := n.layers[l+1]
		aboveSignals := ctx.signals[l+1]
		for i, a := range ctx.trace.activations[l] {
			var sum float64
			for j, s := range aboveSignals {
				sum += s * above.neurons[j].weights[i]
			}
			ctx.signals[l][i] = sum * SigmoidDerivative(a)
		}
	}

	for l, signals := range ctx.signals {
		for i, s := range signals {
			if math.IsNaN(s) || math.IsInf(s, 0) {
				return fmt.Errorf("%w: error signal for layer %d neuron %d is %v", ErrNumericInstability, l, i, s)
			}
		}
	}
	return nil
}

// apply updates every neuron of every layer with its error signal. Layer i
// is updated against the activations of layer i-1, or the raw input for
// the first layer.
func (n *Network) apply(ctx *stepContext, learningRate float64) error {
	for l, layer := range n.layers {
		inputs := ctx.trace.inputsOf(l)
		for i, neuron := range layer.neurons {
			if err := neuron.Update(inputs, ctx.signals[l][i], learningRate); err != nil {
				return fmt.Errorf("layer %d neuron %d: %w", l, i, err)
			}
		}
	}
	return nil
}

// Backprop runs the forward and backward passes for one example and
// returns the activations and error signals without updating any weight.
func (n *Network) Backprop(s Series) (*Gradients, error) {
	ctx, err := n.prepareStep(s)
	if err != nil {
		return nil, err
	}
	return &Gradients{
		Activations: ctx.trace.activations,
		Signals:     ctx.signals,
	}, nil
}

func (n *Network) prepareStep(s Series) (*stepContext, error) {
	t, err := n.forward(s.Inputs)
	if err != nil {
		return nil, err
	}
	ctx := newStepContext(t)
	if err := n.backward(ctx, s.Label); err != nil {
		return nil, err
	}
	return ctx, nil
}

// TrainStep performs one online training step on a single example:
// forward pass, error signals for every layer, then the weight update.
//
// If the forward or backward pass fails no weight is modified.
func (n *Network) TrainStep(s Series, learningRate float64) error {
	ctx, err := n.prepareStep(s)
	if err != nil {
		return err
	}
	return n.apply(ctx, learningRate)
}
