package mlp

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// trace holds the activation vector of every layer for one input.
//
// activations[i] is the output of layers[i]; the raw input is kept
// separately so the layer below layer 0 can be addressed uniformly via
// inputsOf.
type trace struct {
	input       []float64
	activations [][]float64
}

// inputsOf returns the vector layer i was activated against.
func (t *trace) inputsOf(i int) []float64 {
	if i == 0 {
		return t.input
	}
	return t.activations[i-1]
}

// output returns the output-layer activations.
func (t *trace) output() []float64 {
	return t.activations[len(t.activations)-1]
}

// forward runs the input through every layer and records all activations.
// It reads weights only.
func (n *Network) forward(inputs []float64) (*trace, error) {
	if err := checkWidth("network input", n.inputWidth, len(inputs)); err != nil {
		return nil, err
	}
	t := &trace{
		input:       inputs,
		activations: make([][]float64, len(n.layers)),
	}
	for i, l := range n.layers {
		out := make([]float64, l.Width())
		if err := l.forward(t.inputsOf(i), out); err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		t.activations[i] = out
	}
	return t, nil
}

// predict returns the class of the most activated output neuron. Ties go
// to the lowest index.
func (n *Network) predict(outputs []float64) string {
	return n.classes[floats.MaxIdx(outputs)]
}

// Infer returns the predicted class name for inputs.
//
// Returns ErrDimensionMismatch if len(inputs) != InputWidth(), and
// ErrNumericInstability if any activation is not strictly inside (0, 1).
// Infer never modifies the network.
func (n *Network) Infer(inputs []float64) (string, error) {
	class, _, err := n.InferWithDetail(inputs)
	return class, err
}

// InferWithDetail returns the predicted class and the full output-layer
// activation vector, aligned with Classes().
func (n *Network) InferWithDetail(inputs []float64) (string, []float64, error) {
	t, err := n.forward(inputs)
	if err != nil {
		return "", nil, err
	}
	out := t.output()
	return n.predict(out), out, nil
}
