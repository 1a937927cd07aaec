package mlp

import "math/rand"

// Layer is an ordered, fixed-size group of neurons sharing one input width.
type Layer struct {
	neurons    []*Neuron
	inputWidth int
}

// NewLayer creates a layer of width neurons, each taking inputWidth inputs.
func NewLayer(width, inputWidth int, rng *rand.Rand) *Layer {
	neurons := make([]*Neuron, width)
	for i := range neurons {
		neurons[i] = NewNeuron(inputWidth, rng)
	}
	return &Layer{neurons: neurons, inputWidth: inputWidth}
}

// NewLayerFromNeurons builds a layer from existing neurons.
//
// Returns ErrInvalidShape if the layer is empty and ErrDimensionMismatch
// if the neurons disagree on input width.
func NewLayerFromNeurons(neurons ...*Neuron) (*Layer, error) {
	if len(neurons) == 0 {
		return nil, ErrInvalidShape
	}
	width := neurons[0].InputWidth()
	for _, n := range neurons[1:] {
		if err := checkWidth("layer neuron weights", width, n.InputWidth()); err != nil {
			return nil, err
		}
	}
	return &Layer{neurons: neurons, inputWidth: width}, nil
}

// Width returns the number of neurons in the layer.
func (l *Layer) Width() int {
	return len(l.neurons)
}

// InputWidth returns the number of inputs every neuron in the layer takes.
func (l *Layer) InputWidth() int {
	return l.inputWidth
}

// Neuron returns the neuron at position i.
func (l *Layer) Neuron(i int) *Neuron {
	return l.neurons[i]
}

// forward activates every neuron against the same input vector and writes
// the activations into out, which must have length Width().
func (l *Layer) forward(inputs, out []float64) error {
	if err := checkWidth("layer input", l.inputWidth, len(inputs)); err != nil {
		return err
	}
	for i, n := range l.neurons {
		a, err := n.Activate(inputs)
		if err != nil {
			return err
		}
		if !finite(a) {
			return ErrNumericInstability
		}
		out[i] = a
	}
	return nil
}

func (l *Layer) clone() *Layer {
	neurons := make([]*Neuron, len(l.neurons))
	for i, n := range l.neurons {
		neurons[i] = n.clone()
	}
	return &Layer{neurons: neurons, inputWidth: l.inputWidth}
}
