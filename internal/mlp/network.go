// Package mlp implements a feed-forward multilayer perceptron classifier
// trained by online backpropagation with logistic-sigmoid activations.
//
// A Network maps a fixed-width real-valued input vector to one of a fixed,
// named set of classes. Each output neuron votes for one class; the class
// of the most activated output neuron wins.
//
// Training is per example (online): every Series is pushed forward, all
// error signals are derived against the weights as they stood before the
// step, and only then is every weight and bias updated.
package mlp

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Network is a fully-connected sigmoid MLP classifier.
//
// Layers are stored in one index-addressable slice: layers[0..n-2] are the
// hidden layers in order and layers[n-1] is the output layer. The class
// names live in a separate slice aligned with the output layer, so hidden
// neurons carry no identity.
//
// A Network is not safe for concurrent use while training. Concurrent
// inference against a Network that is not being trained is safe.
type Network struct {
	id         string
	inputWidth int
	layers     []*Layer
	classes    []string
}

type options struct {
	rng *rand.Rand
}

// Option configures Network construction.
type Option func(*options)

// WithSeed makes weight initialization reproducible.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewSource(seed)) //nolint:gosec // Deterministic seed for reproducibility
	}
}

// WithRand draws initial weights from rng.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// New creates a Network.
//
// Parameters:
//   - inputWidth: Number of values in each input vector
//   - hiddenLayerCount: Number of hidden layers (may be 0)
//   - hiddenLayerWidth: Neurons per hidden layer
//   - classes: Output class names, one output neuron each, in order
//
// Every weight and bias is drawn independently from U[-0.5, 0.5).
//
// Returns ErrDuplicateOutputName if classes repeats a name, and
// ErrInvalidShape if hiddenLayerCount > 0 && hiddenLayerWidth == 0, if
// inputWidth is 0, or if classes is empty. Shape checks run before any
// random value is drawn.
func New(inputWidth, hiddenLayerCount, hiddenLayerWidth int, classes []string, opts ...Option) (*Network, error) {
	if err := validateShape(inputWidth, hiddenLayerCount, hiddenLayerWidth, classes); err != nil {
		return nil, err
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // Weight init is not security-critical
	}

	layers := make([]*Layer, 0, hiddenLayerCount+1)
	width := inputWidth
	for i := 0; i < hiddenLayerCount; i++ {
		layers = append(layers, NewLayer(hiddenLayerWidth, width, o.rng))
		width = hiddenLayerWidth
	}
	layers = append(layers, NewLayer(len(classes), width, o.rng))

	return &Network{
		id:         uuid.NewString(),
		inputWidth: inputWidth,
		layers:     layers,
		classes:    append([]string(nil), classes...),
	}, nil
}

// NewFromLayers assembles a Network from prebuilt layers, the last of which
// is the output layer. Used to load known weights.
//
// Layer i+1's input width must equal layer i's width, and the first
// layer's input width must equal inputWidth. Returns ErrInvalidShape if
// inputWidth is not positive or a layer has no neurons. The layers slice
// is copied.
func NewFromLayers(inputWidth int, classes []string, layers ...*Layer) (*Network, error) {
	if inputWidth <= 0 {
		return nil, fmt.Errorf("%w: input width must be positive, got %d", ErrInvalidShape, inputWidth)
	}
	if len(layers) == 0 {
		return nil, fmt.Errorf("%w: no output layer", ErrInvalidShape)
	}
	if err := validateClasses(classes); err != nil {
		return nil, err
	}
	width := inputWidth
	for i, l := range layers {
		if l.Width() == 0 {
			return nil, fmt.Errorf("%w: layer %d has no neurons", ErrInvalidShape, i)
		}
		if err := checkWidth(fmt.Sprintf("layer %d input", i), width, l.InputWidth()); err != nil {
			return nil, err
		}
		width = l.Width()
	}
	if err := checkWidth("output layer width vs classes", len(classes), width); err != nil {
		return nil, err
	}
	return &Network{
		id:         uuid.NewString(),
		inputWidth: inputWidth,
		layers:     append([]*Layer(nil), layers...),
		classes:    append([]string(nil), classes...),
	}, nil
}

func validateShape(inputWidth, hiddenLayerCount, hiddenLayerWidth int, classes []string) error {
	switch {
	case inputWidth <= 0:
		return fmt.Errorf("%w: input width must be positive, got %d", ErrInvalidShape, inputWidth)
	case hiddenLayerCount < 0:
		return fmt.Errorf("%w: negative hidden layer count %d", ErrInvalidShape, hiddenLayerCount)
	case hiddenLayerCount > 0 && hiddenLayerWidth <= 0:
		return fmt.Errorf("%w: %d hidden layers of width %d", ErrInvalidShape, hiddenLayerCount, hiddenLayerWidth)
	}
	return validateClasses(classes)
}

func validateClasses(classes []string) error {
	if len(classes) == 0 {
		return fmt.Errorf("%w: no output classes", ErrInvalidShape)
	}
	seen := make(map[string]struct{}, len(classes))
	for _, name := range classes {
		if name == "" {
			return fmt.Errorf("%w: empty output class name", ErrInvalidShape)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateOutputName, name)
		}
		seen[name] = struct{}{}
	}
	return nil
}

// ID returns a unique identifier for this network, used to tag telemetry.
func (n *Network) ID() string {
	return n.id
}

// InputWidth returns the expected input vector length.
func (n *Network) InputWidth() int {
	return n.inputWidth
}

// Classes returns the output class names in output-layer order.
func (n *Network) Classes() []string {
	return append([]string(nil), n.classes...)
}

// HiddenLayers returns the hidden layers in forward order. The returned
// slice is a copy; appending to it does not affect the network.
func (n *Network) HiddenLayers() []*Layer {
	return append([]*Layer(nil), n.layers[:len(n.layers)-1]...)
}

// OutputLayer returns the output layer.
func (n *Network) OutputLayer() *Layer {
	return n.layers[len(n.layers)-1]
}

// Clone returns a deep copy of the network with a fresh ID.
func (n *Network) Clone() *Network {
	layers := make([]*Layer, len(n.layers))
	for i, l := range n.layers {
		layers[i] = l.clone()
	}
	return &Network{
		id:         uuid.NewString(),
		inputWidth: n.inputWidth,
		layers:     layers,
		classes:    append([]string(nil), n.classes...),
	}
}
