package mlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
)

// knownNetwork is a 2-2-2 network with fixed parameters.
func knownNetwork(t *testing.T) *Network {
	t.Helper()
	hidden, err := NewLayerFromNeurons(
		NewNeuronWithWeights(0.1, []float64{0.2, -0.3}),
		NewNeuronWithWeights(-0.2, []float64{0.4, 0.1}),
	)
	require.NoError(t, err)
	out, err := NewLayerFromNeurons(
		NewNeuronWithWeights(0.05, []float64{0.3, -0.5}),
		NewNeuronWithWeights(-0.1, []float64{-0.2, 0.6}),
	)
	require.NoError(t, err)
	net, err := NewFromLayers(2, []string{"a", "b"}, hidden, out)
	require.NoError(t, err)
	return net
}

// TestBackprop_UsesPreUpdateWeights re-derives every error signal by hand
// from the starting weights and checks both the signals and the resulting
// update.
func TestBackprop_UsesPreUpdateWeights(t *testing.T) {
	net := knownNetwork(t)
	x := []float64{1, 0.5}
	series := NewSeries(x, "b")

	// Forward pass by hand.
	h0 := Sigmoid(0.2*x[0] - 0.3*x[1] + 0.1)
	h1 := Sigmoid(0.4*x[0] + 0.1*x[1] - 0.2)
	o0 := Sigmoid(0.3*h0 - 0.5*h1 + 0.05)
	o1 := Sigmoid(-0.2*h0 + 0.6*h1 - 0.1)

	// Output signals: target is "b".
	d0 := (0 - o0) * o0 * (1 - o0)
	d1 := (1 - o1) * o1 * (1 - o1)

	// Hidden signals against the starting output weights.
	e0 := (d0*0.3 + d1*-0.2) * h0 * (1 - h0)
	e1 := (d0*-0.5 + d1*0.6) * h1 * (1 - h1)

	grads, err := net.Backprop(series)
	require.NoError(t, err)
	require.Len(t, grads.Signals, 2)
	assert.InDeltaSlice(t, []float64{h0, h1}, grads.Activations[0], 1e-12)
	assert.InDeltaSlice(t, []float64{o0, o1}, grads.Activations[1], 1e-12)
	assert.InDeltaSlice(t, []float64{e0, e1}, grads.Signals[0], 1e-12)
	assert.InDeltaSlice(t, []float64{d0, d1}, grads.Signals[1], 1e-12)

	// Backprop alone does not touch weights.
	assert.Equal(t, snapshot(knownNetwork(t)), snapshot(net))

	const lr = 0.5
	require.NoError(t, net.TrainStep(series, lr))

	want := [][]float64{
		{0.1 + lr*e0, 0.2 + lr*e0*x[0], -0.3 + lr*e0*x[1]},
		{-0.2 + lr*e1, 0.4 + lr*e1*x[0], 0.1 + lr*e1*x[1]},
		{0.05 + lr*d0, 0.3 + lr*d0*h0, -0.5 + lr*d0*h1},
		{-0.1 + lr*d1, -0.2 + lr*d1*h0, 0.6 + lr*d1*h1},
	}
	got := snapshot(net)
	require.Len(t, got, len(want))
	for i := range want {
		assert.InDeltaSlice(t, want[i], got[i], 1e-12, "neuron %d", i)
	}

	// Propagating against already-updated output weights gives a different
	// hidden signal; make sure that is not what happened.
	wrongE0 := (d0*(0.3+lr*d0*h0) + d1*(-0.2+lr*d1*h0)) * h0 * (1 - h0)
	assert.NotEqual(t, wrongE0, e0)
	assert.InDelta(t, 0.2+lr*e0*x[0], got[0][1], 1e-12)
}

// TestBackprop_MatchesNumericalGradient checks every error signal against a
// central finite difference of the squared-error loss. For
// E = ½ Σ (t - a)², dE/dbias_j = -signal_j and dE/dw_ji = -signal_j * in_i.
func TestBackprop_MatchesNumericalGradient(t *testing.T) {
	net, err := New(3, 2, 4, []string{"x", "y", "z"}, WithSeed(42))
	require.NoError(t, err)
	series := NewSeries([]float64{0.7, -0.4, 1.3}, "y")

	grads, err := net.Backprop(series)
	require.NoError(t, err)

	loss := func() float64 {
		_, out, err := net.InferWithDetail(series.Inputs)
		require.NoError(t, err)
		var e float64
		for o, a := range out {
			d := net.target(o, series.Label) - a
			e += 0.5 * d * d
		}
		return e
	}
	settings := &fd.Settings{Formula: fd.Central, Step: 1e-6}

	for l, layer := range net.layers {
		inputs := series.Inputs
		if l > 0 {
			inputs = grads.Activations[l-1]
		}
		for j, n := range layer.neurons {
			bias := n.bias
			dBias := fd.Derivative(func(b float64) float64 {
				n.bias = b
				defer func() { n.bias = bias }()
				return loss()
			}, bias, settings)
			assert.InDelta(t, -grads.Signals[l][j], dBias, 1e-7, "bias layer %d neuron %d", l, j)

			for i := range n.weights {
				w := n.weights[i]
				dW := fd.Derivative(func(v float64) float64 {
					n.weights[i] = v
					defer func() { n.weights[i] = w }()
					return loss()
				}, w, settings)
				assert.InDelta(t, -grads.Signals[l][j]*inputs[i], dW, 1e-7, "weight layer %d neuron %d input %d", l, j, i)
			}
		}
	}
}

func TestBackprop_UnmatchedLabel(t *testing.T) {
	net := knownNetwork(t)

	grads, err := net.Backprop(NewSeries([]float64{1, 0.5}, "nobody"))
	require.NoError(t, err)

	// Every target is 0, so every output signal pushes down.
	for _, s := range grads.Signals[1] {
		assert.Less(t, s, 0.0)
	}
}

func TestBackprop_NoHiddenLayers(t *testing.T) {
	out, err := NewLayerFromNeurons(
		NewNeuronWithWeights(0.1, []float64{0.5, -0.5}),
		NewNeuronWithWeights(-0.1, []float64{-0.5, 0.5}),
	)
	require.NoError(t, err)
	net, err := NewFromLayers(2, []string{"0", "1"}, out)
	require.NoError(t, err)

	x := []float64{1, 0}
	require.NoError(t, net.TrainStep(NewSeries(x, "1"), 1.0))

	a1 := Sigmoid(-0.5 - 0.1)
	d1 := (1 - a1) * a1 * (1 - a1)
	assert.InDelta(t, -0.1+d1, net.OutputLayer().Neuron(1).Bias(), 1e-12)
	assert.InDelta(t, -0.5+d1*x[0], net.OutputLayer().Neuron(1).Weight(0), 1e-12)
	assert.InDelta(t, 0.5, net.OutputLayer().Neuron(1).Weight(1), 1e-12)
}

func TestTrainStep_FailureLeavesWeights(t *testing.T) {
	hidden, err := NewLayerFromNeurons(
		NewNeuronWithWeights(0, []float64{1000}),
	)
	require.NoError(t, err)
	out, err := NewLayerFromNeurons(
		NewNeuronWithWeights(0, []float64{0.3}),
		NewNeuronWithWeights(0, []float64{-0.3}),
	)
	require.NoError(t, err)
	net, err := NewFromLayers(1, []string{"a", "b"}, hidden, out)
	require.NoError(t, err)
	before := snapshot(net)

	err = net.TrainStep(NewSeries([]float64{1}, "a"), 0.5)
	assert.ErrorIs(t, err, ErrNumericInstability)
	assert.Equal(t, before, snapshot(net))

	err = net.TrainStep(NewSeries([]float64{1, 2}, "a"), 0.5)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
	assert.Equal(t, before, snapshot(net))
}

func TestApply_WithoutSignals(t *testing.T) {
	net := knownNetwork(t)
	before := snapshot(net)

	tr, err := net.forward([]float64{1, 0.5})
	require.NoError(t, err)

	err = net.apply(newStepContext(tr), 0.5)
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.Equal(t, before, snapshot(net))
}
