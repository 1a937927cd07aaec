package mlp_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/mlp/mlp"
)

// TestPublicAPI exercises the facade end to end on the AND table.
func TestPublicAPI(t *testing.T) {
	net, err := mlp.New(2, 1, 4, []string{"0", "1"}, mlp.WithSeed(7))
	require.NoError(t, err)

	data := []mlp.Series{
		mlp.NewSeries([]float64{0, 0}, "0"),
		mlp.NewSeries([]float64{1, 0}, "0"),
		mlp.NewSeries([]float64{0, 1}, "0"),
		mlp.NewSeries([]float64{1, 1}, "1"),
	}

	observed := 0
	cfg := mlp.DefaultTrainConfig()
	cfg.MaxEpochs = 20000
	cfg.Observer = mlp.ObserverFunc(func(mlp.EpochStats) { observed++ })

	report, err := net.Train(data, cfg)
	require.NoError(t, err)
	assert.True(t, report.Converged)
	assert.Positive(t, observed)

	for _, s := range data {
		got, err := net.Infer(s.Inputs)
		require.NoError(t, err)
		assert.Equal(t, s.Label, got)
	}
}

func TestPublicErrors(t *testing.T) {
	_, err := mlp.New(2, 1, 4, []string{"0", "0"})
	assert.True(t, errors.Is(err, mlp.ErrDuplicateOutputName))

	_, err = mlp.New(2, 1, 0, []string{"0", "1"})
	assert.True(t, errors.Is(err, mlp.ErrInvalidShape))

	net, err := mlp.New(2, 1, 4, []string{"0", "1"})
	require.NoError(t, err)
	_, err = net.Infer([]float64{0, 0, 0})

	var dimErr *mlp.DimensionError
	require.ErrorAs(t, err, &dimErr)
	assert.Equal(t, 2, dimErr.Want)
}
