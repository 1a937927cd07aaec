package mlp

import (
	"fmt"

	"github.com/born-ml/mlp/internal/parallel"
)

// InferBatch classifies independent inputs in parallel.
//
// Inference only reads weights, so the batch may be spread across
// goroutines. It must not overlap with Train or TrainStep on the same
// network. The error for the lowest failing index is returned.
func (n *Network) InferBatch(inputs [][]float64) ([]string, error) {
	return n.InferBatchWithConfig(inputs, parallel.DefaultConfig())
}

// InferBatchWithConfig is InferBatch with explicit parallelism settings.
func (n *Network) InferBatchWithConfig(inputs [][]float64, cfg parallel.Config) ([]string, error) {
	classes := make([]string, len(inputs))
	err := parallel.ForErr(len(inputs), func(i int) error {
		class, err := n.Infer(inputs[i])
		if err != nil {
			return fmt.Errorf("input %d: %w", i, err)
		}
		classes[i] = class
		return nil
	}, cfg)
	if err != nil {
		return nil, err
	}
	return classes, nil
}
