package mlp

import (
	"fmt"
)

// TrainConfig controls the convergence loop.
type TrainConfig struct {
	LearningRate   float64  // Step size, must be > 0 (default: 0.5)
	TargetAccuracy float64  // Stop once accuracy >= this, range [0, 1] (default: 1.0)
	LogEvery       int      // Report to Observer every N epochs, must be > 0 (default: 100)
	Patience       int      // Consecutive epochs at target before stopping, must be > 0 (default: 1)
	MaxEpochs      int      // Epoch budget, 0 = unbounded
	Observer       Observer // Optional epoch telemetry sink
}

// DefaultTrainConfig returns a config suitable for small logic-gate style
// problems.
func DefaultTrainConfig() TrainConfig {
	return TrainConfig{
		LearningRate:   0.5,
		TargetAccuracy: 1.0,
		LogEvery:       100,
		Patience:       1,
		MaxEpochs:      0,
	}
}

func (c *TrainConfig) validate() error {
	switch {
	case !(c.LearningRate > 0):
		return fmt.Errorf("%w: learning rate must be > 0, got %v", ErrInvalidConfig, c.LearningRate)
	case !(c.TargetAccuracy >= 0 && c.TargetAccuracy <= 1):
		return fmt.Errorf("%w: target accuracy must be in [0, 1], got %v", ErrInvalidConfig, c.TargetAccuracy)
	case c.LogEvery <= 0:
		return fmt.Errorf("%w: log interval must be positive, got %d", ErrInvalidConfig, c.LogEvery)
	case c.Patience <= 0:
		return fmt.Errorf("%w: patience must be positive, got %d", ErrInvalidConfig, c.Patience)
	case c.MaxEpochs < 0:
		return fmt.Errorf("%w: negative epoch budget %d", ErrInvalidConfig, c.MaxEpochs)
	}
	return nil
}

// TrainingReport summarizes a Train call.
type TrainingReport struct {
	Epochs    int     // Epochs completed
	Accuracy  float64 // Accuracy after the last completed epoch
	Loss      float64 // Mean squared error after the last completed epoch
	Converged bool    // Whether the accuracy target held for Patience epochs
}

// Train runs epochs of online backpropagation over data until the accuracy
// has been at or above cfg.TargetAccuracy for cfg.Patience consecutive
// epochs.
//
// Each epoch visits data once, in order. After each epoch the accuracy of
// the whole set is measured with the updated weights.
//
// Errors:
//   - ErrEmptyTrainingSet if data is empty
//   - ErrInvalidConfig for out-of-range config values
//   - ErrDimensionMismatch if any Series has the wrong width (checked up front)
//   - ErrNumericInstability if a step produces a non-finite value; the
//     weights of that step are left untouched
//   - ErrNotConverged if cfg.MaxEpochs is reached first
//
// The returned report is valid even when err is non-nil.
func (n *Network) Train(data []Series, cfg TrainConfig) (TrainingReport, error) {
	var report TrainingReport

	if len(data) == 0 {
		return report, ErrEmptyTrainingSet
	}
	if err := cfg.validate(); err != nil {
		return report, err
	}
	for i, s := range data {
		if err := checkWidth(fmt.Sprintf("series %d", i), n.inputWidth, len(s.Inputs)); err != nil {
			return report, err
		}
	}

	streak := 0
	for epoch := 1; ; epoch++ {
		for i, s := range data {
			if err := n.TrainStep(s, cfg.LearningRate); err != nil {
				return report, fmt.Errorf("epoch %d, series %d: %w", epoch, i, err)
			}
		}

		acc, loss, err := n.evaluate(data)
		if err != nil {
			return report, fmt.Errorf("epoch %d: %w", epoch, err)
		}
		if acc >= cfg.TargetAccuracy {
			streak++
		} else {
			streak = 0
		}
		report = TrainingReport{
			Epochs:    epoch,
			Accuracy:  acc,
			Loss:      loss,
			Converged: streak >= cfg.Patience,
		}

		exhausted := cfg.MaxEpochs > 0 && epoch >= cfg.MaxEpochs
		if cfg.Observer != nil && (epoch%cfg.LogEvery == 0 || report.Converged || exhausted) {
			cfg.Observer.ObserveEpoch(EpochStats{
				NetworkID: n.id,
				Epoch:     epoch,
				Accuracy:  acc,
				Loss:      loss,
				Streak:    streak,
			})
		}

		if report.Converged {
			return report, nil
		}
		if exhausted {
			return report, fmt.Errorf("%w: accuracy %.4f after %d epochs", ErrNotConverged, acc, epoch)
		}
	}
}

// Accuracy returns the fraction of data whose predicted class equals its
// label. Returns ErrEmptyTrainingSet if data is empty.
func (n *Network) Accuracy(data []Series) (float64, error) {
	acc, _, err := n.evaluate(data)
	return acc, err
}

// Loss returns the mean squared error of the output activations against
// one-hot targets over data.
func (n *Network) Loss(data []Series) (float64, error) {
	_, loss, err := n.evaluate(data)
	return loss, err
}

// evaluate computes accuracy and loss with a single forward pass per series.
func (n *Network) evaluate(data []Series) (float64, float64, error) {
	if len(data) == 0 {
		return 0, 0, ErrEmptyTrainingSet
	}
	var loss float64
	correct := 0
	for i, s := range data {
		class, out, err := n.InferWithDetail(s.Inputs)
		if err != nil {
			return 0, 0, fmt.Errorf("series %d: %w", i, err)
		}
		if class == s.Label {
			correct++
		}
		for o, a := range out {
			d := n.target(o, s.Label) - a
			loss += d * d
		}
	}
	outputs := float64(n.OutputLayer().Width())
	return float64(correct) / float64(len(data)), loss / (float64(len(data)) * outputs), nil
}
