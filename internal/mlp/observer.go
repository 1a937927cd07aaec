package mlp

// EpochStats is one training progress observation.
type EpochStats struct {
	NetworkID string
	Epoch     int     // 1-based epoch index
	Accuracy  float64 // Fraction of examples classified correctly, in [0, 1]
	Loss      float64 // Mean squared error against one-hot targets
	Streak    int     // Consecutive epochs with Accuracy >= target
}

// Observer receives epoch observations during Train.
type Observer interface {
	ObserveEpoch(stats EpochStats)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(stats EpochStats)

// ObserveEpoch calls f(stats).
func (f ObserverFunc) ObserveEpoch(stats EpochStats) {
	f(stats)
}
