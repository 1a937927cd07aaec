package mlp

import "math"

// Sigmoid is the logistic function σ(z) = 1 / (1 + exp(-z)).
//
// For large |z| the result saturates to exactly 0 or 1 in float64;
// callers treat such values as a loss of precision, see finite.
func Sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}

// SigmoidDerivative returns dσ/dz expressed in terms of the activation a = σ(z).
func SigmoidDerivative(a float64) float64 {
	return a * (1.0 - a)
}

// finite reports whether an activation is usable: a real number strictly
// inside (0, 1).
func finite(a float64) bool {
	return !math.IsNaN(a) && !math.IsInf(a, 0) && a > 0 && a < 1
}
