package mlp

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrDimensionMismatch   = errors.New("dimension mismatch")
	ErrDuplicateOutputName = errors.New("duplicate output name")
	ErrInvalidShape        = errors.New("invalid network shape")
	ErrNumericInstability  = errors.New("non-finite activation")
	ErrEmptyTrainingSet    = errors.New("empty training set")
	ErrInvalidState        = errors.New("error signal not computed")
	ErrInvalidConfig       = errors.New("invalid training config")
	ErrNotConverged        = errors.New("target accuracy not reached within epoch budget")
)

// DimensionError reports which vector had the wrong width.
type DimensionError struct {
	Where string // What was being checked (e.g., "infer input", "series 3")
	Want  int
	Got   int
}

// Error implements the error interface.
func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: %s: want %d values, got %d", ErrDimensionMismatch, e.Where, e.Want, e.Got)
}

// Unwrap lets errors.Is match ErrDimensionMismatch.
func (e *DimensionError) Unwrap() error {
	return ErrDimensionMismatch
}

func checkWidth(where string, want, got int) error {
	if want != got {
		return &DimensionError{Where: where, Want: want, Got: got}
	}
	return nil
}
