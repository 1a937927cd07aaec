package mlp

// Series is one labeled training example.
type Series struct {
	Inputs []float64
	Label  string
}

// NewSeries creates a Series, copying inputs.
//
// The label need not match any output class; an unmatched label is
// always scored as incorrect.
func NewSeries(inputs []float64, label string) Series {
	return Series{
		Inputs: append([]float64(nil), inputs...),
		Label:  label,
	}
}
