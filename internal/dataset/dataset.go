// Package dataset reads labeled examples from delimited text files.
//
// Each record is a row of numeric features followed by a class label:
//
//	x1,x2,...,xN,label
//	0,0,0
//	1,1,1
//
// Blank lines and lines starting with '#' are ignored. Every record must
// carry the same number of features.
package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/born-ml/mlp/internal/mlp"
)

// Common errors.
var (
	ErrNoRecords         = errors.New("no records")
	ErrInconsistentWidth = errors.New("inconsistent record width")
	ErrMissingLabel      = errors.New("missing label")
	ErrTooFewFields      = errors.New("record needs at least one feature and a label")
)

// Options controls how records are parsed.
type Options struct {
	Delimiter rune // Field separator (default: ',')
	Header    bool // Skip the first record
}

// DefaultOptions returns comma-separated, headerless parsing.
func DefaultOptions() Options {
	return Options{Delimiter: ','}
}

// Load reads every record of the file at path.
func Load(path string, opts Options) ([]mlp.Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open dataset")
	}
	defer f.Close()

	data, err := Read(f, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return data, nil
}

// Read parses records from r.
//
// Returns ErrNoRecords if r holds no data rows, ErrInconsistentWidth if a
// row's feature count differs from the first row, and a wrapped
// strconv error for a non-numeric feature. Errors carry the line number.
func Read(r io.Reader, opts Options) ([]mlp.Series, error) {
	if opts.Delimiter == 0 {
		opts.Delimiter = ','
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var (
		data  []mlp.Series
		width = -1
	)
	for first := true; ; first = false {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "parse record")
		}
		line, _ := reader.FieldPos(0)
		if first && opts.Header {
			continue
		}

		if len(record) < 2 {
			return nil, errors.Wrapf(ErrTooFewFields, "line %d", line)
		}
		features := record[:len(record)-1]
		if width < 0 {
			width = len(features)
		} else if len(features) != width {
			return nil, errors.Wrapf(ErrInconsistentWidth, "line %d: want %d features, got %d", line, width, len(features))
		}

		label := strings.TrimSpace(record[len(record)-1])
		if label == "" {
			return nil, errors.Wrapf(ErrMissingLabel, "line %d", line)
		}

		inputs := make([]float64, len(features))
		for i, field := range features {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d, field %d", line, i+1)
			}
			inputs[i] = v
		}
		data = append(data, mlp.Series{Inputs: inputs, Label: label})
	}

	if len(data) == 0 {
		return nil, ErrNoRecords
	}
	return data, nil
}

// Classes returns the distinct labels of data in first-seen order.
func Classes(data []mlp.Series) []string {
	seen := make(map[string]struct{})
	var classes []string
	for _, s := range data {
		if _, ok := seen[s.Label]; ok {
			continue
		}
		seen[s.Label] = struct{}{}
		classes = append(classes, s.Label)
	}
	return classes
}

// Width returns the feature count shared by data, or 0 if data is empty.
func Width(data []mlp.Series) int {
	if len(data) == 0 {
		return 0
	}
	return len(data[0].Inputs)
}
