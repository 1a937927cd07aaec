// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dataset reads labeled examples for mlp from delimited text files.
//
// Records are numeric features followed by the class label:
//
//	0,0,0
//	1,0,0
//	0,1,0
//	1,1,1
package dataset

import (
	"io"

	"github.com/born-ml/mlp/internal/dataset"
	"github.com/born-ml/mlp/mlp"
)

// Options controls how records are parsed.
type Options = dataset.Options

// DefaultOptions returns comma-separated, headerless parsing.
func DefaultOptions() Options {
	return dataset.DefaultOptions()
}

// Load reads every record of the file at path.
func Load(path string, opts Options) ([]mlp.Series, error) {
	return dataset.Load(path, opts)
}

// Read parses records from r.
func Read(r io.Reader, opts Options) ([]mlp.Series, error) {
	return dataset.Read(r, opts)
}

// Classes returns the distinct labels of data in first-seen order.
func Classes(data []mlp.Series) []string {
	return dataset.Classes(data)
}

// Width returns the feature count shared by data, or 0 if data is empty.
func Width(data []mlp.Series) int {
	return dataset.Width(data)
}

// Errors returned by Read and Load.
var (
	ErrNoRecords         = dataset.ErrNoRecords
	ErrInconsistentWidth = dataset.ErrInconsistentWidth
	ErrMissingLabel      = dataset.ErrMissingLabel
	ErrTooFewFields      = dataset.ErrTooFewFields
)
