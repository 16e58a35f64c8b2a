// Copyright 2025 Slate ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides the public API for dense 2D float64 matrices in
// the Slate ML library.
//
// Example:
//
//	a := matrix.Column(1, 2, 3)              // 3×1 column vector
//	b, _ := matrix.New(3, 1)                 // 3×1 zeros
//	c := a.Add(b)                            // elementwise addition
package matrix

import (
	"math/rand"

	"github.com/slate-ml/slate/internal/matrix"
)

// Matrix is a dense 2D matrix of float64 values in row-major order.
type Matrix = matrix.Matrix

// Common errors.
var (
	ErrShape      = matrix.ErrShape
	ErrDimensions = matrix.ErrDimensions
)

// New creates a zero-filled matrix with the given dimensions.
func New(rows, cols int) (*Matrix, error) {
	return matrix.New(rows, cols)
}

// FromSlice creates a matrix from a row-major slice of values.
//
// Example:
//
//	m, err := matrix.FromSlice([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
func FromSlice(data []float64, rows, cols int) (*Matrix, error) {
	return matrix.FromSlice(data, rows, cols)
}

// Column creates an n×1 column vector from the given values.
func Column(values ...float64) *Matrix {
	return matrix.Column(values...)
}

// Uniform creates a matrix with entries drawn independently and uniformly
// from [lo, hi) using the supplied generator.
func Uniform(rows, cols int, lo, hi float64, rng *rand.Rand) *Matrix {
	return matrix.Uniform(rows, cols, lo, hi, rng)
}
