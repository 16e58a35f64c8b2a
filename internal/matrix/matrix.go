package matrix

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// Matrix is a dense 2D matrix of float64 values in row-major order.
//
// The zero value is not usable; construct matrices with New, FromSlice,
// Column, or Uniform.
type Matrix struct {
	rows int
	cols int
	data []float64 // row-major, len == rows*cols
}

// New creates a zero-filled matrix with the given dimensions.
//
// Returns ErrDimensions if rows or cols is not positive.
func New(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrDimensions, rows, cols)
	}
	return zeros(rows, cols), nil
}

// zeros allocates a matrix without validating dimensions.
func zeros(rows, cols int) *Matrix {
	return &Matrix{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}
}

// FromSlice creates a matrix from a row-major slice of values.
//
// The data slice is copied. Returns ErrDimensions for non-positive
// dimensions and ErrShape if len(data) != rows*cols.
func FromSlice(data []float64, rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrDimensions, rows, cols)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%w: %d values for a %dx%d matrix", ErrShape, len(data), rows, cols)
	}
	m := zeros(rows, cols)
	copy(m.data, data)
	return m, nil
}

// Column creates an n×1 column vector from the given values.
//
// Panics if no values are given. Column vectors are the currency of the
// network package: inputs, targets, activations, and biases are all n×1.
func Column(values ...float64) *Matrix {
	if len(values) == 0 {
		panic("matrix.Column: at least one value required")
	}
	m := zeros(len(values), 1)
	copy(m.data, values)
	return m
}

// Uniform creates a matrix with entries drawn independently and uniformly
// from [lo, hi) using the supplied generator.
//
// The generator is always caller-supplied so that initialization is
// reproducible under a fixed seed. Panics on non-positive dimensions.
func Uniform(rows, cols int, lo, hi float64, rng *rand.Rand) *Matrix {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("matrix.Uniform: invalid dimensions %dx%d", rows, cols))
	}
	m := zeros(rows, cols)
	for i := range m.data {
		m.data[i] = lo + rng.Float64()*(hi-lo)
	}
	return m
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
func (m *Matrix) Cols() int {
	return m.cols
}

// Shape returns the (rows, cols) pair.
func (m *Matrix) Shape() (int, int) {
	return m.rows, m.cols
}

// NumElements returns the total number of entries.
func (m *Matrix) NumElements() int {
	return len(m.data)
}

// At returns the entry at row i, column j. Panics if out of range.
func (m *Matrix) At(i, j int) float64 {
	m.checkIndex(i, j)
	return m.data[i*m.cols+j]
}

// Set stores v at row i, column j. Panics if out of range.
func (m *Matrix) Set(i, j int, v float64) {
	m.checkIndex(i, j)
	m.data[i*m.cols+j] = v
}

func (m *Matrix) checkIndex(i, j int) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("matrix: index (%d, %d) out of range for %dx%d matrix", i, j, m.rows, m.cols))
	}
}

// Data returns the backing row-major slice.
//
// WARNING: direct access to underlying memory. Mutating the slice mutates
// the matrix. Use with caution.
func (m *Matrix) Data() []float64 {
	return m.data
}

// Clone returns a deep copy of the matrix.
func (m *Matrix) Clone() *Matrix {
	c := zeros(m.rows, m.cols)
	copy(c.data, m.data)
	return c
}

// SameShape reports whether m and other have identical dimensions.
func (m *Matrix) SameShape(other *Matrix) bool {
	return m.rows == other.rows && m.cols == other.cols
}

// Equal reports whether m and other have the same shape and bit-identical
// entries.
func (m *Matrix) Equal(other *Matrix) bool {
	if !m.SameShape(other) {
		return false
	}
	for i, v := range m.data {
		if v != other.data[i] {
			return false
		}
	}
	return true
}

// EqualApprox reports whether m and other have the same shape and entries
// equal within the given absolute tolerance.
func (m *Matrix) EqualApprox(other *Matrix, tol float64) bool {
	if !m.SameShape(other) {
		return false
	}
	return floats.EqualApprox(m.data, other.data, tol)
}

// String renders the matrix for debugging, one row per line.
func (m *Matrix) String() string {
	s := ""
	for i := 0; i < m.rows; i++ {
		s += fmt.Sprintf("%v\n", m.data[i*m.cols:(i+1)*m.cols])
	}
	return s
}
