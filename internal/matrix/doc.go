// Package matrix implements dense 2D float64 matrices for the Slate ML library.
//
// The package provides:
//   - Matrix: row-major dense storage with explicit row/column dimensions
//   - Creation: New, FromSlice, Column, Uniform
//   - Elementwise operations: Add, Sub, Hadamard, Scale, Apply
//   - Standard operations: MatMul, Transpose
//
// Construction functions validate their inputs and return errors. The
// arithmetic operations panic on shape mismatch; callers that accept
// matrices from outside the library are expected to validate shapes at
// the API boundary (the network package does this) so that a panic
// indicates a programming error, not bad user input.
package matrix
