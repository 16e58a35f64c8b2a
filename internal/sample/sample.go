// Package sample provides labeled training samples and the label helpers
// used by data-ingestion code: one-hot encoding, argmax, and deterministic
// shuffling.
package sample

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/slate-ml/slate/internal/matrix"
)

// Sample is one labeled training example: a column-vector input and the
// column-vector target the network should produce for it.
type Sample struct {
	Input  *matrix.Matrix
	Target *matrix.Matrix
}

// OneHot produces a (classCount × 1) column vector with a 1.0 at index
// label and 0.0 elsewhere.
//
// Returns an error if classCount is not positive or label is out of
// [0, classCount).
func OneHot(label, classCount int) (*matrix.Matrix, error) {
	if classCount <= 0 {
		return nil, fmt.Errorf("sample: class count must be positive, got %d", classCount)
	}
	if label < 0 || label >= classCount {
		return nil, fmt.Errorf("sample: label %d out of range [0, %d)", label, classCount)
	}
	m, err := matrix.New(classCount, 1)
	if err != nil {
		return nil, err
	}
	m.Set(label, 0, 1.0)
	return m, nil
}

// Argmax returns the index of the maximum entry of m, scanning the
// row-major data left to right. Ties break to the first occurrence.
//
// For a column vector this is the row index of the largest entry, which
// is how classifier outputs are turned back into class labels.
func Argmax(m *matrix.Matrix) int {
	return floats.MaxIdx(m.Data())
}

// Shuffle returns a new slice holding the samples in a random permutation
// drawn from the supplied generator. The input slice is not modified.
//
// The same generator state always yields the same permutation, so seeding
// the generator makes training order reproducible.
func Shuffle(samples []Sample, rng *rand.Rand) []Sample {
	out := make([]Sample, len(samples))
	copy(out, samples)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
