package network

import (
	"fmt"
	"math/rand"

	"github.com/slate-ml/slate/internal/matrix"
)

// Weight initialization range. Biases start at zero.
const (
	initLo = -1.0
	initHi = 1.0
)

// Network is a feedforward neural network.
//
// The layer sizes fully determine the parameter shapes: for layers of
// sizes s0..sN, weight i is (s[i+1] × s[i]) and bias i is (s[i+1] × 1),
// for i in [0, N). sizes[0] is the input width and sizes[N] the output
// width.
type Network struct {
	sizes   []int
	weights []*matrix.Matrix
	biases  []*matrix.Matrix
}

// New creates a network for the given layer sizes.
//
// Weights are drawn independently and uniformly from [-1, 1) using the
// supplied generator; biases start at zero. The generator is
// caller-supplied so that initialization is reproducible under a fixed
// seed.
//
// Returns ErrBadLayout if fewer than two sizes are given or any size is
// not positive.
func New(sizes []int, rng *rand.Rand) (*Network, error) {
	if err := validateSizes(sizes); err != nil {
		return nil, err
	}

	n := len(sizes) - 1
	weights := make([]*matrix.Matrix, n)
	biases := make([]*matrix.Matrix, n)
	for i := 0; i < n; i++ {
		weights[i] = matrix.Uniform(sizes[i+1], sizes[i], initLo, initHi, rng)
		b, err := matrix.New(sizes[i+1], 1)
		if err != nil {
			return nil, err
		}
		biases[i] = b
	}

	return &Network{
		sizes:   append([]int(nil), sizes...),
		weights: weights,
		biases:  biases,
	}, nil
}

// Load assembles a network from pre-built parameters.
//
// This is the constructor used by the persist decoders. It validates that
// the weight and bias counts and shapes match the layer sizes; a file
// that decodes into mismatched parameters is rejected here rather than
// producing a network with undefined forward-pass behavior.
func Load(sizes []int, weights, biases []*matrix.Matrix) (*Network, error) {
	if err := validateSizes(sizes); err != nil {
		return nil, err
	}

	n := len(sizes) - 1
	if len(weights) != n {
		return nil, fmt.Errorf("%w: %d weight matrices for %d layers", ErrBadLayout, len(weights), len(sizes))
	}
	if len(biases) != n {
		return nil, fmt.Errorf("%w: %d bias matrices for %d layers", ErrBadLayout, len(biases), len(sizes))
	}
	for i := 0; i < n; i++ {
		if r, c := weights[i].Shape(); r != sizes[i+1] || c != sizes[i] {
			return nil, fmt.Errorf("%w: weight %d is %dx%d, want %dx%d",
				ErrBadLayout, i, r, c, sizes[i+1], sizes[i])
		}
		if r, c := biases[i].Shape(); r != sizes[i+1] || c != 1 {
			return nil, fmt.Errorf("%w: bias %d is %dx%d, want %dx1",
				ErrBadLayout, i, r, c, sizes[i+1])
		}
	}

	return &Network{
		sizes:   append([]int(nil), sizes...),
		weights: weights,
		biases:  biases,
	}, nil
}

func validateSizes(sizes []int) error {
	if len(sizes) < 2 {
		return fmt.Errorf("%w: need at least 2 layer sizes, got %d", ErrBadLayout, len(sizes))
	}
	for i, s := range sizes {
		if s <= 0 {
			return fmt.Errorf("%w: layer %d has size %d (must be > 0)", ErrBadLayout, i, s)
		}
	}
	return nil
}

// Sizes returns a copy of the layer size sequence.
func (n *Network) Sizes() []int {
	return append([]int(nil), n.sizes...)
}

// Depth returns the number of layers, including input and output.
func (n *Network) Depth() int {
	return len(n.sizes)
}

// InputSize returns the expected height of input column vectors.
func (n *Network) InputSize() int {
	return n.sizes[0]
}

// OutputSize returns the height of output column vectors.
func (n *Network) OutputSize() int {
	return n.sizes[len(n.sizes)-1]
}

// Weights returns the per-layer weight matrices, ordered input to output.
//
// The returned slice and matrices are the network's own; treat them as
// read-only.
func (n *Network) Weights() []*matrix.Matrix {
	return n.weights
}

// Biases returns the per-layer bias matrices, ordered input to output.
//
// The returned slice and matrices are the network's own; treat them as
// read-only.
func (n *Network) Biases() []*matrix.Matrix {
	return n.biases
}
