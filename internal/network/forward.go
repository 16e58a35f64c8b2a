package network

import (
	"fmt"

	"github.com/slate-ml/slate/internal/matrix"
)

// Trace is the full list of per-layer activations from one forward pass.
//
// Trace[0] is the raw input; Trace[k] for k > 0 is the post-sigmoid
// output of layer k. Its length always equals the network depth.
type Trace []*matrix.Matrix

// Output returns the final activation, the network's prediction.
func (t Trace) Output() *matrix.Matrix {
	return t[len(t)-1]
}

// Forward runs the forward pass and returns the full activation trace.
//
// The input must be a column vector of height sizes[0]; anything else is
// rejected with ErrShapeMismatch before any computation. For each layer
// i the next activation is σ(weights[i] × trace[i] + biases[i]), using
// the standard matrix product for the weight term and applying the
// sigmoid entrywise.
func (n *Network) Forward(input *matrix.Matrix) (Trace, error) {
	if err := n.checkColumn("input", input, n.InputSize()); err != nil {
		return nil, err
	}

	trace := make(Trace, 0, len(n.sizes))
	trace = append(trace, input)

	activation := input
	for i := range n.weights {
		z := n.weights[i].MatMul(activation).Add(n.biases[i])
		activation = z.Apply(Sigmoid)
		trace = append(trace, activation)
	}
	return trace, nil
}

// Predict runs the forward pass and returns only the final output vector.
//
// Pure: no side effects, the network is not modified.
func (n *Network) Predict(input *matrix.Matrix) (*matrix.Matrix, error) {
	trace, err := n.Forward(input)
	if err != nil {
		return nil, err
	}
	return trace.Output(), nil
}

// checkColumn validates that m is a column vector of the given height.
func (n *Network) checkColumn(name string, m *matrix.Matrix, height int) error {
	r, c := m.Shape()
	if c != 1 || r != height {
		return fmt.Errorf("%w: %s is %dx%d, want %dx1", ErrShapeMismatch, name, r, c, height)
	}
	return nil
}
