package network

import (
	"gonum.org/v1/gonum/floats"

	"github.com/slate-ml/slate/internal/matrix"
)

// Gradient holds the parameter gradients for one layer.
//
// Weight has the same shape as the layer's weight matrix, Bias the same
// shape as its bias vector.
type Gradient struct {
	Weight *matrix.Matrix
	Bias   *matrix.Matrix
}

// Backprop computes per-layer gradients for one labeled sample.
//
// It runs the forward pass, compares the final activation against the
// target, and walks the layers from last to first applying the chain
// rule. The returned gradients are ordered input to output, matching
// Weights and Biases. The scalar loss is the half-weighted sum of squared
// output error, 0.5·Σ(output-target)².
//
// The input must be (sizes[0] × 1) and the target (sizes[last] × 1);
// violations are rejected with ErrShapeMismatch before any computation.
func (n *Network) Backprop(input, target *matrix.Matrix) ([]Gradient, float64, error) {
	if err := n.checkColumn("target", target, n.OutputSize()); err != nil {
		return nil, 0, err
	}
	trace, err := n.Forward(input)
	if err != nil {
		return nil, 0, err
	}

	delta := trace.Output().Sub(target)
	d := delta.Data()
	loss := 0.5 * floats.Dot(d, d)

	return n.gradients(trace, delta), loss, nil
}

// gradients walks the layers from last to first, turning the output
// error signal into one Gradient per layer.
//
// The walk covers min(len(weights), len(biases), len(trace)-1) layers:
// ragged parameter lists truncate the walk instead of failing. A network
// built through New, Load, or a decoder can never be ragged, so for the
// public API this is unreachable; it keeps the walk total for
// hand-assembled states (see the package tests).
func (n *Network) gradients(trace Trace, outputDelta *matrix.Matrix) []Gradient {
	layers := len(n.weights)
	if len(n.biases) < layers {
		layers = len(n.biases)
	}
	if len(trace)-1 < layers {
		layers = len(trace) - 1
	}

	grads := make([]Gradient, layers)
	delta := outputDelta
	for i := layers - 1; i >= 0; i-- {
		z := n.weights[i].MatMul(trace[i]).Add(n.biases[i])
		signal := z.Apply(SigmoidPrime).Hadamard(delta)

		grads[i] = Gradient{
			Weight: signal.MatMul(trace[i].Transpose()),
			Bias:   signal,
		}
		if i > 0 {
			delta = n.weights[i].Transpose().MatMul(signal)
		}
	}
	return grads
}

// ApplyUpdate returns a new network with every parameter stepped against
// its gradient: w' = w - lr·gw, b' = b - lr·gb.
//
// The receiver is not modified. If the gradient list is shorter than the
// parameter lists (or vice versa), only the aligned prefix is updated and
// the remaining parameters are carried over unchanged — the same
// truncation policy as the gradient walk.
func (n *Network) ApplyUpdate(grads []Gradient, learningRate float64) *Network {
	weights := make([]*matrix.Matrix, len(n.weights))
	biases := make([]*matrix.Matrix, len(n.biases))
	copy(weights, n.weights)
	copy(biases, n.biases)

	layers := len(grads)
	if len(weights) < layers {
		layers = len(weights)
	}
	if len(biases) < layers {
		layers = len(biases)
	}
	for i := 0; i < layers; i++ {
		weights[i] = weights[i].Sub(grads[i].Weight.Scale(learningRate))
		biases[i] = biases[i].Sub(grads[i].Bias.Scale(learningRate))
	}

	return &Network{
		sizes:   append([]int(nil), n.sizes...),
		weights: weights,
		biases:  biases,
	}
}
