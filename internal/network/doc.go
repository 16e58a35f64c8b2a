// Package network implements a feedforward neural network for the Slate ML
// library: sigmoid forward inference, backpropagation, plain stochastic
// gradient descent, and a sample-by-sample training loop.
//
// The package provides:
//   - Network: layer sizes plus per-layer weight and bias matrices
//   - Forward / Predict: full activation trace and final output
//   - Backprop: per-layer gradients and the half sum-of-squares loss
//   - ApplyUpdate: learning-rate-scaled descent step
//   - Train: fold over labeled samples with running mean-loss reporting
//
// Networks follow value semantics: a training step never mutates the
// receiver, it returns a fresh *Network with the updated parameters. This
// keeps any previously captured model usable and makes steps trivially
// comparable in tests.
package network
