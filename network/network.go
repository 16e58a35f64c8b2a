// Copyright 2025 Slate ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package network provides the public API for Slate feedforward networks:
// creation, prediction, backpropagation training, and the helpers used to
// build labeled datasets.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	net, _ := network.New([]int{784, 100, 10}, rng)
//
//	samples := network.Shuffle(dataset, rng)
//	net, _ = net.Train(samples, network.TrainConfig{LearningRate: 0.5})
//
//	out, _ := net.Predict(input)
//	digit := network.Argmax(out)
package network

import (
	"math/rand"

	"github.com/slate-ml/slate/internal/matrix"
	"github.com/slate-ml/slate/internal/network"
	"github.com/slate-ml/slate/internal/sample"
)

// Network is a feedforward neural network with sigmoid activations.
type Network = network.Network

// Trace is the full list of per-layer activations from one forward pass.
type Trace = network.Trace

// Gradient holds the parameter gradients for one layer.
type Gradient = network.Gradient

// TrainConfig holds configuration for the training loop.
type TrainConfig = network.TrainConfig

// Stats accumulates the running loss over a training run.
type Stats = network.Stats

// Sample is one labeled training example.
type Sample = sample.Sample

// Common errors.
var (
	ErrBadLayout     = network.ErrBadLayout
	ErrShapeMismatch = network.ErrShapeMismatch
)

// New creates a network for the given layer sizes, with weights drawn
// uniformly from [-1, 1) and zero biases.
func New(sizes []int, rng *rand.Rand) (*Network, error) {
	return network.New(sizes, rng)
}

// Load assembles a network from pre-built parameters, validating shapes
// against the layer sizes.
func Load(sizes []int, weights, biases []*matrix.Matrix) (*Network, error) {
	return network.Load(sizes, weights, biases)
}

// Sigmoid is the logistic activation σ(x) = 1 / (1 + e^-x).
func Sigmoid(x float64) float64 {
	return network.Sigmoid(x)
}

// SigmoidPrime is the derivative of Sigmoid.
func SigmoidPrime(x float64) float64 {
	return network.SigmoidPrime(x)
}

// OneHot produces a one-hot column vector for a class label.
//
// Example:
//
//	target, _ := network.OneHot(2, 5)  // [0 0 1 0 0]ᵀ
func OneHot(label, classCount int) (*matrix.Matrix, error) {
	return sample.OneHot(label, classCount)
}

// Argmax returns the first index of the maximum entry of m.
func Argmax(m *matrix.Matrix) int {
	return sample.Argmax(m)
}

// Shuffle returns a new slice with the samples permuted by the supplied
// generator. The same seed yields the same permutation.
func Shuffle(samples []Sample, rng *rand.Rand) []Sample {
	return sample.Shuffle(samples, rng)
}
