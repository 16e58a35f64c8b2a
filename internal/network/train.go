package network

import (
	"fmt"
	"io"
	"os"

	"github.com/slate-ml/slate/internal/sample"
)

// TrainConfig holds configuration for the training loop.
type TrainConfig struct {
	// LearningRate is the SGD step size (default: 0.01).
	LearningRate float64

	// Progress receives one line per sample in the form
	// "<sampleIndex>: <runningMeanLoss>". Defaults to os.Stdout.
	Progress io.Writer
}

// Stats accumulates the running loss over a training run.
//
// It is reported for monitoring only and is not part of the persisted
// model state.
type Stats struct {
	TotalLoss float64
	Count     int
}

// Mean returns the running mean loss, or 0 before any sample.
func (s Stats) Mean() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.TotalLoss / float64(s.Count)
}

// Train folds stochastic gradient descent over the samples in order.
//
// Every sample, including the first, contributes one backprop/update
// step: gradients for the current model, then a fresh model with the
// learning-rate-scaled step applied. After each sample one progress line
// with the running mean loss is written to cfg.Progress.
//
// Sample order matters; callers wanting i.i.d. behavior shuffle first
// (see sample.Shuffle). An empty sample slice returns the receiver
// unchanged. The receiver itself is never mutated.
func (n *Network) Train(samples []sample.Sample, cfg TrainConfig) (*Network, error) {
	net, _, err := n.TrainStats(samples, cfg)
	return net, err
}

// TrainStats is Train plus the final loss accumulator.
func (n *Network) TrainStats(samples []sample.Sample, cfg TrainConfig) (*Network, Stats, error) {
	if cfg.LearningRate == 0 {
		cfg.LearningRate = 0.01
	}
	if cfg.Progress == nil {
		cfg.Progress = os.Stdout
	}

	net := n
	var stats Stats
	for i, s := range samples {
		grads, loss, err := net.Backprop(s.Input, s.Target)
		if err != nil {
			return nil, stats, fmt.Errorf("sample %d: %w", i, err)
		}
		net = net.ApplyUpdate(grads, cfg.LearningRate)

		stats.TotalLoss += loss
		stats.Count++
		fmt.Fprintf(cfg.Progress, "%d: %v\n", i, stats.Mean())
	}
	return net, stats, nil
}
