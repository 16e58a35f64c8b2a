package network_test

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slate-ml/slate/internal/matrix"
	"github.com/slate-ml/slate/internal/network"
	"github.com/slate-ml/slate/internal/sample"
)

func xorSamples() []sample.Sample {
	return []sample.Sample{
		{Input: matrix.Column(0, 0), Target: matrix.Column(0)},
		{Input: matrix.Column(0, 1), Target: matrix.Column(1)},
		{Input: matrix.Column(1, 0), Target: matrix.Column(1)},
		{Input: matrix.Column(1, 1), Target: matrix.Column(0)},
	}
}

func TestTrain_EmptySamples(t *testing.T) {
	net, err := network.New([]int{2, 1}, newRNG())
	require.NoError(t, err)

	var buf bytes.Buffer
	out, err := net.Train(nil, network.TrainConfig{LearningRate: 0.1, Progress: &buf})
	require.NoError(t, err)
	assert.Same(t, net, out, "empty training must return the model unchanged")
	assert.Zero(t, buf.Len(), "empty training must not emit progress")
}

func TestTrain_FirstSampleContributes(t *testing.T) {
	net, err := network.New([]int{2, 1}, newRNG())
	require.NoError(t, err)
	before := net.Weights()[0].Clone()

	// Input (1, 0): a nonzero input so the weight gradient cannot vanish.
	out, err := net.Train(xorSamples()[2:3], network.TrainConfig{
		LearningRate: 0.5,
		Progress:     io.Discard,
	})
	require.NoError(t, err)
	assert.False(t, out.Weights()[0].Equal(before),
		"the first sample's gradient must be applied")
}

func TestTrain_ProgressFormat(t *testing.T) {
	net, err := network.New([]int{2, 1}, newRNG())
	require.NoError(t, err)

	var buf bytes.Buffer
	_, stats, err := net.TrainStats(xorSamples(), network.TrainConfig{
		LearningRate: 0.1,
		Progress:     &buf,
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4, "one progress line per sample")
	for i, line := range lines {
		var idx int
		var mean float64
		_, err := fmt.Sscanf(line, "%d: %v", &idx, &mean)
		require.NoError(t, err, "line %q should parse as \"<index>: <mean>\"", line)
		assert.Equal(t, i, idx)
		assert.GreaterOrEqual(t, mean, 0.0)
	}

	assert.Equal(t, 4, stats.Count)
	assert.Greater(t, stats.Mean(), 0.0)
}

func TestTrain_ReducesMeanLoss(t *testing.T) {
	net, err := network.New([]int{2, 3, 1}, newRNG())
	require.NoError(t, err)

	samples := xorSamples()
	cfg := network.TrainConfig{LearningRate: 1.0, Progress: io.Discard}

	_, first, err := net.TrainStats(samples, cfg)
	require.NoError(t, err)

	// A few hundred epochs of plain SGD should visibly shrink the loss.
	trained := net
	for epoch := 0; epoch < 500; epoch++ {
		trained, err = trained.Train(samples, cfg)
		require.NoError(t, err)
	}
	_, last, err := trained.TrainStats(samples, cfg)
	require.NoError(t, err)

	assert.Less(t, last.Mean(), first.Mean())
}

func TestTrain_ReceiverUnchanged(t *testing.T) {
	net, err := network.New([]int{2, 1}, newRNG())
	require.NoError(t, err)
	before := net.Weights()[0].Clone()

	_, err = net.Train(xorSamples(), network.TrainConfig{LearningRate: 0.5, Progress: io.Discard})
	require.NoError(t, err)
	assert.True(t, net.Weights()[0].Equal(before), "Train must not mutate the receiver")
}

func TestTrain_BadSampleShape(t *testing.T) {
	net, err := network.New([]int{2, 1}, newRNG())
	require.NoError(t, err)

	bad := []sample.Sample{{Input: matrix.Column(1), Target: matrix.Column(0)}}
	_, err = net.Train(bad, network.TrainConfig{LearningRate: 0.1, Progress: io.Discard})
	assert.ErrorIs(t, err, network.ErrShapeMismatch)
	assert.ErrorContains(t, err, "sample 0")
}

func TestStats_Mean(t *testing.T) {
	assert.Zero(t, network.Stats{}.Mean())
	assert.InDelta(t, 2.5, network.Stats{TotalLoss: 5, Count: 2}.Mean(), 1e-12)
}
