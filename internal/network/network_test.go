package network_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slate-ml/slate/internal/matrix"
	"github.com/slate-ml/slate/internal/network"
)

func newRNG() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func TestNew_Shapes(t *testing.T) {
	sizes := []int{4, 3, 2}
	net, err := network.New(sizes, newRNG())
	require.NoError(t, err)

	assert.Equal(t, sizes, net.Sizes())
	assert.Equal(t, 3, net.Depth())
	assert.Equal(t, 4, net.InputSize())
	assert.Equal(t, 2, net.OutputSize())

	weights := net.Weights()
	biases := net.Biases()
	require.Len(t, weights, 2)
	require.Len(t, biases, 2)

	for i := 0; i < 2; i++ {
		r, c := weights[i].Shape()
		assert.Equal(t, sizes[i+1], r, "weight %d rows", i)
		assert.Equal(t, sizes[i], c, "weight %d cols", i)

		r, c = biases[i].Shape()
		assert.Equal(t, sizes[i+1], r, "bias %d rows", i)
		assert.Equal(t, 1, c, "bias %d cols", i)
	}
}

func TestNew_Initialization(t *testing.T) {
	net, err := network.New([]int{10, 10, 10}, newRNG())
	require.NoError(t, err)

	for i, w := range net.Weights() {
		for _, v := range w.Data() {
			assert.GreaterOrEqual(t, v, -1.0, "weight %d entry below -1", i)
			assert.Less(t, v, 1.0, "weight %d entry at or above 1", i)
		}
	}
	for i, b := range net.Biases() {
		for _, v := range b.Data() {
			assert.Zero(t, v, "bias %d should start at zero", i)
		}
	}
}

func TestNew_Deterministic(t *testing.T) {
	a, err := network.New([]int{3, 2}, rand.New(rand.NewSource(99)))
	require.NoError(t, err)
	b, err := network.New([]int{3, 2}, rand.New(rand.NewSource(99)))
	require.NoError(t, err)

	assert.True(t, a.Weights()[0].Equal(b.Weights()[0]),
		"same seed should produce identical weights")
}

func TestNew_InvalidSizes(t *testing.T) {
	tests := []struct {
		name  string
		sizes []int
	}{
		{"empty", nil},
		{"single layer", []int{5}},
		{"zero size", []int{4, 0, 2}},
		{"negative size", []int{4, -3, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := network.New(tt.sizes, newRNG())
			assert.ErrorIs(t, err, network.ErrBadLayout)
		})
	}
}

func TestLoad_Validation(t *testing.T) {
	w, err := matrix.New(2, 3)
	require.NoError(t, err)
	b, err := matrix.New(2, 1)
	require.NoError(t, err)

	_, err = network.Load([]int{3, 2}, []*matrix.Matrix{w}, []*matrix.Matrix{b})
	require.NoError(t, err)

	// Wrong weight count.
	_, err = network.Load([]int{3, 2}, nil, []*matrix.Matrix{b})
	assert.ErrorIs(t, err, network.ErrBadLayout)

	// Wrong weight shape.
	wrongW, err := matrix.New(3, 2)
	require.NoError(t, err)
	_, err = network.Load([]int{3, 2}, []*matrix.Matrix{wrongW}, []*matrix.Matrix{b})
	assert.ErrorIs(t, err, network.ErrBadLayout)

	// Wrong bias shape.
	wrongB, err := matrix.New(1, 1)
	require.NoError(t, err)
	_, err = network.Load([]int{3, 2}, []*matrix.Matrix{w}, []*matrix.Matrix{wrongB})
	assert.ErrorIs(t, err, network.ErrBadLayout)
}

func TestSizes_DefensiveCopy(t *testing.T) {
	net, err := network.New([]int{3, 2}, newRNG())
	require.NoError(t, err)

	sizes := net.Sizes()
	sizes[0] = 999
	assert.Equal(t, 3, net.InputSize(), "mutating Sizes() result must not affect the network")
}
