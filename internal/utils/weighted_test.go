package utils

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeightedIndex_Boundaries(t *testing.T) {
	weights := []float64{0.7, 0.5, 0.3}

	tests := []struct {
		name     string
		roll     float64
		expected int
	}{
		{"zero roll picks first", 0, 0},
		{"inside first band", 0.4, 0},
		{"exact first boundary", 0.7 / 1.5, 0},
		{"inside second band", 0.6, 1},
		{"inside third band", 0.9, 2},
		{"roll just under one", 0.999999, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WeightedIndex(weights, tt.roll))
		})
	}
}

func TestWeightedIndex_Degenerate(t *testing.T) {
	assert.Equal(t, -1, WeightedIndex(nil, 0.5))
	assert.Equal(t, -1, WeightedIndex([]float64{0, 0}, 0.5))
	assert.Equal(t, 1, WeightedIndex([]float64{0, 2}, 0.1), "zero weights are never chosen")
	assert.Equal(t, 1, WeightedIndex([]float64{1, 1}, 1.0), "drift falls back to the last candidate")
}

func TestWeightedIndex_Distribution(t *testing.T) {
	weights := []float64{0.7, 0.5, 0.3}
	const trials = 100000
	rng := rand.New(rand.NewSource(42)) //nolint:gosec

	counts := make([]int, len(weights))
	for i := 0; i < trials; i++ {
		counts[WeightedIndex(weights, rng.Float64())]++
	}

	total := 1.5
	for i, w := range weights {
		expected := w / total
		actual := float64(counts[i]) / trials
		assert.InDelta(t, expected, actual, 0.01, "option %d frequency", i)
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(-5, 0, 1000))
	assert.Equal(t, 1000, Clamp(5000, 0, 1000))
	assert.Equal(t, 42, Clamp(42, 0, 1000))
}
