package ml

import (
	"testing"

	"github.com/MacGruber91/ML/feature"
	"github.com/stretchr/testify/assert"
)

func TestGini(t *testing.T) {
	assert.Equal(t, 0.0, Gini(nil))
	assert.Equal(t, 0.0, Gini([]feature.Value{"a", "a", "a"}))
	assert.InDelta(t, 0.5, Gini([]feature.Value{"a", "a", "b", "b"}), 1e-9)
	assert.InDelta(t, 0.375, Gini([]feature.Value{"a", "a", "a", "b"}), 1e-9)
}

func TestEntropy(t *testing.T) {
	assert.Equal(t, 0.0, Entropy(nil))
	assert.Equal(t, 0.0, Entropy([]feature.Value{"a", "a"}))
	// Uniform two-class entropy in nats.
	assert.InDelta(t, 0.6931, Entropy([]feature.Value{"a", "b"}), 1e-4)
	assert.Greater(t,
		Entropy([]feature.Value{"a", "b", "c"}),
		Entropy([]feature.Value{"a", "a", "b"}),
	)
}

func TestEntropyIgnoresMissingLabels(t *testing.T) {
	assert.Equal(t, 0.0, Entropy([]feature.Value{"a", nil, "a"}))
}

func TestVariance(t *testing.T) {
	assert.Equal(t, 0.0, Variance(nil))
	assert.Equal(t, 0.0, Variance([]feature.Value{3.0, 3.0}))
	assert.InDelta(t, 1.0, Variance([]feature.Value{1.0, 3.0}), 1e-9)
	assert.InDelta(t, 1.0, Variance([]feature.Value{1.0, "skipped", 3.0}), 1e-9)
}
