package ml

import (
	"context"
	"testing"

	"github.com/MacGruber91/ML/dataset"
	"github.com/MacGruber91/ML/feature"
	"github.com/MacGruber91/ML/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMajorityTerminator(t *testing.T) {
	ctx := context.Background()
	s, err := dataset.New(
		[]dataset.Row{{1.0}, {2.0}, {3.0}, {4.0}},
		[]feature.Value{"yes", "yes", "yes", "no"},
	)
	require.NoError(t, err)

	leaf, err := MajorityTerminator{}.Terminate(ctx, s, 2)
	require.NoError(t, err)
	p := leaf.Prediction()
	assert.Equal(t, "yes", p.Value())
	assert.Equal(t, 4, p.Weight())
	assert.InDelta(t, 0.75, p.ProbabilityOf("yes"), 1e-9)
	assert.InDelta(t, 0.25, p.ProbabilityOf("no"), 1e-9)
}

func TestMajorityTerminatorOnEmptyDataset(t *testing.T) {
	empty, err := dataset.New(nil, nil)
	require.NoError(t, err)
	_, err = MajorityTerminator{}.Terminate(context.Background(), empty, 1)
	assert.ErrorIs(t, err, tree.ErrCannotPredictFromEmptySet)
}

func TestMeanTerminator(t *testing.T) {
	ctx := context.Background()
	s, err := dataset.New(
		[]dataset.Row{{1.0}, {2.0}, {3.0}},
		[]feature.Value{10.0, 20.0, 30.0},
	)
	require.NoError(t, err)

	leaf, err := MeanTerminator{}.Terminate(ctx, s, 1)
	require.NoError(t, err)
	assert.Equal(t, 20.0, leaf.Prediction().Value())
	assert.Equal(t, 3, leaf.Prediction().Weight())
	assert.Nil(t, leaf.Prediction().Probabilities())
}

func TestMeanTerminatorWithoutNumericLabels(t *testing.T) {
	s, err := dataset.New([]dataset.Row{{1.0}}, []feature.Value{"not a number"})
	require.NoError(t, err)
	_, err = MeanTerminator{}.Terminate(context.Background(), s, 1)
	assert.ErrorIs(t, err, tree.ErrCannotPredictFromEmptySet)
}
