package ml

import (
	"context"
	"testing"

	"github.com/MacGruber91/ML/dataset"
	"github.com/MacGruber91/ML/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoColumns() []feature.Column {
	return []feature.Column{
		feature.NewContinuousColumn("noise"),
		feature.NewDiscreteColumn("signal", []string{"up", "down"}),
	}
}

func TestFindBestSplitPicksTheDiscriminatingColumn(t *testing.T) {
	ctx := context.Background()
	// The label tracks the second column exactly; the first is noise.
	s, err := dataset.New(
		[]dataset.Row{
			{1.0, "up"},
			{8.0, "up"},
			{2.0, "down"},
			{9.0, "down"},
		},
		[]feature.Value{"yes", "yes", "no", "no"},
	)
	require.NoError(t, err)

	bs := NewBestSplitter(twoColumns(), Gini)
	c, err := bs.FindBestSplit(ctx, s, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Column())
	assert.Contains(t, []feature.Value{"up", "down"}, c.Value())
	assert.InDelta(t, 0.5, c.ImpurityDecrease(), 1e-9)

	left, right := c.TakeGroups()
	require.NotNil(t, left)
	require.NotNil(t, right)
	lCount, err := left.Count(ctx)
	require.NoError(t, err)
	rCount, err := right.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, lCount+rCount)
	assert.Equal(t, 2, lCount)
}

func TestFindBestSplitOnNumericColumn(t *testing.T) {
	ctx := context.Background()
	s, err := dataset.New(
		[]dataset.Row{{1.0, nil}, {2.0, nil}, {8.0, nil}, {9.0, nil}},
		[]feature.Value{"small", "small", "big", "big"},
	)
	require.NoError(t, err)

	bs := NewBestSplitter(twoColumns(), Entropy)
	c, err := bs.FindBestSplit(ctx, s, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Column())
	assert.Equal(t, 5.0, c.Value())

	left, right := c.TakeGroups()
	lRows, err := left.Rows(ctx)
	require.NoError(t, err)
	rRows, err := right.Rows(ctx)
	require.NoError(t, err)
	assert.Len(t, lRows, 2)
	assert.Len(t, rRows, 2)
}

func TestFindBestSplitOnIndistinguishableRows(t *testing.T) {
	// Rows with a single distinct value per column still produce a
	// degenerate comparison, whose empty side lets the tree close the
	// branch with a shared leaf.
	ctx := context.Background()
	s, err := dataset.New(
		[]dataset.Row{{4.0, "up"}, {4.0, "up"}},
		[]feature.Value{"yes", "no"},
	)
	require.NoError(t, err)

	bs := NewBestSplitter(twoColumns(), Gini)
	c, err := bs.FindBestSplit(ctx, s, 3)
	require.NoError(t, err)
	left, right := c.TakeGroups()
	lEmpty, err := left.Empty(ctx)
	require.NoError(t, err)
	rEmpty, err := right.Empty(ctx)
	require.NoError(t, err)
	assert.True(t, lEmpty || rEmpty)
	assert.Equal(t, 0.0, c.ImpurityDecrease())
}

func TestFindBestSplitErrors(t *testing.T) {
	ctx := context.Background()
	bs := NewBestSplitter(twoColumns(), Gini)

	empty, err := dataset.New(nil, nil)
	require.NoError(t, err)
	_, err = bs.FindBestSplit(ctx, empty, 0)
	assert.ErrorIs(t, err, ErrCannotSplit)

	unlabeled, err := dataset.New([]dataset.Row{{1.0, "up"}}, nil)
	require.NoError(t, err)
	_, err = bs.FindBestSplit(ctx, unlabeled, 0)
	assert.ErrorIs(t, err, ErrCannotSplit)

	narrow, err := dataset.New([]dataset.Row{{1.0}}, []feature.Value{"yes"})
	require.NoError(t, err)
	_, err = bs.FindBestSplit(ctx, narrow, 0)
	assert.ErrorIs(t, err, ErrCannotSplit)
}
