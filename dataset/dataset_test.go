package dataset

import (
	"context"
	"testing"

	"github.com/MacGruber91/ML/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidatesShape(t *testing.T) {
	_, err := New(
		[]Row{{1.0, "a"}, {2.0, "b"}},
		[]feature.Value{"yes"},
	)
	assert.Error(t, err, "label count must match row count")

	_, err = New([]Row{{1.0, "a"}, {2.0}}, nil)
	assert.Error(t, err, "rows must have a uniform width")

	s, err := New(nil, nil)
	require.NoError(t, err)
	empty, err := s.Empty(context.Background())
	require.NoError(t, err)
	assert.True(t, empty)
}

func TestPartitionKeepsLabelsAlignedAndCountsDisjoint(t *testing.T) {
	ctx := context.Background()
	s, err := New(
		[]Row{{1.0}, {7.0}, {3.0}, {9.0}},
		[]feature.Value{"small", "big", "small", "big"},
	)
	require.NoError(t, err)

	a, b, err := s.Partition(ctx, func(r Row) bool {
		return r[0].(float64) < 5.0
	})
	require.NoError(t, err)

	aCount, err := a.Count(ctx)
	require.NoError(t, err)
	bCount, err := b.Count(ctx)
	require.NoError(t, err)
	total, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, total, aCount+bCount)
	assert.Equal(t, 2, aCount)

	aLabels, err := a.Labels(ctx)
	require.NoError(t, err)
	assert.Equal(t, []feature.Value{"small", "small"}, aLabels)
	bLabels, err := b.Labels(ctx)
	require.NoError(t, err)
	assert.Equal(t, []feature.Value{"big", "big"}, bLabels)
}

func TestPartitionToOneSide(t *testing.T) {
	ctx := context.Background()
	s, err := New([]Row{{1.0}, {2.0}}, []feature.Value{"a", "b"})
	require.NoError(t, err)

	a, b, err := s.Partition(ctx, func(r Row) bool { return true })
	require.NoError(t, err)
	aCount, err := a.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, aCount)
	bEmpty, err := b.Empty(ctx)
	require.NoError(t, err)
	assert.True(t, bEmpty)

	bLabels, err := b.Labels(ctx)
	require.NoError(t, err)
	assert.NotNil(t, bLabels, "an empty side of a labeled dataset stays labeled")
}

func TestPartitionRequiresPredicate(t *testing.T) {
	s, err := New([]Row{{1.0}}, []feature.Value{"a"})
	require.NoError(t, err)
	_, _, err = s.Partition(context.Background(), nil)
	assert.Error(t, err)
}

func TestMergeConcatenatesPreservingAlignment(t *testing.T) {
	ctx := context.Background()
	a, err := New([]Row{{1.0}, {2.0}}, []feature.Value{"a", "b"})
	require.NoError(t, err)
	b, err := New([]Row{{3.0}}, []feature.Value{"c"})
	require.NoError(t, err)

	m, err := a.Merge(ctx, b)
	require.NoError(t, err)
	rows, err := m.Rows(ctx)
	require.NoError(t, err)
	labels, err := m.Labels(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Row{{1.0}, {2.0}, {3.0}}, rows)
	assert.Equal(t, []feature.Value{"a", "b", "c"}, labels)
}

func TestMergeWithEmptyDataset(t *testing.T) {
	ctx := context.Background()
	a, err := New([]Row{{1.0}}, []feature.Value{"a"})
	require.NoError(t, err)
	empty, err := New(nil, nil)
	require.NoError(t, err)

	m, err := a.Merge(ctx, empty)
	require.NoError(t, err)
	count, err := m.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMergeRejectsIncompatibleShapes(t *testing.T) {
	ctx := context.Background()
	a, err := New([]Row{{1.0, 2.0}}, []feature.Value{"a"})
	require.NoError(t, err)
	b, err := New([]Row{{1.0}}, []feature.Value{"b"})
	require.NoError(t, err)
	_, err = a.Merge(ctx, b)
	assert.Error(t, err, "row widths must match")

	c, err := New([]Row{{1.0, 2.0}}, nil)
	require.NoError(t, err)
	_, err = a.Merge(ctx, c)
	assert.Error(t, err, "cannot merge labeled and unlabeled datasets")
}
