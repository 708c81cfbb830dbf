package tree

import (
	"context"

	"github.com/MacGruber91/ML/dataset"
)

/*
Splitter is an interface wrapping the FindBestSplit method, implemented
by concrete learners to choose how a dataset is split.

FindBestSplit takes a context, the dataset of a node being developed
and the depth of that node, and returns a comparison node populated
with the chosen column, split value, impurity decrease and the two
row-groups the split produces, or an error if no split can be made.
*/
type Splitter interface {
	FindBestSplit(ctx context.Context, s dataset.Dataset, depth int) (*Comparison, error)
}

/*
SplitterFunc wraps a function with the FindBestSplit method signature
to implement the Splitter interface.
*/
type SplitterFunc func(ctx context.Context, s dataset.Dataset, depth int) (*Comparison, error)

// FindBestSplit invokes the wrapped function.
func (sf SplitterFunc) FindBestSplit(ctx context.Context, s dataset.Dataset, depth int) (*Comparison, error) {
	return sf(ctx, s, depth)
}

/*
Terminator is an interface wrapping the Terminate method, implemented
by concrete learners to close a branch of the tree.

Terminate takes a context, the dataset of the branch being closed and
the depth at which it is closed, and returns a leaf node populated with
the prediction for that dataset, or an error.
*/
type Terminator interface {
	Terminate(ctx context.Context, s dataset.Dataset, depth int) (*Leaf, error)
}

/*
TerminatorFunc wraps a function with the Terminate method signature to
implement the Terminator interface.
*/
type TerminatorFunc func(ctx context.Context, s dataset.Dataset, depth int) (*Leaf, error)

// Terminate invokes the wrapped function.
func (tf TerminatorFunc) Terminate(ctx context.Context, s dataset.Dataset, depth int) (*Leaf, error) {
	return tf(ctx, s, depth)
}
