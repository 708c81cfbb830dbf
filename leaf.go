package ml

import (
	"context"
	"fmt"

	"github.com/MacGruber91/ML/dataset"
	"github.com/MacGruber91/ML/feature"
	"github.com/MacGruber91/ML/tree"
)

/*
MajorityTerminator is a tree.Terminator for classification: it closes a
branch with a leaf predicting the most frequent label of the branch
dataset, keeping the full class distribution as leaf statistics.
*/
type MajorityTerminator struct{}

/*
Terminate takes a context, a labeled dataset and the depth the branch
closes at and returns a leaf predicting the majority label. It returns
tree.ErrCannotPredictFromEmptySet for a dataset without labeled rows.
*/
func (MajorityTerminator) Terminate(ctx context.Context, s dataset.Dataset, depth int) (*tree.Leaf, error) {
	labels, err := s.Labels(ctx)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]float64)
	var total float64
	for _, l := range labels {
		if l == nil {
			continue
		}
		ls, ok := l.(string)
		if !ok {
			ls = fmt.Sprintf("%v", l)
		}
		counts[ls]++
		total++
	}
	if total == 0 {
		return nil, tree.ErrCannotPredictFromEmptySet
	}
	probabilities := make(map[string]float64, len(counts))
	for v, c := range counts {
		probabilities[v] = c / total
	}
	prediction, err := tree.NewClassPrediction(probabilities, int(total))
	if err != nil {
		return nil, err
	}
	return tree.NewLeaf(prediction), nil
}

/*
MeanTerminator is a tree.Terminator for regression: it closes a branch
with a leaf predicting the mean of the branch dataset's numeric labels.
*/
type MeanTerminator struct{}

/*
Terminate takes a context, a labeled dataset and the depth the branch
closes at and returns a leaf predicting the mean label. It returns
tree.ErrCannotPredictFromEmptySet for a dataset without numeric labels.
*/
func (MeanTerminator) Terminate(ctx context.Context, s dataset.Dataset, depth int) (*tree.Leaf, error) {
	labels, err := s.Labels(ctx)
	if err != nil {
		return nil, err
	}
	var sum, count float64
	for _, l := range labels {
		if v, ok := feature.Number(l); ok {
			sum += v
			count++
		}
	}
	if count == 0 {
		return nil, tree.ErrCannotPredictFromEmptySet
	}
	return tree.NewLeaf(tree.NewPrediction(sum/count, int(count))), nil
}
