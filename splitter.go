package ml

import (
	"context"
	"fmt"
	"sort"

	"github.com/MacGruber91/ML/dataset"
	"github.com/MacGruber91/ML/feature"
	"github.com/MacGruber91/ML/tree"
)

// SplitError represents an error finding the best split for a dataset
type SplitError string

/*
ErrCannotSplit is the error returned by BestSplitter when a dataset
offers no split at all: it is empty, unlabeled or its shape does not
match the columns the splitter was built with.
*/
const ErrCannotSplit = SplitError("cannot split dataset")

func (se SplitError) Error() string {
	return string(se)
}

/*
BestSplitter is a tree.Splitter that exhaustively searches all
axis-aligned splits over its columns and selects the one with the
greatest impurity decrease.

Continuous columns are split on the midpoints between consecutive
distinct values, sending rows with a smaller value to the left group.
Discrete columns are split on equality with each value observed in the
group, sending matching rows to the left group.
*/
type BestSplitter struct {
	columns  []feature.Column
	impurity Impurity
}

/*
NewBestSplitter takes the ordered feature columns of the datasets to be
split and an impurity measure and returns a BestSplitter using them.
*/
func NewBestSplitter(columns []feature.Column, impurity Impurity) *BestSplitter {
	return &BestSplitter{columns: columns, impurity: impurity}
}

type candidate struct {
	column   int
	value    feature.Value
	decrease float64
	pred     dataset.Predicate
}

/*
FindBestSplit takes a context, a labeled dataset and the depth it is
being split at and returns a comparison node with the best split found
over all columns, carrying the two row-groups the split produces and
its impurity decrease. It returns an error wrapping ErrCannotSplit for
datasets no split can be computed from.
*/
func (bs *BestSplitter) FindBestSplit(ctx context.Context, s dataset.Dataset, depth int) (*tree.Comparison, error) {
	rows, err := s.Rows(ctx)
	if err != nil {
		return nil, err
	}
	labels, err := s.Labels(ctx)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: dataset is empty", ErrCannotSplit)
	}
	if labels == nil {
		return nil, fmt.Errorf("%w: dataset is unlabeled", ErrCannotSplit)
	}
	if len(rows[0]) != len(bs.columns) {
		return nil, fmt.Errorf("%w: rows have %d columns, splitter knows %d", ErrCannotSplit, len(rows[0]), len(bs.columns))
	}
	base := bs.impurity(labels)
	var best *candidate
	for column, c := range bs.columns {
		var candidates []candidate
		switch c.(type) {
		case *feature.ContinuousColumn:
			candidates = continuousCandidates(column, rows)
		case *feature.DiscreteColumn:
			candidates = discreteCandidates(column, rows)
		default:
			return nil, fmt.Errorf("unknown column type %T for column %v", c, c.Name())
		}
		for i := range candidates {
			cd := &candidates[i]
			cd.decrease = bs.decrease(base, rows, labels, cd.pred)
			if best == nil || cd.decrease > best.decrease {
				chosen := *cd
				best = &chosen
			}
		}
	}
	if best == nil {
		return nil, fmt.Errorf("%w: no column offers a candidate split", ErrCannotSplit)
	}
	left, right, err := s.Partition(ctx, best.pred)
	if err != nil {
		return nil, err
	}
	return tree.NewComparison(best.column, best.value, best.decrease, left, right), nil
}

/*
decrease scores a candidate partition: the impurity of the whole group
minus the impurities of both sides weighted by their share of rows.
Rounding can push the result a hair below zero, so it is clamped.
*/
func (bs *BestSplitter) decrease(base float64, rows []dataset.Row, labels []feature.Value, pred dataset.Predicate) float64 {
	var left, right []feature.Value
	for i, r := range rows {
		if pred(r) {
			left = append(left, labels[i])
		} else {
			right = append(right, labels[i])
		}
	}
	total := float64(len(rows))
	result := base
	result -= bs.impurity(left) * float64(len(left)) / total
	result -= bs.impurity(right) * float64(len(right)) / total
	if result < 0 {
		return 0
	}
	return result
}

func continuousCandidates(column int, rows []dataset.Row) []candidate {
	var values []float64
	encountered := make(map[float64]bool)
	for _, r := range rows {
		if v, ok := feature.Number(r[column]); ok && !encountered[v] {
			encountered[v] = true
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return nil
	}
	sort.Float64s(values)
	if len(values) == 1 {
		// A column with a single value still offers a degenerate
		// threshold, so groups of indistinguishable rows can be
		// closed through the empty-group path instead of erroring.
		return []candidate{numericCandidate(column, values[0])}
	}
	candidates := make([]candidate, 0, len(values)-1)
	for i, v := range values[1:] {
		threshold := (values[i] + v) / 2.0
		candidates = append(candidates, numericCandidate(column, threshold))
	}
	return candidates
}

func numericCandidate(column int, threshold float64) candidate {
	return candidate{
		column: column,
		value:  threshold,
		pred: func(r dataset.Row) bool {
			v, ok := feature.Number(r[column])
			return ok && v < threshold
		},
	}
}

func discreteCandidates(column int, rows []dataset.Row) []candidate {
	var candidates []candidate
	encountered := make(map[string]bool)
	for _, r := range rows {
		v, ok := r[column].(string)
		if !ok || encountered[v] {
			continue
		}
		encountered[v] = true
		value := v
		candidates = append(candidates, candidate{
			column: column,
			value:  value,
			pred: func(r dataset.Row) bool {
				return r[column] == value
			},
		})
	}
	return candidates
}
