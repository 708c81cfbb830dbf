package dataset

import (
	"context"
	"fmt"

	"github.com/MacGruber91/ML/feature"
)

/*
Row is one fixed-width vector of column values. The value at each
position belongs to the column the schema declares at that index.
*/
type Row []feature.Value

/*
Predicate decides to which side of a partition a row belongs:
true selects the first group, false the second.
*/
type Predicate func(Row) bool

/*
Dataset represents an ordered collection of rows, optionally labeled
with one value per row.

Its Rows and Labels methods return the rows and their aligned labels;
Labels returns nil for unlabeled data. Its Partition method splits the
dataset in two disjoint groups by a predicate, keeping labels aligned
with their rows. Its Merge method concatenates two datasets of
compatible shape.

All its methods take a context that may allow cancelling the operation
(thus forcing the return of an error) if the implementation allows it.
*/
type Dataset interface {
	Rows(context.Context) ([]Row, error)
	Labels(context.Context) ([]feature.Value, error)
	Count(context.Context) (int, error)
	Empty(context.Context) (bool, error)
	Partition(context.Context, Predicate) (Dataset, Dataset, error)
	Merge(context.Context, Dataset) (Dataset, error)
}

type memoryDataset struct {
	rows   []Row
	labels []feature.Value
}

/*
New takes a slice of rows and a slice of labels aligned with them and
returns a Dataset backed by the process memory. The labels slice may be
nil for unlabeled data; otherwise it must hold exactly one label per
row. All rows must have the same width.
*/
func New(rows []Row, labels []feature.Value) (Dataset, error) {
	if labels != nil && len(labels) != len(rows) {
		return nil, fmt.Errorf("dataset with %d rows got %d labels", len(rows), len(labels))
	}
	if len(rows) > 0 {
		width := len(rows[0])
		for i, r := range rows {
			if len(r) != width {
				return nil, fmt.Errorf("row %d has %d values, expected %d", i, len(r), width)
			}
		}
	}
	return &memoryDataset{rows, labels}, nil
}

func (md *memoryDataset) Rows(ctx context.Context) ([]Row, error) {
	return md.rows, nil
}

func (md *memoryDataset) Labels(ctx context.Context) ([]feature.Value, error) {
	return md.labels, nil
}

func (md *memoryDataset) Count(ctx context.Context) (int, error) {
	return len(md.rows), nil
}

func (md *memoryDataset) Empty(ctx context.Context) (bool, error) {
	return len(md.rows) == 0, nil
}

/*
Partition takes a predicate and returns two disjoint datasets: the
first with the rows satisfying the predicate, the second with the rest.
The counts of both groups always add up to the count of the receiver,
and labels stay aligned with their rows on both sides.
*/
func (md *memoryDataset) Partition(ctx context.Context, pred Predicate) (Dataset, Dataset, error) {
	if pred == nil {
		return nil, nil, fmt.Errorf("cannot partition dataset with nil predicate")
	}
	a := &memoryDataset{}
	b := &memoryDataset{}
	if md.labels != nil {
		a.labels = []feature.Value{}
		b.labels = []feature.Value{}
	}
	for i, r := range md.rows {
		g := b
		if pred(r) {
			g = a
		}
		g.rows = append(g.rows, r)
		if md.labels != nil {
			g.labels = append(g.labels, md.labels[i])
		}
	}
	return a, b, nil
}

/*
Merge takes another dataset and returns a new dataset with the rows of
the receiver followed by the rows of the other dataset, labels included.
It returns an error if the row widths differ or if only one of the two
datasets is labeled.
*/
func (md *memoryDataset) Merge(ctx context.Context, other Dataset) (Dataset, error) {
	oRows, err := other.Rows(ctx)
	if err != nil {
		return nil, err
	}
	oLabels, err := other.Labels(ctx)
	if err != nil {
		return nil, err
	}
	if len(md.rows) > 0 && len(oRows) > 0 && len(md.rows[0]) != len(oRows[0]) {
		return nil, fmt.Errorf("cannot merge dataset of width %d with dataset of width %d", len(md.rows[0]), len(oRows[0]))
	}
	if (md.labels == nil) != (oLabels == nil) && len(md.rows) > 0 && len(oRows) > 0 {
		return nil, fmt.Errorf("cannot merge labeled and unlabeled datasets")
	}
	rows := make([]Row, 0, len(md.rows)+len(oRows))
	rows = append(rows, md.rows...)
	rows = append(rows, oRows...)
	var labels []feature.Value
	if md.labels != nil || oLabels != nil {
		labels = make([]feature.Value, 0, len(md.labels)+len(oLabels))
		labels = append(labels, md.labels...)
		labels = append(labels, oLabels...)
	}
	return &memoryDataset{rows, labels}, nil
}
