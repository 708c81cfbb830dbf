/*
Package ml grows CART binary decision trees from labeled tabular data.

The tree package holds the growing engine and the node model, the
dataset package the data they consume, and the feature package the
column schema. This package supplies the stock learning strategies: an
exhaustive best-split search over pluggable impurity measures and the
majority/mean termination strategies for classification and regression.
*/
package ml

import (
	"fmt"

	"github.com/MacGruber91/ML/feature"
	"github.com/MacGruber91/ML/tree"
)

/*
Classification takes a schema and the depth and leaf-size limits and
returns a bare classification tree for it: Gini impurity split search
plus majority-label leaves. The tree predicts the schema's label column
from its feature columns.
*/
func Classification(schema *feature.Schema, maxDepth, maxLeafSize int) (*tree.Tree, error) {
	return tree.New(NewBestSplitter(schema.Columns(), Gini), MajorityTerminator{}, maxDepth, maxLeafSize)
}

/*
Regression takes a schema and the depth and leaf-size limits and
returns a bare regression tree for it: variance-reduction split search
plus mean-label leaves.
*/
func Regression(schema *feature.Schema, maxDepth, maxLeafSize int) (*tree.Tree, error) {
	return tree.New(NewBestSplitter(schema.Columns(), Variance), MeanTerminator{}, maxDepth, maxLeafSize)
}

/*
NewTree takes a schema, the name of an impurity measure (gini, entropy
or variance) and the depth and leaf-size limits and returns a bare tree
combining the named measure with the matching termination strategy:
mean leaves for variance, majority leaves otherwise.
*/
func NewTree(schema *feature.Schema, impurity string, maxDepth, maxLeafSize int) (*tree.Tree, error) {
	switch impurity {
	case "gini":
		return tree.New(NewBestSplitter(schema.Columns(), Gini), MajorityTerminator{}, maxDepth, maxLeafSize)
	case "entropy":
		return tree.New(NewBestSplitter(schema.Columns(), Entropy), MajorityTerminator{}, maxDepth, maxLeafSize)
	case "variance":
		return tree.New(NewBestSplitter(schema.Columns(), Variance), MeanTerminator{}, maxDepth, maxLeafSize)
	}
	return nil, fmt.Errorf("unknown impurity measure %q", impurity)
}
