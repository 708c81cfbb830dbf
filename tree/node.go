package tree

import (
	"fmt"

	"github.com/MacGruber91/ML/dataset"
	"github.com/MacGruber91/ML/feature"
)

/*
Node is a node of a binary decision tree: either a *Comparison
decision node or a terminal *Leaf.

Its Parent method returns a non-owning reference to the node it hangs
from, nil for the root; ownership always flows parent to child.
*/
type Node interface {
	Parent() Node
	setParent(Node)
}

/*
Comparison is an internal decision node: it compares the value of one
column of a sample against its split value to select the left or the
right child.

While a comparison is being developed it carries the two row-groups
produced by partitioning its input dataset on the split value. The
groups are consumed exactly once, when the node is split, so that no
node retains training data once both its children are attached.
*/
type Comparison struct {
	column      int
	value       feature.Value
	decrease    float64
	left, right Node
	parent      Node
	groups      *rowGroups
}

type rowGroups struct {
	left, right dataset.Dataset
}

/*
NewComparison takes a column index, the split value for that column, the
impurity decrease achieved by the split and the two row-groups produced
by partitioning the input dataset on the value, and returns a comparison
node carrying them. The groups are kept only until the node is split.
*/
func NewComparison(column int, value feature.Value, decrease float64, left, right dataset.Dataset) *Comparison {
	return &Comparison{
		column:   column,
		value:    value,
		decrease: decrease,
		groups:   &rowGroups{left, right},
	}
}

/*
Column returns the index of the column the comparison splits on.
*/
func (c *Comparison) Column() int {
	return c.column
}

/*
Value returns the split value. Its dynamic type drives the search
semantics: a string value branches left on exact equality, a numeric
value branches left when the sample value is smaller.
*/
func (c *Comparison) Value() feature.Value {
	return c.value
}

/*
ImpurityDecrease returns the impurity decrease the split achieved,
attributed to the split column when ranking feature importances.
*/
func (c *Comparison) ImpurityDecrease() float64 {
	return c.decrease
}

// Left returns the left child, nil until one is attached.
func (c *Comparison) Left() Node {
	return c.left
}

// Right returns the right child, nil until one is attached.
func (c *Comparison) Right() Node {
	return c.right
}

/*
TakeGroups returns the two row-groups stored on the node and releases
them, so training data is never retained once a node has been
developed. Calling it again returns nil datasets.
*/
func (c *Comparison) TakeGroups() (dataset.Dataset, dataset.Dataset) {
	g := c.groups
	c.groups = nil
	if g == nil {
		return nil, nil
	}
	return g.left, g.right
}

/*
AttachLeft hangs a node as the left child of the comparison and points
the child back at it.
*/
func (c *Comparison) AttachLeft(n Node) {
	c.left = n
	if n != nil {
		n.setParent(c)
	}
}

/*
AttachRight hangs a node as the right child of the comparison and
points the child back at it. The same node may be attached on both
sides: a degenerate split shares one leaf between its two edges.
*/
func (c *Comparison) AttachRight(n Node) {
	c.right = n
	if n != nil {
		n.setParent(c)
	}
}

// Parent returns the node this comparison hangs from, nil for the root.
func (c *Comparison) Parent() Node {
	return c.parent
}

func (c *Comparison) setParent(n Node) {
	c.parent = n
}

func (c *Comparison) String() string {
	if v, ok := c.value.(string); ok {
		return fmt.Sprintf("{ column %d is %s }", c.column, v)
	}
	return fmt.Sprintf("{ column %d < %v }", c.column, c.value)
}

/*
Leaf is a terminal node holding the prediction for every sample whose
comparisons from the root lead to it.
*/
type Leaf struct {
	prediction *Prediction
	parent     Node
}

/*
NewLeaf takes a prediction and returns a leaf node holding it.
*/
func NewLeaf(p *Prediction) *Leaf {
	return &Leaf{prediction: p}
}

// Prediction returns the prediction the leaf holds.
func (l *Leaf) Prediction() *Prediction {
	return l.prediction
}

// Parent returns the node this leaf hangs from, nil for a bare-leaf tree.
func (l *Leaf) Parent() Node {
	return l.parent
}

func (l *Leaf) setParent(n Node) {
	l.parent = n
}

func (l *Leaf) String() string {
	return fmt.Sprintf("{ %v }", l.prediction)
}
