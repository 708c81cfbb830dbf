package tree

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/MacGruber91/ML/dataset"
)

// ConfigurationError represents an error in the limits a tree is built with
type ConfigurationError string

/*
ErrInvalidConfiguration is the error returned when constructing a tree
with a maximum depth or a maximum leaf size below 1, or without
strategies. No tree is produced in that case.
*/
const ErrInvalidConfiguration = ConfigurationError("invalid tree configuration")

func (ce ConfigurationError) Error() string {
	return string(ce)
}

// Denominator used instead of a zero impurity-decrease total when
// normalizing feature importances.
const importanceEpsilon = 1e-12

/*
Tree is a binary decision tree grown by recursively splitting a labeled
dataset. It is composed of a split strategy that chooses comparison
nodes, a termination strategy that closes branches with leaves, and the
maximum depth and maximum leaf size limits fixed at construction.

A tree is grown once per Grow call (re-growing replaces the previous
root) and can then be queried any number of times. It performs no
internal locking: callers must not run Grow concurrently with any other
method on the same tree.
*/
type Tree struct {
	splitter    Splitter
	terminator  Terminator
	maxDepth    int
	maxLeafSize int
	root        Node
	splits      int
}

/*
New takes a split strategy, a termination strategy, a maximum depth and
a maximum leaf size and returns a bare tree configured with them. It
returns an error wrapping ErrInvalidConfiguration if either limit is
below 1 or either strategy is nil.
*/
func New(splitter Splitter, terminator Terminator, maxDepth, maxLeafSize int) (*Tree, error) {
	if splitter == nil {
		return nil, fmt.Errorf("%w: split strategy is nil", ErrInvalidConfiguration)
	}
	if terminator == nil {
		return nil, fmt.Errorf("%w: termination strategy is nil", ErrInvalidConfiguration)
	}
	if maxDepth < 1 {
		return nil, fmt.Errorf("%w: maximum depth must be at least 1, got %d", ErrInvalidConfiguration, maxDepth)
	}
	if maxLeafSize < 1 {
		return nil, fmt.Errorf("%w: maximum leaf size must be at least 1, got %d", ErrInvalidConfiguration, maxLeafSize)
	}
	return &Tree{
		splitter:    splitter,
		terminator:  terminator,
		maxDepth:    maxDepth,
		maxLeafSize: maxLeafSize,
	}, nil
}

/*
Grow takes a context and a labeled dataset and grows the tree from it:
it requests the root comparison from the split strategy at depth 0 and
then develops it recursively. Growing an already grown tree replaces
its root and resets its split count. Errors returned by the strategies
or the dataset propagate unmodified.
*/
func (t *Tree) Grow(ctx context.Context, s dataset.Dataset) error {
	root, err := t.splitter.FindBestSplit(ctx, s, 0)
	if err != nil {
		return err
	}
	t.root = root
	t.splits = 1
	return t.split(ctx, root, 1)
}

/*
split develops a comparison node: it consumes the node's row-groups and
either closes both sides with leaves or asks the split strategy for
further comparisons and recurses into them.

Depth is measured in splits from the root: the root is developed at
depth 1, so with a maximum depth of 1 both its children are always
leaves.
*/
func (t *Tree) split(ctx context.Context, n *Comparison, depth int) error {
	left, right := n.TakeGroups()
	if left == nil || right == nil {
		return fmt.Errorf("developing node at depth %d: comparison node carries no row-groups", depth)
	}
	lEmpty, err := left.Empty(ctx)
	if err != nil {
		return err
	}
	rEmpty, err := right.Empty(ctx)
	if err != nil {
		return err
	}
	if lEmpty || rEmpty {
		// Degenerate split: every row went to one side. The branch
		// terminates with a single leaf grown from the whole input,
		// shared by both child edges.
		merged, err := left.Merge(ctx, right)
		if err != nil {
			return err
		}
		leaf, err := t.terminator.Terminate(ctx, merged, depth)
		if err != nil {
			return err
		}
		n.AttachLeft(leaf)
		n.AttachRight(leaf)
		return nil
	}
	if depth >= t.maxDepth {
		leaf, err := t.terminator.Terminate(ctx, left, depth)
		if err != nil {
			return err
		}
		n.AttachLeft(leaf)
		leaf, err = t.terminator.Terminate(ctx, right, depth)
		if err != nil {
			return err
		}
		n.AttachRight(leaf)
		return nil
	}
	err = t.splitSide(ctx, left, depth, n.AttachLeft)
	if err != nil {
		return err
	}
	return t.splitSide(ctx, right, depth, n.AttachRight)
}

/*
splitSide develops one side of a comparison node independently of the
other: groups larger than the maximum leaf size are split further,
smaller ones are closed with a leaf.
*/
func (t *Tree) splitSide(ctx context.Context, s dataset.Dataset, depth int, attach func(Node)) error {
	count, err := s.Count(ctx)
	if err != nil {
		return err
	}
	if count > t.maxLeafSize {
		child, err := t.splitter.FindBestSplit(ctx, s, depth)
		if err != nil {
			return err
		}
		attach(child)
		t.splits++
		return t.split(ctx, child, depth+1)
	}
	leaf, err := t.terminator.Terminate(ctx, s, depth)
	if err != nil {
		return err
	}
	attach(leaf)
	return nil
}

/*
Search takes a sample and walks the tree from the root comparing the
sample value at each comparison's column against its split value: a
string split value selects the left child on exact equality and the
right child otherwise, while a numeric split value selects the left
child when the sample value is smaller and the right child otherwise.
It returns the leaf the walk ends on, or nil if the tree is bare or the
walk reaches a node it cannot interpret.
*/
func (t *Tree) Search(sample dataset.Row) *Leaf {
	n := t.root
	for n != nil {
		switch node := n.(type) {
		case *Leaf:
			return node
		case *Comparison:
			column := node.Column()
			if column < 0 || column >= len(sample) {
				return nil
			}
			n = node.selectChild(sample[column])
		default:
			return nil
		}
	}
	return nil
}

func (c *Comparison) selectChild(v interface{}) Node {
	if sv, ok := c.value.(string); ok {
		if v == sv {
			return c.left
		}
		return c.right
	}
	threshold, ok := numeric(c.value)
	if !ok {
		// Split values are either categorical or numeric; anything
		// else ends the walk.
		return nil
	}
	sample, ok := numeric(v)
	if ok && sample < threshold {
		return c.left
	}
	return c.right
}

func numeric(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

/*
Complexity returns the number of comparison nodes created while growing
the tree, that is, the number of decisions the tree makes, not its
total node count.
*/
func (t *Tree) Complexity() int {
	return t.splits
}

// Bare returns true for a tree that has not been grown yet.
func (t *Tree) Bare() bool {
	return t.root == nil
}

// Root returns the root node of the tree, nil while the tree is bare.
func (t *Tree) Root() Node {
	return t.root
}

/*
FeatureImportance ranks one column by the total impurity decrease the
tree's splits on it achieved, normalized over all splits.
*/
type FeatureImportance struct {
	Column     int
	Importance float64
}

/*
FeatureImportances traverses the whole tree accumulating the impurity
decrease of every comparison node by its column, normalizes the totals
so they add up to 1 and returns them sorted by importance descending.
Columns tied on importance keep the order in which the traversal first
encountered them. A bare tree yields no importances.
*/
func (t *Tree) FeatureImportances() []FeatureImportance {
	if t.root == nil {
		return nil
	}
	totals := make(map[int]float64)
	var order []int
	for _, n := range Dump(t.root) {
		c, ok := n.(*Comparison)
		if !ok {
			continue
		}
		if _, seen := totals[c.Column()]; !seen {
			order = append(order, c.Column())
		}
		totals[c.Column()] += c.ImpurityDecrease()
	}
	var total float64
	for _, d := range totals {
		total += d
	}
	if total == 0 {
		total = importanceEpsilon
	}
	result := make([]FeatureImportance, 0, len(order))
	for _, column := range order {
		result = append(result, FeatureImportance{Column: column, Importance: totals[column] / total})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Importance > result[j].Importance
	})
	return result
}

/*
Dump takes a node and returns the flat slice of all nodes reachable
from it in pre-order: the node itself, then its left subtree, then its
right subtree. A leaf dumps as a singleton. The shared leaf of a
degenerate split appears once per edge leading to it.
*/
func Dump(n Node) []Node {
	if n == nil {
		return nil
	}
	nodes := []Node{n}
	if c, ok := n.(*Comparison); ok {
		nodes = append(nodes, Dump(c.Left())...)
		nodes = append(nodes, Dump(c.Right())...)
	}
	return nodes
}

func (t *Tree) String() string {
	if t.root == nil {
		return "(bare tree)\n"
	}
	return subtreeString(t.root)
}

func subtreeString(n Node) string {
	result := fmt.Sprintf("%v\n", n)
	c, ok := n.(*Comparison)
	if !ok {
		return result
	}
	children := []Node{c.Left(), c.Right()}
	for i, child := range children {
		if child == nil {
			continue
		}
		for j, line := range strings.Split(subtreeString(child), "\n") {
			if len(line) == 0 {
				continue
			}
			if j == 0 {
				result = fmt.Sprintf("%s|__%s\n", result, line)
			} else if i == len(children)-1 {
				result = fmt.Sprintf("%s   %s\n", result, line)
			} else {
				result = fmt.Sprintf("%s|  %s\n", result, line)
			}
		}
	}
	return result
}
