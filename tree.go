package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Tree is a Huffman code tree.  Nodes live in an arena owned by the Tree and
// refer to their children by NodeID.  A Tree is never modified once BuildTree
// returns it, so it may be shared freely between goroutines.
type Tree[S Symbol] struct {
	nodes []node[S]
	root  NodeID
}

type node[S Symbol] struct {
	symbol S
	weight uint64
	left   NodeID
	right  NodeID
}

func (n node[S]) isLeaf() bool {
	return n.left == InvalidNode
}

// NewTree counts the symbols in symbols and builds the Huffman tree for them.
func NewTree[S Symbol](symbols []S) (*Tree[S], error) {
	return BuildTree(CountFrequencies(symbols))
}

// BuildTree builds the Huffman tree for the given frequencies.  Every distinct
// symbol appears as exactly one leaf, weighted by its count.
//
// Returns ErrEmptyInput if there are no symbols.  A single distinct symbol
// yields a tree consisting of just that leaf.
//
func BuildTree[S Symbol](freqs *Frequencies[S]) (*Tree[S], error) {
	numLeaves := freqs.Len()
	if numLeaves == 0 {
		return nil, fmt.Errorf("cannot build Huffman tree: %w", ErrEmptyInput)
	}

	t := &Tree[S]{
		nodes: make([]node[S], 0, 2*numLeaves-1),
		root:  InvalidNode,
	}

	// Step 1: one leaf per distinct symbol, sorted by weight.

	leaves := make([]NodeID, 0, numLeaves)
	for _, symbol := range freqs.order {
		leaves = append(leaves, t.add(node[S]{
			symbol: symbol,
			weight: freqs.counts[symbol],
			left:   InvalidNode,
			right:  InvalidNode,
		}))
	}
	Sort(leaves, t.lessByWeight)

	// Step 2: repeatedly merge the two lightest nodes.  Merged nodes come
	// out in non-decreasing weight order, so a FIFO of merged nodes next
	// to the sorted leaves behaves as a priority queue.

	q := minQueues[NodeID]{
		first:  leaves,
		second: make([]NodeID, 0, numLeaves-1),
		less:   t.lessByWeight,
	}
	for q.Len() > 1 {
		a := q.TakeMin()
		b := q.TakeMin()
		q.Push(t.add(node[S]{
			weight: t.nodes[a].weight + t.nodes[b].weight,
			left:   a,
			right:  b,
		}))
	}

	t.root = q.TakeMin()
	return t, nil
}

func (t *Tree[S]) add(n node[S]) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, n)
	return id
}

func (t *Tree[S]) lessByWeight(a, b NodeID) bool {
	return t.nodes[a].weight < t.nodes[b].weight
}

func (t *Tree[S]) get(id NodeID) node[S] {
	assert.Assertf(id >= 0 && int(id) < len(t.nodes), "NodeID %d out of range [0, %d)", id, len(t.nodes))
	return t.nodes[id]
}

// Root returns the root node of the tree.
func (t *Tree[S]) Root() NodeID {
	return t.root
}

// Len returns the total number of nodes, leaves and internal.
func (t *Tree[S]) Len() int {
	return len(t.nodes)
}

// IsLeaf returns true iff id is a leaf node.
func (t *Tree[S]) IsLeaf(id NodeID) bool {
	return t.get(id).isLeaf()
}

// Weight returns the weight of a node: the count of a leaf's symbol, or the
// sum of an internal node's children's weights.
func (t *Tree[S]) Weight(id NodeID) uint64 {
	return t.get(id).weight
}

// Symbol returns the symbol of a leaf node.  The second return value is false
// for internal nodes.
func (t *Tree[S]) Symbol(id NodeID) (S, bool) {
	n := t.get(id)
	if !n.isLeaf() {
		var zero S
		return zero, false
	}
	return n.symbol, true
}

// Children returns the left and right children of an internal node, or
// (InvalidNode, InvalidNode) for a leaf.
func (t *Tree[S]) Children(id NodeID) (left NodeID, right NodeID) {
	n := t.get(id)
	return n.left, n.right
}

// Leaves returns the weight of every leaf, keyed by symbol.
func (t *Tree[S]) Leaves() map[S]uint64 {
	out := make(map[S]uint64, (len(t.nodes)+1)/2)
	for _, n := range t.nodes {
		if n.isLeaf() {
			out[n.symbol] = n.weight
		}
	}
	return out
}

// Depth returns the number of edges on the longest root-to-leaf path.
func (t *Tree[S]) Depth() int {
	type stackItem struct {
		id    NodeID
		depth int
	}

	var maxDepth int
	stack := []stackItem{{t.root, 0}}
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.nodes[top.id]
		if n.isLeaf() {
			if maxDepth < top.depth {
				maxDepth = top.depth
			}
			continue
		}
		stack = append(stack, stackItem{n.left, top.depth + 1}, stackItem{n.right, top.depth + 1})
	}
	return maxDepth
}

// Dump writes a programmer-readable debugging dump of the Tree to the given
// writer, one line per node in pre-order.
func (t *Tree[S]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	t.dumpNode(&buf, t.root, 1)
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func (t *Tree[S]) dumpNode(buf *bytes.Buffer, id NodeID, indent int) {
	n := t.nodes[id]
	for i := 0; i < indent; i++ {
		buf.WriteByte('\t')
	}
	if n.isLeaf() {
		fmt.Fprintf(buf, "%s: %d\n", formatSymbol(n.symbol), n.weight)
		return
	}
	fmt.Fprintf(buf, "*: %d\n", n.weight)
	t.dumpNode(buf, n.left, indent+1)
	t.dumpNode(buf, n.right, indent+1)
}
