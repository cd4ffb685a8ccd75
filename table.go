package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// CodeTable maps each symbol of a Huffman tree to its Code.  A CodeTable is
// read-only once built.
type CodeTable[S Symbol] struct {
	codes   map[S]Code
	order   []S
	minSize byte
	maxSize byte
}

// NewCodeTable derives the code of every leaf in tree from its root-to-leaf
// path: going left appends a 0 bit, going right appends a 1 bit.
//
// A tree consisting of a single leaf assigns that symbol the one-bit code
// "0".  Returns ErrCodeTooLong if the tree is deeper than MaxBitsPerCode.
//
func NewCodeTable[S Symbol](tree *Tree[S]) (*CodeTable[S], error) {
	numLeaves := (tree.Len() + 1) / 2
	ct := &CodeTable[S]{
		codes: make(map[S]Code, numLeaves),
		order: make([]S, 0, numLeaves),
	}

	// Each stack item carries its own copy of the code accumulated on the
	// way down, so the two children of a node never share state.

	type stackItem struct {
		id NodeID
		hc Code
	}

	stack := make([]stackItem, 0, log2uint64(uint64(numLeaves))+1)
	stack = append(stack, stackItem{tree.root, Code{}})
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := tree.nodes[top.id]
		if n.isLeaf() {
			hc := top.hc
			if hc.Size == 0 {
				hc = MakeCode(1, 0)
			}
			ct.add(n.symbol, hc)
			continue
		}

		if top.hc.Size >= MaxBitsPerCode {
			return nil, fmt.Errorf("tree depth exceeds %d bits: %w", MaxBitsPerCode, ErrCodeTooLong)
		}

		// Push right first so that the left subtree is visited first.
		stack = append(stack,
			stackItem{n.right, top.hc.Append(1)},
			stackItem{n.left, top.hc.Append(0)})
	}
	return ct, nil
}

func (ct *CodeTable[S]) add(symbol S, hc Code) {
	if len(ct.order) == 0 {
		ct.minSize = hc.Size
		ct.maxSize = hc.Size
	} else if ct.minSize > hc.Size {
		ct.minSize = hc.Size
	} else if ct.maxSize < hc.Size {
		ct.maxSize = hc.Size
	}
	ct.codes[symbol] = hc
	ct.order = append(ct.order, symbol)
}

// Lookup returns the Code for symbol.  The second return value is false if
// symbol has no code in this table.
func (ct *CodeTable[S]) Lookup(symbol S) (Code, bool) {
	hc, found := ct.codes[symbol]
	return hc, found
}

// Len returns the number of symbols in the table.
func (ct *CodeTable[S]) Len() int {
	return len(ct.order)
}

// Symbols returns the symbols of the table, in left-to-right leaf order.
func (ct *CodeTable[S]) Symbols() []S {
	out := make([]S, len(ct.order))
	copy(out, ct.order)
	return out
}

// MinSize is the bit length of the shortest code.
func (ct *CodeTable[S]) MinSize() byte {
	return ct.minSize
}

// MaxSize is the bit length of the longest code.
func (ct *CodeTable[S]) MaxSize() byte {
	return ct.maxSize
}

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer.  Entries are listed by code.
func (ct *CodeTable[S]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	keys := ct.Symbols()
	Sort(keys, func(a, b S) bool {
		return codeLess(ct.codes[a], ct.codes[b])
	})
	for _, symbol := range keys {
		fmt.Fprintf(&buf, "\tLookup(%s) = %s\n", formatSymbol(symbol), ct.codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
