package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// Encoding is the result of Huffman-coding a symbol sequence: the packed
// bits, and the CodeTable needed to decode them.
type Encoding[S Symbol] struct {
	Buffer PackedBuffer
	Table  *CodeTable[S]
}

// Encode builds the Huffman code for symbols and packs symbols with it.
//
// Returns ErrEmptyInput if symbols is empty.  If symbols contains only one
// distinct symbol, every occurrence is coded as a single 0 bit.
//
func Encode[S Symbol](symbols []S) (*Encoding[S], error) {
	tree, err := NewTree(symbols)
	if err != nil {
		return nil, err
	}
	table, err := NewCodeTable(tree)
	if err != nil {
		return nil, err
	}
	return EncodeWithTable(table, symbols)
}

// EncodeString encodes the runes of text.
func EncodeString(text string) (*Encoding[rune], error) {
	return Encode([]rune(text))
}

// EncodeWithTable packs symbols using an existing CodeTable.  Returns
// ErrSymbolNotInTable if some symbol has no code in table.
func EncodeWithTable[S Symbol](table *CodeTable[S], symbols []S) (*Encoding[S], error) {
	if table == nil {
		return nil, ErrNoCodeTable
	}

	enc := &Encoding[S]{Table: table}
	for index, symbol := range symbols {
		hc, found := table.Lookup(symbol)
		if !found {
			return nil, fmt.Errorf("symbol %s at index %d: %w", formatSymbol(symbol), index, ErrSymbolNotInTable)
		}
		enc.Buffer.AddCode(hc)
	}
	return enc, nil
}

// Decode decodes the packed bits of this Encoding.
func (enc *Encoding[S]) Decode() ([]S, error) {
	return Decode(enc)
}

// Dump writes a programmer-readable debugging dump of the Encoding to the
// given writer.
func (enc *Encoding[S]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoding{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", enc.Buffer.Len())
	for index, word := range enc.Buffer.Words() {
		fmt.Fprintf(&buf, "\tWords()[%d] = 0x%016x\n", index, word)
	}
	buf.WriteString("}\n")
	n, err := buf.WriteTo(w)
	if err != nil || enc.Table == nil {
		return n, err
	}
	m, err := enc.Table.Dump(w)
	return n + m, err
}
