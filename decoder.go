package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// Decoder maps Huffman codes back to symbols.
type Decoder[S Symbol] struct {
	table   map[Code]decoderData[S]
	minSize byte
	maxSize byte
}

// NewDecoder builds the inverse of a CodeTable.  Besides the code of every
// symbol, the Decoder knows every proper prefix of those codes, so that it can
// tell an incomplete code from one that can never match.
func NewDecoder[S Symbol](ct *CodeTable[S]) *Decoder[S] {
	// len(table) is approximately n×log2(n) when filled.
	numSymbols := uint64(ct.Len())
	numTableSlots := numSymbols * log2uint64(numSymbols)

	d := &Decoder[S]{
		table:   make(map[Code]decoderData[S], numTableSlots),
		minSize: ct.minSize,
		maxSize: ct.maxSize,
	}
	for _, symbol := range ct.order {
		fillTable(d.table, symbol, ct.codes[symbol])
	}
	return d
}

// Decode attempts to decode a Huffman code into a symbol.
//
// If the Decode is completely successful, ok is true and minSize == maxSize
// == hc.Size.
//
// If hc is a proper prefix of one or more codes, ok is false and at least
// (minSize - hc.Size) additional bits are required to decode a symbol.  No
// more than (maxSize - hc.Size) additional bits will be required.
//
// If hc is not a prefix of any code, ok is false and minSize == maxSize == 0.
//
func (d *Decoder[S]) Decode(hc Code) (symbol S, ok bool, minSize byte, maxSize byte) {
	dd, found := d.table[hc]
	if !found {
		return symbol, false, 0, 0
	}
	return dd.symbol, dd.leaf, dd.minSize, dd.maxSize
}

// MinSize is the bit length of the shortest legal code.
func (d *Decoder[S]) MinSize() byte {
	return d.minSize
}

// MaxSize is the bit length of the longest legal code.
func (d *Decoder[S]) MaxSize() byte {
	return d.maxSize
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d *Decoder[S]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", d.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", d.maxSize)
	keys := make([]Code, 0, len(d.table))
	for hc := range d.table {
		keys = append(keys, hc)
	}
	Sort(keys, codeLess)
	for _, hc := range keys {
		dd := d.table[hc]
		if dd.leaf {
			fmt.Fprintf(&buf, "\tDecode(%s) = {%s, %d, %d}\n", hc, formatSymbol(dd.symbol), dd.minSize, dd.maxSize)
		} else {
			fmt.Fprintf(&buf, "\tDecode(%s) = {nil, %d, %d}\n", hc, dd.minSize, dd.maxSize)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// Decode reconstructs the symbol sequence packed in enc.
//
// The bits are scanned in order, each one appended to a candidate code; as
// soon as the candidate is the code of a symbol, that symbol is emitted and
// the candidate starts over.  Returns ErrCorruptBuffer if the candidate stops
// being a prefix of any code, or if bits run out in the middle of a code.
//
func Decode[S Symbol](enc *Encoding[S]) ([]S, error) {
	if enc == nil || enc.Table == nil {
		return nil, ErrNoCodeTable
	}

	d := NewDecoder(enc.Table)
	numBits := enc.Buffer.Len()
	out := make([]S, 0, numBits/uint64(d.maxSize|1))

	var hc Code
	for i := uint64(0); i < numBits; i++ {
		hc = hc.Append(enc.Buffer.Bit(i))
		symbol, ok, minSize, _ := d.Decode(hc)
		switch {
		case ok:
			out = append(out, symbol)
			hc = Code{}
		case minSize == 0:
			return nil, fmt.Errorf("bits %s ending at bit %d match no code: %w", hc, i, ErrCorruptBuffer)
		}
	}

	if hc.Size != 0 {
		return nil, fmt.Errorf("%d trailing bits %s do not complete a code: %w", hc.Size, hc, ErrCorruptBuffer)
	}
	return out, nil
}

// DecodeString decodes an Encoding produced by EncodeString.
func DecodeString(enc *Encoding[rune]) (string, error) {
	runes, err := Decode(enc)
	if err != nil {
		return "", err
	}
	return string(runes), nil
}

type decoderData[S Symbol] struct {
	symbol  S
	leaf    bool
	minSize byte
	maxSize byte
}

func fillTable[S Symbol](table map[Code]decoderData[S], symbol S, hc Code) {
	dd := decoderData[S]{symbol, true, hc.Size, hc.Size}
	table[hc] = dd

	for hc.Size != 0 {
		// For each hc "xxx...a", compute "xxx...A" where A = NOT a.

		bit := uint64(1) << (hc.Size - 1)
		hc.Bits ^= bit

		// Merge the dd's from "xxx...a" (dd) and "xxx...A" (ddSibling)
		// into ddNew (the new parent for dd and ddSibling).

		ddNew := decoderData[S]{minSize: dd.minSize, maxSize: dd.maxSize}
		if ddSibling, found := table[hc]; found {
			if ddNew.minSize > ddSibling.minSize {
				ddNew.minSize = ddSibling.minSize
			}
			if ddNew.maxSize < ddSibling.maxSize {
				ddNew.maxSize = ddSibling.maxSize
			}
		}

		// Mutate hc from "xxx...A" to "xxx...".

		hc.Size--
		hc.Bits &^= bit

		// If table[hc] already equals ddNew, we can stop recursing.

		if ddOld, found := table[hc]; found && ddOld == ddNew {
			break
		}

		// Update table[hc] with ddNew and continue recursing.

		table[hc] = ddNew
		dd = ddNew
	}
}
