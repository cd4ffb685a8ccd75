package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// Frequencies maps each distinct symbol of an input sequence to its number of
// occurrences.  Symbols that do not occur in the input are absent.
type Frequencies[S Symbol] struct {
	counts map[S]uint64
	order  []S
	total  uint64
}

// CountFrequencies counts the occurrences of each symbol in symbols.
func CountFrequencies[S Symbol](symbols []S) *Frequencies[S] {
	f := &Frequencies[S]{counts: make(map[S]uint64)}
	for _, symbol := range symbols {
		count, found := f.counts[symbol]
		if !found {
			f.order = append(f.order, symbol)
		}
		f.counts[symbol] = count + 1
	}
	f.total = uint64(len(symbols))
	return f
}

// CountString counts the occurrences of each rune in text.
func CountString(text string) *Frequencies[rune] {
	return CountFrequencies([]rune(text))
}

// Count returns the number of occurrences of symbol.  The second return value
// is false if symbol never occurs.
func (f *Frequencies[S]) Count(symbol S) (uint64, bool) {
	count, found := f.counts[symbol]
	return count, found
}

// Len returns the number of distinct symbols.
func (f *Frequencies[S]) Len() int {
	return len(f.order)
}

// Total returns the sum of all counts, i.e. the length of the input.
func (f *Frequencies[S]) Total() uint64 {
	return f.total
}

// Symbols returns the distinct symbols in order of first occurrence.
func (f *Frequencies[S]) Symbols() []S {
	out := make([]S, len(f.order))
	copy(out, f.order)
	return out
}

// Dump writes a programmer-readable debugging dump of the Frequencies to the
// given writer.
func (f *Frequencies[S]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Frequencies{\n")
	fmt.Fprintf(&buf, "\tTotal() = %d\n", f.total)
	for _, symbol := range f.order {
		fmt.Fprintf(&buf, "\tCount(%s) = %d\n", formatSymbol(symbol), f.counts[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
