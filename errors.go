package huffman

import (
	"errors"
)

var (
	// ErrEmptyInput is returned when a tree or an encoding is requested for
	// a sequence without any symbols.
	ErrEmptyInput = errors.New("empty input")

	// ErrSymbolNotInTable is returned when a symbol has no code in the
	// CodeTable used to encode it.
	ErrSymbolNotInTable = errors.New("symbol not in code table")

	// ErrCorruptBuffer is returned when the packed bits do not decode
	// cleanly with the code table they were given.
	ErrCorruptBuffer = errors.New("corrupt Huffman buffer")

	// ErrNoCodeTable is returned when decoding an Encoding without a
	// CodeTable.
	ErrNoCodeTable = errors.New("no code table")

	// ErrCodeTooLong is returned when a Huffman tree is too deep for its
	// codes to fit in MaxBitsPerCode bits.
	ErrCodeTooLong = errors.New("Huffman code too long")
)
