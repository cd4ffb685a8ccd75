package huffman

import (
	"fmt"
	"strconv"
)

// Symbol is the constraint satisfied by the symbols of an alphabet.  Any
// comparable type will do; text is coded as a sequence of runes.
type Symbol interface {
	comparable
}

// NodeID is a handle to a node stored in a Tree.
type NodeID int32

// InvalidNode is returned by some functions to clearly indicate that no node
// is being returned.
const InvalidNode = NodeID(-1)

func formatSymbol(symbol interface{}) string {
	switch x := symbol.(type) {
	case rune:
		return strconv.QuoteRune(x)
	case byte:
		return strconv.QuoteRuneToASCII(rune(x))
	case string:
		return strconv.Quote(x)
	default:
		return fmt.Sprintf("%v", x)
	}
}
