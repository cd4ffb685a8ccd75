package huffman

import (
	"fmt"
	mathbits "math/bits"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// MaxBitsPerCode is the length of the longest representable Code.
const MaxBitsPerCode = 64

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The least significant bit
	// of Bits is the first bit.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	assert.Assertf(size <= MaxBitsPerCode, "size %d > MaxBitsPerCode %d", size, MaxBitsPerCode)
	return Code{Size: size, Bits: bits & lowMask(size)}
}

// MakeReversedCode constructs a Code from a sequence of bits that's in the
// wrong order, i.e. the least significant bit is the *last* bit in the
// sequence, instead of the first.
func MakeReversedCode(size byte, bits uint64) Code {
	return MakeCode(size, reverseBits(size, bits))
}

// Reversed returns the corresponding Code with the bits in reverse order.
func (hc Code) Reversed() Code {
	return MakeReversedCode(hc.Size, hc.Bits)
}

// Append returns the Code that is one bit longer than hc, with bit as its
// last bit.
func (hc Code) Append(bit uint) Code {
	assert.Assertf(hc.Size < MaxBitsPerCode, "cannot append to a %d-bit code", hc.Size)
	return Code{Size: hc.Size + 1, Bits: hc.Bits | uint64(bit&1)<<hc.Size}
}

// HasPrefix returns true iff the first prefix.Size bits of hc are prefix.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	return hc.Bits&lowMask(prefix.Size) == prefix.Bits
}

// String returns the string representation of this Code.  The first bit is
// printed first.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, reverseBits(hc.Size, hc.Bits)))
}

var _ fmt.Stringer = Code{}

func codeLess(a, b Code) bool {
	if a.Size != b.Size {
		return a.Size < b.Size
	}
	return reverseBits(a.Size, a.Bits) < reverseBits(b.Size, b.Bits)
}

func reverseBits(size byte, bits uint64) uint64 {
	if size == 0 {
		return 0
	}
	return mathbits.Reverse64(bits) >> (64 - size)
}

func lowMask(size byte) uint64 {
	if size >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << size) - 1
}
