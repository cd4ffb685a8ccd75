package huffman

import (
	"github.com/chronos-tachyon/assert"
)

const bitsPerWord = 64

// PackedBuffer is a sequence of bits stored in 64-bit words.  Bits are packed
// least significant bit first: bit i of the buffer is bit (i % 64) of word
// (i / 64).  Bits past Len() in the last word are always zero.
type PackedBuffer struct {
	words []uint64
	bits  uint64
}

// AddValue appends the low size bits of value to the buffer, least
// significant bit first.  A value that does not fit in the current word is
// split: its low bits fill the current word and its high bits start the
// next one.
//
// A new word is allocated only when there are bits to put in it, so after a
// call that ends exactly on a word boundary, the next call allocates.
//
func (b *PackedBuffer) AddValue(value uint64, size byte) {
	assert.Assertf(size <= bitsPerWord, "size %d > %d", size, bitsPerWord)
	if size == 0 {
		return
	}

	value &= lowMask(size)
	taken := b.bits % bitsPerWord
	if taken == 0 {
		b.words = append(b.words, 0)
	}

	last := len(b.words) - 1
	b.words[last] |= value << taken
	if uint64(size) > bitsPerWord-taken {
		b.words = append(b.words, value>>(bitsPerWord-taken))
	}
	b.bits += uint64(size)
}

// AddCode appends the bits of hc, first bit first.
func (b *PackedBuffer) AddCode(hc Code) {
	b.AddValue(hc.Bits, hc.Size)
}

// Len returns the number of valid bits.
func (b *PackedBuffer) Len() uint64 {
	return b.bits
}

// Words returns the storage words.  The caller must not modify them.
func (b *PackedBuffer) Words() []uint64 {
	return b.words
}

// Bit returns bit i of the buffer, 0 or 1.
func (b *PackedBuffer) Bit(i uint64) uint {
	assert.Assertf(i < b.bits, "bit %d out of range [0, %d)", i, b.bits)
	return uint(b.words[i/bitsPerWord]>>(i%bitsPerWord)) & 1
}
