package huffman

import (
	"math/rand"
	"testing"
	"testing/quick"
)

func TestPackedBuffer_AddValue(t *testing.T) {
	var b PackedBuffer

	type testRow struct {
		value  uint64
		size   byte
		words  []uint64
		numBit uint64
	}

	testData := [...]testRow{
		{value: 3, size: 2, words: []uint64{3}, numBit: 2},
		{value: 1, size: 2, words: []uint64{7}, numBit: 4},
		{value: 1 << 59, size: 60, words: []uint64{(1 << 63) + 7}, numBit: 64},
		{value: 2, size: 2, words: []uint64{(1 << 63) + 7, 2}, numBit: 66},
		{value: 0xffff, size: 64, words: []uint64{(1 << 63) + 7, 0x3fffe, 0}, numBit: 130},
	}
	for i, row := range testData {
		b.AddValue(row.value, row.size)
		if b.Len() != row.numBit {
			t.Errorf("step %d: expected %d bits, got %d", i, row.numBit, b.Len())
		}
		words := b.Words()
		if len(words) != len(row.words) {
			t.Errorf("step %d: expected %d words, got %d", i, len(row.words), len(words))
			continue
		}
		for j := range words {
			if words[j] != row.words[j] {
				t.Errorf("step %d: word %d: expected %#016x, got %#016x", i, j, row.words[j], words[j])
			}
		}
	}
}

func TestPackedBuffer_Split(t *testing.T) {
	var b PackedBuffer
	b.AddValue(0, 60)
	b.AddValue(0xabc, 12)

	if b.Len() != 72 {
		t.Errorf("expected 72 bits, got %d", b.Len())
	}
	words := b.Words()
	if len(words) != 2 {
		t.Fatalf("expected 2 words, got %d", len(words))
	}
	if words[0] != 0xc<<60 {
		t.Errorf("word 0: expected %#016x, got %#016x", uint64(0xc<<60), words[0])
	}
	if words[1] != 0xab {
		t.Errorf("word 1: expected %#016x, got %#016x", 0xab, words[1])
	}

	// 0xabc = 1010 1011 1100, read back low bit first.
	expect := []uint{0, 0, 1, 1, 1, 1, 0, 1, 0, 1, 0, 1}
	for i, bit := range expect {
		if actual := b.Bit(60 + uint64(i)); actual != bit {
			t.Errorf("bit %d: expected %d, got %d", 60+i, bit, actual)
		}
	}
}

func TestPackedBuffer_LengthInvariant(t *testing.T) {
	check := func(sizes []byte) bool {
		var b PackedBuffer
		if len(b.Words()) != 0 {
			return false
		}
		for _, size := range sizes {
			size %= bitsPerWord + 1
			b.AddValue(^uint64(0), size)
			expect := (b.Len() + bitsPerWord - 1) / bitsPerWord
			if uint64(len(b.Words())) != expect {
				t.Logf("%d bits in %d words", b.Len(), len(b.Words()))
				return false
			}
		}
		return true
	}
	config := &quick.Config{Rand: rand.New(rand.NewSource(1))}
	if err := quick.Check(check, config); err != nil {
		t.Error(err)
	}
}

func TestPackedBuffer_ZeroSize(t *testing.T) {
	var b PackedBuffer
	b.AddValue(0xff, 0)
	if b.Len() != 0 || len(b.Words()) != 0 {
		t.Errorf("expected empty buffer, got %d bits in %d words", b.Len(), len(b.Words()))
	}
}
