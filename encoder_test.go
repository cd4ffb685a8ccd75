package huffman

import (
	"errors"
	"strings"
	"testing"
)

func TestEncodeWithTable(t *testing.T) {
	ct := makeTestTable()

	enc, err := EncodeWithTable(ct, []rune("fab"))
	if err != nil {
		t.Fatalf("EncodeWithTable failed: %v", err)
	}

	// "0" + "1100" + "1101", low bit first.
	expectWords := []uint64{0x166}
	actualWords := enc.Buffer.Words()
	if len(actualWords) != 1 || actualWords[0] != expectWords[0] {
		t.Errorf("wrong words:\n\texpect: %#x\n\tactual: %#x", expectWords, actualWords)
	}
	if enc.Buffer.Len() != 9 {
		t.Errorf("expected 9 bits, got %d", enc.Buffer.Len())
	}
}

func TestEncodeWithTable_Missing(t *testing.T) {
	ct := makeTestTable()

	_, err := EncodeWithTable(ct, []rune("fabz"))
	if !errors.Is(err, ErrSymbolNotInTable) {
		t.Errorf("expected ErrSymbolNotInTable, got %v", err)
	}

	_, err = EncodeWithTable[rune](nil, []rune("fab"))
	if !errors.Is(err, ErrNoCodeTable) {
		t.Errorf("expected ErrNoCodeTable, got %v", err)
	}
}

func TestEncode(t *testing.T) {
	text := makeTestText()

	enc, err := EncodeString(text)
	if err != nil {
		t.Fatalf("EncodeString failed: %v", err)
	}

	// 5×4 + 9×4 + 12×3 + 13×3 + 16×3 + 45×1
	if enc.Buffer.Len() != 224 {
		t.Errorf("expected 224 bits, got %d", enc.Buffer.Len())
	}
	if len(enc.Buffer.Words()) != 4 {
		t.Errorf("expected 4 words, got %d", len(enc.Buffer.Words()))
	}
	if enc.Table.Len() != 6 {
		t.Errorf("expected 6 codes, got %d", enc.Table.Len())
	}
}

func TestEncode_Empty(t *testing.T) {
	enc, err := EncodeString("")
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
	if enc != nil {
		t.Errorf("expected nil Encoding, got %v", enc)
	}
}

func TestEncoding_Dump(t *testing.T) {
	enc, err := EncodeString("aab")
	if err != nil {
		t.Fatalf("EncodeString failed: %v", err)
	}

	expectDump := strings.Join([]string{
		"Encoding{\n",
		"\tLen() = 3\n",
		"\tWords()[0] = 0x0000000000000003\n",
		"}\n",
		"CodeTable{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 1\n",
		"\tLookup('b') = \"0\"\n",
		"\tLookup('a') = \"1\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = enc.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}
