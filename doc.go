// Package huffman implements minimum-redundancy prefix codes (Huffman codes)
// over arbitrary comparable symbol alphabets.
//
// The pipeline is: count symbol frequencies, build a Huffman tree, derive a
// code table from the root-to-leaf paths, and pack the codes of the input into
// a sequence of 64-bit words.  Decoding walks the packed bits using the same
// code table.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
