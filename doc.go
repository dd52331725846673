// Package huffcode computes Huffman prefix codes for the distinct characters
// of a text, based on observed frequency.  It is a teaching artifact, not a
// compressor: it produces a character-to-bitstring mapping and stops.  No
// bitstream writer or reader is provided.
//
// Actual compression would take two passes over the input: one to collect
// the character frequencies, and one to replace characters with their codes.
// Decoding is likewise out of scope; a state machine over the code table is
// the usual approach.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffcode
