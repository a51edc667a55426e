// Package rle implements two run-length encodings: a textual codec and a
// binary one.
//
// The textual codec ([Compress], [Decompress]) writes each maximal run of a
// symbol as the symbol followed by its decimal repeat count, so "aaabbbccd"
// becomes "a3b3c2d1". It is meant for human-readable artifacts and demo
// corpora, not for arbitrary binary data: a decimal digit in the input is
// indistinguishable from a repeat count on decode, so inputs containing the
// characters '0' through '9' do not round-trip. This ambiguity is inherent
// to the format. The codec does not attempt an escaping scheme; callers
// with digit-bearing alphabets should use the binary codec instead.
//
// The binary codec ([CompressRLE8], [DecompressRLE8]) uses the scheme from
// the Microsoft BMP file format, commonly called RLE8: a byte B occurring
// N >= 2 times is written twice, followed by an unsigned byte giving how
// many additional times B occurred. A run of 300 "X" bytes is therefore
// written as `XX 255 XX 41`, and a byte occurring exactly twice costs three
// bytes on output. Any byte stream round-trips; worst-case expansion is
// 3/2. The archive package layers gzip on top of this codec to shrink the
// mostly-repetitive textual artifacts the other codecs emit.
package rle
