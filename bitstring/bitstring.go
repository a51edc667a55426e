// Package bitstring provides helpers for the textual binary strings the
// codecs in this module produce and consume.
//
// Encoded artifacts are represented as ASCII strings of '0' and '1'. That
// representation is deliberately transparent -- a person can read a Golomb
// code or a Huffman stream straight out of a file -- at the cost of eight
// bytes of storage per bit. For storage-sensitive callers, [Pack] and
// [Unpack] convert between the textual form and a byte-packed form.
package bitstring

import (
	"strings"

	"github.com/dargueta/squash"
)

// FormatUint renders value as a big-endian binary string exactly `width`
// characters long. Values that don't fit in `width` bits are truncated to
// their lowest `width` bits; a width of zero gives an empty string.
func FormatUint(value uint64, width int) string {
	if width <= 0 {
		return ""
	}

	builder := strings.Builder{}
	builder.Grow(width)
	for shift := width - 1; shift >= 0; shift-- {
		if shift < 64 && (value>>uint(shift))&1 == 1 {
			builder.WriteByte('1')
		} else {
			builder.WriteByte('0')
		}
	}
	return builder.String()
}

// ParseUint interprets a big-endian binary string as an unsigned integer.
// Any character other than '0' or '1' makes the string invalid.
func ParseUint(bits string) (uint64, error) {
	if bits == "" {
		return 0, squash.ErrMalformedInput.WithMessage("empty bit string")
	}

	value := uint64(0)
	for _, bit := range bits {
		switch bit {
		case '0':
			value <<= 1
		case '1':
			value = (value << 1) | 1
		default:
			return 0, squash.ErrMalformedInput.WithMessage(
				"bit string may only contain '0' and '1'")
		}
	}
	return value, nil
}

// Reader is a cursor over a bit string. It never modifies the underlying
// string; reads past the end fail with [squash.ErrTruncatedInput].
type Reader struct {
	bits   string
	offset int
}

func NewReader(bits string) *Reader {
	return &Reader{bits: bits}
}

// Len returns the number of unread bits.
func (r *Reader) Len() int {
	return len(r.bits) - r.offset
}

// Rest returns all unread bits without consuming them.
func (r *Reader) Rest() string {
	return r.bits[r.offset:]
}

// TakeBit consumes and returns the next bit as 0 or 1.
func (r *Reader) TakeBit() (byte, error) {
	if r.offset >= len(r.bits) {
		return 0, squash.ErrTruncatedInput
	}

	bit := r.bits[r.offset]
	if bit != '0' && bit != '1' {
		return 0, squash.ErrMalformedInput.WithMessage(
			"bit string may only contain '0' and '1'")
	}
	r.offset++
	return bit - '0', nil
}

// Take consumes the next n bits and returns them as a substring.
func (r *Reader) Take(n int) (string, error) {
	if n < 0 {
		return "", squash.ErrInvalidArgument.WithMessage("bit count must be >= 0")
	}
	if r.Len() < n {
		return "", squash.ErrTruncatedInput
	}

	taken := r.bits[r.offset : r.offset+n]
	r.offset += n
	return taken, nil
}

// TakeUint consumes the next n bits and returns them as an unsigned integer.
// Zero bits give zero; this is the degenerate fixed-width field some codecs
// emit when a parameter makes the field empty.
func (r *Reader) TakeUint(n int) (uint64, error) {
	if n == 0 {
		return 0, nil
	}

	bits, err := r.Take(n)
	if err != nil {
		return 0, err
	}
	return ParseUint(bits)
}
