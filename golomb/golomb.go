// Package golomb implements Golomb coding of non-negative integers with a
// caller-chosen modulus m.
//
// A code is the unary quotient n/m (that many '1's and a terminating '0')
// followed by the remainder n%m. When m is a power of two the remainder is
// a fixed log2(m)-bit field (Rice coding); otherwise it uses truncated
// binary, spending ceil(log2 m)-1 bits on small remainders and one more on
// large ones. The modulus is not embedded in the code: encoder and decoder
// must agree on m out of band, and the conventional persisted form is one
// code per line (see [EncodeAll] and [DecodeAll]).
package golomb

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/dargueta/squash"
	"github.com/dargueta/squash/bitstring"
)

// remainderWidth gives the field layout for n%m: `width` is the bit count
// for small remainders and `threshold` is the first remainder value needing
// one extra bit. For powers of two, threshold == m and the extra bit is
// never used.
func remainderWidth(m uint64) (width int, threshold uint64) {
	if m&(m-1) == 0 {
		return bits.TrailingZeros64(m), m
	}
	b := bits.Len64(m - 1) // ceil(log2(m)) for non-powers of two
	return b - 1, (uint64(1) << b) - m
}

// Encode produces the Golomb code of n with modulus m. The modulus must be
// at least 1; m == 1 degenerates to pure unary coding.
func Encode(n uint64, m uint64) (string, error) {
	if m < 1 {
		return "", squash.ErrInvalidArgument.WithMessage("modulus must be >= 1")
	}

	quotient := n / m
	remainder := n % m

	builder := strings.Builder{}
	builder.WriteString(strings.Repeat("1", int(quotient)))
	builder.WriteByte('0')

	width, threshold := remainderWidth(m)
	if remainder < threshold {
		builder.WriteString(bitstring.FormatUint(remainder, width))
	} else {
		builder.WriteString(bitstring.FormatUint(remainder+threshold, width+1))
	}
	return builder.String(), nil
}

// Decode inverts [Encode]. The entire bit string must be consumed by the
// single code; trailing bits mean the input wasn't produced by Encode with
// this modulus.
func Decode(code string, m uint64) (uint64, error) {
	reader := bitstring.NewReader(code)

	n, err := decodeOne(reader, m)
	if err != nil {
		return 0, err
	}
	if reader.Len() != 0 {
		return 0, squash.ErrMalformedInput.WithMessage(
			fmt.Sprintf("%d trailing bits after the code", reader.Len()))
	}
	return n, nil
}

func decodeOne(reader *bitstring.Reader, m uint64) (uint64, error) {
	if m < 1 {
		return 0, squash.ErrInvalidArgument.WithMessage("modulus must be >= 1")
	}

	// Unary quotient: ones up to the terminating zero.
	quotient := uint64(0)
	for {
		bit, err := reader.TakeBit()
		if err != nil {
			return 0, err
		}
		if bit == 0 {
			break
		}
		quotient++
	}

	width, threshold := remainderWidth(m)
	remainder, err := reader.TakeUint(width)
	if err != nil {
		return 0, err
	}
	if remainder >= threshold {
		// Large remainder: one extra bit, offset by the threshold.
		bit, err := reader.TakeBit()
		if err != nil {
			return 0, err
		}
		remainder = remainder*2 + uint64(bit) - threshold
	}

	return quotient*m + remainder, nil
}

// EncodeAll encodes a batch of values with a shared modulus, one code per
// line with a trailing newline. An empty batch gives an empty string.
func EncodeAll(values []uint64, m uint64) (string, error) {
	if m < 1 {
		return "", squash.ErrInvalidArgument.WithMessage("modulus must be >= 1")
	}

	builder := strings.Builder{}
	for _, n := range values {
		code, err := Encode(n, m)
		if err != nil {
			return "", err
		}
		builder.WriteString(code)
		builder.WriteByte('\n')
	}
	return builder.String(), nil
}

// DecodeAll inverts [EncodeAll]. Every line must hold exactly one code;
// failures are collected across lines and reported together, and no partial
// results accompany an error.
func DecodeAll(text string, m uint64) ([]uint64, error) {
	if m < 1 {
		return nil, squash.ErrInvalidArgument.WithMessage("modulus must be >= 1")
	}

	values := make([]uint64, 0, strings.Count(text, "\n")+1)
	var failures *multierror.Error
	for i, line := range strings.Split(text, "\n") {
		if line == "" {
			// Blank line from the trailing newline (or an empty batch).
			continue
		}
		n, err := Decode(line, m)
		if err != nil {
			failures = multierror.Append(failures, fmt.Errorf("line %d: %w", i+1, err))
			continue
		}
		values = append(values, n)
	}

	if err := failures.ErrorOrNil(); err != nil {
		return nil, err
	}
	return values, nil
}
