package bitstring

import (
	"github.com/boljen/go-bitmap"

	"github.com/dargueta/squash"
)

// Pack converts a textual bit string into a byte-packed form. The second
// return value is the number of meaningful bits; callers must keep it
// alongside the packed bytes, since the final byte may carry padding that
// [Unpack] needs to discard.
func Pack(bits string) ([]byte, int, error) {
	packed := bitmap.New(len(bits))
	for i := 0; i < len(bits); i++ {
		switch bits[i] {
		case '0':
			// bitmap.New starts zeroed.
		case '1':
			packed.Set(i, true)
		default:
			return nil, 0, squash.ErrMalformedInput.WithMessage(
				"bit string may only contain '0' and '1'")
		}
	}
	return []byte(packed), len(bits), nil
}

// Unpack is the inverse of [Pack]: it expands `bitCount` bits of packed
// data back into a textual bit string.
func Unpack(data []byte, bitCount int) (string, error) {
	if bitCount < 0 {
		return "", squash.ErrInvalidArgument.WithMessage("bit count must be >= 0")
	}
	if bitCount > len(data)*8 {
		return "", squash.ErrTruncatedInput.WithMessage(
			"packed data is shorter than the declared bit count")
	}

	packed := bitmap.Bitmap(data)
	buffer := make([]byte, bitCount)
	for i := 0; i < bitCount; i++ {
		if packed.Get(i) {
			buffer[i] = '1'
		} else {
			buffer[i] = '0'
		}
	}
	return string(buffer), nil
}
