// Package lzw implements the classic Lempel-Ziv-Welch dictionary codec
// over byte strings.
//
// The dictionary is seeded with the 256 single-byte strings at codes 0-255
// and grows by one entry per emitted code. It is rebuilt from that seed on
// every call; nothing persists between calls, so any code stream decodes
// against a fresh dictionary. Codes are plain integers -- bit packing is
// left to the caller (see the bitstring package).
package lzw

import (
	"fmt"
	"strings"

	"github.com/dargueta/squash"
)

const firstFreeCode = 256

func seedEncoderDictionary() map[string]int {
	dictionary := make(map[string]int, 2*firstFreeCode)
	for i := 0; i < firstFreeCode; i++ {
		dictionary[string(byte(i))] = i
	}
	return dictionary
}

func seedDecoderDictionary() map[int]string {
	dictionary := make(map[int]string, 2*firstFreeCode)
	for i := 0; i < firstFreeCode; i++ {
		dictionary[i] = string(byte(i))
	}
	return dictionary
}

// Compress encodes text as a sequence of dictionary codes. The candidate
// string grows while the dictionary still contains it; on a miss the
// candidate's code is emitted and candidate+symbol becomes a new entry.
// Empty input gives an empty code sequence.
func Compress(text string) []int {
	dictionary := seedEncoderDictionary()
	nextCode := firstFreeCode

	codes := make([]int, 0, len(text)/2)
	candidate := ""
	for i := 0; i < len(text); i++ {
		symbol := text[i : i+1]
		combined := candidate + symbol
		if _, ok := dictionary[combined]; ok {
			candidate = combined
			continue
		}

		codes = append(codes, dictionary[candidate])
		dictionary[combined] = nextCode
		nextCode++
		candidate = symbol
	}

	if candidate != "" {
		codes = append(codes, dictionary[candidate])
	}
	return codes
}

// Decompress inverts [Compress], growing a mirror of the encoder's
// dictionary as it reads. A code equal to the next unassigned code is the
// classic lookahead case and decodes as the previous string plus its own
// first byte; any other unknown code means the stream wasn't produced by
// [Compress]. An empty code sequence is invalid: at least one code is
// needed to seed the decoder.
func Decompress(codes []int) (string, error) {
	if len(codes) == 0 {
		return "", squash.ErrInvalidArgument.WithMessage(
			"code sequence must contain at least one code")
	}

	dictionary := seedDecoderDictionary()
	nextCode := firstFreeCode

	first := codes[0]
	previous, ok := dictionary[first]
	if !ok {
		return "", squash.ErrUnknownCode.WithMessage(
			fmt.Sprintf("first code %d is not a single byte", first))
	}

	builder := strings.Builder{}
	builder.WriteString(previous)

	for _, code := range codes[1:] {
		var entry string
		if known, ok := dictionary[code]; ok {
			entry = known
		} else if code == nextCode {
			// The encoder emitted a code for the entry it was creating in
			// the same step. That entry is always previous + previous[0].
			entry = previous + previous[:1]
		} else {
			return "", squash.ErrUnknownCode.WithMessage(
				fmt.Sprintf("code %d is neither known nor the next assignable (%d)",
					code, nextCode))
		}

		builder.WriteString(entry)
		// Mirror the encoder's dictionary growth exactly.
		dictionary[nextCode] = previous + entry[:1]
		nextCode++
		previous = entry
	}
	return builder.String(), nil
}
