package lzw_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/dargueta/squash"
	"github.com/dargueta/squash/lzw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runLZWRoundTripTestCase(t *testing.T, original string) {
	codes := lzw.Compress(original)

	decoded, err := lzw.Decompress(codes)
	require.NoError(t, err, "unexpected error while decoding")
	assert.Equal(t, original, decoded)
}

func TestRoundTrip__Basic(t *testing.T) {
	tests := []struct {
		Input string
		Name  string
	}{
		{"x", "single byte"},
		{"aaaaaaaaaa", "single repeated byte"},
		{"abababababab", "alternating pair"},
		{"TOBEORNOTTOBEORTOBEORNOT", "textbook example"},
		{"the rain in spain falls mainly on the plain", "english text"},
		{string([]byte{0, 1, 2, 255, 254, 0, 0, 0}), "raw bytes"},
	}

	for _, test := range tests {
		t.Run(
			test.Name,
			func(t *testing.T) {
				runLZWRoundTripTestCase(t, test.Input)
			},
		)
	}
}

func TestRoundTrip__Random(t *testing.T) {
	rng := rand.New(rand.NewSource(0x12a6))

	for trial := 0; trial < 25; trial++ {
		length := 1 + rng.Intn(2000)
		data := make([]byte, length)
		if trial%2 == 0 {
			// Skewed alphabet so the dictionary actually gets used.
			for i := range data {
				data[i] = byte('a' + rng.Intn(4))
			}
		} else {
			rng.Read(data)
		}
		runLZWRoundTripTestCase(t, string(data))
	}
}

func TestCompress__TextbookExample(t *testing.T) {
	const original = "TOBEORNOTTOBEORTOBEORNOT"
	codes := lzw.Compress(original)

	// 24 input bytes must shrink to fewer codes, and the first codes are
	// the raw bytes of "TOBEO" followed by dictionary references.
	assert.Less(t, len(codes), len(original))
	assert.Equal(t, []int{'T', 'O', 'B', 'E', 'O', 'R', 'N', 'O', 'T'}, codes[:9])

	decoded, err := lzw.Decompress(codes)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestCompress__Empty(t *testing.T) {
	assert.Empty(t, lzw.Compress(""))
}

// Inputs that force the encoder to emit a code for the entry it created in
// the same step, so the decoder has to reconstruct it from the previous
// string.
func TestDecompress__LookaheadCase(t *testing.T) {
	runLZWRoundTripTestCase(t, "abababa")
	runLZWRoundTripTestCase(t, strings.Repeat("q", 50))
}

func TestDecompress__EmptySequence(t *testing.T) {
	_, err := lzw.Decompress(nil)
	assert.ErrorIs(t, err, squash.ErrInvalidArgument)

	_, err = lzw.Decompress([]int{})
	assert.ErrorIs(t, err, squash.ErrInvalidArgument)
}

func TestDecompress__UnknownCode(t *testing.T) {
	tests := []struct {
		Codes []int
		Name  string
	}{
		{[]int{300}, "first code out of range"},
		{[]int{-1}, "negative first code"},
		{[]int{97, 99, 500}, "gap past next assignable"},
		{[]int{97, 258}, "skips one dictionary entry"},
		{[]int{97, -5}, "negative code mid-stream"},
	}

	for _, test := range tests {
		t.Run(
			test.Name,
			func(t *testing.T) {
				_, err := lzw.Decompress(test.Codes)
				assert.ErrorIs(t, err, squash.ErrUnknownCode)
			},
		)
	}
}

func TestDecompress__NextExpectedCodeAccepted(t *testing.T) {
	// [97, 256] is the smallest stream exercising the lookahead rule:
	// 256 must decode as "aa" even though it isn't in the dictionary yet.
	decoded, err := lzw.Decompress([]int{97, 256})
	require.NoError(t, err)
	assert.Equal(t, "aaa", decoded)
}
