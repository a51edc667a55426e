package bitstring_test

import (
	"strings"
	"testing"

	"github.com/dargueta/squash"
	"github.com/dargueta/squash/bitstring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type FormatTestCase struct {
	Value          uint64
	Width          int
	ExpectedResult string
	Name           string
}

func TestFormatUint__Basic(t *testing.T) {
	tests := []FormatTestCase{
		{0, 0, "", "zero width"},
		{0, 1, "0", "zero one bit"},
		{1, 1, "1", "one one bit"},
		{1, 4, "0001", "padded"},
		{9, 4, "1001", "exact fit"},
		{9, 2, "01", "truncated to low bits"},
		{255, 8, "11111111", "all ones"},
		{5, 70, strings.Repeat("0", 67) + "101", "width wider than 64"},
	}

	for _, test := range tests {
		t.Run(
			test.Name,
			func(t *testing.T) {
				assert.Equal(t, test.ExpectedResult, bitstring.FormatUint(test.Value, test.Width))
			},
		)
	}
}

func TestParseUint__RoundTrip(t *testing.T) {
	for _, value := range []uint64{0, 1, 2, 9, 100, 4095, 65536} {
		formatted := bitstring.FormatUint(value, 20)
		parsed, err := bitstring.ParseUint(formatted)
		require.NoError(t, err)
		assert.Equal(t, value, parsed)
	}
}

func TestParseUint__RejectsGarbage(t *testing.T) {
	_, err := bitstring.ParseUint("10x1")
	assert.ErrorIs(t, err, squash.ErrMalformedInput)

	_, err = bitstring.ParseUint("")
	assert.ErrorIs(t, err, squash.ErrMalformedInput)
}

func TestReader__Sequence(t *testing.T) {
	reader := bitstring.NewReader("1101001")

	bit, err := reader.TakeBit()
	require.NoError(t, err)
	assert.EqualValues(t, 1, bit)

	taken, err := reader.Take(3)
	require.NoError(t, err)
	assert.Equal(t, "101", taken)

	value, err := reader.TakeUint(2)
	require.NoError(t, err)
	assert.EqualValues(t, 0, value)

	assert.Equal(t, 1, reader.Len())
	assert.Equal(t, "1", reader.Rest())
}

func TestReader__PastEnd(t *testing.T) {
	reader := bitstring.NewReader("10")

	_, err := reader.Take(3)
	assert.ErrorIs(t, err, squash.ErrTruncatedInput)

	// The failed read must not have consumed anything.
	taken, err := reader.Take(2)
	require.NoError(t, err)
	assert.Equal(t, "10", taken)

	_, err = reader.TakeBit()
	assert.ErrorIs(t, err, squash.ErrTruncatedInput)
}

func TestReader__TakeUintZeroBits(t *testing.T) {
	reader := bitstring.NewReader("")
	value, err := reader.TakeUint(0)
	require.NoError(t, err)
	assert.EqualValues(t, 0, value)
}
