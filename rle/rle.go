package rle

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dargueta/squash"
)

// RuneRun represents a single run of a particular symbol.
type RuneRun struct {
	// Rune is the symbol value for this run.
	Rune rune
	// Length gives the number of times the symbol occurs in the run. A
	// valid run always has this be 1 or greater; a value less than 1
	// indicates either EOF was encountered, or an error occurred.
	Length int
}

// InvalidRun is the run returned by [RunScanner.NextRun] when the input is
// exhausted or unreadable.
var InvalidRun = RuneRun{Rune: 0, Length: 0}

// RunScanner splits a stream of text into maximal runs of identical
// symbols. Concatenating the runs it yields reconstructs the input exactly.
type RunScanner struct {
	rd io.RuneScanner
}

func NewRunScanner(rd io.RuneScanner) RunScanner {
	return RunScanner{rd: rd}
}

// NextRun returns the next maximal run in the stream. Once the input is
// exhausted it returns [InvalidRun] and io.EOF.
func (scanner RunScanner) NextRun() (RuneRun, error) {
	first, _, err := scanner.rd.ReadRune()
	// Bail if any error occurred, including EOF.
	if err != nil {
		return InvalidRun, err
	}

	length := 1
	for {
		current, _, err := scanner.rd.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return InvalidRun, err
		}
		if current != first {
			// Hit a different symbol, back up and return.
			scanner.rd.UnreadRune()
			break
		}
		length++
	}
	return RuneRun{Rune: first, Length: length}, nil
}

// Compress run-length encodes text, emitting each maximal run as the
// symbol followed by its decimal length. Empty input gives empty output.
// Note the output can be longer than the input when runs are short; a
// run of one still costs two characters.
func Compress(text string) string {
	scanner := NewRunScanner(strings.NewReader(text))
	builder := strings.Builder{}

	for {
		run, err := scanner.NextRun()
		if err != nil {
			// The only error a string reader can produce is EOF.
			return builder.String()
		}
		fmt.Fprintf(&builder, "%c%d", run.Rune, run.Length)
	}
}

// Decompress inverts [Compress]. The encoded form alternates between a
// symbol and a greedy decimal digit run giving its repeat count. A symbol
// not followed by at least one digit makes the stream malformed.
func Decompress(code string) (string, error) {
	runes := []rune(code)
	builder := strings.Builder{}

	i := 0
	for i < len(runes) {
		symbol := runes[i]
		i++

		digitsStart := i
		for i < len(runes) && runes[i] >= '0' && runes[i] <= '9' {
			i++
		}
		if i == digitsStart {
			return "", squash.ErrMalformedInput.WithMessage(
				fmt.Sprintf("symbol %q has no repeat count", symbol))
		}

		count, err := strconv.Atoi(string(runes[digitsStart:i]))
		if err != nil {
			// Only reachable if the digit run overflows an int.
			return "", squash.ErrMalformedInput.Wrap(err)
		}
		builder.WriteString(strings.Repeat(string(symbol), count))
	}
	return builder.String(), nil
}
