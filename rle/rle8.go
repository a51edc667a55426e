package rle

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// ByteRun is the binary counterpart of [RuneRun].
type ByteRun struct {
	Byte   byte
	Length int
}

// ByteRunScanner splits a byte stream into maximal runs, the way
// [RunScanner] does for text.
type ByteRunScanner struct {
	rd *bufio.Reader
}

func NewByteRunScanner(rd io.Reader) ByteRunScanner {
	return ByteRunScanner{rd: bufio.NewReader(rd)}
}

// NextRun returns the next maximal run in the stream, or a zero-length run
// and io.EOF once the input is exhausted.
func (scanner ByteRunScanner) NextRun() (ByteRun, error) {
	first, err := scanner.rd.ReadByte()
	if err != nil {
		return ByteRun{}, err
	}

	length := 1
	for {
		current, err := scanner.rd.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return ByteRun{}, err
		}
		if current != first {
			scanner.rd.UnreadByte()
			break
		}
		length++
	}
	return ByteRun{Byte: first, Length: length}, nil
}

// CompressRLE8 reads bytes from the input and writes RLE8-compressed data
// to the output until the input is exhausted. The return value is the
// number of bytes written, only valid if no error occurred.
func CompressRLE8(input io.Reader, output io.Writer) (int64, error) {
	scanner := NewByteRunScanner(input)

	totalBytesWritten := int64(0)
	for {
		run, scanErr := scanner.NextRun()
		if scanErr != nil {
			if errors.Is(scanErr, io.EOF) {
				return totalBytesWritten, nil
			}
			return totalBytesWritten, scanErr
		}

		// Runs of two or more become <byte> <byte> <extra count>, chunked
		// so the count byte never exceeds 255. A leftover single byte is
		// written literally.
		for run.Length >= 2 {
			extra := run.Length - 2
			if extra > 255 {
				extra = 255
			}

			n, err := output.Write([]byte{run.Byte, run.Byte, byte(extra)})
			totalBytesWritten += int64(n)
			if err != nil {
				return totalBytesWritten, err
			}
			run.Length -= extra + 2
		}

		if run.Length == 1 {
			n, err := output.Write([]byte{run.Byte})
			totalBytesWritten += int64(n)
			if err != nil {
				return totalBytesWritten, err
			}
		}
	}
}

// DecompressRLE8 inverts [CompressRLE8]. A stream that ends between a
// doubled byte and its repeat count is malformed; the returned error wraps
// [io.ErrUnexpectedEOF].
func DecompressRLE8(input io.Reader, output io.Writer) (int64, error) {
	source := bufio.NewReader(input)
	totalBytesWritten := int64(0)

	// lastByte is the previous literal byte, or -1 when the previous byte
	// completed an escape sequence and can't start a new one.
	lastByte := -1

	for {
		currentByte, err := source.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return totalBytesWritten, nil
			}
			return totalBytesWritten, fmt.Errorf("error reading input: %w", err)
		}

		var expanded []byte
		if int(currentByte) == lastByte {
			// Two identical bytes in a row; the next byte is the extra
			// repeat count. One copy was already written, so only count+1
			// copies remain.
			countByte, err := source.ReadByte()
			if err != nil {
				if errors.Is(err, io.EOF) {
					err = fmt.Errorf(
						"%w: missing repeat count after two %02x bytes",
						io.ErrUnexpectedEOF,
						currentByte,
					)
				}
				return totalBytesWritten, err
			}

			expanded = bytes.Repeat([]byte{currentByte}, int(countByte)+1)
			lastByte = -1
		} else {
			expanded = []byte{currentByte}
			lastByte = int(currentByte)
		}

		n, err := output.Write(expanded)
		totalBytesWritten += int64(n)
		if err != nil {
			return totalBytesWritten, fmt.Errorf("failed to write to output: %w", err)
		}
	}
}
