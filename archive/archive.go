// Package archive provides the persisted form of encoded artifacts. The
// textual bit strings and code listings the codecs emit are bulky and very
// repetitive, so the on-disk container run-length encodes them first and
// gzips the result. An empty artifact packs to a valid (if pointless)
// container.
package archive

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"

	"github.com/dargueta/squash/rle"
)

type countingWriter struct {
	wrapped io.Writer
	written int64
}

func (w *countingWriter) Write(p []byte) (int, error) {
	n, err := w.wrapped.Write(p)
	w.written += int64(n)
	return n, err
}

// Pack compresses an artifact with RLE8 followed by gzip. The returned
// int64 gives the number of container bytes written to the output stream;
// if an error occurred the value is undefined and should not be used.
func Pack(input io.Reader, output io.Writer) (int64, error) {
	counter := &countingWriter{wrapped: output}

	// The artifacts are small, so the slower best-compression setting
	// costs nothing noticeable.
	gzWriter, err := gzip.NewWriterLevel(counter, gzip.BestCompression)
	if err != nil {
		return 0, err
	}

	if _, err := rle.CompressRLE8(input, gzWriter); err != nil {
		gzWriter.Close()
		return counter.written, err
	}
	if err := gzWriter.Close(); err != nil {
		return counter.written, err
	}
	return counter.written, nil
}

// Unpack expands a container produced by [Pack] back to the original
// artifact bytes, returning the artifact's size.
func Unpack(input io.Reader, output io.Writer) (int64, error) {
	gzReader, err := gzip.NewReader(input)
	if err != nil {
		return 0, err
	}
	defer gzReader.Close()
	return rle.DecompressRLE8(gzReader, output)
}

// PackBytes is a convenience wrapper around [Pack] for in-memory artifacts.
func PackBytes(artifact []byte) ([]byte, error) {
	buffer := bytes.Buffer{}
	if _, err := Pack(bytes.NewReader(artifact), &buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// UnpackBytes is a convenience wrapper around [Unpack] for in-memory
// containers.
func UnpackBytes(container []byte) ([]byte, error) {
	buffer := bytes.Buffer{}
	if _, err := Unpack(bytes.NewReader(container), &buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
