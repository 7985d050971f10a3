// Package compress wraps deflate/zlib-format lossless compression around
// the packed, zigzag-varint-encoded position stream.
package compress

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

// ErrCompressionFailed is returned when decompression rejects its input.
var ErrCompressionFailed = errors.New("compress: decompression failed")

// Compress deflates data at the maximum compression level.
func Compress(data []byte) []byte {
	var buf bytes.Buffer
	w, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		// BestCompression is always a valid level for this writer.
		panic(fmt.Sprintf("compress: unexpected NewWriterLevel error: %v", err))
	}
	if _, err := w.Write(data); err != nil {
		panic(fmt.Sprintf("compress: unexpected write error: %v", err))
	}
	if err := w.Close(); err != nil {
		panic(fmt.Sprintf("compress: unexpected close error: %v", err))
	}
	return buf.Bytes()
}

// Decompress is the inverse of Compress.
func Decompress(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompressionFailed, err)
	}
	defer r.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompressionFailed, err)
	}
	return out, nil
}
