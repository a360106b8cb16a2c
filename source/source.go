package source

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Source opens a codebook document for reading.
type Source interface {
	// Open returns a stream over the raw (possibly compressed) bytes.
	// The caller must close it.
	Open(ctx context.Context) (io.ReadCloser, error)
	// String names the location for logs.
	String() string
}

// Compression identifies a stream compression format by its magic number.
type Compression uint8

const (
	// CompressionNone marks a plain-text stream.
	CompressionNone Compression = iota
	// CompressionGzip marks a gzip member (1f 8b).
	CompressionGzip
	// CompressionZstd marks a zstd frame (28 b5 2f fd).
	CompressionZstd
	// CompressionLZ4 marks an lz4 frame (04 22 4d 18).
	CompressionLZ4
)

var (
	magicGzip = []byte{0x1f, 0x8b}
	magicZstd = []byte{0x28, 0xb5, 0x2f, 0xfd}
	magicLZ4  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// String returns the conventional name of c.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionGzip:
		return "gzip"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	}
	return fmt.Sprintf("Compression(%d)", uint8(c))
}

// Detect classifies a stream from its first bytes.
func Detect(head []byte) Compression {
	switch {
	case bytes.HasPrefix(head, magicGzip):
		return CompressionGzip
	case bytes.HasPrefix(head, magicZstd):
		return CompressionZstd
	case bytes.HasPrefix(head, magicLZ4):
		return CompressionLZ4
	}
	return CompressionNone
}

// Decompress wraps r with the decoder its magic number calls for.
// Plain text passes through unchanged. Closing the result releases the
// decoder but not r.
func Decompress(r io.Reader) (io.ReadCloser, Compression, error) {
	br := bufio.NewReader(r)
	// a short or empty stream is plain text; Peek's error only reports that
	head, _ := br.Peek(len(magicZstd))

	switch c := Detect(head); c {
	case CompressionGzip:
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, c, fmt.Errorf("source: gzip: %w", err)
		}
		return zr, c, nil
	case CompressionZstd:
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, c, fmt.Errorf("source: zstd: %w", err)
		}
		return zr.IOReadCloser(), c, nil
	case CompressionLZ4:
		return io.NopCloser(lz4.NewReader(br)), c, nil
	default:
		return io.NopCloser(br), c, nil
	}
}

// ReadAll opens src and reads it to EOF, decompressing on the fly.
// A cancelled ctx aborts the read with ctx.Err(); no partial payload is
// returned on any error.
func ReadAll(ctx context.Context, src Source) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rc, err := src.Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", src, err)
	}
	defer rc.Close()

	dr, _, err := Decompress(&ctxReader{ctx: ctx, r: rc})
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", src, err)
	}
	defer dr.Close()

	data, err := io.ReadAll(dr)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", src, err)
	}
	return data, nil
}

// ctxReader fails reads once ctx is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
