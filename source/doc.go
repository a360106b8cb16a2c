// Package source acquires the raw bytes of a codebook document.
//
// It is the one I/O boundary in front of the pure parse → build pipeline: a
// Source opens a stream under a context, and ReadAll drains it completely
// (all-or-nothing) after transparently decompressing gzip, zstd or lz4 frames.
//
// Supported locations (see Parse):
//
//   - local files:       /data/som.cod, file:///data/som.cod
//   - HTTP(S):           https://example.org/som.cod
//   - Amazon S3:         s3://bucket/path/som.cod.zst
//   - MinIO / S3-compat: minio://bucket/path/som.cod.gz
//
// Cancelling the context aborts an in-flight read; nothing partial is returned.
package source
