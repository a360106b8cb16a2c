// Package codebook parses the serialized codebook of a pretrained
// Self-Organizing Map into a rectangular grid of reference vectors.
//
// What:
//
//   - ParseHeader reads the first record: "<vectorDim> <topology> <xDim> <yDim>".
//   - ParseVectorGrid turns xDim·yDim data records (row-major) into a
//     [yDim][xDim][vectorDim] grid of float64 values.
//   - Parse and Decode run both steps on a whole document.
//
// Format:
//
//	5 hexa 3 2 bubble
//	0.12 0.40 0.93 0.11 0.50
//	...                          (xDim·yDim records, row 0 first)
//
// Records are separated by CRLF (LF is accepted too). Data tokens are split on
// single spaces; only the first vectorDim tokens are significant and any
// remainder (labels, trailing metadata) is discarded.
//
// Errors:
//
//   - ErrMalformedHeader: fewer than 4 header tokens, or a non-numeric or
//     non-positive vectorDim/xDim/yDim.
//   - ErrMalformedInput: fewer than xDim·yDim data records, a record with
//     fewer than vectorDim tokens, or a token that is not a finite number.
//
// Parsing is all-or-nothing: on error no partial grid is returned.
//
// Complexity: O(xDim·yDim·vectorDim) time and memory.
package codebook
