package codebook

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// VectorGrid is a [yDim][xDim][vectorDim] grid of reference vectors.
type VectorGrid [][][]float64

// Codebook is a parsed codebook document: its header and its vector grid.
type Codebook struct {
	Header  Header
	Vectors VectorGrid
}

// SplitRecords splits text into records on LF, trimming a trailing CR from
// each record so that CRLF and LF documents read the same.
func SplitRecords(text string) []string {
	records := strings.Split(text, "\n")
	for i, r := range records {
		records[i] = strings.TrimSuffix(r, "\r")
	}
	return records
}

// ParseVectorGrid converts the first xDim·yDim records into a vector grid.
// Record k holds the vector of node (col = k mod xDim, row = k div xDim).
// Records beyond xDim·yDim are ignored.
//
// Each record is split on single spaces and its first vectorDim tokens are
// parsed as float64; remaining tokens are dropped.
//
// Returns ErrMalformedInput if there are too few records, a record has fewer
// than vectorDim tokens, or a token is not a finite number. Dimensions are
// checked against the records before any storage is sized from them.
//
// Complexity: O(xDim·yDim·vectorDim).
func ParseVectorGrid(records []string, vectorDim, xDim, yDim int) (VectorGrid, error) {
	if vectorDim <= 0 || xDim <= 0 || yDim <= 0 {
		return nil, fmt.Errorf("%w: dimensions must be positive (vectorDim=%d xDim=%d yDim=%d)",
			ErrMalformedInput, vectorDim, xDim, yDim)
	}
	// xDim·yDim may overflow; compare by division instead
	if xDim > len(records)/yDim {
		return nil, fmt.Errorf("%w: want %d×%d data records, got %d", ErrMalformedInput, xDim, yDim, len(records))
	}
	want := xDim * yDim

	// A record holding vectorDim values is at least 2·vectorDim−1 bytes long.
	// Checking that first bounds the allocation below by the input size.
	for k := 0; k < want; k++ {
		if (len(records[k])+1)/2 < vectorDim {
			return nil, fmt.Errorf("data record %d: %w: too short for %d values", k+1, ErrMalformedInput, vectorDim)
		}
	}

	// One backing array for all values keeps the grid contiguous.
	values := make([]float64, want*vectorDim)
	grid := make(VectorGrid, yDim)
	for row := 0; row < yDim; row++ {
		grid[row] = make([][]float64, xDim)
		for col := 0; col < xDim; col++ {
			k := row*xDim + col
			off := k * vectorDim
			vec := values[off : off+vectorDim : off+vectorDim]
			if err := parseVector(records[k], vec); err != nil {
				return nil, fmt.Errorf("data record %d (col %d, row %d): %w", k+1, col, row, err)
			}
			grid[row][col] = vec
		}
	}

	return grid, nil
}

// parseVector fills dst from the leading len(dst) tokens of record.
func parseVector(record string, dst []float64) error {
	tokens := strings.SplitN(record, " ", len(dst)+1)
	if len(tokens) < len(dst) {
		return fmt.Errorf("%w: want %d values, got %d", ErrMalformedInput, len(dst), len(tokens))
	}
	for i := range dst {
		v, err := strconv.ParseFloat(tokens[i], 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: token %d %q is not a finite number", ErrMalformedInput, i+1, tokens[i])
		}
		dst[i] = v
	}
	return nil
}

// Parse parses a whole codebook document: a header record followed by
// xDim·yDim data records.
// Returns ErrMalformedHeader or ErrMalformedInput; never a partial codebook.
func Parse(text string) (*Codebook, error) {
	records := SplitRecords(text)
	h, err := ParseHeader(records[0])
	if err != nil {
		return nil, err
	}
	vectors, err := ParseVectorGrid(records[1:], h.VectorDim, h.XDim, h.YDim)
	if err != nil {
		return nil, err
	}

	return &Codebook{Header: h, Vectors: vectors}, nil
}

// Decode reads r to EOF and parses the result with Parse.
func Decode(r io.Reader) (*Codebook, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("codebook: read: %w", err)
	}
	return Parse(string(raw))
}
