package codebook

import (
	"fmt"
	"strconv"
	"strings"
)

// headerFields is the minimum number of tokens in a header record.
const headerFields = 4

// Header holds the dimensions declared on the first codebook record.
type Header struct {
	// VectorDim is the length of every reference vector.
	VectorDim int
	// Topology is the second header token, kept verbatim and never interpreted.
	Topology string
	// XDim is the number of columns of the lattice.
	XDim int
	// YDim is the number of rows of the lattice.
	YDim int
}

// Size returns the number of lattice nodes, XDim·YDim.
func (h Header) Size() int {
	return h.XDim * h.YDim
}

// String renders the header back in its serialized form.
func (h Header) String() string {
	return fmt.Sprintf("%d %s %d %d", h.VectorDim, h.Topology, h.XDim, h.YDim)
}

// ParseHeader parses a header record "<vectorDim> <topology> <xDim> <yDim> ...".
// Tokens are whitespace-separated; anything after the fourth token is ignored.
// Returns ErrMalformedHeader if fewer than four tokens are present or if any
// of vectorDim, xDim, yDim is not a positive integer.
func ParseHeader(line string) (Header, error) {
	fields := strings.Fields(line)
	if len(fields) < headerFields {
		return Header{}, fmt.Errorf("%w: want %d tokens, got %d", ErrMalformedHeader, headerFields, len(fields))
	}

	dims := [3]int{}
	for i, pos := range [3]int{0, 2, 3} {
		v, err := strconv.Atoi(fields[pos])
		if err != nil {
			return Header{}, fmt.Errorf("%w: token %d %q is not an integer", ErrMalformedHeader, pos+1, fields[pos])
		}
		if v <= 0 {
			return Header{}, fmt.Errorf("%w: token %d must be positive, got %d", ErrMalformedHeader, pos+1, v)
		}
		dims[i] = v
	}

	return Header{
		VectorDim: dims[0],
		Topology:  fields[1],
		XDim:      dims[1],
		YDim:      dims[2],
	}, nil
}
