package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// FileSource reads a document from the local filesystem.
type FileSource struct {
	Path string
}

// Open opens the file at s.Path.
func (s FileSource) Open(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, s.Path)
		}
		return nil, err
	}
	return f, nil
}

func (s FileSource) String() string {
	return "file://" + s.Path
}
