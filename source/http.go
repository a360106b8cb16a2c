package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// HTTPSource fetches a document with a GET request.
type HTTPSource struct {
	URL string
	// Client defaults to http.DefaultClient.
	Client *http.Client
}

// Open issues the request and returns the response body on 2xx.
// A 404 maps to ErrNotFound.
func (s HTTPSource) Open(ctx context.Context) (io.ReadCloser, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		if resp.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, s.URL)
		}
		return nil, fmt.Errorf("source: GET %s: %s", s.URL, resp.Status)
	}
	return resp.Body, nil
}

func (s HTTPSource) String() string {
	return s.URL
}
