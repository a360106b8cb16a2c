package source

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Options carries the clients and credentials Parse hands to sources.
type Options struct {
	HTTPClient *http.Client
	S3Client   S3API
	S3Region   string
	Minio      MinioOptions
}

// Parse maps a location to a Source:
//
//	/path, file:///path        FileSource
//	http://..., https://...    HTTPSource
//	s3://bucket/key            S3Source
//	minio://bucket/key         MinioSource (requires opts.Minio.Endpoint)
//
// Returns ErrUnsupportedScheme for other schemes and ErrInvalidURI for a
// missing bucket, key or endpoint.
func Parse(uri string, opts Options) (Source, error) {
	if uri == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidURI)
	}
	u, err := url.Parse(uri)
	// single-letter schemes are Windows drive letters
	if err != nil || len(u.Scheme) <= 1 {
		return FileSource{Path: uri}, nil
	}

	switch strings.ToLower(u.Scheme) {
	case "file":
		return FileSource{Path: u.Path}, nil
	case "http", "https":
		return HTTPSource{URL: uri, Client: opts.HTTPClient}, nil
	case "s3":
		bucket, key, err := bucketKey(u)
		if err != nil {
			return nil, err
		}
		return &S3Source{Bucket: bucket, Key: key, Client: opts.S3Client, Region: opts.S3Region}, nil
	case "minio":
		bucket, key, err := bucketKey(u)
		if err != nil {
			return nil, err
		}
		if opts.Minio.Endpoint == "" {
			return nil, fmt.Errorf("%w: minio endpoint not configured", ErrInvalidURI)
		}
		client, err := NewMinioClient(opts.Minio)
		if err != nil {
			return nil, fmt.Errorf("source: minio client: %w", err)
		}
		return &MinioSource{Client: client, Bucket: bucket, Key: key}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
}

func bucketKey(u *url.URL) (bucket, key string, err error) {
	bucket, key = u.Host, strings.TrimPrefix(u.Path, "/")
	if bucket == "" || key == "" {
		return "", "", fmt.Errorf("%w: %s needs bucket and key", ErrInvalidURI, u.Redacted())
	}
	return bucket, key, nil
}
