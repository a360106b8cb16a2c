package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3API is the subset of *s3.Client used by S3Source.
type S3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Source reads a document from an Amazon S3 object.
type S3Source struct {
	Bucket string
	Key    string
	// Client is used as-is when set; otherwise one is built from the default
	// AWS credential chain and Region on first Open.
	Client S3API
	Region string

	mu sync.Mutex // guards lazy construction of Client
}

// Open fetches the object body. A missing object maps to ErrNotFound.
func (s *S3Source) Open(ctx context.Context) (io.ReadCloser, error) {
	client, err := s.client(ctx)
	if err != nil {
		return nil, err
	}

	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(s.Key),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, s)
		}
		var nf *types.NotFound
		if errors.As(err, &nf) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, s)
		}
		return nil, err
	}
	return out.Body, nil
}

// client returns s.Client, building it on first use. A failed build is not
// cached, so a later Open retries it.
func (s *S3Source) client(ctx context.Context) (S3API, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Client != nil {
		return s.Client, nil
	}

	var opts []func(*config.LoadOptions) error
	if s.Region != "" {
		opts = append(opts, config.WithRegion(s.Region))
	}
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("source: aws config: %w", err)
	}
	s.Client = s3.NewFromConfig(cfg)
	return s.Client, nil
}

func (s *S3Source) String() string {
	return "s3://" + s.Bucket + "/" + s.Key
}
