package source

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioOptions locates a MinIO or other S3-compatible endpoint.
type MinioOptions struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	// Region skips the bucket location lookup when set.
	Region string
}

// NewMinioClient builds a client for opts. It performs no network I/O.
func NewMinioClient(opts MinioOptions) (*minio.Client, error) {
	return minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
		Region: opts.Region,
	})
}

// MinioSource reads a document from a MinIO object.
type MinioSource struct {
	Client *minio.Client
	Bucket string
	Key    string
}

// Open stats the object, so a missing key surfaces here as ErrNotFound
// rather than on the first read, then streams it.
func (s *MinioSource) Open(ctx context.Context) (io.ReadCloser, error) {
	if _, err := s.Client.StatObject(ctx, s.Bucket, s.Key, minio.StatObjectOptions{}); err != nil {
		return nil, s.mapErr(err)
	}
	obj, err := s.Client.GetObject(ctx, s.Bucket, s.Key, minio.GetObjectOptions{})
	if err != nil {
		return nil, s.mapErr(err)
	}
	return obj, nil
}

func (s *MinioSource) String() string {
	return "minio://" + s.Bucket + "/" + s.Key
}

func (s *MinioSource) mapErr(err error) error {
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NoSuchBucket", "NotFound":
		return fmt.Errorf("%w: %s", ErrNotFound, s)
	}
	return err
}
