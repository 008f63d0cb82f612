package bucket

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// Bucket defines the interface for a remote object storage backend.
//
// Credential resolution, retries, backoff and rate limiting are the
// implementation's responsibility; callers never retry on top of it.
type Bucket interface {
	// Exists checks whether an object exists.
	//
	// A missing object is (false, nil), not an error.
	Exists(ctx context.Context, bucket, key string) (bool, error)

	// Read downloads an object.
	//
	// If the object does not exist, the returned error satisfies
	// IsNotExist.
	//
	// It's the caller's responsibility to close the ReadCloser returned.
	Read(ctx context.Context, bucket, key string) (io.ReadCloser, error)

	// Write uploads an object, overwriting any existing one.
	Write(ctx context.Context, bucket, key string, data io.Reader) error
}

// Make sure *NotFoundError satisfies error interface.
var _ error = (*NotFoundError)(nil)

// NotFoundError is the error returned by Read when the object requested
// does not exist.
type NotFoundError struct {
	Bucket string
	Key    string
}

func (err *NotFoundError) Error() string {
	return fmt.Sprintf(
		"bucket: no such object: %q in bucket %q",
		err.Key,
		err.Bucket,
	)
}

// IsNotExist checks whether an error returned by Read means the object
// does not exist on the bucket.
func IsNotExist(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}
