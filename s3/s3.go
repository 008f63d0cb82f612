package s3

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/minio/minio-go/v7"

	"github.com/s3obj-go/s3obj/bucket"
)

// Make sure *Client satisfies bucket.Bucket interface.
var _ bucket.Bucket = (*Client)(nil)

// Client is a bucket.Bucket implementation backed by an s3-compatible
// endpoint.
type Client struct {
	mc *minio.Client
}

// New creates a Client against the given endpoint
// (e.g. "s3.amazonaws.com" or "localhost:9000").
func New(endpoint string, opts Options) (*Client, error) {
	mc, err := minio.New(endpoint, &minio.Options{
		Creds:  opts.GetCredentials(),
		Secure: opts.GetSecure(),
		Region: opts.GetRegion(),
	})
	if err != nil {
		return nil, fmt.Errorf("s3: create client for %q: %w", endpoint, err)
	}
	return &Client{mc: mc}, nil
}

// Header holds the subset of object metadata exposed by Stat.
type Header struct {
	LastModified  time.Time
	ContentLength int64
	ETag          string
	VersionID     string
	ContentType   string
	Metadata      map[string]string
}

// Stat returns the metadata of an object without downloading its
// content.
//
// If the object does not exist, the returned error satisfies
// bucket.IsNotExist.
func (c *Client) Stat(ctx context.Context, bkt, key string) (*Header, error) {
	info, err := c.mc.StatObject(ctx, bkt, key, minio.StatObjectOptions{})
	if err != nil {
		if isNotFound(err) {
			return nil, &bucket.NotFoundError{Bucket: bkt, Key: key}
		}
		return nil, fmt.Errorf("s3: stat object bucket=%s key=%s: %w", bkt, key, err)
	}
	return &Header{
		LastModified:  info.LastModified,
		ContentLength: info.Size,
		ETag:          info.ETag,
		VersionID:     info.VersionID,
		ContentType:   info.ContentType,
		Metadata:      map[string]string(info.UserMetadata),
	}, nil
}

// Exists checks whether an object exists, via a head request.
func (c *Client) Exists(ctx context.Context, bkt, key string) (bool, error) {
	_, err := c.Stat(ctx, bkt, key)
	if err != nil {
		if bucket.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Read downloads an object.
func (c *Client) Read(ctx context.Context, bkt, key string) (io.ReadCloser, error) {
	obj, err := c.mc.GetObject(ctx, bkt, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("s3: get object bucket=%s key=%s: %w", bkt, key, err)
	}
	// GetObject is lazy; Stat forces the first round trip so a missing
	// object surfaces here instead of on the first Read.
	if _, err := obj.Stat(); err != nil {
		obj.Close()
		if isNotFound(err) {
			return nil, &bucket.NotFoundError{Bucket: bkt, Key: key}
		}
		return nil, fmt.Errorf("s3: get object bucket=%s key=%s: %w", bkt, key, err)
	}
	return obj, nil
}

// Write uploads an object, overwriting any existing one.
func (c *Client) Write(ctx context.Context, bkt, key string, data io.Reader) error {
	if _, err := c.mc.PutObject(
		ctx,
		bkt,
		key,
		data,
		-1, // unknown size, let minio-go buffer into parts
		minio.PutObjectOptions{},
	); err != nil {
		return fmt.Errorf("s3: put object bucket=%s key=%s: %w", bkt, key, err)
	}
	return nil
}

func isNotFound(err error) bool {
	resp := minio.ToErrorResponse(err)
	return resp.Code == "NoSuchKey" ||
		resp.Code == "NoSuchBucket" ||
		resp.StatusCode == http.StatusNotFound
}
