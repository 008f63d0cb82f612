// Package s3 provides a bucket.Bucket implementation backed by any
// s3-compatible service (AWS S3, MinIO, etc.), via minio-go.
//
// Authentication, retries and backoff are handled by minio-go; this
// package only maps its results onto the bucket capability interface.
package s3
