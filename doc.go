// Package s3obj provides a convenience type that binds a remote
// object-storage location (bucket and key) to a local filesystem path.
//
// A Store binds a bucket.Bucket implementation to a set of options.
// Refs are created from the Store, either by parsing an
// "s3://bucket/key" style remote path or from an existing local path,
// and expose existence checks, download and upload for one object.
//
// The local path of a Ref is always the base directory joined with the
// object key, so the same (baseDir, key) pair always maps to the same
// file.
//
// All transfer mechanics (authentication, retries, backoff, rate
// limiting) belong to the injected bucket.Bucket implementation.
// This package never retries, never logs-and-swallows, and surfaces
// every failure to the caller as one of its typed errors.
package s3obj
