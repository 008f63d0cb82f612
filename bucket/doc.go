// Package bucket defines the capability interface for a remote object
// storage backend (e.g. s3 or any s3-compatible service).
//
// It also provides an in-memory mock implementation for testing.
package bucket
