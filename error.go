package s3obj

import (
	"errors"
	"fmt"
)

// Make sure all the error types satisfy error interface.
var (
	_ error = (*MalformedPathError)(nil)
	_ error = (*NotFoundError)(nil)
	_ error = (*AlreadyExistsError)(nil)
	_ error = (*TransferError)(nil)
	_ error = (*IOError)(nil)
)

// MalformedPathError is the error returned by FromRemotePath and
// FromLocalPath when the given path cannot be mapped to an object.
//
// It's only ever returned at construction time, never by operations on
// an existing Ref.
type MalformedPathError struct {
	Path   string
	Reason string
}

func (err *MalformedPathError) Error() string {
	return fmt.Sprintf("s3obj: malformed path %q: %s", err.Path, err.Reason)
}

// IsMalformedPath checks whether a given error is MalformedPathError.
func IsMalformedPath(err error) bool {
	var target *MalformedPathError
	return errors.As(err, &target)
}

// NotFoundError is the error returned when the object an operation
// requires does not exist: the remote object for Download, or the local
// file for Upload and RemoveLocal.
//
// Exactly one side is set: Bucket/Key for a remote miss, LocalPath for
// a local one.
type NotFoundError struct {
	Bucket string
	Key    string

	LocalPath string
}

func (err *NotFoundError) Error() string {
	if err.LocalPath != "" {
		return fmt.Sprintf("s3obj: no such local file: %q", err.LocalPath)
	}
	return fmt.Sprintf("s3obj: no such object: %q in bucket %q", err.Key, err.Bucket)
}

// IsNotFound checks whether a given error is NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// AlreadyExistsError is the error returned by Upload when the remote
// object already exists and overwrite was false.
type AlreadyExistsError struct {
	Bucket string
	Key    string
}

func (err *AlreadyExistsError) Error() string {
	return fmt.Sprintf(
		"s3obj: object %q already exists in bucket %q",
		err.Key,
		err.Bucket,
	)
}

// IsAlreadyExists checks whether a given error is AlreadyExistsError.
func IsAlreadyExists(err error) bool {
	var target *AlreadyExistsError
	return errors.As(err, &target)
}

// TransferError is the error returned when a remote request fails for a
// reason other than the object not existing (network, auth, transport).
//
// Err is the bucket implementation's error, unaltered. Unwrap exposes
// it to errors.Is and errors.As.
type TransferError struct {
	Op     string
	Bucket string
	Key    string
	Err    error
}

func (err *TransferError) Error() string {
	return fmt.Sprintf(
		"s3obj: %s bucket=%s key=%s: %v",
		err.Op,
		err.Bucket,
		err.Key,
		err.Err,
	)
}

func (err *TransferError) Unwrap() error {
	return err.Err
}

// IsTransferError checks whether a given error is TransferError.
func IsTransferError(err error) bool {
	var target *TransferError
	return errors.As(err, &target)
}

// IOError is the error returned when a local filesystem operation
// (directory creation, temp file handling, rename, remove) fails.
//
// Err is the underlying error, unaltered. Unwrap exposes it to
// errors.Is and errors.As.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (err *IOError) Error() string {
	return fmt.Sprintf("s3obj: %s %q: %v", err.Op, err.Path, err.Err)
}

func (err *IOError) Unwrap() error {
	return err.Err
}

// IsIOError checks whether a given error is IOError.
func IsIOError(err error) bool {
	var target *IOError
	return errors.As(err, &target)
}
