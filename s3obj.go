package s3obj

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/fishy/errbatch"
	"github.com/fishy/rowlock"

	"github.com/s3obj-go/s3obj/bucket"
)

// Scheme is the URI scheme accepted by FromRemotePath.
const Scheme = "s3://"

const tempFilePrefix = ".s3obj_"

// Store binds a bucket implementation to a set of options.
//
// It holds no per-object state; it only exists so that the bucket is an
// explicit dependency instead of a hidden package-level client. One
// Store is typically shared by all Refs in a process.
type Store struct {
	bucket bucket.Bucket
	opts   Options
	locks  *rowlock.RowLock
}

// Open creates a Store from a bucket implementation and options.
//
// There's no need to close it.
func Open(bkt bucket.Bucket, opts Options) *Store {
	return &Store{
		bucket: bkt,
		opts:   opts,
		locks:  rowlock.NewRowLock(rowlock.MutexNewLocker),
	}
}

// Ref represents one remote object, identified by bucket and key, bound
// to a local filesystem path.
//
// LocalPath is always the base directory joined with the key, with the
// key's path segments preserved. A Ref is immutable after construction.
type Ref struct {
	Bucket    string
	Key       string
	LocalPath string

	store *Store
}

// FromRemotePath creates a Ref from a remote path of the form
// "s3://bucket/key" and a local base directory.
//
// The base directory does not need to exist yet. The path must carry
// the scheme, a non-empty bucket and a non-empty key; anything else is
// a MalformedPathError.
func (s *Store) FromRemotePath(remotePath, baseDir string) (*Ref, error) {
	if !strings.HasPrefix(remotePath, Scheme) {
		return nil, &MalformedPathError{
			Path:   remotePath,
			Reason: "missing " + Scheme + " scheme",
		}
	}
	bkt, key, _ := strings.Cut(strings.TrimPrefix(remotePath, Scheme), "/")
	if bkt == "" {
		return nil, &MalformedPathError{
			Path:   remotePath,
			Reason: "empty bucket",
		}
	}
	key = strings.Trim(key, "/")
	if key == "" {
		return nil, &MalformedPathError{
			Path:   remotePath,
			Reason: "empty key",
		}
	}
	return &Ref{
		Bucket:    bkt,
		Key:       key,
		LocalPath: filepath.Join(baseDir, filepath.FromSlash(key)),
		store:     s,
	}, nil
}

// FromLocalPath creates a Ref from an existing local path under the
// base directory, deriving the key from the path's baseDir-relative
// portion.
//
// It returns a MalformedPathError if localPath does not sit under
// baseDir. The file does not need to exist yet.
func (s *Store) FromLocalPath(bucketName, localPath, baseDir string) (*Ref, error) {
	rel, err := filepath.Rel(baseDir, localPath)
	if err != nil || rel == "." || rel == ".." ||
		strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return nil, &MalformedPathError{
			Path:   localPath,
			Reason: fmt.Sprintf("not under base directory %q", baseDir),
		}
	}
	return &Ref{
		Bucket:    bucketName,
		Key:       filepath.ToSlash(rel),
		LocalPath: filepath.Join(baseDir, rel),
		store:     s,
	}, nil
}

func (r *Ref) String() string {
	return fmt.Sprintf("Ref(remote=%s, local=%s)", r.RemotePath(), r.LocalPath)
}

// RemotePath returns the full remote path, "s3://bucket/key".
func (r *Ref) RemotePath() string {
	return Scheme + r.Bucket + "/" + r.Key
}

// Basename returns the last path segment of the key.
func (r *Ref) Basename() string {
	return path.Base(r.Key)
}

// Ext returns the file extension of the key, including the leading dot,
// or the empty string if there is none.
func (r *Ref) Ext() string {
	return path.Ext(r.Key)
}

// Name returns the last path segment of the key with the extension
// stripped.
func (r *Ref) Name() string {
	return strings.TrimSuffix(r.Basename(), r.Ext())
}

// ExistsLocal checks whether the local file exists.
func (r *Ref) ExistsLocal() bool {
	_, err := os.Stat(r.LocalPath)
	return err == nil
}

// ExistsRemote checks whether the object exists on the bucket.
//
// It returns a TransferError if the check itself fails.
func (r *Ref) ExistsRemote(ctx context.Context) (bool, error) {
	exists, err := r.store.bucket.Exists(ctx, r.Bucket, r.Key)
	if err != nil {
		return false, &TransferError{
			Op:     "head",
			Bucket: r.Bucket,
			Key:    r.Key,
			Err:    err,
		}
	}
	return exists, nil
}

// Download transfers the remote object to LocalPath.
//
// If the local file already exists and overwrite is false, Download
// does nothing and returns nil. Otherwise parent directories are
// created as needed and the object is written through a temp file in
// the destination directory followed by a rename, so a failed transfer
// never leaves partial data at LocalPath.
//
// It returns a NotFoundError if the remote object does not exist, a
// TransferError if the transfer fails, and an IOError on local
// filesystem failures.
func (r *Ref) Download(ctx context.Context, overwrite bool) error {
	if r.store.opts.GetUseLock() {
		r.store.locks.Lock(r.LocalPath)
		defer r.store.locks.Unlock(r.LocalPath)
	}
	logger := r.store.opts.GetLogger()

	if !overwrite && r.ExistsLocal() {
		logger.Debug().
			Str("local", r.LocalPath).
			Msg("local file exists, skipping download")
		return nil
	}

	started := time.Now()

	// Read before touching the filesystem, so a missing remote object
	// leaves no directories behind either.
	data, err := r.store.bucket.Read(ctx, r.Bucket, r.Key)
	if err != nil {
		if bucket.IsNotExist(err) {
			return &NotFoundError{Bucket: r.Bucket, Key: r.Key}
		}
		return &TransferError{
			Op:     "download",
			Bucket: r.Bucket,
			Key:    r.Key,
			Err:    err,
		}
	}
	defer data.Close()

	dir := filepath.Dir(r.LocalPath)
	if err := os.MkdirAll(dir, r.store.opts.GetDirMode()); err != nil {
		return &IOError{Op: "mkdir", Path: dir, Err: err}
	}

	tmp, err := os.CreateTemp(dir, tempFilePrefix)
	if err != nil {
		return &IOError{Op: "create temp file in", Path: dir, Err: err}
	}
	tmpName := tmp.Name()

	batch := new(errbatch.ErrBatch)
	_, copyErr := io.Copy(tmp, data)
	batch.Add(copyErr)
	batch.Add(tmp.Close())
	if err := batch.Compile(); err != nil {
		os.Remove(tmpName)
		return &TransferError{
			Op:     "download",
			Bucket: r.Bucket,
			Key:    r.Key,
			Err:    err,
		}
	}

	if err := os.Chmod(tmpName, r.store.opts.GetFileMode()); err != nil {
		os.Remove(tmpName)
		return &IOError{Op: "chmod", Path: tmpName, Err: err}
	}
	if err := os.Rename(tmpName, r.LocalPath); err != nil {
		os.Remove(tmpName)
		return &IOError{Op: "rename to", Path: r.LocalPath, Err: err}
	}

	logger.Info().
		Str("remote", r.RemotePath()).
		Str("local", r.LocalPath).
		Dur("took", time.Since(started)).
		Msg("downloaded")
	return nil
}

// Upload transfers the local file at LocalPath to the remote object.
//
// If the remote object already exists and overwrite is false, Upload
// fails with an AlreadyExistsError and leaves the remote object
// untouched. Unlike Download it never skips silently: the local bytes
// may differ from the remote ones, and the caller should decide.
//
// It returns a NotFoundError if the local file does not exist and a
// TransferError if the existence probe or the transfer fails.
func (r *Ref) Upload(ctx context.Context, overwrite bool) error {
	if r.store.opts.GetUseLock() {
		r.store.locks.Lock(r.LocalPath)
		defer r.store.locks.Unlock(r.LocalPath)
	}

	f, err := os.Open(r.LocalPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &NotFoundError{LocalPath: r.LocalPath}
		}
		return &IOError{Op: "open", Path: r.LocalPath, Err: err}
	}
	defer f.Close()

	if !overwrite {
		exists, err := r.store.bucket.Exists(ctx, r.Bucket, r.Key)
		if err != nil {
			return &TransferError{
				Op:     "head",
				Bucket: r.Bucket,
				Key:    r.Key,
				Err:    err,
			}
		}
		if exists {
			return &AlreadyExistsError{Bucket: r.Bucket, Key: r.Key}
		}
	}

	started := time.Now()
	if err := r.store.bucket.Write(ctx, r.Bucket, r.Key, f); err != nil {
		return &TransferError{
			Op:     "upload",
			Bucket: r.Bucket,
			Key:    r.Key,
			Err:    err,
		}
	}

	logger := r.store.opts.GetLogger()
	logger.Info().
		Str("local", r.LocalPath).
		Str("remote", r.RemotePath()).
		Dur("took", time.Since(started)).
		Msg("uploaded")
	return nil
}

// RemoveLocal deletes the local file. The remote object is untouched.
//
// It returns a NotFoundError if the local file does not exist.
func (r *Ref) RemoveLocal() error {
	err := os.Remove(r.LocalPath)
	if os.IsNotExist(err) {
		return &NotFoundError{LocalPath: r.LocalPath}
	}
	if err != nil {
		return &IOError{Op: "remove", Path: r.LocalPath, Err: err}
	}
	logger := r.store.opts.GetLogger()
	logger.Info().
		Str("local", r.LocalPath).
		Msg("removed local file")
	return nil
}
