package bucket

import (
	"bytes"
	"context"
	"io"
	"sync"
	"time"

	"github.com/fishy/wrapreader"
)

// Make sure *Mock satisfies Bucket interface.
var _ Bucket = (*Mock)(nil)

// MockOperationDelay defines the delay before and after an operation.
// It's useful to mimic network latency in tests.
type MockOperationDelay struct {
	// Before is the delay between the function call and the actual operation.
	Before time.Duration

	// After is the delay between the actual operation completes and the
	// function returns. For Read it is applied when the returned
	// ReadCloser is closed instead, mimicking a held connection.
	After time.Duration
}

// Mock is a mock implementation of Bucket, backed by memory.
//
// Objects are stored per (bucket, key) pair. The error fields, when
// set, are returned by the corresponding operation as-is, to mimic
// transport failures. Operation counters can be used to assert how many
// requests an operation actually made.
type Mock struct {
	lock    sync.Mutex
	objects map[string][]byte

	reads  int
	writes int
	heads  int

	ReadDelay   MockOperationDelay
	WriteDelay  MockOperationDelay
	ExistsDelay MockOperationDelay

	ReadErr   error
	WriteErr  error
	ExistsErr error
}

// MockBucket creates a new, empty mock Bucket.
func MockBucket() *Mock {
	return &Mock{
		objects: make(map[string][]byte),
	}
}

// Exists reports whether the object is in memory.
func (m *Mock) Exists(ctx context.Context, bucket, key string) (bool, error) {
	time.Sleep(m.ExistsDelay.Before)
	defer time.Sleep(m.ExistsDelay.After)
	if err := ctx.Err(); err != nil {
		return false, err
	}

	m.lock.Lock()
	defer m.lock.Unlock()
	m.heads++
	if m.ExistsErr != nil {
		return false, m.ExistsErr
	}
	_, ok := m.objects[objectKey(bucket, key)]
	return ok, nil
}

// Read reads the object from memory.
func (m *Mock) Read(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	time.Sleep(m.ReadDelay.Before)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.lock.Lock()
	m.reads++
	err := m.ReadErr
	data, ok := m.objects[objectKey(bucket, key)]
	m.lock.Unlock()

	if err != nil {
		return nil, err
	}
	if !ok {
		time.Sleep(m.ReadDelay.After)
		return nil, &NotFoundError{Bucket: bucket, Key: key}
	}
	return wrapreader.Wrap(
		bytes.NewReader(data),
		delayCloser(m.ReadDelay.After),
	), nil
}

// Write writes the object to memory.
func (m *Mock) Write(ctx context.Context, bucket, key string, data io.Reader) error {
	time.Sleep(m.WriteDelay.Before)
	defer time.Sleep(m.WriteDelay.After)
	if err := ctx.Err(); err != nil {
		return err
	}

	m.lock.Lock()
	m.writes++
	err := m.WriteErr
	m.lock.Unlock()
	if err != nil {
		return err
	}

	buf, err := io.ReadAll(data)
	if err != nil {
		return err
	}

	m.lock.Lock()
	defer m.lock.Unlock()
	m.objects[objectKey(bucket, key)] = buf
	return nil
}

// SetObject seeds an object directly, without counting as a write.
func (m *Mock) SetObject(bucket, key string, data []byte) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.objects[objectKey(bucket, key)] = append([]byte(nil), data...)
}

// Object returns the current content of an object directly, without
// counting as a read.
func (m *Mock) Object(bucket, key string) ([]byte, bool) {
	m.lock.Lock()
	defer m.lock.Unlock()
	data, ok := m.objects[objectKey(bucket, key)]
	if !ok {
		return nil, false
	}
	return append([]byte(nil), data...), true
}

// ReadCount returns the number of Read calls made so far.
func (m *Mock) ReadCount() int {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.reads
}

// WriteCount returns the number of Write calls made so far.
func (m *Mock) WriteCount() int {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.writes
}

// ExistsCount returns the number of Exists calls made so far.
func (m *Mock) ExistsCount() int {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.heads
}

type delayCloser time.Duration

func (d delayCloser) Close() error {
	time.Sleep(time.Duration(d))
	return nil
}

func objectKey(bucket, key string) string {
	return bucket + "/" + key
}
