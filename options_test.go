package s3obj_test

import (
	"os"
	"testing"

	"github.com/rs/zerolog"

	"github.com/s3obj-go/s3obj"
)

func TestDefaultOptions(t *testing.T) {
	opts := s3obj.NewDefaultOptions()
	if opts.GetUseLock() != s3obj.DefaultUseLock {
		t.Errorf(
			"default UseLock expected %v, got %v",
			s3obj.DefaultUseLock,
			opts.GetUseLock(),
		)
	}
	if opts.GetFileMode() != s3obj.DefaultFileMode {
		t.Errorf(
			"default FileMode expected %v, got %v",
			s3obj.DefaultFileMode,
			opts.GetFileMode(),
		)
	}
	if opts.GetDirMode() != s3obj.DefaultDirMode {
		t.Errorf(
			"default DirMode expected %v, got %v",
			s3obj.DefaultDirMode,
			opts.GetDirMode(),
		)
	}
	if opts.GetLogger().GetLevel() != zerolog.Disabled {
		t.Errorf(
			"default logger should be disabled, got level %v",
			opts.GetLogger().GetLevel(),
		)
	}
}

func TestOptionsSetters(t *testing.T) {
	logger := zerolog.New(os.Stderr)
	opts := s3obj.NewDefaultOptions().
		SetLogger(logger).
		SetUseLock(true).
		SetFileMode(0644).
		SetDirMode(0755).
		Build()

	if !opts.GetUseLock() {
		t.Error("UseLock expected true")
	}
	if opts.GetFileMode() != 0644 {
		t.Errorf("FileMode expected %v, got %v", os.FileMode(0644), opts.GetFileMode())
	}
	if opts.GetDirMode() != 0755 {
		t.Errorf("DirMode expected %v, got %v", os.FileMode(0755), opts.GetDirMode())
	}
	if opts.GetLogger().GetLevel() == zerolog.Disabled {
		t.Error("logger should not be disabled after SetLogger")
	}
}
