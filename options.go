package s3obj

import (
	"os"

	"github.com/rs/zerolog"
)

// Default options values.
const (
	DefaultUseLock = false
)

// Default permissions for files and directories created by Download.
var (
	DefaultFileMode os.FileMode = 0600
	DefaultDirMode  os.FileMode = 0700
)

// Options defines a read-only view of options used by a Store.
type Options interface {
	// GetLogger returns the logger used by Refs of this Store.
	//
	// The default is a no-op logger.
	GetLogger() zerolog.Logger

	// GetUseLock returns whether Download and Upload serialize against
	// each other per local path.
	//
	// When false (the default), concurrent operations on Refs sharing a
	// local path must be serialized by the caller.
	GetUseLock() bool

	// GetFileMode returns the permission applied to files created by
	// Download.
	GetFileMode() os.FileMode

	// GetDirMode returns the permission applied to directories created
	// by Download.
	GetDirMode() os.FileMode
}

// OptionsBuilder defines a read-write view of options used by a Store.
type OptionsBuilder interface {
	Options

	// Build returns the read-only version of options.
	Build() Options

	// SetLogger sets the logger used by Refs of this Store.
	SetLogger(logger zerolog.Logger) OptionsBuilder

	// SetUseLock sets whether Download and Upload serialize against each
	// other per local path.
	SetUseLock(useLock bool) OptionsBuilder

	// SetFileMode sets the permission for files created by Download.
	SetFileMode(mode os.FileMode) OptionsBuilder

	// SetDirMode sets the permission for directories created by
	// Download.
	SetDirMode(mode os.FileMode) OptionsBuilder
}

type options struct {
	logger   zerolog.Logger
	useLock  bool
	fileMode os.FileMode
	dirMode  os.FileMode
}

// NewDefaultOptions creates an OptionsBuilder with default options.
func NewDefaultOptions() OptionsBuilder {
	return &options{
		logger:   zerolog.Nop(),
		useLock:  DefaultUseLock,
		fileMode: DefaultFileMode,
		dirMode:  DefaultDirMode,
	}
}

func (opts *options) GetLogger() zerolog.Logger {
	return opts.logger
}

func (opts *options) GetUseLock() bool {
	return opts.useLock
}

func (opts *options) GetFileMode() os.FileMode {
	return opts.fileMode
}

func (opts *options) GetDirMode() os.FileMode {
	return opts.dirMode
}

func (opts *options) Build() Options {
	return opts
}

func (opts *options) SetLogger(logger zerolog.Logger) OptionsBuilder {
	opts.logger = logger
	return opts
}

func (opts *options) SetUseLock(useLock bool) OptionsBuilder {
	opts.useLock = useLock
	return opts
}

func (opts *options) SetFileMode(mode os.FileMode) OptionsBuilder {
	opts.fileMode = mode
	return opts
}

func (opts *options) SetDirMode(mode os.FileMode) OptionsBuilder {
	opts.dirMode = mode
	return opts
}
