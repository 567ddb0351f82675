package fileurl

import (
	"io/fs"
	"log/slog"

	"github.com/jmgilman/go/fileurl/core"
)

// Options contains configuration for a Factory.
type Options struct {
	// FS provides the native filesystem primitives.
	// If nil, a go-billy local filesystem rooted at "/" is used.
	FS core.FS

	// Logger receives debug records for failures that operations report as
	// booleans. If nil, records are discarded.
	Logger *slog.Logger

	// ByteReader and ByteWriter are the byte capabilities CopyTo and MoveTo
	// stream through. If nil, ByteStreams is used.
	ByteReader core.Reader[*Path, byte]
	ByteWriter core.Writer[*Path, byte]

	// DirPerm is the mode used for directories created by Mkdir.
	// Defaults to 0755.
	DirPerm fs.FileMode

	// FilePerm is the mode used for files created by outputs and TempFile.
	// Defaults to 0644.
	FilePerm fs.FileMode

	// TempAttempts bounds how many names TempFile tries before giving up.
	// Defaults to 10000.
	TempAttempts int
}

// Option configures a Factory.
type Option func(*Options)

// WithFS sets the native filesystem that paths resolve handles against.
func WithFS(fsys core.FS) Option {
	return func(o *Options) {
		o.FS = fsys
	}
}

// WithLogger sets the logger for debug records.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithByteStreams replaces the byte capabilities used by CopyTo and MoveTo.
func WithByteStreams(r core.Reader[*Path, byte], w core.Writer[*Path, byte]) Option {
	return func(o *Options) {
		o.ByteReader = r
		o.ByteWriter = w
	}
}

// WithDirPerm sets the mode for created directories.
func WithDirPerm(perm fs.FileMode) Option {
	return func(o *Options) {
		o.DirPerm = perm
	}
}

// WithFilePerm sets the mode for created files.
func WithFilePerm(perm fs.FileMode) Option {
	return func(o *Options) {
		o.FilePerm = perm
	}
}

// WithTempAttempts sets how many candidate names TempFile tries.
func WithTempAttempts(n int) Option {
	return func(o *Options) {
		o.TempAttempts = n
	}
}

// DefaultOptions returns the options a Factory starts from.
func DefaultOptions() *Options {
	return &Options{
		DirPerm:      0o755,
		FilePerm:     0o644,
		TempAttempts: 10000,
	}
}
