package core

import (
	"errors"
	"io/fs"
)

var (
	// ErrNotExist is returned when a file or directory does not exist.
	// Re-exported from io/fs for convenience.
	ErrNotExist = fs.ErrNotExist

	// ErrExist is returned when a file or directory already exists.
	// Re-exported from io/fs for convenience.
	ErrExist = fs.ErrExist

	// ErrPermission is returned when permission is denied.
	// Re-exported from io/fs for convenience.
	ErrPermission = fs.ErrPermission

	// ErrUnsupported is returned when a provider cannot perform a primitive.
	// It is the standard library errors.ErrUnsupported.
	ErrUnsupported = errors.ErrUnsupported

	// ErrCrossFS is returned by Handle.RenameTo when the two handles belong
	// to different FS instances. It plays the role of a cross-device rename.
	ErrCrossFS = errors.New("rename across filesystems")

	// ErrNotDir is returned when a directory operation targets a non-directory.
	ErrNotDir = errors.New("not a directory")
)
