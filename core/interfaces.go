package core

import (
	"io"
	"io/fs"
	"time"
)

// FSType represents the underlying type of filesystem implementation.
type FSType int

const (
	// FSTypeUnknown indicates the filesystem type is unknown or unspecified.
	FSTypeUnknown FSType = iota
	// FSTypeLocal indicates a local, disk-backed filesystem.
	FSTypeLocal
	// FSTypeMemory indicates an in-memory filesystem.
	FSTypeMemory
	// FSTypeRemote indicates a filesystem on another host, such as SFTP.
	FSTypeRemote
)

// String returns a string representation of the FSType.
func (t FSType) String() string {
	switch t {
	case FSTypeLocal:
		return "local"
	case FSTypeMemory:
		return "memory"
	case FSTypeRemote:
		return "remote"
	default:
		return "unknown"
	}
}

// FS is the native filesystem a Handle operates on.
//
// Implementations must be pointer types: handles compare FS values to detect
// renames across filesystems.
type FS interface {
	ReadFS
	WriteFS
	ManageFS
	MetadataFS
	ChrootFS

	// Type returns the underlying filesystem type.
	Type() FSType
}

// ReadFS defines read-only filesystem operations.
type ReadFS interface {
	// Open opens the named file for reading.
	// The returned file must be closed when no longer needed.
	Open(name string) (File, error)

	// Stat returns file metadata, following symbolic links.
	// If there is an error, it will be of type *fs.PathError.
	Stat(name string) (fs.FileInfo, error)

	// ReadDir returns the entries of the named directory in no guaranteed
	// order.
	// If there is an error, it will be of type *fs.PathError.
	ReadDir(name string) ([]fs.DirEntry, error)

	// Exists reports whether the named file or directory exists.
	// A false result with a non-nil error means existence could not be
	// determined.
	Exists(name string) (bool, error)
}

// WriteFS defines write operations.
type WriteFS interface {
	// OpenFile opens a file with the specified flags (os.O_RDONLY, os.O_CREATE,
	// os.O_EXCL, os.O_APPEND, ...) and permissions.
	OpenFile(name string, flag int, perm fs.FileMode) (File, error)

	// Mkdir creates a directory. It fails if the parent does not exist or the
	// directory already exists.
	Mkdir(name string, perm fs.FileMode) error

	// MkdirAll creates a directory along with any missing parents.
	// If path is already a directory, MkdirAll does nothing and returns nil.
	MkdirAll(path string, perm fs.FileMode) error
}

// ManageFS defines file and directory management operations.
type ManageFS interface {
	// Remove removes the named file or empty directory.
	// A non-empty directory is not removed and an error is returned.
	Remove(name string) error

	// Rename renames (moves) oldpath to newpath.
	Rename(oldpath, newpath string) error
}

// MetadataFS defines metadata operations.
//
// Providers that cannot change metadata return ErrUnsupported.
type MetadataFS interface {
	// Chmod changes the mode of the named file.
	Chmod(name string, mode fs.FileMode) error

	// Chtimes changes the access and modification times of the named file.
	// A zero time value leaves the corresponding time unchanged.
	Chtimes(name string, atime, mtime time.Time) error
}

// ChrootFS defines the ability to create scoped filesystem views.
type ChrootFS interface {
	// Chroot returns a filesystem scoped to the given directory. All paths
	// passed to the returned FS are relative to dir.
	Chroot(dir string) (FS, error)
}

// File represents an open file handle.
type File interface {
	fs.File // Read([]byte) (int, error), Close() error, Stat() (fs.FileInfo, error)
	io.Writer

	// Name returns the name of the file as provided to Open or OpenFile.
	Name() string
}
