package core

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jmgilman/go/fileurl/internal/exithook"
)

// Handle binds a native filesystem to one absolute, slash-separated path.
//
// A Handle holds no open descriptors and performs no I/O when created. Every
// method issues fresh calls against the filesystem.
type Handle struct {
	fsys FS
	path string
}

// NewHandle returns a handle for name on fsys. name is cleaned and made
// absolute.
func NewHandle(fsys FS, name string) *Handle {
	return &Handle{fsys: fsys, path: path.Clean("/" + name)}
}

// Path returns the absolute slash-separated path of the handle.
func (h *Handle) Path() string {
	return h.path
}

// FS returns the filesystem the handle operates on.
func (h *Handle) FS() FS {
	return h.fsys
}

// Stat returns fresh file info.
func (h *Handle) Stat() (fs.FileInfo, error) {
	return h.fsys.Stat(h.path)
}

// Exists reports whether the path exists. Errors count as absent.
func (h *Handle) Exists() bool {
	ok, err := h.fsys.Exists(h.path)
	return err == nil && ok
}

// IsDir reports whether the path is an existing directory.
func (h *Handle) IsDir() bool {
	info, err := h.Stat()
	return err == nil && info.IsDir()
}

// IsFile reports whether the path is an existing regular file.
func (h *Handle) IsFile() bool {
	info, err := h.Stat()
	return err == nil && info.Mode().IsRegular()
}

// CanRead reports whether the owner read bit is set.
func (h *Handle) CanRead() bool {
	info, err := h.Stat()
	return err == nil && info.Mode().Perm()&0o400 != 0
}

// CanWrite reports whether the owner write bit is set.
func (h *Handle) CanWrite() bool {
	info, err := h.Stat()
	return err == nil && info.Mode().Perm()&0o200 != 0
}

// Size returns the length in bytes, or 0 for directories and missing paths.
func (h *Handle) Size() int64 {
	info, err := h.Stat()
	if err != nil || info.IsDir() {
		return 0
	}
	return info.Size()
}

// ModTime returns the modification time, or the zero time if the path cannot
// be stat'd.
func (h *Handle) ModTime() time.Time {
	info, err := h.Stat()
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}

// SetModTime sets the modification time and leaves the access time alone.
func (h *Handle) SetModTime(t time.Time) error {
	return h.fsys.Chtimes(h.path, time.Time{}, t)
}

// SetReadOnly clears every write bit.
func (h *Handle) SetReadOnly() error {
	info, err := h.Stat()
	if err != nil {
		return err
	}
	return h.fsys.Chmod(h.path, info.Mode().Perm()&^0o222)
}

// SetWritable sets the owner write bit.
func (h *Handle) SetWritable() error {
	info, err := h.Stat()
	if err != nil {
		return err
	}
	return h.fsys.Chmod(h.path, info.Mode().Perm()|0o200)
}

// Delete removes the file or empty directory.
func (h *Handle) Delete() error {
	return h.fsys.Remove(h.path)
}

// Mkdir creates the directory, and its missing parents when parents is true.
// It fails with fs.ErrExist if the path already exists.
func (h *Handle) Mkdir(parents bool, perm fs.FileMode) error {
	if h.Exists() {
		return &fs.PathError{Op: "mkdir", Path: h.path, Err: fs.ErrExist}
	}
	if parents {
		return h.fsys.MkdirAll(h.path, perm)
	}
	return h.fsys.Mkdir(h.path, perm)
}

// RenameTo renames the path to dst. Handles on different filesystems cannot
// be renamed into each other and fail with ErrCrossFS.
func (h *Handle) RenameTo(dst *Handle) error {
	if h.fsys != dst.fsys {
		return &os.LinkError{Op: "rename", Old: h.path, New: dst.path, Err: ErrCrossFS}
	}
	return h.fsys.Rename(h.path, dst.path)
}

// List returns the immediate entries of the directory sorted by name.
func (h *Handle) List() ([]fs.DirEntry, error) {
	entries, err := h.fsys.ReadDir(h.path)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(entries, func(a, b fs.DirEntry) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return entries, nil
}

// Child returns a handle for name inside this path on the same filesystem.
func (h *Handle) Child(name string) *Handle {
	return &Handle{fsys: h.fsys, path: path.Join(h.path, name)}
}

// OpenRead opens the file for reading.
func (h *Handle) OpenRead() (File, error) {
	return h.fsys.Open(h.path)
}

// OpenWrite opens the file for writing, creating it with perm if needed. The
// file is truncated unless appending.
func (h *Handle) OpenWrite(appending bool, perm fs.FileMode) (File, error) {
	flag := os.O_WRONLY | os.O_CREATE
	if appending {
		flag |= os.O_APPEND
	} else {
		flag |= os.O_TRUNC
	}
	return h.fsys.OpenFile(h.path, flag, perm)
}

// CreateUnique creates an empty file named prefix + random + suffix inside
// this directory and returns its handle. It gives up after attempts names
// already in use.
func (h *Handle) CreateUnique(prefix, suffix string, attempts int, perm fs.FileMode) (*Handle, error) {
	if !h.IsDir() {
		return nil, &fs.PathError{Op: "createunique", Path: h.path, Err: ErrNotDir}
	}

	var err error
	for range max(attempts, 1) {
		child := h.Child(prefix + uniqueToken() + suffix)

		var f File
		f, err = h.fsys.OpenFile(child.path, os.O_RDWR|os.O_CREATE|os.O_EXCL, perm)
		if err == nil {
			return child, f.Close()
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, err
		}
	}
	return nil, err
}

// DeleteOnExit registers removal of the path with the process exit hooks.
// Registration cannot be undone.
func (h *Handle) DeleteOnExit() {
	fsys, name := h.fsys, h.path
	exithook.Register(func() {
		_ = fsys.Remove(name)
	})
}

func uniqueToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
