package billy

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/jmgilman/go/fileurl/core"
)

// LocalFS wraps billy's osfs for local filesystem access.
type LocalFS struct {
	adapter
}

// MemoryFS wraps billy's memfs for in-memory filesystem access.
type MemoryFS struct {
	adapter
}

// Option configures filesystem creation.
type Option func(*config)

type config struct {
	root string
}

// WithRoot roots a local filesystem at dir instead of "/".
func WithRoot(dir string) Option {
	return func(c *config) {
		c.root = dir
	}
}

func newConfig(opts []Option) *config {
	c := &config{root: "/"}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewLocal creates a go-billy-backed local filesystem rooted at "/" unless
// WithRoot says otherwise.
func NewLocal(opts ...Option) *LocalFS {
	c := newConfig(opts)
	return &LocalFS{adapter{bfs: osfs.New(c.root), root: "/", meta: hostMetadata{base: c.root}}}
}

// NewMemory creates an empty go-billy-backed in-memory filesystem. Modes and
// modification times are tracked beside memfs, which stores neither.
func NewMemory() *MemoryFS {
	attrs := newMemoryAttrs()
	return &MemoryFS{adapter{bfs: memfs.New(), root: "/", meta: attrs, attrs: attrs}}
}

// Chroot returns a local filesystem scoped to dir.
func (lfs *LocalFS) Chroot(dir string) (core.FS, error) {
	a, err := lfs.chroot(dir)
	if err != nil {
		return nil, err
	}
	return &LocalFS{a}, nil
}

// Type returns FSTypeLocal.
func (lfs *LocalFS) Type() core.FSType {
	return core.FSTypeLocal
}

// Chroot returns a memory filesystem scoped to dir.
func (mfs *MemoryFS) Chroot(dir string) (core.FS, error) {
	a, err := mfs.chroot(dir)
	if err != nil {
		return nil, err
	}
	return &MemoryFS{a}, nil
}

// Type returns FSTypeMemory.
func (mfs *MemoryFS) Type() core.FSType {
	return core.FSTypeMemory
}

// metadata is the subset of billy.Change used for Chmod and Chtimes.
type metadata interface {
	Chmod(name string, mode fs.FileMode) error
	Chtimes(name string, atime, mtime time.Time) error
}

// hostMetadata changes metadata on the host filesystem below base. billy's
// chroot helper, which osfs.New returns, does not expose billy.Change.
type hostMetadata struct {
	base string
}

func (h hostMetadata) Chmod(name string, mode fs.FileMode) error {
	return os.Chmod(h.host(name), mode)
}

func (h hostMetadata) Chtimes(name string, atime, mtime time.Time) error {
	return os.Chtimes(h.host(name), atime, mtime)
}

func (h hostMetadata) host(name string) string {
	return filepath.Join(h.base, filepath.FromSlash(name))
}

// adapter implements the provider-independent part of core.FS on top of a
// billy.Filesystem. Metadata changes go to meta, addressed by root joined
// with the name, so they survive chroot. attrs is set for memfs only.
type adapter struct {
	bfs   billy.Filesystem
	root  string
	meta  metadata
	attrs *memoryAttrs
}

// Unwrap returns the underlying billy.Filesystem.
func (a *adapter) Unwrap() billy.Filesystem {
	return a.bfs
}

// normalize converts names to clean absolute slash paths.
func normalize(name string) string {
	return path.Clean("/" + name)
}

// dirEntry adapts the fs.FileInfo returned by billy to fs.DirEntry.
type dirEntry struct {
	info fs.FileInfo
}

func (d *dirEntry) Name() string               { return d.info.Name() }
func (d *dirEntry) IsDir() bool                { return d.info.IsDir() }
func (d *dirEntry) Type() fs.FileMode          { return d.info.Mode().Type() }
func (d *dirEntry) Info() (fs.FileInfo, error) { return d.info, nil }

// Open opens the named file for reading.
func (a *adapter) Open(name string) (core.File, error) {
	name = normalize(name)
	f, err := a.bfs.Open(name)
	if err != nil {
		return nil, err
	}
	return &File{file: f, owner: a, name: name}, nil
}

// Stat returns file metadata for the named file.
func (a *adapter) Stat(name string) (fs.FileInfo, error) {
	name = normalize(name)
	info, err := a.bfs.Stat(name)
	if err != nil {
		return nil, err
	}
	return a.withAttrs(name, info), nil
}

func (a *adapter) withAttrs(name string, info fs.FileInfo) fs.FileInfo {
	if a.attrs == nil {
		return info
	}
	return a.attrs.apply(a.key(name), info)
}

// touch records a modification of name for backends without mtimes.
func (a *adapter) touch(name string) {
	if a.attrs != nil {
		a.attrs.touch(a.key(name))
	}
}

// key is the absolute path of name in the unscoped filesystem.
func (a *adapter) key(name string) string {
	return path.Join(a.root, name)
}

// checkParent verifies the parent of name is an existing directory. billy
// backends create missing parents on write and rename.
func (a *adapter) checkParent(name string) error {
	parent := path.Dir(name)
	if parent == "/" {
		return nil
	}
	info, err := a.bfs.Stat(parent)
	if errors.Is(err, fs.ErrNotExist) {
		return fs.ErrNotExist
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return core.ErrNotDir
	}
	return nil
}

// ReadDir returns the entries of the named directory.
func (a *adapter) ReadDir(name string) ([]fs.DirEntry, error) {
	name = normalize(name)
	info, err := a.bfs.Stat(name)
	if err != nil {
		return nil, err
	}
	// memfs lists a file as an empty directory.
	if !info.IsDir() {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: core.ErrNotDir}
	}
	infos, err := a.bfs.ReadDir(name)
	if err != nil {
		return nil, err
	}
	entries := make([]fs.DirEntry, len(infos))
	for i, info := range infos {
		entries[i] = &dirEntry{info: a.withAttrs(path.Join(name, info.Name()), info)}
	}
	return entries, nil
}

// Exists reports whether the named file or directory exists.
func (a *adapter) Exists(name string) (bool, error) {
	_, err := a.bfs.Stat(normalize(name))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// OpenFile opens a file with the specified flags and permissions. Creating a
// file fails if its parent directory does not exist.
func (a *adapter) OpenFile(name string, flag int, perm fs.FileMode) (core.File, error) {
	name = normalize(name)
	existed, err := a.Exists(name)
	if err != nil {
		return nil, err
	}
	if !existed && flag&os.O_CREATE != 0 {
		if err := a.checkParent(name); err != nil {
			return nil, &fs.PathError{Op: "open", Path: name, Err: err}
		}
	}
	f, err := a.bfs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	switch {
	case !existed && a.attrs != nil:
		a.attrs.forget(a.key(name))
		a.touch(name)
	case flag&os.O_TRUNC != 0:
		a.touch(name)
	}
	return &File{file: f, owner: a, name: name}, nil
}

// Mkdir creates a directory. Unlike MkdirAll it fails if the directory exists
// or its parent does not.
func (a *adapter) Mkdir(name string, perm fs.FileMode) error {
	name = normalize(name)
	if _, err := a.bfs.Stat(name); err == nil {
		return &fs.PathError{Op: "mkdir", Path: name, Err: fs.ErrExist}
	}
	if err := a.checkParent(name); err != nil {
		return &fs.PathError{Op: "mkdir", Path: name, Err: err}
	}
	// The parent exists, so MkdirAll creates exactly one directory.
	if err := a.bfs.MkdirAll(name, perm); err != nil {
		return err
	}
	a.touch(name)
	return nil
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (a *adapter) MkdirAll(name string, perm fs.FileMode) error {
	return a.bfs.MkdirAll(normalize(name), perm)
}

// Remove removes the named file or empty directory.
func (a *adapter) Remove(name string) error {
	name = normalize(name)
	if err := a.bfs.Remove(name); err != nil {
		return err
	}
	if a.attrs != nil {
		a.attrs.forget(a.key(name))
	}
	return nil
}

// Rename renames (moves) oldpath to newpath. The parent of newpath must
// already be a directory.
func (a *adapter) Rename(oldpath, newpath string) error {
	oldpath, newpath = normalize(oldpath), normalize(newpath)
	if err := a.checkParent(newpath); err != nil {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: err}
	}
	if err := a.bfs.Rename(oldpath, newpath); err != nil {
		return err
	}
	if a.attrs != nil {
		a.attrs.move(a.key(oldpath), a.key(newpath))
	}
	return nil
}

// Chmod changes the permission bits of the named file. It returns
// core.ErrUnsupported if the backend cannot change metadata.
func (a *adapter) Chmod(name string, mode fs.FileMode) error {
	name = normalize(name)
	if a.meta == nil {
		return &fs.PathError{Op: "chmod", Path: name, Err: core.ErrUnsupported}
	}
	info, err := a.bfs.Stat(name)
	if err != nil {
		return err
	}
	// Keep the type bits, memoryAttrs stores the mode verbatim.
	return a.meta.Chmod(path.Join(a.root, name), info.Mode().Type()|mode.Perm())
}

// Chtimes changes the access and modification times of the named file. A zero
// time keeps the current value.
func (a *adapter) Chtimes(name string, atime, mtime time.Time) error {
	name = normalize(name)
	if a.meta == nil {
		return &fs.PathError{Op: "chtimes", Path: name, Err: core.ErrUnsupported}
	}
	info, err := a.Stat(name)
	if err != nil {
		return err
	}
	if mtime.IsZero() {
		mtime = info.ModTime()
	}
	if atime.IsZero() {
		atime = mtime
	}
	return a.meta.Chtimes(path.Join(a.root, name), atime, mtime)
}

func (a *adapter) chroot(dir string) (adapter, error) {
	dir = normalize(dir)
	info, err := a.bfs.Stat(dir)
	if err != nil {
		return adapter{}, err
	}
	if !info.IsDir() {
		return adapter{}, &fs.PathError{Op: "chroot", Path: dir, Err: core.ErrNotDir}
	}
	bfs, err := a.bfs.Chroot(dir)
	if err != nil {
		return adapter{}, err
	}
	return adapter{bfs: bfs, root: path.Join(a.root, dir), meta: a.meta, attrs: a.attrs}, nil
}

// Compile-time interface checks.
var (
	_ core.FS = (*LocalFS)(nil)
	_ core.FS = (*MemoryFS)(nil)
)
