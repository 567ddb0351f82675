package fstest

import (
	"io/fs"
	"os"
	"path"
	"sync"
	"time"

	"github.com/jmgilman/go/fileurl/core"
)

// Op names a core.FS primitive that FaultFS can fail.
type Op string

// Primitives FaultFS intercepts.
const (
	OpOpen     Op = "open"
	OpOpenFile Op = "openfile"
	OpStat     Op = "stat"
	OpReadDir  Op = "readdir"
	OpExists   Op = "exists"
	OpMkdir    Op = "mkdir"
	OpMkdirAll Op = "mkdirall"
	OpRemove   Op = "remove"
	OpRename   Op = "rename"
	OpChmod    Op = "chmod"
	OpChtimes  Op = "chtimes"
)

type fault struct {
	op   Op
	path string
}

// FaultFS wraps a core.FS and fails selected primitives on demand. It lets
// tests exercise failure paths, such as a rename that cannot be performed,
// without relying on permissions or cross-device mounts.
//
// Calls that are not failed pass through to the wrapped filesystem. Chroot
// returns an unwrapped view.
type FaultFS struct {
	core.FS

	mu     sync.Mutex
	faults map[fault]error
	calls  map[Op]int
}

// NewFaultFS wraps fsys.
func NewFaultFS(fsys core.FS) *FaultFS {
	return &FaultFS{
		FS:     fsys,
		faults: make(map[fault]error),
		calls:  make(map[Op]int),
	}
}

// Fail makes op fail with err for name. An empty name fails op for every
// path. For OpRename the name is matched against the source path.
func (f *FaultFS) Fail(op Op, name string, err error) {
	if name != "" {
		name = path.Clean("/" + name)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.faults[fault{op: op, path: name}] = err
}

// Clear removes every configured failure.
func (f *FaultFS) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	clear(f.faults)
}

// Calls returns how many times op has been invoked, failed or not.
func (f *FaultFS) Calls(op Op) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

func (f *FaultFS) check(op Op, name string) error {
	if err := f.injected(op, name); err != nil {
		return &fs.PathError{Op: string(op), Path: name, Err: err}
	}
	return nil
}

// injected records a call to op and returns the configured failure, if any.
func (f *FaultFS) injected(op Op, name string) error {
	name = path.Clean("/" + name)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[op]++
	err, ok := f.faults[fault{op: op, path: name}]
	if !ok {
		err, ok = f.faults[fault{op: op}]
	}
	if !ok {
		return nil
	}
	return err
}

// Open implements core.FS.
func (f *FaultFS) Open(name string) (core.File, error) {
	if err := f.check(OpOpen, name); err != nil {
		return nil, err
	}
	return f.FS.Open(name)
}

// Stat implements core.FS.
func (f *FaultFS) Stat(name string) (fs.FileInfo, error) {
	if err := f.check(OpStat, name); err != nil {
		return nil, err
	}
	return f.FS.Stat(name)
}

// ReadDir implements core.FS.
func (f *FaultFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if err := f.check(OpReadDir, name); err != nil {
		return nil, err
	}
	return f.FS.ReadDir(name)
}

// Exists implements core.FS.
func (f *FaultFS) Exists(name string) (bool, error) {
	if err := f.check(OpExists, name); err != nil {
		return false, err
	}
	return f.FS.Exists(name)
}

// OpenFile implements core.FS.
func (f *FaultFS) OpenFile(name string, flag int, perm fs.FileMode) (core.File, error) {
	if err := f.check(OpOpenFile, name); err != nil {
		return nil, err
	}
	return f.FS.OpenFile(name, flag, perm)
}

// Mkdir implements core.FS.
func (f *FaultFS) Mkdir(name string, perm fs.FileMode) error {
	if err := f.check(OpMkdir, name); err != nil {
		return err
	}
	return f.FS.Mkdir(name, perm)
}

// MkdirAll implements core.FS.
func (f *FaultFS) MkdirAll(name string, perm fs.FileMode) error {
	if err := f.check(OpMkdirAll, name); err != nil {
		return err
	}
	return f.FS.MkdirAll(name, perm)
}

// Remove implements core.FS.
func (f *FaultFS) Remove(name string) error {
	if err := f.check(OpRemove, name); err != nil {
		return err
	}
	return f.FS.Remove(name)
}

// Rename implements core.FS.
func (f *FaultFS) Rename(oldpath, newpath string) error {
	if err := f.injected(OpRename, oldpath); err != nil {
		return &os.LinkError{Op: string(OpRename), Old: oldpath, New: newpath, Err: err}
	}
	return f.FS.Rename(oldpath, newpath)
}

// Chmod implements core.FS.
func (f *FaultFS) Chmod(name string, mode fs.FileMode) error {
	if err := f.check(OpChmod, name); err != nil {
		return err
	}
	return f.FS.Chmod(name, mode)
}

// Chtimes implements core.FS.
func (f *FaultFS) Chtimes(name string, atime, mtime time.Time) error {
	if err := f.check(OpChtimes, name); err != nil {
		return err
	}
	return f.FS.Chtimes(name, atime, mtime)
}

var _ core.FS = (*FaultFS)(nil)
