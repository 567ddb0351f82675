package billy

import (
	"io"
	"io/fs"

	"github.com/go-git/go-billy/v5"

	"github.com/jmgilman/go/fileurl/core"
)

// File adapts a billy.File to core.File. It keeps the name it was opened
// with because billy backends disagree on what Name returns.
type File struct {
	file  billy.File
	owner *adapter
	name  string
}

// Read reads from the underlying file.
func (f *File) Read(p []byte) (int, error) {
	return f.file.Read(p)
}

// Write writes to the underlying file.
func (f *File) Write(p []byte) (int, error) {
	n, err := f.file.Write(p)
	if n > 0 {
		f.owner.touch(f.name)
	}
	return n, err
}

// Close closes the underlying file.
func (f *File) Close() error {
	return f.file.Close()
}

// Stat stats the file by name, billy.File has no Stat of its own.
func (f *File) Stat() (fs.FileInfo, error) {
	return f.owner.Stat(f.name)
}

// Name returns the absolute name the file was opened with.
func (f *File) Name() string {
	return f.name
}

// Seek implements io.Seeker.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	return f.file.Seek(offset, whence)
}

// Sync flushes the file to stable storage. It is a no-op for backends that
// have no notion of it, such as memfs.
func (f *File) Sync() error {
	if syncer, ok := f.file.(interface{ Sync() error }); ok {
		return syncer.Sync()
	}
	return nil
}

var (
	_ core.File = (*File)(nil)
	_ io.Seeker = (*File)(nil)
)
