package sftp

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path"
	"time"

	"github.com/pkg/sftp"

	"github.com/jmgilman/go/fileurl/core"
)

// SFTPFS implements core.FS on a remote host through an SFTP client.
//
//nolint:revive // SFTPFS matches LocalFS and MemoryFS naming.
type SFTPFS struct {
	client *sftp.Client
	root   string
}

// Option configures an SFTPFS.
type Option func(*SFTPFS)

// WithRoot scopes the filesystem to dir on the remote host.
func WithRoot(dir string) Option {
	return func(s *SFTPFS) {
		s.root = path.Clean("/" + dir)
	}
}

// NewSFTP creates a filesystem over client. The caller keeps ownership of the
// client and closes it.
func NewSFTP(client *sftp.Client, opts ...Option) *SFTPFS {
	s := &SFTPFS{client: client, root: "/"}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Client returns the underlying SFTP client.
func (s *SFTPFS) Client() *sftp.Client {
	return s.client
}

// remote maps a name of this view to the path on the host.
func (s *SFTPFS) remote(name string) string {
	return path.Join(s.root, normalize(name))
}

func normalize(name string) string {
	return path.Clean("/" + name)
}

// Type returns FSTypeRemote.
func (s *SFTPFS) Type() core.FSType {
	return core.FSTypeRemote
}

// Open opens the named file for reading.
func (s *SFTPFS) Open(name string) (core.File, error) {
	name = normalize(name)
	f, err := s.client.Open(s.remote(name))
	if err != nil {
		return nil, pathError("open", name, err)
	}
	return &File{File: f, name: name}, nil
}

// Stat returns file metadata for the named file.
func (s *SFTPFS) Stat(name string) (fs.FileInfo, error) {
	name = normalize(name)
	info, err := s.client.Stat(s.remote(name))
	if err != nil {
		return nil, pathError("stat", name, err)
	}
	return info, nil
}

// ReadDir returns the entries of the named directory.
func (s *SFTPFS) ReadDir(name string) ([]fs.DirEntry, error) {
	info, err := s.Stat(name)
	if err != nil {
		return nil, err
	}
	name = normalize(name)
	if !info.IsDir() {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: core.ErrNotDir}
	}

	infos, err := s.client.ReadDir(s.remote(name))
	if err != nil {
		return nil, pathError("readdir", name, err)
	}
	entries := make([]fs.DirEntry, 0, len(infos))
	for _, fi := range infos {
		if fi.Name() == "." || fi.Name() == ".." {
			continue
		}
		entries = append(entries, fs.FileInfoToDirEntry(fi))
	}
	return entries, nil
}

// Exists reports whether the named file or directory exists.
func (s *SFTPFS) Exists(name string) (bool, error) {
	_, err := s.Stat(name)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// OpenFile opens a file with the specified flags. Newly created files get
// perm. O_APPEND is emulated by seeking to the end, since the client writes
// at explicit offsets.
func (s *SFTPFS) OpenFile(name string, flag int, perm fs.FileMode) (core.File, error) {
	name = normalize(name)
	existed, err := s.Exists(name)
	if err != nil {
		return nil, err
	}
	if existed && flag&os.O_CREATE != 0 && flag&os.O_EXCL != 0 {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrExist}
	}
	if !existed && flag&os.O_CREATE != 0 {
		if err := s.checkParent(name); err != nil {
			return nil, &fs.PathError{Op: "open", Path: name, Err: err}
		}
	}

	appending := flag&os.O_APPEND != 0
	f, err := s.client.OpenFile(s.remote(name), flag&^os.O_APPEND)
	if err != nil {
		return nil, pathError("open", name, err)
	}
	if appending {
		if _, err := f.Seek(0, io.SeekEnd); err != nil {
			_ = f.Close()
			return nil, pathError("seek", name, err)
		}
	}
	if !existed && flag&os.O_CREATE != 0 {
		if err := s.client.Chmod(s.remote(name), perm.Perm()); err != nil {
			_ = f.Close()
			return nil, pathError("chmod", name, err)
		}
	}
	return &File{File: f, name: name}, nil
}

// Mkdir creates a directory. It fails if the directory exists or its parent
// does not.
func (s *SFTPFS) Mkdir(name string, perm fs.FileMode) error {
	name = normalize(name)
	exists, err := s.Exists(name)
	if err != nil {
		return err
	}
	if exists {
		return &fs.PathError{Op: "mkdir", Path: name, Err: fs.ErrExist}
	}
	if err := s.checkParent(name); err != nil {
		return &fs.PathError{Op: "mkdir", Path: name, Err: err}
	}
	if err := s.client.Mkdir(s.remote(name)); err != nil {
		return pathError("mkdir", name, err)
	}
	return pathError("chmod", name, s.client.Chmod(s.remote(name), perm.Perm()))
}

// MkdirAll creates a directory along with any missing parents. Directories
// get the server's default mode.
func (s *SFTPFS) MkdirAll(name string, _ fs.FileMode) error {
	name = normalize(name)
	return pathError("mkdir", name, s.client.MkdirAll(s.remote(name)))
}

// Remove removes the named file or empty directory.
func (s *SFTPFS) Remove(name string) error {
	info, err := s.Stat(name)
	if err != nil {
		return err
	}
	name = normalize(name)
	if info.IsDir() {
		return pathError("remove", name, s.client.RemoveDirectory(s.remote(name)))
	}
	return pathError("remove", name, s.client.Remove(s.remote(name)))
}

// Rename renames (moves) oldpath to newpath.
func (s *SFTPFS) Rename(oldpath, newpath string) error {
	oldpath, newpath = normalize(oldpath), normalize(newpath)
	if err := s.checkParent(newpath); err != nil {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: err}
	}
	if err := s.client.Rename(s.remote(oldpath), s.remote(newpath)); err != nil {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: translate(err)}
	}
	return nil
}

// checkParent verifies the parent of name is an existing directory.
func (s *SFTPFS) checkParent(name string) error {
	parent := path.Dir(name)
	if parent == "/" {
		return nil
	}
	info, err := s.client.Stat(s.remote(parent))
	if err != nil {
		return translate(err)
	}
	if !info.IsDir() {
		return core.ErrNotDir
	}
	return nil
}

// Chmod changes the permission bits of the named file.
func (s *SFTPFS) Chmod(name string, mode fs.FileMode) error {
	name = normalize(name)
	return pathError("chmod", name, s.client.Chmod(s.remote(name), mode.Perm()))
}

// Chtimes changes the access and modification times of the named file. A zero
// time keeps the current value.
func (s *SFTPFS) Chtimes(name string, atime, mtime time.Time) error {
	if atime.IsZero() || mtime.IsZero() {
		info, err := s.Stat(name)
		if err != nil {
			return err
		}
		if mtime.IsZero() {
			mtime = info.ModTime()
		}
		if atime.IsZero() {
			atime = mtime
		}
	}
	name = normalize(name)
	return pathError("chtimes", name, s.client.Chtimes(s.remote(name), atime, mtime))
}

// Chroot returns a view of the filesystem scoped to dir.
func (s *SFTPFS) Chroot(dir string) (core.FS, error) {
	info, err := s.Stat(dir)
	if err != nil {
		return nil, err
	}
	dir = normalize(dir)
	if !info.IsDir() {
		return nil, &fs.PathError{Op: "chroot", Path: dir, Err: core.ErrNotDir}
	}
	return &SFTPFS{client: s.client, root: s.remote(dir)}, nil
}

// File is an open remote file. Name reports the path within the SFTPFS view
// rather than the host path.
type File struct {
	*sftp.File
	name string
}

// Name returns the name the file was opened with.
func (f *File) Name() string {
	return f.name
}

var (
	_ core.FS   = (*SFTPFS)(nil)
	_ core.File = (*File)(nil)
)
