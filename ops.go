package fileurl

import (
	"iter"
	"time"

	"github.com/jmgilman/go/fileurl/errors"
)

// Exists reports whether the path exists.
func (p *Path) Exists() bool {
	return p.Handle().Exists()
}

// IsFile reports whether the path is an existing regular file.
func (p *Path) IsFile() bool {
	return p.Handle().IsFile()
}

// IsDirectory reports whether the path is an existing directory.
func (p *Path) IsDirectory() bool {
	return p.Handle().IsDir()
}

// Readable reports whether the owner may read the path.
func (p *Path) Readable() bool {
	return p.Handle().CanRead()
}

// Writable reports whether the owner may write the path.
func (p *Path) Writable() bool {
	return p.Handle().CanWrite()
}

// SetWritable clears every write bit when writable is false. When writable is
// true it grants the owner write bit, doing nothing if the path is already
// writable, and returns a CodeForbidden error if the filesystem refuses.
func (p *Path) SetWritable(writable bool) error {
	h := p.Handle()
	if !writable {
		if err := h.SetReadOnly(); err != nil {
			return errors.WithContext(errors.FromFS(err, "failed to set read-only"), "path", p.String())
		}
		return nil
	}

	if h.CanWrite() {
		return nil
	}
	if err := h.SetWritable(); err != nil {
		return errors.WithContext(errors.Wrap(err, errors.CodeForbidden, "cannot make path writable"), "path", p.String())
	}
	if !h.CanWrite() {
		return errors.WithContext(errors.New(errors.CodeForbidden, "cannot make path writable"), "path", p.String())
	}
	return nil
}

// Size returns the length in bytes. It is 0 for directories and missing
// paths.
func (p *Path) Size() int64 {
	return p.Handle().Size()
}

// LastModified returns the modification time, or the zero time if unknown.
func (p *Path) LastModified() time.Time {
	return p.Handle().ModTime()
}

// SetLastModified sets the modification time and reports whether the
// filesystem accepted it.
func (p *Path) SetLastModified(t time.Time) bool {
	if err := p.Handle().SetModTime(t); err != nil {
		p.debug("set modification time failed", "path", p.String(), "error", err)
		return false
	}
	return true
}

// Delete removes the path and reports whether it is gone. A non-empty
// directory is only removed when recursive is true; its entries are then
// deleted depth-first first. A failed entry does not stop the others, but
// leaves the directory non-empty so the result is false.
func (p *Path) Delete(recursive bool) bool {
	if recursive && p.IsDirectory() {
		for _, child := range p.Children() {
			if !child.Delete(true) {
				p.debug("recursive delete left an entry behind", "path", child.String())
			}
		}
	}
	if err := p.Handle().Delete(); err != nil {
		p.debug("delete failed", "path", p.String(), "error", err)
		return false
	}
	return true
}

// Children returns the immediate entries of the directory in lexical order.
// It is empty for files, missing paths and unreadable directories.
func (p *Path) Children() []*Path {
	entries, err := p.Handle().List()
	if err != nil {
		p.debug("list failed", "path", p.String(), "error", err)
		return []*Path{}
	}
	children := make([]*Path, len(entries))
	for i, e := range entries {
		children[i] = p.join([]string{e.Name()})
	}
	return children
}

// Descendants returns every path below this directory, depth-first in
// pre-order: a directory comes before its own entries. Each directory is
// listed when the sequence reaches it, so the result follows the live tree.
// Ranging again starts a new traversal. Symbolic link cycles are not
// detected.
func (p *Path) Descendants() iter.Seq[*Path] {
	return func(yield func(*Path) bool) {
		p.descend(yield)
	}
}

func (p *Path) descend(yield func(*Path) bool) bool {
	for _, child := range p.Children() {
		if !yield(child) {
			return false
		}
		if child.IsDirectory() && !child.descend(yield) {
			return false
		}
	}
	return true
}

// Mkdir creates the directory, and its missing ancestors when makeParents is
// true. It reports false if the path exists or cannot be created.
func (p *Path) Mkdir(makeParents bool) bool {
	if err := p.Handle().Mkdir(makeParents, p.factory.dirPerm); err != nil {
		p.debug("mkdir failed", "path", p.String(), "error", err)
		return false
	}
	return true
}

// RenameTo atomically renames the path to dest and reports success. It fails
// across filesystems.
func (p *Path) RenameTo(dest *Path) bool {
	if err := p.Handle().RenameTo(dest.Handle()); err != nil {
		p.debug("rename failed", "path", p.String(), "dest", dest.String(), "error", err)
		return false
	}
	return true
}

// CopyTo streams the bytes of the path into dest, replacing its contents,
// through the factory's byte capabilities. It succeeds only if at least one
// byte was transferred, so copying an empty file reports false.
func (p *Path) CopyTo(dest *Path) bool {
	n, err := Copy(p, dest, p.factory.byteReader, p.factory.byteWriter)
	if err != nil {
		p.debug("copy failed", "path", p.String(), "dest", dest.String(), "bytes", n, "error", err)
		return false
	}
	if n == 0 {
		p.debug("copy transferred no bytes", "path", p.String(), "dest", dest.String(), "bytes", n)
		return false
	}
	return true
}

// MoveTo renames the path to dest. If the rename fails it copies the path to
// dest and then deletes the source. Nothing is rolled back: when the copy
// succeeds but the delete fails, both paths exist and the result is false.
func (p *Path) MoveTo(dest *Path) bool {
	if p.RenameTo(dest) {
		return true
	}
	p.debug("rename failed, falling back to copy and delete", "path", p.String(), "dest", dest.String())
	return p.CopyTo(dest) && p.Delete(false)
}

// TempFile creates a new empty file named prefix + random + suffix inside
// this directory and returns its path. An empty prefix means "tmp".
func (p *Path) TempFile(prefix, suffix string) (*Path, error) {
	if prefix == "" {
		prefix = "tmp"
	}
	h, err := p.Handle().CreateUnique(prefix, suffix, p.factory.tempAttempts, p.factory.filePerm)
	if err != nil {
		return nil, errors.WithContext(errors.FromFS(err, "failed to create temporary file"), "path", p.String())
	}
	return p.factory.FromHandle(h), nil
}

// DeleteOnExit schedules removal of the path when exithook.Run executes,
// which programs arrange at exit. It cannot be cancelled.
func (p *Path) DeleteOnExit() {
	p.Handle().DeleteOnExit()
}

func (p *Path) debug(msg string, args ...any) {
	p.factory.logger.Debug(msg, args...)
}
