package fileurl

import (
	"slices"
	"strings"
	"sync"

	"github.com/jmgilman/go/fileurl/core"
)

// Path is an absolute filesystem location held as an ordered sequence of
// segments. Its segments never change after construction and never contain
// empty strings, separators or dot segments.
//
// A Path does no I/O until an operation asks for it. The native handle is
// resolved on first use and cached for the life of the value; obtain a new
// Path to observe a different handle.
type Path struct {
	segments []string
	factory  *Factory

	once   sync.Once
	handle *core.Handle
}

// Segments returns a copy of the path segments.
func (p *Path) Segments() []string {
	return slices.Clone(p.segments)
}

// String returns the absolute slash-separated form of the path.
func (p *Path) String() string {
	return "/" + strings.Join(p.segments, "/")
}

// Factory returns the factory that built the path.
func (p *Path) Factory() *Factory {
	return p.factory
}

// Handle returns the native handle of the path, resolving it on first call.
func (p *Path) Handle() *core.Handle {
	p.once.Do(func() {
		p.handle = core.NewHandle(p.factory.fsys, p.String())
	})
	return p.handle
}

// Filename returns the last segment, or "" for the root.
func (p *Path) Filename() string {
	if len(p.segments) == 0 {
		return ""
	}
	return p.segments[len(p.segments)-1]
}

// Extension returns the text after the last "." of the filename. It reports
// false when the filename has no ".". A leading dot counts, so ".gitignore"
// has extension "gitignore".
func (p *Path) Extension() (string, bool) {
	name := p.Filename()
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return "", false
	}
	return name[i+1:], true
}

// Parent returns the path without its last segment. The root is its own
// parent.
func (p *Path) Parent() *Path {
	if len(p.segments) == 0 {
		return p
	}
	return p.factory.FromSegments(p.segments[:len(p.segments)-1])
}

// Append returns the path joined with name. A name containing separators is
// split into several segments, and "." and ".." are resolved lexically.
func (p *Path) Append(name string) *Path {
	return p.join(split(name))
}

// AppendPath returns the path joined with the segments of rel.
func (p *Path) AppendPath(rel RelativePath) *Path {
	return p.join(rel.segments)
}

// Resolve is AppendPath.
func (p *Path) Resolve(rel RelativePath) *Path {
	return p.AppendPath(rel)
}

func (p *Path) join(extra []string) *Path {
	return p.factory.FromSegments(slices.Concat(p.segments, extra))
}

// Equal reports whether both paths come from the same factory and have the
// same segments.
func (p *Path) Equal(other *Path) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.factory == other.factory && slices.Equal(p.segments, other.segments)
}
