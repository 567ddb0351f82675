package fileurl

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jmgilman/go/fileurl/billy"
	"github.com/jmgilman/go/fileurl/core"
	"github.com/jmgilman/go/fileurl/errors"
)

// Scheme is the scheme name of filesystem paths.
const Scheme = "file"

// Factory builds Path values for one native filesystem. It is the only way to
// construct a Path.
type Factory struct {
	fsys         core.FS
	logger       *slog.Logger
	byteReader   core.Reader[*Path, byte]
	byteWriter   core.Writer[*Path, byte]
	dirPerm      os.FileMode
	filePerm     os.FileMode
	tempAttempts int
}

var (
	defaultOnce    sync.Once
	defaultFactory *Factory
)

// Default returns the process-wide factory for the "file" scheme, backed by
// the local disk.
func Default() *Factory {
	defaultOnce.Do(func() {
		defaultFactory = New()
	})
	return defaultFactory
}

// New creates a factory. Most callers want Default; New exists for other
// filesystems and for tests.
func New(opts ...Option) *Factory {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	f := &Factory{
		fsys:         o.FS,
		logger:       o.Logger,
		byteReader:   o.ByteReader,
		byteWriter:   o.ByteWriter,
		dirPerm:      o.DirPerm,
		filePerm:     o.FilePerm,
		tempAttempts: o.TempAttempts,
	}
	if f.fsys == nil {
		f.fsys = billy.NewLocal()
	}
	if f.logger == nil {
		f.logger = slog.New(slog.DiscardHandler)
	}
	if f.byteReader == nil {
		f.byteReader = ByteStreams{}
	}
	if f.byteWriter == nil {
		f.byteWriter = ByteStreams{}
	}
	return f
}

// Scheme returns "file".
func (f *Factory) Scheme() string {
	return Scheme
}

// FS returns the native filesystem of the factory.
func (f *Factory) FS() core.FS {
	return f.fsys
}

// Root returns the path with no segments.
func (f *Factory) Root() *Path {
	return f.FromSegments(nil)
}

// FromSegments returns a path made of segments, in order. The slice is
// copied. Empty and "." segments are dropped, and ".." removes the segment
// before it, stopping at the root.
func (f *Factory) FromSegments(segments []string) *Path {
	return &Path{segments: clean(segments, true), factory: f}
}

// FromHandle returns the path of an existing native handle. The handle becomes
// the path's cached handle.
func (f *Factory) FromHandle(h *core.Handle) *Path {
	p := f.FromSegments(split(h.Path()))
	p.once.Do(func() {
		p.handle = h
	})
	return p
}

// CurrentWorkingDirectory returns the path of the process working directory.
// The result is a host path, so it only names the working directory on
// factories over the local disk rooted at "/", such as Default.
func (f *Factory) CurrentWorkingDirectory() (*Path, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidConfig, "working directory unavailable")
	}
	return f.FromSegments(split(filepath.ToSlash(wd))), nil
}

// Resolve returns the path of raw, an OS path that may be relative to the
// working directory. Dot segments are resolved lexically. Like
// CurrentWorkingDirectory it works in host paths, which map one to one onto
// the factory only when its filesystem is the local disk rooted at "/".
func (f *Factory) Resolve(raw string) (*Path, error) {
	if raw == "" {
		return nil, errors.New(errors.CodeInvalidInput, "empty path")
	}
	abs, err := filepath.Abs(raw)
	if err != nil {
		return nil, errors.WithContext(
			errors.Wrap(err, errors.CodeInvalidConfig, "failed to resolve path"),
			"path", raw,
		)
	}
	return f.FromSegments(split(filepath.ToSlash(abs))), nil
}

// Append returns the root joined with name.
func (f *Factory) Append(name string) *Path {
	return f.Root().Append(name)
}

// AppendPath returns the root joined with rel.
func (f *Factory) AppendPath(rel RelativePath) *Path {
	return f.Root().AppendPath(rel)
}

// clean resolves dot segments lexically into a new slice. A ".." with
// nothing left to remove is dropped when rooted and kept otherwise.
func clean(segments []string, rooted bool) []string {
	out := make([]string, 0, len(segments))
	for _, s := range segments {
		switch {
		case s == "" || s == ".":
		case s == ".." && len(out) > 0 && out[len(out)-1] != "..":
			out = out[:len(out)-1]
		case s == ".." && rooted:
		default:
			out = append(out, s)
		}
	}
	return out
}

// split breaks a slash path into its non-empty segments.
func split(p string) []string {
	return strings.FieldsFunc(p, func(r rune) bool { return r == '/' })
}
