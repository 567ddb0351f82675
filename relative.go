package fileurl

import (
	"slices"
	"strings"

	"github.com/jmgilman/go/fileurl/errors"
)

// RelativePath is an ordered sequence of segments with no root. It is joined
// onto a Path with AppendPath.
type RelativePath struct {
	segments []string
}

// Rel builds a relative path from segments. Segments containing separators
// are split, empty and "." ones dropped, and ".." resolved against the
// segment before it. Leading ".." segments are kept for the base to resolve.
func Rel(segments ...string) RelativePath {
	var out []string
	for _, s := range segments {
		out = append(out, split(s)...)
	}
	return RelativePath{segments: clean(out, false)}
}

// ParseRelative parses a slash-separated relative path. It rejects absolute
// input.
func ParseRelative(s string) (RelativePath, error) {
	if strings.HasPrefix(s, "/") {
		return RelativePath{}, errors.WithContext(
			errors.New(errors.CodeInvalidInput, "relative path must not start with a separator"),
			"path", s,
		)
	}
	return Rel(s), nil
}

// Segments returns a copy of the segments.
func (r RelativePath) Segments() []string {
	return slices.Clone(r.segments)
}

// Join returns r followed by other.
func (r RelativePath) Join(other RelativePath) RelativePath {
	return RelativePath{segments: clean(slices.Concat(r.segments, other.segments), false)}
}

// String returns the slash-separated form.
func (r RelativePath) String() string {
	return strings.Join(r.segments, "/")
}
