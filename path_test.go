package fileurl_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/fileurl"
	"github.com/jmgilman/go/fileurl/billy"
	"github.com/jmgilman/go/fileurl/core"
	"github.com/jmgilman/go/fileurl/errors"
)

func newMemFactory(opts ...fileurl.Option) *fileurl.Factory {
	return fileurl.New(append([]fileurl.Option{fileurl.WithFS(billy.NewMemory())}, opts...)...)
}

func TestDefault_Singleton(t *testing.T) {
	f := fileurl.Default()
	assert.Same(t, f, fileurl.Default())
	assert.Equal(t, "file", f.Scheme())
	assert.Equal(t, core.FSTypeLocal, f.FS().Type())
	assert.NotSame(t, f, fileurl.New())
}

func TestFromSegments_RoundTrip(t *testing.T) {
	f := newMemFactory()
	tests := [][]string{
		{},
		{"a"},
		{"usr", "local", "bin"},
		{"with space", "ünïcode", "file.tar.gz"},
	}

	for _, segs := range tests {
		t.Run(strings.Join(segs, "_"), func(t *testing.T) {
			p := f.FromSegments(segs)
			got := strings.FieldsFunc(p.String(), func(r rune) bool { return r == '/' })
			assert.Equal(t, segs, append([]string{}, got...))
			assert.True(t, strings.HasPrefix(p.String(), "/"))
		})
	}
}

func TestFromSegments_DropsEmptyAndCopies(t *testing.T) {
	f := newMemFactory()
	segs := []string{"a", "", "b"}
	p := f.FromSegments(segs)
	segs[0] = "mutated"

	assert.Equal(t, []string{"a", "b"}, p.Segments())
	assert.Equal(t, "/a/b", p.String())

	out := p.Segments()
	out[0] = "changed"
	assert.Equal(t, []string{"a", "b"}, p.Segments())
}

func TestAppend_Associative(t *testing.T) {
	f := newMemFactory()
	base := f.Append("root")

	stepwise := base.AppendPath(fileurl.Rel("a", "b")).AppendPath(fileurl.Rel("c"))
	combined := base.AppendPath(fileurl.Rel("a", "b").Join(fileurl.Rel("c")))
	chained := base.Append("a").Append("b").Append("c")

	assert.Equal(t, combined.Segments(), stepwise.Segments())
	assert.Equal(t, combined.Segments(), chained.Segments())
	assert.True(t, stepwise.Equal(combined))
}

func TestAppend_SplitsSeparators(t *testing.T) {
	f := newMemFactory()
	p := f.Append("a/b//c/")
	assert.Equal(t, []string{"a", "b", "c"}, p.Segments())
	assert.Equal(t, "c", p.Filename())
}

func TestFactoryAppend(t *testing.T) {
	f := newMemFactory()
	assert.Equal(t, "/etc", f.Append("etc").String())
	assert.Equal(t, "/etc/hosts", f.AppendPath(fileurl.Rel("etc", "hosts")).String())
	assert.Equal(t, "/", f.Root().String())
}

func TestExtension(t *testing.T) {
	f := newMemFactory()
	tests := []struct {
		name   string
		want   string
		wantOK bool
	}{
		{name: "archive.tar.gz", want: "gz", wantOK: true},
		{name: "README", want: "", wantOK: false},
		{name: ".gitignore", want: "gitignore", wantOK: true},
		{name: "trailing.", want: "", wantOK: true},
		{name: "photo.JPG", want: "JPG", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := f.Append("dir").Append(tt.name).Extension()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := f.Root().Extension()
	assert.False(t, ok)
}

func TestParent(t *testing.T) {
	f := newMemFactory()
	p := f.Append("a").Append("b")
	assert.Equal(t, "/a", p.Parent().String())
	assert.Equal(t, "/", p.Parent().Parent().String())
	assert.Equal(t, "/", f.Root().Parent().String())
	assert.Same(t, f, p.Parent().Factory())
}

func TestEqual(t *testing.T) {
	f := newMemFactory()
	other := newMemFactory()

	assert.True(t, f.Append("x").Equal(f.FromSegments([]string{"x"})))
	assert.False(t, f.Append("x").Equal(f.Append("y")))
	assert.False(t, f.Append("x").Equal(other.Append("x")), "paths from different factories differ")
	assert.False(t, f.Append("x").Equal(nil))
}

func TestParseRelative(t *testing.T) {
	rel, err := fileurl.ParseRelative("a/b/../c")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, rel.Segments())
	assert.Equal(t, "a/c", rel.String())

	_, err = fileurl.ParseRelative("/abs")
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}

func TestDotSegments(t *testing.T) {
	f := newMemFactory()

	up := f.Append("a").Append("..")
	assert.Empty(t, up.Segments())
	assert.Equal(t, "/", up.String())
	assert.Equal(t, up.String(), up.Handle().Path())
	assert.True(t, up.Equal(f.Root()))
	assert.Equal(t, "", up.Filename())

	assert.Equal(t, "/a/c", f.FromSegments([]string{"a", ".", "b", "..", "c"}).String())
	assert.Equal(t, "/x", f.FromSegments([]string{"..", "..", "x"}).String(), "clamped at the root")
	assert.Equal(t, "/a/b", f.Append("a/./b").String())

	rel := fileurl.Rel("..", "x")
	assert.Equal(t, []string{"..", "x"}, rel.Segments())
	assert.Equal(t, "/base/x", f.Append("base").Append("y").AppendPath(rel).String())
	assert.Equal(t, []string{"..", "y"}, rel.Join(fileurl.Rel("..", "y")).Segments())
}

func TestResolve(t *testing.T) {
	f := newMemFactory()

	p, err := f.Resolve("/a/./b/../c")
	require.NoError(t, err)
	assert.Equal(t, "/a/c", p.String())

	wd, err := os.Getwd()
	require.NoError(t, err)
	p, err = f.Resolve("sub")
	require.NoError(t, err)
	assert.Equal(t, filepath.ToSlash(filepath.Join(wd, "sub")), p.String())

	_, err = f.Resolve("")
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))

	base := f.Append("base")
	assert.Equal(t, "/base/x/y", base.Resolve(fileurl.Rel("x/y")).String())
}

func TestCurrentWorkingDirectory(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	p, err := fileurl.Default().CurrentWorkingDirectory()
	require.NoError(t, err)
	assert.Equal(t, filepath.ToSlash(wd), p.String())
	assert.True(t, p.IsDirectory())
}

func TestHandle_Memoized(t *testing.T) {
	f := newMemFactory()
	p := f.Append("gone.txt")
	require.NoError(t, fileurl.WriteString(p, "x", false))

	first := p.Handle()
	require.True(t, p.Delete(false))
	second := p.Handle()

	assert.Same(t, first, second)
	assert.Equal(t, first.Path(), second.Path())
	assert.False(t, p.Exists())
}

func TestFromHandle(t *testing.T) {
	mem := billy.NewMemory()
	f := fileurl.New(fileurl.WithFS(mem))
	h := core.NewHandle(mem, "/srv/data")

	p := f.FromHandle(h)
	assert.Equal(t, []string{"srv", "data"}, p.Segments())
	assert.Same(t, h, p.Handle())
}
