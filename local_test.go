package fileurl_test

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/fileurl"
	"github.com/jmgilman/go/fileurl/billy"
)

// tempDirPath returns a fresh directory on the local disk as a Path of the
// default factory.
func tempDirPath(t *testing.T) *fileurl.Path {
	t.Helper()
	p, err := fileurl.Default().Resolve(t.TempDir())
	require.NoError(t, err)
	return p
}

// rootedFactory returns a factory over a fresh directory on the local disk
// together with that directory.
func rootedFactory(t *testing.T) (*fileurl.Factory, string) {
	t.Helper()
	dir := t.TempDir()
	return fileurl.New(fileurl.WithFS(billy.NewLocal(billy.WithRoot(dir)))), dir
}

func TestLocal_RecursiveDelete(t *testing.T) {
	root := tempDirPath(t).Append("d")
	require.True(t, root.Append("sub").Mkdir(true))
	writeFile(t, root.Append("a.txt"), "a")
	writeFile(t, root.Append("sub").Append("b.txt"), "b")

	require.True(t, root.Delete(true))
	_, err := os.Stat(root.String())
	assert.True(t, os.IsNotExist(err))
}

func TestLocal_MoveTo(t *testing.T) {
	dir := tempDirPath(t)
	src := dir.Append("src.txt")
	dst := dir.Append("nested").Append("dst.txt")
	require.True(t, dst.Parent().Mkdir(false))
	writeFile(t, src, "payload")

	require.True(t, src.MoveTo(dst))
	data, err := os.ReadFile(filepath.FromSlash(dst.String()))
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
	assert.False(t, src.Exists())
}

func TestLocal_TempFile(t *testing.T) {
	dir := tempDirPath(t)
	p, err := dir.TempFile("job", ".log")
	require.NoError(t, err)

	info, err := os.Stat(filepath.FromSlash(p.String()))
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular())
	assert.True(t, strings.HasPrefix(info.Name(), "job"))
	assert.True(t, strings.HasSuffix(info.Name(), ".log"))
}

func TestLocal_SetWritable(t *testing.T) {
	p := tempDirPath(t).Append("file.txt")
	writeFile(t, p, "x")

	require.NoError(t, p.SetWritable(false))
	info, err := os.Stat(filepath.FromSlash(p.String()))
	require.NoError(t, err)
	assert.Zero(t, info.Mode().Perm()&0o222)

	require.NoError(t, p.SetWritable(true))
	assert.True(t, p.Writable())
}

func TestLocal_Descendants(t *testing.T) {
	dir := tempDirPath(t)
	require.NoError(t, os.MkdirAll(filepath.Join(filepath.FromSlash(dir.String()), "b", "c"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(filepath.FromSlash(dir.String()), "a.txt"), nil, 0o644))

	var got []string
	for p := range dir.Descendants() {
		got = append(got, strings.TrimPrefix(p.String(), dir.String()))
	}
	assert.Equal(t, []string{"/a.txt", "/b", "/b/c"}, got)
	assert.Len(t, slices.Collect(dir.Descendants()), 3)
}

func TestLocal_WriteToDirectoryFails(t *testing.T) {
	dir := tempDirPath(t)
	require.Error(t, fileurl.WriteString(dir, "x", false))
	assert.False(t, dir.CopyTo(dir.Append("x")))
}

func TestLocal_SetWritableRoundTrip(t *testing.T) {
	f, dir := rootedFactory(t)
	p := f.Append("ro.txt")
	writeFile(t, p, "x")

	require.NoError(t, p.SetWritable(false))
	assert.False(t, p.Writable())
	assert.True(t, p.Readable())
	info, err := os.Stat(filepath.Join(dir, "ro.txt"))
	require.NoError(t, err)
	assert.Zero(t, info.Mode().Perm()&0o222)

	require.NoError(t, p.SetWritable(true))
	assert.True(t, p.Writable())
	info, err = os.Stat(filepath.Join(dir, "ro.txt"))
	require.NoError(t, err)
	assert.NotZero(t, info.Mode().Perm()&0o200)
}

func TestLocal_LastModified(t *testing.T) {
	f, dir := rootedFactory(t)
	p := f.Append("stamped.txt")
	writeFile(t, p, "x")

	want := time.Date(2021, time.July, 4, 10, 30, 0, 0, time.UTC)
	require.True(t, p.SetLastModified(want))
	assert.True(t, p.LastModified().Equal(want))

	info, err := os.Stat(filepath.Join(dir, "stamped.txt"))
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(want))
}

func TestLocal_NoImplicitParents(t *testing.T) {
	f, dir := rootedFactory(t)
	src := f.Append("src.txt")
	writeFile(t, src, "payload")

	assert.False(t, src.RenameTo(f.Append("missing/dst.txt")))
	assert.False(t, src.CopyTo(f.Append("other/c.txt")))
	assert.False(t, src.MoveTo(f.Append("no/such/dst.txt")))
	assert.Error(t, fileurl.WriteString(f.Append("w/x.txt"), "x", false))

	for _, name := range []string{"missing", "other", "no", "w"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.True(t, os.IsNotExist(err), "%s was created", name)
	}
	assert.True(t, src.Exists())
}
