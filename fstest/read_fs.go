package fstest

import (
	"bytes"
	"errors"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/fileurl/core"
)

// TestReadFS tests read-only operations: Open, Stat, ReadDir, Exists.
// Uses DefaultTestConfig().
func TestReadFS(t *testing.T, filesystem core.FS) {
	TestReadFSWithConfig(t, filesystem, DefaultTestConfig())
}

// TestReadFSWithConfig tests read-only operations with behavior configuration.
func TestReadFSWithConfig(t *testing.T, filesystem core.FS, config FSTestConfig) {
	testContent := []byte("test file content")

	if err := filesystem.MkdirAll("/testdir/sub", 0o755); err != nil {
		t.Fatalf("MkdirAll(/testdir/sub): setup failed: %v", err)
	}
	writeFile(t, filesystem, "/testdir/testfile.txt", testContent)
	writeFile(t, filesystem, "/testdir/another.txt", []byte("x"))

	t.Run("Open", func(t *testing.T) {
		config.skip(t)
		got := readFile(t, filesystem, "/testdir/testfile.txt")
		if !bytes.Equal(got, testContent) {
			t.Errorf("Read(): got %q, want %q", got, testContent)
		}
	})
	t.Run("OpenName", func(t *testing.T) {
		config.skip(t)
		f, err := filesystem.Open("/testdir/testfile.txt")
		if err != nil {
			t.Fatalf("Open(): got error %v, want nil", err)
		}
		defer func() { _ = f.Close() }()
		if f.Name() != "/testdir/testfile.txt" {
			t.Errorf("Name(): got %q, want %q", f.Name(), "/testdir/testfile.txt")
		}
		info, err := f.Stat()
		if err != nil {
			t.Fatalf("File.Stat(): got error %v, want nil", err)
		}
		if info.Size() != int64(len(testContent)) {
			t.Errorf("File.Stat(): Size() = %d, want %d", info.Size(), len(testContent))
		}
	})
	t.Run("StatFile", func(t *testing.T) {
		config.skip(t)
		info, err := filesystem.Stat("/testdir/testfile.txt")
		if err != nil {
			t.Fatalf("Stat(): got error %v, want nil", err)
		}
		if !info.Mode().IsRegular() {
			t.Errorf("Stat(): mode %v is not regular", info.Mode())
		}
		if info.Size() != int64(len(testContent)) {
			t.Errorf("Stat(): Size() = %d, want %d", info.Size(), len(testContent))
		}
	})
	t.Run("StatDir", func(t *testing.T) {
		config.skip(t)
		if !statMode(t, filesystem, "/testdir").IsDir() {
			t.Errorf("Stat(/testdir): IsDir() = false, want true")
		}
	})
	t.Run("StatNotExist", func(t *testing.T) {
		config.skip(t)
		_, err := filesystem.Stat("/missing")
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Stat(/missing): got error %v, want fs.ErrNotExist", err)
		}
	})
	t.Run("ReadDir", func(t *testing.T) {
		config.skip(t)
		entries, err := filesystem.ReadDir("/testdir")
		if err != nil {
			t.Fatalf("ReadDir(): got error %v, want nil", err)
		}
		got := make(map[string]bool, len(entries))
		for _, e := range entries {
			got[e.Name()] = e.IsDir()
		}
		want := map[string]bool{"another.txt": false, "sub": true, "testfile.txt": false}
		if len(got) != len(want) {
			t.Fatalf("ReadDir(): got %d entries, want %d", len(got), len(want))
		}
		for name, isDir := range want {
			d, ok := got[name]
			if !ok {
				t.Errorf("ReadDir(): missing entry %q", name)
				continue
			}
			if d != isDir {
				t.Errorf("ReadDir(): %q IsDir() = %v, want %v", name, d, isDir)
			}
		}
	})
	t.Run("ReadDirOnFile", func(t *testing.T) {
		config.skip(t)
		if _, err := filesystem.ReadDir("/testdir/testfile.txt"); err == nil {
			t.Errorf("ReadDir(file): got nil error, want error")
		}
	})
	t.Run("OpenNotExist", func(t *testing.T) {
		config.skip(t)
		_, err := filesystem.Open("/testdir/missing.txt")
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Open(missing): got error %v, want fs.ErrNotExist", err)
		}
	})
	t.Run("Exists", func(t *testing.T) {
		config.skip(t)
		for name, want := range map[string]bool{
			"/testdir":              true,
			"/testdir/testfile.txt": true,
			"/testdir/missing.txt":  false,
		} {
			got, err := filesystem.Exists(name)
			if err != nil {
				t.Errorf("Exists(%s): got error %v, want nil", name, err)
				continue
			}
			if got != want {
				t.Errorf("Exists(%s): got %v, want %v", name, got, want)
			}
		}
	})
}
