package fstest

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"testing"

	"github.com/jmgilman/go/fileurl/core"
)

// TestWriteFS tests write operations: OpenFile, Mkdir, MkdirAll.
// Uses DefaultTestConfig().
func TestWriteFS(t *testing.T, filesystem core.FS) {
	TestWriteFSWithConfig(t, filesystem, DefaultTestConfig())
}

// TestWriteFSWithConfig tests write operations with behavior configuration.
func TestWriteFSWithConfig(t *testing.T, filesystem core.FS, config FSTestConfig) {
	t.Run("CreateAndRead", func(t *testing.T) {
		config.skip(t)
		writeFile(t, filesystem, "/create.txt", []byte("hello"))
		if got := readFile(t, filesystem, "/create.txt"); !bytes.Equal(got, []byte("hello")) {
			t.Errorf("read back %q, want %q", got, "hello")
		}
	})
	t.Run("Truncate", func(t *testing.T) {
		config.skip(t)
		writeFile(t, filesystem, "/trunc.txt", []byte("long content"))
		writeFile(t, filesystem, "/trunc.txt", []byte("short"))
		if got := readFile(t, filesystem, "/trunc.txt"); !bytes.Equal(got, []byte("short")) {
			t.Errorf("read back %q, want %q", got, "short")
		}
	})
	t.Run("Append", func(t *testing.T) {
		config.skip(t)
		writeFile(t, filesystem, "/append.txt", []byte("ab"))
		f, err := filesystem.OpenFile("/append.txt", os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			t.Fatalf("OpenFile(O_APPEND): got error %v, want nil", err)
		}
		if _, err := f.Write([]byte("cd")); err != nil {
			t.Fatalf("Write(): got error %v, want nil", err)
		}
		if err := f.Close(); err != nil {
			t.Fatalf("Close(): got error %v, want nil", err)
		}
		if got := readFile(t, filesystem, "/append.txt"); !bytes.Equal(got, []byte("abcd")) {
			t.Errorf("read back %q, want %q", got, "abcd")
		}
	})
	t.Run("CreateExclusive", func(t *testing.T) {
		config.skip(t)
		writeFile(t, filesystem, "/excl.txt", nil)
		_, err := filesystem.OpenFile("/excl.txt", os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
		if !errors.Is(err, fs.ErrExist) {
			t.Errorf("OpenFile(O_EXCL) on existing file: got error %v, want fs.ErrExist", err)
		}
	})
	t.Run("CreateMissingParent", func(t *testing.T) {
		config.skip(t)
		_, err := filesystem.OpenFile("/absent/f.txt", os.O_CREATE|os.O_WRONLY, 0o644)
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("OpenFile(/absent/f.txt): got error %v, want fs.ErrNotExist", err)
		}
		if ok, _ := filesystem.Exists("/absent"); ok {
			t.Errorf("OpenFile(/absent/f.txt) created the missing parent")
		}
	})
	t.Run("Mkdir", func(t *testing.T) {
		config.skip(t)
		if err := filesystem.Mkdir("/newdir", 0o755); err != nil {
			t.Fatalf("Mkdir(/newdir): got error %v, want nil", err)
		}
		if !statMode(t, filesystem, "/newdir").IsDir() {
			t.Errorf("Stat(/newdir): IsDir() = false, want true")
		}
	})
	t.Run("MkdirExisting", func(t *testing.T) {
		config.skip(t)
		if err := filesystem.MkdirAll("/existing", 0o755); err != nil {
			t.Fatalf("MkdirAll(/existing): setup failed: %v", err)
		}
		err := filesystem.Mkdir("/existing", 0o755)
		if !errors.Is(err, fs.ErrExist) {
			t.Errorf("Mkdir(/existing): got error %v, want fs.ErrExist", err)
		}
	})
	t.Run("MkdirMissingParent", func(t *testing.T) {
		config.skip(t)
		if err := filesystem.Mkdir("/nope/child", 0o755); err == nil {
			t.Errorf("Mkdir(/nope/child): got nil error, want error")
		}
		if ok, _ := filesystem.Exists("/nope"); ok {
			t.Errorf("Mkdir(/nope/child) created the missing parent")
		}
	})
	t.Run("MkdirAll", func(t *testing.T) {
		config.skip(t)
		if err := filesystem.MkdirAll("/a/b/c", 0o755); err != nil {
			t.Fatalf("MkdirAll(/a/b/c): got error %v, want nil", err)
		}
		for _, name := range []string{"/a", "/a/b", "/a/b/c"} {
			if !statMode(t, filesystem, name).IsDir() {
				t.Errorf("Stat(%s): IsDir() = false, want true", name)
			}
		}
		if err := filesystem.MkdirAll("/a/b/c", 0o755); err != nil {
			t.Errorf("MkdirAll on existing directory: got error %v, want nil", err)
		}
	})
}
