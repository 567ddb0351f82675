package fstest

import (
	"bytes"
	"errors"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/fileurl/core"
)

// TestManageFS tests file management: Remove and Rename.
// Uses DefaultTestConfig().
func TestManageFS(t *testing.T, filesystem core.FS) {
	TestManageFSWithConfig(t, filesystem, DefaultTestConfig())
}

// TestManageFSWithConfig tests file management with behavior configuration.
func TestManageFSWithConfig(t *testing.T, filesystem core.FS, config FSTestConfig) {
	t.Run("RemoveFile", func(t *testing.T) {
		config.skip(t)
		writeFile(t, filesystem, "/rm.txt", []byte("x"))
		if err := filesystem.Remove("/rm.txt"); err != nil {
			t.Fatalf("Remove(/rm.txt): got error %v, want nil", err)
		}
		if _, err := filesystem.Stat("/rm.txt"); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Stat after Remove: got error %v, want fs.ErrNotExist", err)
		}
	})
	t.Run("RemoveEmptyDirectory", func(t *testing.T) {
		config.skip(t)
		if err := filesystem.Mkdir("/emptydir", 0o755); err != nil {
			t.Fatalf("Mkdir(/emptydir): setup failed: %v", err)
		}
		if err := filesystem.Remove("/emptydir"); err != nil {
			t.Fatalf("Remove(/emptydir): got error %v, want nil", err)
		}
		if ok, _ := filesystem.Exists("/emptydir"); ok {
			t.Errorf("Exists(/emptydir) after Remove: got true, want false")
		}
	})
	t.Run("RemoveNonEmptyDirectory", func(t *testing.T) {
		config.skip(t)
		if err := filesystem.MkdirAll("/full", 0o755); err != nil {
			t.Fatalf("MkdirAll(/full): setup failed: %v", err)
		}
		writeFile(t, filesystem, "/full/child.txt", []byte("x"))
		if err := filesystem.Remove("/full"); err == nil {
			t.Errorf("Remove(/full) of non-empty directory: got nil error, want error")
		}
		if ok, _ := filesystem.Exists("/full/child.txt"); !ok {
			t.Errorf("Remove(/full) removed its contents")
		}
	})
	t.Run("RemoveNotExist", func(t *testing.T) {
		config.skip(t)
		err := filesystem.Remove("/never-existed")
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Remove(missing): got error %v, want fs.ErrNotExist", err)
		}
	})
	t.Run("RenameFile", func(t *testing.T) {
		config.skip(t)
		writeFile(t, filesystem, "/old.txt", []byte("payload"))
		if err := filesystem.Rename("/old.txt", "/new.txt"); err != nil {
			t.Fatalf("Rename(): got error %v, want nil", err)
		}
		if ok, _ := filesystem.Exists("/old.txt"); ok {
			t.Errorf("Exists(/old.txt) after Rename: got true, want false")
		}
		if got := readFile(t, filesystem, "/new.txt"); !bytes.Equal(got, []byte("payload")) {
			t.Errorf("read renamed file: got %q, want %q", got, "payload")
		}
	})
	t.Run("RenameDirectory", func(t *testing.T) {
		config.skip(t)
		if err := filesystem.MkdirAll("/olddir/inner", 0o755); err != nil {
			t.Fatalf("MkdirAll(/olddir/inner): setup failed: %v", err)
		}
		writeFile(t, filesystem, "/olddir/inner/f.txt", []byte("deep"))
		if err := filesystem.Rename("/olddir", "/newdir"); err != nil {
			t.Fatalf("Rename(dir): got error %v, want nil", err)
		}
		if got := readFile(t, filesystem, "/newdir/inner/f.txt"); !bytes.Equal(got, []byte("deep")) {
			t.Errorf("read moved file: got %q, want %q", got, "deep")
		}
	})
	t.Run("RenameMissingParent", func(t *testing.T) {
		config.skip(t)
		writeFile(t, filesystem, "/stay.txt", []byte("x"))
		err := filesystem.Rename("/stay.txt", "/absent/moved.txt")
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Rename() into missing directory: got error %v, want fs.ErrNotExist", err)
		}
		if ok, _ := filesystem.Exists("/absent"); ok {
			t.Errorf("Rename() created the missing parent")
		}
		if ok, _ := filesystem.Exists("/stay.txt"); !ok {
			t.Errorf("Exists(/stay.txt) after failed Rename: got false, want true")
		}
	})
	t.Run("RenameNotExist", func(t *testing.T) {
		config.skip(t)
		if err := filesystem.Rename("/ghost", "/ghost2"); err == nil {
			t.Errorf("Rename(missing): got nil error, want error")
		}
	})
}
