package fstest

import (
	"bytes"
	"testing"

	"github.com/jmgilman/go/fileurl/core"
)

// TestChrootFS tests scoped filesystem views.
// Uses DefaultTestConfig().
func TestChrootFS(t *testing.T, filesystem core.FS) {
	TestChrootFSWithConfig(t, filesystem, DefaultTestConfig())
}

// TestChrootFSWithConfig tests scoped filesystem views with behavior configuration.
func TestChrootFSWithConfig(t *testing.T, filesystem core.FS, config FSTestConfig) {
	if err := filesystem.MkdirAll("/jail/inner", 0o755); err != nil {
		t.Fatalf("MkdirAll(/jail/inner): setup failed: %v", err)
	}
	writeFile(t, filesystem, "/jail/inner/f.txt", []byte("scoped"))
	writeFile(t, filesystem, "/outside.txt", []byte("outside"))

	t.Run("ReadThroughChroot", func(t *testing.T) {
		config.skip(t)
		scoped, err := filesystem.Chroot("/jail")
		if err != nil {
			t.Fatalf("Chroot(/jail): got error %v, want nil", err)
		}
		if got := readFile(t, scoped, "/inner/f.txt"); !bytes.Equal(got, []byte("scoped")) {
			t.Errorf("read through chroot: got %q, want %q", got, "scoped")
		}
		if ok, _ := scoped.Exists("/outside.txt"); ok {
			t.Errorf("Exists(/outside.txt) inside chroot: got true, want false")
		}
		if scoped.Type() != filesystem.Type() {
			t.Errorf("Type(): got %v, want %v", scoped.Type(), filesystem.Type())
		}
	})
	t.Run("WriteThroughChroot", func(t *testing.T) {
		config.skip(t)
		scoped, err := filesystem.Chroot("/jail")
		if err != nil {
			t.Fatalf("Chroot(/jail): got error %v, want nil", err)
		}
		writeFile(t, scoped, "/new.txt", []byte("written"))
		if got := readFile(t, filesystem, "/jail/new.txt"); !bytes.Equal(got, []byte("written")) {
			t.Errorf("read from parent: got %q, want %q", got, "written")
		}
	})
	t.Run("ChrootMissing", func(t *testing.T) {
		config.skip(t)
		if _, err := filesystem.Chroot("/no-such-dir"); err == nil {
			t.Errorf("Chroot(missing): got nil error, want error")
		}
	})
	t.Run("ChrootOnFile", func(t *testing.T) {
		config.skip(t)
		if _, err := filesystem.Chroot("/outside.txt"); err == nil {
			t.Errorf("Chroot(file): got nil error, want error")
		}
	})
}
