package fstest

import (
	"errors"
	"testing"
	"time"

	"github.com/jmgilman/go/fileurl/core"
)

// TestMetadataFS tests metadata operations: Chmod and Chtimes.
// Uses DefaultTestConfig().
func TestMetadataFS(t *testing.T, filesystem core.FS) {
	TestMetadataFSWithConfig(t, filesystem, DefaultTestConfig())
}

// TestMetadataFSWithConfig tests metadata operations with behavior configuration.
// When config.MetadataUnsupported is set, only the ErrUnsupported contract is
// checked.
func TestMetadataFSWithConfig(t *testing.T, filesystem core.FS, config FSTestConfig) {
	writeFile(t, filesystem, "/meta.txt", []byte("metadata"))

	if config.MetadataUnsupported {
		t.Run("Unsupported", func(t *testing.T) {
			config.skip(t)
			if err := filesystem.Chmod("/meta.txt", 0o600); !errors.Is(err, core.ErrUnsupported) {
				t.Errorf("Chmod(): got error %v, want core.ErrUnsupported", err)
			}
			if err := filesystem.Chtimes("/meta.txt", time.Time{}, time.Now()); !errors.Is(err, core.ErrUnsupported) {
				t.Errorf("Chtimes(): got error %v, want core.ErrUnsupported", err)
			}
		})
		return
	}

	t.Run("Chmod", func(t *testing.T) {
		config.skip(t)
		if err := filesystem.Chmod("/meta.txt", 0o400); err != nil {
			t.Fatalf("Chmod(0400): got error %v, want nil", err)
		}
		if perm := statMode(t, filesystem, "/meta.txt").Perm(); perm != 0o400 {
			t.Errorf("Stat() after Chmod(0400): perm = %o, want 400", perm)
		}
		if err := filesystem.Chmod("/meta.txt", 0o644); err != nil {
			t.Fatalf("Chmod(0644): got error %v, want nil", err)
		}
		if perm := statMode(t, filesystem, "/meta.txt").Perm(); perm != 0o644 {
			t.Errorf("Stat() after Chmod(0644): perm = %o, want 644", perm)
		}
	})
	t.Run("Chtimes", func(t *testing.T) {
		config.skip(t)
		want := time.Date(2020, time.March, 14, 15, 9, 26, 0, time.UTC)
		if err := filesystem.Chtimes("/meta.txt", want, want); err != nil {
			t.Fatalf("Chtimes(): got error %v, want nil", err)
		}
		info, err := filesystem.Stat("/meta.txt")
		if err != nil {
			t.Fatalf("Stat(): got error %v, want nil", err)
		}
		if !info.ModTime().Equal(want) {
			t.Errorf("ModTime(): got %v, want %v", info.ModTime(), want)
		}
	})
	t.Run("ChtimesZeroKeeps", func(t *testing.T) {
		config.skip(t)
		want := time.Date(2021, time.June, 1, 0, 0, 0, 0, time.UTC)
		if err := filesystem.Chtimes("/meta.txt", want, want); err != nil {
			t.Fatalf("Chtimes(): setup failed: %v", err)
		}
		if err := filesystem.Chtimes("/meta.txt", time.Time{}, time.Time{}); err != nil {
			t.Fatalf("Chtimes(zero, zero): got error %v, want nil", err)
		}
		info, err := filesystem.Stat("/meta.txt")
		if err != nil {
			t.Fatalf("Stat(): got error %v, want nil", err)
		}
		if !info.ModTime().Equal(want) {
			t.Errorf("ModTime() after zero Chtimes: got %v, want %v", info.ModTime(), want)
		}
	})
	t.Run("ChmodNotExist", func(t *testing.T) {
		config.skip(t)
		if err := filesystem.Chmod("/missing.txt", 0o644); err == nil {
			t.Errorf("Chmod(missing): got nil error, want error")
		}
	})
}
