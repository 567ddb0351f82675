// Package fstest provides a conformance test suite for validating core.FS
// providers, plus FaultFS for forcing primitive failures in tests of code
// built on top of a provider.
//
// Example usage:
//
//	func TestMyProvider(t *testing.T) {
//	    fstest.TestSuite(t, func() core.FS {
//	        return myprovider.New()
//	    })
//	}
package fstest

import (
	"io"
	"io/fs"
	"os"
	"strings"
	"testing"

	"github.com/jmgilman/go/fileurl/core"
)

// FSTestConfig configures the test suite to match filesystem behavior characteristics.
type FSTestConfig struct {
	// MetadataUnsupported indicates Chmod and Chtimes return core.ErrUnsupported.
	MetadataUnsupported bool

	// SkipTests lists specific test names to skip (for edge cases).
	// Format: "Group/SubTest" (e.g., "WriteFS/MkdirMissingParent").
	SkipTests []string
}

// DefaultTestConfig returns configuration for providers that support the
// whole contract, such as the go-billy local and memory filesystems.
func DefaultTestConfig() FSTestConfig {
	return FSTestConfig{}
}

func (c FSTestConfig) skip(t *testing.T) {
	t.Helper()
	for _, name := range c.SkipTests {
		if strings.HasSuffix(t.Name(), "/"+name) {
			t.Skip("Skipped by provider configuration")
		}
	}
}

// TestSuite runs all conformance tests against a filesystem.
// The newFS function should return a fresh, empty filesystem for each group.
// Uses DefaultTestConfig().
func TestSuite(t *testing.T, newFS func() core.FS) {
	TestSuiteWithConfig(t, newFS, DefaultTestConfig())
}

// TestSuiteWithConfig runs conformance tests with behavior configuration.
func TestSuiteWithConfig(t *testing.T, newFS func() core.FS, config FSTestConfig) {
	t.Run("ReadFS", func(t *testing.T) {
		config.skip(t)
		TestReadFSWithConfig(t, newFS(), config)
	})
	t.Run("WriteFS", func(t *testing.T) {
		config.skip(t)
		TestWriteFSWithConfig(t, newFS(), config)
	})
	t.Run("ManageFS", func(t *testing.T) {
		config.skip(t)
		TestManageFSWithConfig(t, newFS(), config)
	})
	t.Run("MetadataFS", func(t *testing.T) {
		config.skip(t)
		TestMetadataFSWithConfig(t, newFS(), config)
	})
	t.Run("ChrootFS", func(t *testing.T) {
		config.skip(t)
		TestChrootFSWithConfig(t, newFS(), config)
	})
}

// writeFile creates or truncates name and writes data to it.
func writeFile(t *testing.T, filesystem core.FS, name string, data []byte) {
	t.Helper()
	f, err := filesystem.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		t.Fatalf("OpenFile(%s): setup failed: %v", name, err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		t.Fatalf("Write(%s): setup failed: %v", name, err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close(%s): setup failed: %v", name, err)
	}
}

// readFile returns the full contents of name.
func readFile(t *testing.T, filesystem core.FS, name string) []byte {
	t.Helper()
	f, err := filesystem.Open(name)
	if err != nil {
		t.Fatalf("Open(%s): got error %v, want nil", name, err)
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("Read(%s): got error %v, want nil", name, err)
	}
	return data
}

func statMode(t *testing.T, filesystem core.FS, name string) fs.FileMode {
	t.Helper()
	info, err := filesystem.Stat(name)
	if err != nil {
		t.Fatalf("Stat(%s): got error %v, want nil", name, err)
	}
	return info.Mode()
}
