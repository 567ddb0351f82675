// Package core defines the native filesystem contract underneath fileurl and
// the generic stream capability framework used to read and write locations.
//
// # Native Filesystem
//
// FS is the set of platform primitives a provider must offer. It is composed
// of small interfaces:
//
//   - ReadFS: Open, Stat, ReadDir, Exists
//   - WriteFS: OpenFile, Mkdir, MkdirAll
//   - ManageFS: Remove, Rename
//   - MetadataFS: Chmod, Chtimes
//   - ChrootFS: Chroot
//
// Providers live in separate packages (see github.com/jmgilman/go/fileurl/billy).
// Every path handed to a provider is absolute and slash separated.
//
// A Handle binds an FS to a single path and exposes the primitives as methods
// (Exists, IsDir, Delete, RenameTo, List, SetModTime, CreateUnique, ...).
// Creating a Handle never touches the filesystem.
//
// # Capabilities
//
// Input and Output are element-typed streams. The element kind is either byte
// or rune (character):
//
//	var in core.Input[byte] = core.NewByteInput(f)
//	var out core.Output[rune] = core.NewCharOutput(g)
//
// Reader and Writer open streams for a location type L. Because they are
// parameterized by both L and the element kind, asking for a combination
// nobody implemented fails to compile rather than at run time:
//
//	func copyBytes[L any](src, dst L, r core.Reader[L, byte], w core.Writer[L, byte]) (int64, error)
//
// Pump moves every element from an Input to an Output and reports the count.
package core
