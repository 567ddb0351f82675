// Package billy provides go-billy-backed implementations of core.FS, the
// native filesystem underneath fileurl paths.
//
// Two providers are available:
//
//	local := billy.NewLocal()   // osfs rooted at "/"
//	mem := billy.NewMemory()    // memfs, initially empty
//
// Both accept absolute slash-separated paths. NewLocal can be rooted
// elsewhere with WithRoot, in which case every path is resolved below that
// directory:
//
//	sandbox := billy.NewLocal(billy.WithRoot(t.TempDir()))
//
// The underlying billy.Filesystem is available through Unwrap for code that
// speaks go-billy directly.
//
// # Thread Safety
//
// Providers are safe for concurrent use by multiple goroutines. File handles
// are not.
package billy
