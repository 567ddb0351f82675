// Package fileurl models filesystem locations as immutable values.
//
// A Path is an absolute location held as an ordered list of segments. Paths
// are built by a Factory and can be composed, inspected and compared without
// touching the disk:
//
//	f := fileurl.Default()
//	logs := f.Append("var").Append("log")
//	app := logs.AppendPath(fileurl.Rel("app", "current.log"))
//	ext, _ := app.Extension() // "log"
//
// Operations that need the filesystem resolve a native core.Handle on first
// use and keep it for the life of the Path. Most of them report failure as a
// boolean, matching how routine filesystem failures are:
//
//	if !app.Parent().Mkdir(true) { ... }
//	if !src.MoveTo(dst) { ... }  // rename, else copy then delete
//
// Listing is lexical. Descendants is a lazy pre-order iter.Seq that lists
// each directory as it is reached:
//
//	for p := range root.Descendants() {
//	    fmt.Println(p)
//	}
//
// # Streams
//
// Reading and writing go through capability types rather than methods on
// Path. ByteStreams and CharStreams implement core.Reader and core.Writer for
// *Path, and Copy is generic over the element kind, so a missing capability is
// a compile error:
//
//	n, err := fileurl.Copy(src, dst, fileurl.ByteStreams{}, fileurl.ByteStreams{})
//
// # Filesystems
//
// Default uses the local disk through go-billy. New builds an independent
// factory over any core.FS, such as billy.NewMemory() in tests. Paths from
// different factories never compare equal and cannot be renamed into each
// other; MoveTo falls back to copying between them.
package fileurl
