package fileurl

import "github.com/jmgilman/go/fileurl/internal/exithook"

// RunExitHooks deletes every path registered with DeleteOnExit, most recent
// first. Go has no exit hooks of its own, so programs defer it in main:
//
//	func main() {
//	    defer fileurl.RunExitHooks()
//	    ...
//	}
func RunExitHooks() {
	exithook.Run()
}

// InstallExitHooks also runs the hooks when the process is interrupted or
// terminated, then exits with status 1. The returned function uninstalls the
// signal handler.
func InstallExitHooks() (stop func()) {
	return exithook.Install()
}
