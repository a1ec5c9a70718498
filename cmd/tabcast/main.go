// Command tabcast sends one prompt to several AI chat sites at once.
package main

import (
	"runtime"
	"runtime/debug"

	"github.com/bnema/tabcast/internal/cli/cmd"
	"github.com/bnema/tabcast/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = ""
	buildDate = ""
)

// GTK must own the main OS thread, and cobra runs commands on the main
// goroutine.
func init() {
	runtime.LockOSThread()
}

func main() {
	debug.SetTraceback("crash")

	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})
	cmd.Execute()
}
