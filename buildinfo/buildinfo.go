package buildinfo

import (
	"fmt"
	"os"
	"runtime/debug"
)

// BuildInfo captures how the running binary was produced, when the Go
// toolchain embedded VCS stamps at build time.
type BuildInfo struct {
	Module     string
	GoVersion  string
	Commit     string
	CommitTime string
	Dirty      bool
}

func (b BuildInfo) String() string {
	dirty := ""
	if b.Dirty {
		dirty = " The working tree was dirty at build time."
	}

	return fmt.Sprintf("%s built with %s from commit %s (%s).%s", b.Module, b.GoVersion, b.Commit, b.CommitTime, dirty)
}

// Get reads the build info stamped into the binary, returning the zero
// value when none is available (e.g., under `go run`).
func Get() BuildInfo {
	out := BuildInfo{}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return out
	}

	out.GoVersion = info.GoVersion
	out.Module = info.Path
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			out.Commit = s.Value
		case "vcs.time":
			out.CommitTime = s.Value
		case "vcs.modified":
			out.Dirty = s.Value == "true"
		}
	}

	return out
}

// PrintToStdErr writes the build info to stderr.
func PrintToStdErr() {
	fmt.Fprintf(os.Stderr, "%s\n", Get())
}
