// Package buildinfo reports which commit a binary was built from, so that
// figures and summary artifacts can be traced back to the code that produced
// them.
package buildinfo

import (
	"fmt"
	"os"
	"runtime/debug"
)

type Info struct {
	Package    string
	GoVersion  string
	Commit     string
	CommitTime string
	Dirty      bool
}

func (i Info) String() string {
	suffix := ""
	if i.Dirty {
		suffix = " (with uncommitted changes)"
	}

	return fmt.Sprintf("%s built with %s from commit %s at %s%s", i.Package, i.GoVersion, i.Commit, i.CommitTime, suffix)
}

// Get reads the build metadata stamped into the running binary.
func Get() Info {
	out := Info{}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return out
	}

	out.Package = bi.Path
	out.GoVersion = bi.GoVersion
	for _, s := range bi.Settings {
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

// PrintToStderr writes the build stamp to standard error.
func PrintToStderr() {
	fmt.Fprintf(os.Stderr, "%s\n", Get())
}
