// Package buildinfo reports the version and VCS provenance of the
// running binary, for inclusion in -version output and log headers.
package buildinfo

import (
	"fmt"
	"runtime/debug"
	"strconv"
)

// Version is set at build time via
// -ldflags "-X 'github.com/kg-radio/p25core/internal/buildinfo.Version=X'".
var Version string

func settingOrDefault(bi *debug.BuildInfo, key, defaultValue string) string {
	for _, bs := range bi.Settings {
		if bs.Key == key {
			return bs.Value
		}
	}
	return defaultValue
}

// Info is a resolved snapshot of the build's version and VCS state.
type Info struct {
	Version string
	Commit  string
	Time    string
	Dirty   bool
}

// Read resolves the current binary's build info. Safe to call even
// when the binary was not built with module information (e.g. `go run`
// without VCS metadata); Commit and Time default to "UNKNOWN" and Dirty
// to false in that case. Version is "!UNKNOWN!" unless set at link time.
func Read() Info {
	var bi, ok = debug.ReadBuildInfo()
	if !ok {
		bi = &debug.BuildInfo{}
	}

	var commit = settingOrDefault(bi, "vcs.revision", "UNKNOWN")
	var dirtyStr = settingOrDefault(bi, "vcs.modified", "false")
	var dirty, _ = strconv.ParseBool(dirtyStr)

	var version = Version
	if version == "" {
		version = "!UNKNOWN!"
	}

	return Info{
		Version: version,
		Commit:  commit,
		Time:    settingOrDefault(bi, "vcs.time", "UNKNOWN"),
		Dirty:   dirty,
	}
}

// String formats Info the way p25bench's -version flag prints it.
func (i Info) String() string {
	var commit = i.Commit
	if i.Dirty {
		commit += "-DIRTY"
	}
	return fmt.Sprintf("p25bench - Version %s (revision %s, built at %s)", i.Version, commit, i.Time)
}
