// Package misc keeps program identity information.
package misc

import (
	"runtime/debug"
	"sync"
)

const appName = "fromsel"

// Overwritten at link time: -ldflags "-X fromsel/misc.version=..."
var version = ""

var buildInfo = sync.OnceValue(func() *debug.BuildInfo {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}
	return bi
})

// GetAppName returns program name used in logs and file names.
func GetAppName() string {
	return appName
}

// GetVersion returns program version: linker provided value, module version
// or "devel".
func GetVersion() string {
	if version != "" {
		return version
	}
	if bi := buildInfo(); bi != nil && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return "devel"
}

// GetGitHash returns short VCS revision the binary was built from, with "+"
// appended for modified trees.
func GetGitHash() string {
	bi := buildInfo()
	if bi == nil {
		return "unknown"
	}
	var rev string
	var dirty bool
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if rev == "" {
		return "unknown"
	}
	if len(rev) > 8 {
		rev = rev[:8]
	}
	if dirty {
		rev += "+"
	}
	return rev
}
