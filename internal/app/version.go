package app

import (
	"fmt"
	"runtime/debug"
)

// Version, Commit and BuildTime are set with -ldflags "-X ...app.Version=1.0.0".
// When Commit is not stamped it falls back to the VCS revision the Go
// toolchain embeds.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion formats the build stamp for startup logs and /health.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, commit(), BuildTime)
}

func commit() string {
	if Commit != "unknown" {
		return Commit
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Commit
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			if len(s.Value) > 12 {
				return s.Value[:12]
			}
			return s.Value
		}
	}
	return Commit
}
