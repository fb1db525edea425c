package buildinfo

import "fmt"

// Set at build time via -ldflags "-X surfview/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact build identifier for the window title.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		if len(Commit) > 7 {
			return Commit[:7]
		}
		return Commit
	}
	return "dev"
}

// Banner is the startup log line.
func Banner() string {
	return fmt.Sprintf("surfview %s (commit %s, built %s)", Version, Commit, Date)
}
