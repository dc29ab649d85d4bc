// Package version holds the build version information, set via -ldflags.
package version

import "fmt"

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// String returns the human-readable version line used by the About dialog
// and the command line tools.
func String() string {
	return fmt.Sprintf("optics-bench %s (%s, built %s)", Version, Commit, Date)
}
